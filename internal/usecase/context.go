package usecase

import (
	"context"

	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"
)

// roleFromContext reads the role the auth middleware stored on the
// request context. Missing keys fail safe as an empty role.
func roleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	return role
}

func requireAdmin(ctx context.Context) error {
	if roleFromContext(ctx) != domain.RoleAdmin {
		return apperror.Forbidden("Only administrators can perform this action")
	}
	return nil
}
