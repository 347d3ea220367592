package usecase

import (
	"context"
	"time"

	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"
)

type jobSeekerUsecase struct {
	seekerRepo domain.JobSeekerRepository
}

func NewJobSeekerUsecase(seekerRepo domain.JobSeekerRepository) domain.JobSeekerUsecase {
	return &jobSeekerUsecase{seekerRepo: seekerRepo}
}

func (u *jobSeekerUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	profile, err := u.seekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (u *jobSeekerUsecase) UpsertMyProfile(ctx context.Context, userID string, profile *domain.JobSeekerProfile) error {
	if profile.ExpectedSalaryMin > profile.ExpectedSalaryMax && profile.ExpectedSalaryMax > 0 {
		return apperror.BadRequest("Expected salary minimum cannot exceed the maximum")
	}
	// The user id always comes from the authenticated context, never the payload
	profile.UserID = userID
	profile.UpdatedAt = time.Now()
	if err := u.seekerRepo.Upsert(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
