package usecase

import (
	"context"
	"time"

	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthUsecase(userRepo domain.UserRepository, jwtSecret string) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
	}
}

// Login verifies credentials and issues an HS256 token carrying the
// user's id, email and role.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same message for unknown email and wrong password
		return "", nil, apperror.Unauthorized("Invalid email or password")
	}
	if user.IsDisabled {
		return "", nil, apperror.Forbidden("Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(u.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	return token, user, nil
}

func (u *authUsecase) Register(ctx context.Context, email, password, fullName, role string) (*domain.User, error) {
	if role != domain.RoleJobSeeker && role != domain.RoleEmployer {
		return nil, apperror.BadRequest("Role must be jobseeker or employer")
	}
	if len(password) < 8 {
		return nil, apperror.BadRequest("Password must be at least 8 characters")
	}
	if existing, _ := u.userRepo.GetByEmail(ctx, email); existing != nil {
		return nil, apperror.BadRequest("Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		FullName:     fullName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
