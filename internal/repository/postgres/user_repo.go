package postgres

import (
	"context"
	"errors"

	"peso-job-portal/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, role, full_name, is_disabled, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Role, user.FullName, user.IsDisabled,
		user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET email = $2, full_name = $3, is_disabled = $4, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, user.ID, user.Email, user.FullName, user.IsDisabled)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, role, full_name, is_disabled, created_at, updated_at
	          FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, role, full_name, is_disabled, created_at, updated_at
	          FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FullName, &u.IsDisabled,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
