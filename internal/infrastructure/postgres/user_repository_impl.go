package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cnic-auth/backend/internal/domain/entity"
	"github.com/cnic-auth/backend/internal/domain/repository"
)

// Postgres error code for unique_violation
const pgUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(u *entity.User) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (full_name, email, cnic, gender, dob, password_hash, is_active, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, user_id, created_at, updated_at
	`, u.FullName, u.Email, u.CNIC, u.Gender, u.DOB, u.PasswordHash, u.IsActive, u.IsStaff, u.IsSuperuser)

	if err := row.Scan(&u.ID, &u.UserID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return repository.ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByCNIC(cnic string) (*entity.User, error) {
	return r.getBy(`cnic = $1`, cnic)
}

func (r *UserRepository) GetByID(userID string) (*entity.User, error) {
	return r.getBy(`user_id = $1`, userID)
}

func (r *UserRepository) getBy(where string, arg any) (*entity.User, error) {
	ctx := context.Background()
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, full_name, email, cnic, gender, dob, password_hash,
		       is_active, is_staff, is_superuser, created_at, updated_at
		FROM users
		WHERE `+where, arg)

	if err := row.Scan(&u.ID, &u.UserID, &u.FullName, &u.Email, &u.CNIC, &u.Gender, &u.DOB,
		&u.PasswordHash, &u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
