package repository

import (
	"context"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/user"
	"github.com/Sannikov1993/PosResto-sub020/internal/infra"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/pgconv"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

var _ shared.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, last_login, is_active, created_at, updated_at
		FROM users
		WHERE email = $1`

	var (
		id                   uuid.UUID
		emailValue           string
		passwordHash, name   string
		role                 string
		lastLogin            pgtype.Timestamptz
		isActive             bool
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, email).Scan(
		&id, &emailValue, &passwordHash, &name, &role, &lastLogin, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user", err)
	}

	emailVO, err := user.NewEmail(emailValue)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is malformed", err)
	}

	return user.ReconstructUser(
		id,
		emailVO,
		passwordHash, name,
		user.Role(role),
		pgconv.TimePtrFromPgtype(lastLogin),
		isActive,
		createdAt, updatedAt,
	), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE users SET
			last_login = $2,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Name(),
		u.Role().String(),
		u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
