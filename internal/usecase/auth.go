package usecase

import (
	"context"
	"errors"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/user"
	"github.com/Sannikov1993/PosResto-sub020/internal/infra"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/clock"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/jwt"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/password"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

// AuthorizedUser is the slice of the staff record the HTTP layer needs.
type AuthorizedUser struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  user.Role
}

type AuthUseCase interface {
	Login(ctx context.Context, email user.Email, pass user.Password) (string, *AuthorizedUser, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtService *jwt.Service, clock clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email user.Email, pass user.Password) (string, *AuthorizedUser, error) {
	var account *user.User

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByEmail(ctx, email.Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if !found.IsActive() {
			return ErrUserInactive
		}
		if err := password.ComparePassword(found.PasswordHash(), pass.Value()); err != nil {
			return ErrInvalidCredentials
		}
		if err := tx.Users().UpdateLastLogin(ctx, found.ID(), a.clock.Now()); err != nil {
			return err
		}
		account = found
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, &AuthorizedUser{
		ID:    account.ID(),
		Email: account.Email().Value(),
		Name:  account.Name(),
		Role:  account.Role(),
	}, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
