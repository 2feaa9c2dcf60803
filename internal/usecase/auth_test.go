//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/user"
	"github.com/Sannikov1993/PosResto-sub020/internal/infra"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/clock"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/jwt"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/password"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type userOnlyTx struct {
	users *mockUserRepo
}

func (t *userOnlyTx) Reservations() shared.ReservationRepository { return nil }
func (t *userOnlyTx) Tables() shared.TableRepository             { return nil }
func (t *userOnlyTx) Orders() shared.OrderRepository             { return nil }
func (t *userOnlyTx) Users() shared.UserRepository               { return t.users }

type passThroughUoW struct {
	tx shared.Tx
}

func (u *passThroughUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func newAuthFixture(t *testing.T) (*mockUserRepo, usecase.AuthUseCase, *jwt.Service) {
	t.Helper()

	users := new(mockUserRepo)
	jwtService := jwt.NewService("test-secret-key", time.Hour)
	mockClock := clock.NewMockClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	auth := usecase.NewAuthUseCase(&passThroughUoW{tx: &userOnlyTx{users: users}}, jwtService, mockClock)
	return users, auth, jwtService
}

func storedUser(t *testing.T, plain string, active bool) *user.User {
	t.Helper()

	email, err := user.NewEmail("maria@posresto.example")
	require.NoError(t, err)
	hash, err := password.HashPassword(plain)
	require.NoError(t, err)

	return user.ReconstructUser(
		uuid.New(), email, hash, "Maria", user.RoleManager,
		nil, active,
		time.Now(), time.Now(),
	)
}

func TestLogin(t *testing.T) {
	email, err := user.NewEmail("maria@posresto.example")
	require.NoError(t, err)
	pass, err := user.NewPassword("correct-horse")
	require.NoError(t, err)

	t.Run("issues a token carrying the user id and role", func(t *testing.T) {
		users, auth, jwtService := newAuthFixture(t)
		account := storedUser(t, "correct-horse", true)

		users.On("FindByEmail", mock.Anything, email.Value()).Return(account, nil)
		users.On("UpdateLastLogin", mock.Anything, account.ID(), mock.AnythingOfType("time.Time")).Return(nil)

		token, authorized, err := auth.Login(context.Background(), email, pass)
		require.NoError(t, err)

		assert.Equal(t, account.ID(), authorized.ID)
		assert.Equal(t, user.RoleManager, authorized.Role)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, account.ID(), claims.UserID)
		assert.Equal(t, "manager", claims.Role)
		users.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		users, auth, _ := newAuthFixture(t)

		users.On("FindByEmail", mock.Anything, email.Value()).
			Return(nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound))

		_, _, err := auth.Login(context.Background(), email, pass)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		users, auth, _ := newAuthFixture(t)
		account := storedUser(t, "something-else", true)

		users.On("FindByEmail", mock.Anything, email.Value()).Return(account, nil)

		_, _, err := auth.Login(context.Background(), email, pass)
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
		users.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("inactive account", func(t *testing.T) {
		users, auth, _ := newAuthFixture(t)
		account := storedUser(t, "correct-horse", false)

		users.On("FindByEmail", mock.Anything, email.Value()).Return(account, nil)

		_, _, err := auth.Login(context.Background(), email, pass)
		assert.ErrorIs(t, err, usecase.ErrUserInactive)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		_, auth, jwtService := newAuthFixture(t)
		id := uuid.New()

		token, err := jwtService.GenerateToken(id, user.RoleWaiter)
		require.NoError(t, err)

		gotID, gotRole, err := auth.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, user.RoleWaiter, gotRole)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, auth, _ := newAuthFixture(t)
		_, _, err := auth.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, usecase.ErrTokenValidation)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		_, auth, _ := newAuthFixture(t)
		other := jwt.NewService("another-secret", time.Hour)

		token, err := other.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, _, err = auth.ValidateToken(token)
		assert.ErrorIs(t, err, usecase.ErrTokenValidation)
	})
}
