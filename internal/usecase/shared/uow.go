package shared

import (
	"context"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/order"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/table"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork wraps one lifecycle action in one database transaction. The
// precondition checks, the occupancy query and every write share the same
// transactional boundary, so two concurrent actions against the same
// reservation or table serialize on the row locks taken inside fn.
type UnitOfWork interface {
	// Within runs fn in a read-committed transaction with retry on
	// serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the repositories bound to the running transaction.
type Tx interface {
	Reservations() ReservationRepository
	Tables() TableRepository
	Orders() OrderRepository
	Users() UserRepository
}

type ReservationRepository interface {
	// FindForUpdate loads the reservation row under FOR UPDATE.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Create(ctx context.Context, res *reservation.Reservation) error
	Save(ctx context.Context, res *reservation.Reservation) error
}

type TableRepository interface {
	// FindForUpdate loads the table row under FOR UPDATE.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*table.Table, error)
	SaveStatus(ctx context.Context, id uuid.UUID, status table.Status) error
}

type OrderRepository interface {
	// ActiveByTable returns the open order currently targeting the table,
	// or nil when the table has no real active order.
	ActiveByTable(ctx context.Context, tableID uuid.UUID) (*order.Order, error)
	// ByReservation returns every order carrying the reservation
	// back-reference, open or closed.
	ByReservation(ctx context.Context, reservationID uuid.UUID) ([]*order.Order, error)
	Create(ctx context.Context, o *order.Order) error
	Save(ctx context.Context, o *order.Order) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Create(ctx context.Context, u *user.User) error
}
