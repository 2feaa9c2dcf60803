package repository

import (
	"context"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/order"
	"github.com/Sannikov1993/PosResto-sub020/internal/infra"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/pgconv"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ shared.OrderRepository = (*OrderRepository)(nil)

const orderColumns = `
	id, table_id, reservation_id, status, guest_count,
	total_cents, paid_cents, opened_by, closed_at, created_at, updated_at`

func (r *OrderRepository) ActiveByTable(ctx context.Context, tableID uuid.UUID) (*order.Order, error) {
	query := `SELECT` + orderColumns + `
		FROM orders
		WHERE table_id = $1 AND status = 'open'
		ORDER BY created_at DESC
		LIMIT 1`

	o, err := scanOrder(r.db.QueryRow(ctx, query, tableID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load active order", err)
	}
	return o, nil
}

func (r *OrderRepository) ByReservation(ctx context.Context, reservationID uuid.UUID) ([]*order.Order, error) {
	query := `SELECT` + orderColumns + `
		FROM orders
		WHERE reservation_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query orders by reservation", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}
	return orders, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	query := `
		INSERT INTO orders (
			id, table_id, reservation_id, status, guest_count,
			total_cents, paid_cents, opened_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		o.ID(),
		o.TableID(),
		pgconv.UUIDPtrToPgtype(o.ReservationID()),
		o.Status().String(),
		o.GuestCount(),
		o.TotalCents(),
		o.PaidCents(),
		pgconv.UUIDPtrToPgtype(o.OpenedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	query := `
		UPDATE orders SET
			status = $2,
			total_cents = $3,
			paid_cents = $4,
			closed_at = $5,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		o.ID(),
		o.Status().String(),
		o.TotalCents(),
		o.PaidCents(),
		pgconv.TimePtrToPgtype(o.ClosedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		id, tableID           uuid.UUID
		reservationID         pgtype.UUID
		status                string
		guestCount            int
		totalCents, paidCents int64
		openedBy              pgtype.UUID
		closedAt              pgtype.Timestamptz
		createdAt, updatedAt  time.Time
	)

	err := row.Scan(
		&id, &tableID, &reservationID, &status, &guestCount,
		&totalCents, &paidCents, &openedBy, &closedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return order.ReconstructOrder(
		id, tableID,
		pgconv.UUIDPtrFromPgtype(reservationID),
		order.Status(status),
		guestCount,
		totalCents, paidCents,
		pgconv.UUIDPtrFromPgtype(openedBy),
		pgconv.TimePtrFromPgtype(closedAt),
		createdAt, updatedAt,
	), nil
}
