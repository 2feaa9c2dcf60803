package readstore

import (
	"context"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/infra"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/pgconv"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationReadStore serves the read side directly from the pool. Queries
// here never lock rows; the write side owns all locking.
type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

var _ queries.ReservationQueries = (*ReservationReadStore)(nil)

func (s *ReservationReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `
		SELECT
			r.id, r.table_id, t.table_number, r.linked_table_ids,
			r.guest_name, r.guest_phone, r.guest_count,
			r.reserved_date, r.time_from, r.time_to,
			r.status,
			r.deposit_cents, r.deposit_status, r.deposit_transferred_to,
			r.cancellation_reason, r.notes,
			r.confirmed_at, r.seated_at, r.unseated_at, r.completed_at, r.cancelled_at, r.no_show_at,
			r.created_at, r.updated_at
		FROM reservations r
		JOIN restaurant_tables t ON t.id = r.table_id
		WHERE r.id = $1`

	var (
		v                    queries.ReservationView
		depositTransferredTo pgtype.UUID
		cancellationReason   pgtype.Text
		notes                string
		confirmedAt          pgtype.Timestamptz
		seatedAt             pgtype.Timestamptz
		unseatedAt           pgtype.Timestamptz
		completedAt          pgtype.Timestamptz
		cancelledAt          pgtype.Timestamptz
		noShowAt             pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.TableID, &v.TableNumber, &v.LinkedTableIDs,
		&v.GuestName, &v.GuestPhone, &v.GuestCount,
		&v.ReservedDate, &v.TimeFrom, &v.TimeTo,
		&v.Status,
		&v.DepositCents, &v.DepositStatus, &depositTransferredTo,
		&cancellationReason, &notes,
		&confirmedAt, &seatedAt, &unseatedAt, &completedAt, &cancelledAt, &noShowAt,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}

	v.DepositTransferredToOrderID = pgconv.UUIDPtrFromPgtype(depositTransferredTo)
	v.CancellationReason = pgconv.StringPtrFromPgtype(cancellationReason)
	if notes != "" {
		v.Notes = &notes
	}
	v.ConfirmedAt = pgconv.TimePtrFromPgtype(confirmedAt)
	v.SeatedAt = pgconv.TimePtrFromPgtype(seatedAt)
	v.UnseatedAt = pgconv.TimePtrFromPgtype(unseatedAt)
	v.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	v.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	v.NoShowAt = pgconv.TimePtrFromPgtype(noShowAt)

	return &v, nil
}

func (s *ReservationReadStore) ListByDate(ctx context.Context, date time.Time) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT
			r.id, r.table_id, t.table_number,
			r.guest_name, r.guest_count,
			r.reserved_date, r.time_from, r.time_to,
			r.status, r.created_at
		FROM reservations r
		JOIN restaurant_tables t ON t.id = r.table_id
		WHERE r.reserved_date = $1
		ORDER BY r.time_from, r.created_at`

	rows, err := s.pool.Query(ctx, query, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		err := rows.Scan(
			&item.ID, &item.TableID, &item.TableNumber,
			&item.GuestName, &item.GuestCount,
			&item.ReservedDate, &item.TimeFrom, &item.TimeTo,
			&item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return items, nil
}
