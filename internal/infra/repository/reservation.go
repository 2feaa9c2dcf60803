package repository

import (
	"context"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"
	"github.com/Sannikov1993/PosResto-sub020/internal/infra"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/pgconv"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

var _ shared.ReservationRepository = (*ReservationRepository)(nil)

const reservationColumns = `
	id, table_id, linked_table_ids,
	guest_name, guest_phone, guest_count,
	reserved_date, time_from, time_to,
	status,
	deposit_cents, deposit_status, deposit_transferred_to,
	cancellation_reason, notes,
	confirmed_at, seated_at, unseated_at, completed_at, cancelled_at, no_show_at,
	confirmed_by, seated_by, cancelled_by,
	created_at, updated_at`

func (r *ReservationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := `SELECT` + reservationColumns + `
		FROM reservations
		WHERE id = $1
		FOR UPDATE`

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	query := `
		INSERT INTO reservations (
			id, table_id, linked_table_ids,
			guest_name, guest_phone, guest_count,
			reserved_date, time_from, time_to,
			status,
			deposit_cents, deposit_status,
			notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, query,
		res.ID(),
		res.TableID(),
		res.LinkedTableIDs(),
		res.GuestName(),
		res.GuestPhone(),
		res.GuestCount(),
		res.ReservedDate(),
		res.Window().From(),
		res.Window().To(),
		res.Status().String(),
		res.Deposit().Cents(),
		res.DepositStatus().String(),
		res.Notes().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	query := `
		UPDATE reservations SET
			status = $2,
			deposit_status = $3,
			deposit_transferred_to = $4,
			cancellation_reason = $5,
			notes = $6,
			confirmed_at = $7,
			seated_at = $8,
			unseated_at = $9,
			completed_at = $10,
			cancelled_at = $11,
			no_show_at = $12,
			confirmed_by = $13,
			seated_by = $14,
			cancelled_by = $15,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		res.ID(),
		res.Status().String(),
		res.DepositStatus().String(),
		pgconv.UUIDPtrToPgtype(res.DepositTransferredTo()),
		pgconv.StringPtrToPgtype(res.CancellationReason()),
		res.Notes().String(),
		pgconv.TimePtrToPgtype(res.ConfirmedAt()),
		pgconv.TimePtrToPgtype(res.SeatedAt()),
		pgconv.TimePtrToPgtype(res.UnseatedAt()),
		pgconv.TimePtrToPgtype(res.CompletedAt()),
		pgconv.TimePtrToPgtype(res.CancelledAt()),
		pgconv.TimePtrToPgtype(res.NoShowAt()),
		pgconv.UUIDPtrToPgtype(res.ConfirmedBy()),
		pgconv.UUIDPtrToPgtype(res.SeatedBy()),
		pgconv.UUIDPtrToPgtype(res.CancelledBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, tableID           uuid.UUID
		linkedTableIDs        []uuid.UUID
		guestName, guestPhone string
		guestCount            int
		reservedDate          time.Time
		timeFrom, timeTo      time.Time
		status                string
		depositCents          int64
		depositStatus         string
		depositTransferredTo  pgtype.UUID
		cancellationReason    pgtype.Text
		notes                 string

		confirmedAt, seatedAt, unseatedAt  pgtype.Timestamptz
		completedAt, cancelledAt, noShowAt pgtype.Timestamptz
		confirmedBy, seatedBy, cancelledBy pgtype.UUID
		createdAt, updatedAt               time.Time
	)

	err := row.Scan(
		&id, &tableID, &linkedTableIDs,
		&guestName, &guestPhone, &guestCount,
		&reservedDate, &timeFrom, &timeTo,
		&status,
		&depositCents, &depositStatus, &depositTransferredTo,
		&cancellationReason, &notes,
		&confirmedAt, &seatedAt, &unseatedAt, &completedAt, &cancelledAt, &noShowAt,
		&confirmedBy, &seatedBy, &cancelledBy,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	window, err := reservation.NewTimeWindow(timeFrom, timeTo)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id, tableID,
		linkedTableIDs,
		guestName, guestPhone,
		guestCount,
		reservedDate,
		window,
		reservation.Status(status),
		reservation.NewMoney(depositCents),
		reservation.DepositStatus(depositStatus),
		pgconv.UUIDPtrFromPgtype(depositTransferredTo),
		pgconv.StringPtrFromPgtype(cancellationReason),
		reservation.NewNote(notes),
		pgconv.TimePtrFromPgtype(confirmedAt),
		pgconv.TimePtrFromPgtype(seatedAt),
		pgconv.TimePtrFromPgtype(unseatedAt),
		pgconv.TimePtrFromPgtype(completedAt),
		pgconv.TimePtrFromPgtype(cancelledAt),
		pgconv.TimePtrFromPgtype(noShowAt),
		pgconv.UUIDPtrFromPgtype(confirmedBy),
		pgconv.UUIDPtrFromPgtype(seatedBy),
		pgconv.UUIDPtrFromPgtype(cancelledBy),
		createdAt, updatedAt,
	), nil
}
