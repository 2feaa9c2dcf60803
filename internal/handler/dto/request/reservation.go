package request

import (
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	TableID        uuid.UUID   `json:"table_id" binding:"required"`
	LinkedTableIDs []uuid.UUID `json:"linked_table_ids"`
	GuestName      string      `json:"guest_name" binding:"required"`
	GuestPhone     string      `json:"guest_phone"`
	GuestCount     int         `json:"guest_count" binding:"required,gt=0"`
	ReservedDate   string      `json:"reserved_date" binding:"required"`
	TimeFrom       time.Time   `json:"time_from" binding:"required"`
	TimeTo         time.Time   `json:"time_to" binding:"required"`
	DepositCents   int64       `json:"deposit_cents" binding:"gte=0"`
	Notes          string      `json:"notes"`
}

func (r *CreateReservationRequest) ParseReservedDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.ReservedDate)
}

// SeatRequest carries the optional knobs of seating. Omitted booleans fall
// back to the defaults (open an order, transfer a paid deposit).
type SeatRequest struct {
	CreateOrder        *bool `json:"create_order"`
	TransferDeposit    *bool `json:"transfer_deposit"`
	GuestCountOverride *int  `json:"guest_count_override" binding:"omitempty,gt=0"`
}

func (r *SeatRequest) ToOptions(actorID uuid.UUID) commands.SeatOptions {
	opts := commands.DefaultSeatOptions(actorID)
	if r.CreateOrder != nil {
		opts.CreateOrder = *r.CreateOrder
	}
	if r.TransferDeposit != nil {
		opts.TransferDeposit = *r.TransferDeposit
	}
	opts.GuestCountOverride = r.GuestCountOverride
	return opts
}

type UnseatRequest struct {
	Force bool `json:"force"`
}

type CompleteRequest struct {
	Force bool `json:"force"`
}

type CancelRequest struct {
	Reason        string `json:"reason"`
	RefundDeposit *bool  `json:"refund_deposit"`
}

func (r *CancelRequest) ToOptions(actorID uuid.UUID) commands.CancelOptions {
	opts := commands.DefaultCancelOptions(actorID)
	opts.Reason = r.Reason
	if r.RefundDeposit != nil {
		opts.RefundDeposit = *r.RefundDeposit
	}
	return opts
}

type NoShowRequest struct {
	ForfeitDeposit bool   `json:"forfeit_deposit"`
	Notes          string `json:"notes"`
}

type DepositPaidRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}
