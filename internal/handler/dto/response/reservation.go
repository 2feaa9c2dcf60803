package response

import (
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/order"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                   uuid.UUID   `json:"id"`
	TableID              uuid.UUID   `json:"table_id"`
	LinkedTableIDs       []uuid.UUID `json:"linked_table_ids,omitempty"`
	GuestName            string      `json:"guest_name"`
	GuestPhone           string      `json:"guest_phone"`
	GuestCount           int         `json:"guest_count"`
	ReservedDate         time.Time   `json:"reserved_date"`
	TimeFrom             time.Time   `json:"time_from"`
	TimeTo               time.Time   `json:"time_to"`
	Status               string      `json:"status"`
	DepositCents         int64       `json:"deposit_cents"`
	DepositStatus        string      `json:"deposit_status"`
	DepositTransferredTo *uuid.UUID  `json:"deposit_transferred_to_order_id,omitempty"`
	CancellationReason   *string     `json:"cancellation_reason,omitempty"`
	Notes                string      `json:"notes,omitempty"`
	ConfirmedAt          *time.Time  `json:"confirmed_at,omitempty"`
	SeatedAt             *time.Time  `json:"seated_at,omitempty"`
	UnseatedAt           *time.Time  `json:"unseated_at,omitempty"`
	CompletedAt          *time.Time  `json:"completed_at,omitempty"`
	CancelledAt          *time.Time  `json:"cancelled_at,omitempty"`
	NoShowAt             *time.Time  `json:"no_show_at,omitempty"`
}

func FromReservation(res *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                   res.ID(),
		TableID:              res.TableID(),
		LinkedTableIDs:       res.LinkedTableIDs(),
		GuestName:            res.GuestName(),
		GuestPhone:           res.GuestPhone(),
		GuestCount:           res.GuestCount(),
		ReservedDate:         res.ReservedDate(),
		TimeFrom:             res.Window().From(),
		TimeTo:               res.Window().To(),
		Status:               res.Status().String(),
		DepositCents:         res.Deposit().Cents(),
		DepositStatus:        res.DepositStatus().String(),
		DepositTransferredTo: res.DepositTransferredTo(),
		CancellationReason:   res.CancellationReason(),
		Notes:                res.Notes().String(),
		ConfirmedAt:          res.ConfirmedAt(),
		SeatedAt:             res.SeatedAt(),
		UnseatedAt:           res.UnseatedAt(),
		CompletedAt:          res.CompletedAt(),
		CancelledAt:          res.CancelledAt(),
		NoShowAt:             res.NoShowAt(),
	}
}

type ActionResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Reservation ReservationResponse `json:"reservation"`
	Metadata    map[string]any      `json:"metadata,omitempty"`
}

func FromActionResult(r *commands.ActionResult) *ActionResponse {
	return &ActionResponse{
		Success:     r.Success,
		Message:     r.Message,
		Reservation: FromReservation(r.Reservation),
		Metadata:    r.Metadata,
	}
}

type OrderResponse struct {
	ID         uuid.UUID `json:"id"`
	TableID    uuid.UUID `json:"table_id"`
	Status     string    `json:"status"`
	GuestCount int       `json:"guest_count"`
}

func fromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:         o.ID(),
		TableID:    o.TableID(),
		Status:     o.Status().String(),
		GuestCount: o.GuestCount(),
	}
}

type SeatResponse struct {
	ActionResponse
	Order              *OrderResponse `json:"order,omitempty"`
	DepositTransferred bool           `json:"deposit_transferred"`
	TableIDs           []uuid.UUID    `json:"table_ids"`
}

func FromSeatResult(r *commands.SeatResult) *SeatResponse {
	resp := &SeatResponse{
		ActionResponse:     *FromActionResult(&r.ActionResult),
		DepositTransferred: r.DepositTransferred,
		TableIDs:           r.TableIDs,
	}
	if r.HasOrder() {
		resp.Order = fromOrder(r.Order)
	}
	return resp
}
