package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID                           uuid.UUID   `json:"id"`
	TableID                      uuid.UUID   `json:"table_id"`
	TableNumber                  int         `json:"table_number"`
	LinkedTableIDs               []uuid.UUID `json:"linked_table_ids,omitempty"`
	GuestName                    string      `json:"guest_name"`
	GuestPhone                   string      `json:"guest_phone"`
	GuestCount                   int         `json:"guest_count"`
	ReservedDate                 time.Time   `json:"reserved_date"`
	TimeFrom                     time.Time   `json:"time_from"`
	TimeTo                       time.Time   `json:"time_to"`
	Status                       string      `json:"status"`
	DepositCents                 int64       `json:"deposit_cents"`
	DepositStatus                string      `json:"deposit_status"`
	DepositTransferredToOrderID  *uuid.UUID  `json:"deposit_transferred_to_order_id,omitempty"`
	CancellationReason           *string     `json:"cancellation_reason,omitempty"`
	Notes                        *string     `json:"notes,omitempty"`
	ConfirmedAt                  *time.Time  `json:"confirmed_at,omitempty"`
	SeatedAt                     *time.Time  `json:"seated_at,omitempty"`
	UnseatedAt                   *time.Time  `json:"unseated_at,omitempty"`
	CompletedAt                  *time.Time  `json:"completed_at,omitempty"`
	CancelledAt                  *time.Time  `json:"cancelled_at,omitempty"`
	NoShowAt                     *time.Time  `json:"no_show_at,omitempty"`
	CreatedAt                    time.Time   `json:"created_at"`
	UpdatedAt                    time.Time   `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	TableID      uuid.UUID `json:"table_id"`
	TableNumber  int       `json:"table_number"`
	GuestName    string    `json:"guest_name"`
	GuestCount   int       `json:"guest_count"`
	ReservedDate time.Time `json:"reserved_date"`
	TimeFrom     time.Time `json:"time_from"`
	TimeTo       time.Time `json:"time_to"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByDate(ctx context.Context, date time.Time) ([]*ReservationListItem, error)
}
