package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// ReservationEvent is the payload published to the floor displays and the
// notification workers after a lifecycle action commits.
type ReservationEvent struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	TableID       uuid.UUID  `json:"table_id"`
	Status        string     `json:"status"`
	Action        string     `json:"action"`
	ActorID       *uuid.UUID `json:"actor_id,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

type TableStatusEvent struct {
	TableID    uuid.UUID `json:"table_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher is a fire-and-forget side channel. Publishing happens after the
// transaction committed; a broker outage must never fail the request.
type Publisher interface {
	ReservationChanged(evt ReservationEvent)
	TableStatusChanged(evt TableStatusEvent)
}

type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// NewPublisher connects to the broker, or returns a no-op publisher when the
// side channel is disabled.
func NewPublisher(cfg config.NATSConfig) (Publisher, func(), error) {
	if !cfg.Enabled {
		return NoopPublisher{}, func() {}, nil
	}

	conn, err := nats.Connect(cfg.URL,
		nats.Name("posresto-reservations"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		conn.Drain() //nolint:errcheck
	}
	return &NATSPublisher{conn: conn, prefix: cfg.SubjectPrefix}, cleanup, nil
}

func (p *NATSPublisher) ReservationChanged(evt ReservationEvent) {
	p.publish(p.prefix+".reservation."+evt.Action, evt)
}

func (p *NATSPublisher) TableStatusChanged(evt TableStatusEvent) {
	p.publish(p.prefix+".table.status_changed", evt)
}

func (p *NATSPublisher) publish(subject string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("failed to marshal event", "subject", subject, "error", err.Error())
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		slog.Warn("failed to publish event", "subject", subject, "error", err.Error())
	}
}

// NoopPublisher is used when NATS is disabled, and in tests.
type NoopPublisher struct{}

func (NoopPublisher) ReservationChanged(ReservationEvent) {}

func (NoopPublisher) TableStatusChanged(TableStatusEvent) {}
