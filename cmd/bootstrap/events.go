package bootstrap

import (
	"context"

	"github.com/Sannikov1993/PosResto-sub020/internal/infra/events"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (events.Publisher, error) {
	publisher, cleanup, err := events.NewPublisher(cfg.NATS)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
