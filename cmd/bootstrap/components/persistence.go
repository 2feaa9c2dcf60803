package components

import (
	"github.com/Sannikov1993/PosResto-sub020/internal/infra/readstore"
	"github.com/Sannikov1993/PosResto-sub020/internal/infra/uow"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Write side: one unit of work, repositories bound per transaction
		uow.NewPostgresUoW,
		// Read side: queries straight off the pool
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationQueries)),
		),
	),
)
