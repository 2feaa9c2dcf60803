package components

import (
	"github.com/Sannikov1993/PosResto-sub020/internal/handler"
	"github.com/Sannikov1993/PosResto-sub020/internal/handler/api"
	"github.com/Sannikov1993/PosResto-sub020/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
