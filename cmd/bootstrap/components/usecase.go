package components

import (
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/clock"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		commands.NewReservationLifecycle,
		commands.NewReservationIntake,
		commands.NewDepositCommands,
	),
)
