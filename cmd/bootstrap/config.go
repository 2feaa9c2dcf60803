package bootstrap

import (
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
