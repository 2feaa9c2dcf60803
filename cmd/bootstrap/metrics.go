package bootstrap

import (
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
	),
)
