package bootstrap

import (
	"barberbook/internal/state"

	"go.uber.org/fx"
)

var StateModule = fx.Module("state",
	fx.Provide(
		state.NewQueueCache,
		state.NewBookingHistory,
	),
)
