package components

import (
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/config"
	"barberbook/internal/session"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(s *session.Session) commands.SessionState { return s },
	func(s *session.Session) commands.SessionGate { return s },
	func(s *session.Session) queries.IdentityReader { return s },
	func(s *session.Session) queries.TokenReader { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewQueueCommands,
		commands.NewBookingCommands,
		NewQueueReconciler,
		func(r *commands.QueueReconciler) commands.Reconciler { return r },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewShopQueries,
		queries.NewQueueQueries,
		queries.NewBookingQueries,
	),
)

// The reconciler's refresh runs detached from the booking request, so it
// carries the same deadline the gateway calls do.
func NewQueueReconciler(queueCommands commands.QueueCommands, cfg config.Config) *commands.QueueReconciler {
	return commands.NewQueueReconciler(queueCommands, cfg.API.Timeout)
}
