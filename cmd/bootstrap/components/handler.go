package components

import (
	"barberbook/internal/handler"
	"barberbook/internal/handler/api"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/session"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewShopHandler,
		api.NewQueueHandler,
		api.NewBookingHandler,
		func(s *session.Session) middleware.IdentityReader { return s },
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
