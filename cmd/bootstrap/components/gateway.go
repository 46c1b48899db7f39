package components

import (
	"barberbook/internal/gateway/bookingapi"
	"barberbook/internal/gateway/geoapi"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewBookingAPIClient,
			fx.As(new(commands.AuthGateway)),
			fx.As(new(commands.QueueGateway)),
			fx.As(new(commands.BookingGateway)),
			fx.As(new(commands.SlotGateway)),
			fx.As(new(queries.SlotReader)),
		),
		fx.Annotate(
			NewGeoClient,
			fx.As(new(queries.GeoGateway)),
		),
	),
)

func NewBookingAPIClient(cfg config.Config) *bookingapi.Client {
	return bookingapi.NewClient(cfg.API, cfg.Queue)
}

func NewGeoClient(cfg config.Config) *geoapi.Client {
	return geoapi.NewClient(cfg.Geo)
}
