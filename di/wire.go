//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/otel"
	hotelHandler "hotel/internal/handlers/hotel"
	"hotel/transport/console"
	"hotel/transport/console/router"

	hotelRepository "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.NewRoom,
	hotelRepository.NewReservation,
	hotelService.New,
)

var domains = wire.NewSet(
	hotelDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	router.New,
)

func InitializeConsole() *console.Console {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		routing,
		console.New,
	)

	return &console.Console{}
}
