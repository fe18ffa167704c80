//go:build wireinject
// +build wireinject

package di

import (
	"airwave/config"
	"airwave/infras/jwt"
	"airwave/infras/kafka"
	"airwave/infras/otel"
	"airwave/infras/postgres"
	"airwave/infras/redis"
	"airwave/infras/s3"
	"airwave/permissions"
	"airwave/shared/cache"
	"airwave/shared/metrics"
	"airwave/shared/timezone"
	"airwave/transport/http"
	"airwave/transport/http/middleware"
	"airwave/transport/http/router"
	"airwave/transport/worker"

	authService "airwave/internal/domains/auth/service"
	"airwave/internal/domains/booking/event"
	bookingRepository "airwave/internal/domains/booking/repository"
	bookingService "airwave/internal/domains/booking/service"
	chatRepository "airwave/internal/domains/chat/repository"
	chatService "airwave/internal/domains/chat/service"
	"airwave/internal/domains/listener"
	"airwave/internal/domains/player"
	stationRepository "airwave/internal/domains/station/repository"
	stationService "airwave/internal/domains/station/service"
	trackRepository "airwave/internal/domains/track/repository"
	trackService "airwave/internal/domains/track/service"
	userRepository "airwave/internal/domains/user/repository"
	userService "airwave/internal/domains/user/service"

	authHandler "airwave/internal/handlers/auth"
	bookingHandler "airwave/internal/handlers/booking"
	chatHandler "airwave/internal/handlers/chat"
	playerHandler "airwave/internal/handlers/player"
	stationHandler "airwave/internal/handlers/station"
	trackHandler "airwave/internal/handlers/track"
	userHandler "airwave/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	metrics.NewRegistry,
	metrics.Provide,
	wire.InterfaceValue(new(timezone.Clock), timezone.SystemClock{}),
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var stationDomain = wire.NewSet(
	stationRepository.New,
	stationService.New,
	listener.NewStore,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	event.NewPublisher,
	bookingService.New,
)

var trackDomain = wire.NewSet(
	trackRepository.New,
	trackService.New,
)

var chatDomain = wire.NewSet(
	chatRepository.New,
	chatService.New,
)

var playerDomain = wire.NewSet(
	providePlayerStore,
	player.NewLogNotifier,
	player.NewService,
	wire.Bind(new(player.Stations), new(stationService.Station)),
	wire.Bind(new(player.Tracks), new(trackService.Track)),
)

var domains = wire.NewSet(
	userDomain,
	stationDomain,
	bookingDomain,
	trackDomain,
	chatDomain,
	playerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	stationHandler.New,
	bookingHandler.New,
	trackHandler.New,
	chatHandler.New,
	playerHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *worker.Worker {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		stationDomain,
		listener.NewSimulator,
		wire.Bind(new(listener.Stations), new(stationService.Station)),
		worker.New,
	)

	return &worker.Worker{}
}

func InitializeStationSeeder() stationService.Station {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		stationDomain,
	)

	return nil
}
