package components

import (
	"homestay-booking/internal/domain/booking"
	"homestay-booking/internal/pkg/calendar"
	"homestay-booking/internal/pkg/clock"
	"homestay-booking/internal/pkg/config"
	"homestay-booking/internal/usecase"
	"homestay-booking/internal/usecase/commands"
	"homestay-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
	NewFailurePolicy,
	NewWeekStart,
	NewRoomSearch,
)

func NewFailurePolicy(cfg config.Config) (usecase.FailurePolicy, error) {
	return usecase.ParseFailurePolicy(cfg.Availability.OnError)
}

func NewWeekStart(cfg config.Config) (calendar.WeekStart, error) {
	return calendar.ParseWeekStart(cfg.Calendar.WeekStart)
}

func NewRoomSearch(
	rooms queries.HomestayReadStore,
	checker usecase.AvailabilityChecker,
	policy usecase.FailurePolicy,
	cfg config.Config,
) usecase.RoomSearch {
	return usecase.NewRoomSearch(rooms, checker, policy, cfg.Availability.MaxConcurrent)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewCouponCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewHomestayQueries,
		queries.NewCouponQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
