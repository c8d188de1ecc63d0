package components

import (
	"homestay-booking/internal/infra/availability"
	"homestay-booking/internal/infra/readstore"
	"homestay-booking/internal/infra/writerepo"
	"homestay-booking/internal/usecase"
	"homestay-booking/internal/usecase/commands"
	"homestay-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read side
		fx.Annotate(
			readstore.NewHomestayReadStore,
			fx.As(new(queries.HomestayReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		readstore.NewCouponReadStore,
		func(s *readstore.CouponReadStore) queries.CouponReadStore { return s },
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),

		// Write side snapshots
		fx.Annotate(
			readstore.NewRoomSnapshotStore,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			readstore.NewCouponSnapshotStore,
			fx.As(new(commands.CouponRepository)),
		),
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingWriteRepo)),
		),

		// Availability
		fx.Annotate(
			availability.NewChecker,
			fx.As(new(usecase.AvailabilityChecker)),
		),
	),
)
