package commands

import (
	"context"
	"errors"
	"log/slog"

	"homestay-booking/internal/domain/booking"
	"homestay-booking/internal/domain/coupon"
	"homestay-booking/internal/domain/user"
	reqdto "homestay-booking/internal/handler/dto/request"
	"homestay-booking/internal/infra"
	"homestay-booking/internal/pkg/clock"
	"homestay-booking/internal/pkg/errs"
	"homestay-booking/internal/usecase"
	"homestay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrRoomUnavailable         = errs.New("room not available for the selected dates")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrBookingAccess           = errs.New("booking access denied")
	ErrCouponNotFound          = errs.New("coupon not found")
	ErrInvalidCoupon           = errs.New("invalid coupon")
	ErrInvalidStatus           = errs.New("invalid booking status")
	ErrInvalidStatusTransition = errs.New("invalid booking status transition")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingWriteRepo interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error
	// FindForUpdate locks the booking row and returns it with the owning
	// homestay's host ID for authorization.
	FindForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, b *booking.Booking) error
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, role user.Role, bookingID uuid.UUID, next string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	writeRepo      BookingWriteRepo
	roomRepo       RoomRepository
	couponRepo     CouponRepository
	checker        usecase.AvailabilityChecker
	bookingFactory *booking.Factory
	readStore      queries.BookingReadStore
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewBookingCommands(
	writeRepo BookingWriteRepo,
	roomRepo RoomRepository,
	couponRepo CouponRepository,
	checker usecase.AvailabilityChecker,
	bookingFactory *booking.Factory,
	readStore queries.BookingReadStore,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		writeRepo:      writeRepo,
		roomRepo:       roomRepo,
		couponRepo:     couponRepo,
		checker:        checker,
		bookingFactory: bookingFactory,
		readStore:      readStore,
		db:             db,
		clock:          clock,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	domainData, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	roomSnapshot, err := c.findBookableRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	// Pre-insert availability check for a fast rejection; the exclusion
	// constraint on the bookings table remains the real guard.
	available, err := c.checker.IsAvailable(ctx, roomSnapshot.ID, domainData.Stay)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !available {
		return nil, ErrRoomUnavailable
	}

	couponEntity, err := c.validateAndGetCoupon(ctx, req.CouponCode)
	if err != nil {
		return nil, err
	}

	bookingEntity, err := c.bookingFactory.CreateBooking(
		booking.RoomSpec{
			ID:            roomSnapshot.ID,
			HomestayID:    roomSnapshot.HomestayID,
			Type:          roomSnapshot.Type,
			PricePerNight: roomSnapshot.PricePerNight,
			MaxGuests:     roomSnapshot.MaxGuests,
		},
		userID,
		domainData.Stay,
		req.NumberOfGuests,
		domainData.GuestInfo,
		req.PaymentMethod,
		couponEntity,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return c.executeBookingTransaction(ctx, bookingEntity)
}

func (c *bookingCommandsImpl) executeBookingTransaction(
	ctx context.Context,
	bookingEntity *booking.Booking,
) (*queries.BookingView, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.writeRepo.Create(ctx, tx, bookingEntity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the full view from the read store
	view, err := c.readStore.FindByID(ctx, bookingEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) UpdateStatus(
	ctx context.Context,
	actorID uuid.UUID,
	role user.Role,
	bookingID uuid.UUID,
	next string,
) (*queries.BookingView, error) {
	nextStatus := booking.Status(next)
	if !nextStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	bookingEntity, hostID, err := c.writeRepo.FindForUpdate(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !canChangeStatus(actorID, role, bookingEntity, hostID, nextStatus) {
		return nil, ErrBookingAccess
	}

	if err := bookingEntity.TransitionTo(nextStatus, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidStatusTransition)
	}

	if err := c.writeRepo.UpdateStatus(ctx, tx, bookingEntity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	view, err := c.readStore.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// canChangeStatus: admins manage any booking, hosts manage bookings on their
// homestays, guests may only cancel their own.
func canChangeStatus(actorID uuid.UUID, role user.Role, b *booking.Booking, hostID uuid.UUID, next booking.Status) bool {
	switch role {
	case user.RoleAdmin:
		return true
	case user.RoleHost:
		if hostID == actorID {
			return true
		}
	}
	return b.UserID() == actorID && next == booking.StatusCancelled
}

func (c *bookingCommandsImpl) findBookableRoom(ctx context.Context, roomID uuid.UUID) (*RoomSnapshot, error) {
	roomSnapshot, err := c.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if roomSnapshot.Status != "available" {
		return nil, ErrRoomUnavailable
	}
	return roomSnapshot, nil
}

func (c *bookingCommandsImpl) validateAndGetCoupon(
	ctx context.Context,
	couponCode *string,
) (*coupon.Coupon, error) {
	if couponCode == nil || *couponCode == "" {
		return nil, nil
	}

	couponSnapshot, err := c.couponRepo.FindByCode(ctx, *couponCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	couponEntity, err := coupon.NewCoupon(
		couponSnapshot.ID,
		couponSnapshot.Code,
		couponSnapshot.Name,
		coupon.DiscountType(couponSnapshot.DiscountType),
		couponSnapshot.DiscountValue,
		couponSnapshot.MinOrder,
		couponSnapshot.StartsAt,
		couponSnapshot.EndsAt,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCoupon)
	}
	return couponEntity, nil
}
