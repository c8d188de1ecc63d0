package queries

import (
	"context"

	"homestay-booking/internal/domain/user"
	"homestay-booking/internal/infra"
	"homestay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	ListForHost(ctx context.Context, hostID uuid.UUID, filter BookingFilter, p Pagination) (Page[*BookingListItem], error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if !canSeeBooking(actorID, role, view) {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return items, nil
}

// ListForHost pulls every booking across the host's homestays, then filters
// and paginates in memory. Host booking volumes are small enough that the
// simpler shared filter path beats per-filter SQL.
func (q *bookingQueriesImpl) ListForHost(ctx context.Context, hostID uuid.UUID, filter BookingFilter, p Pagination) (Page[*BookingListItem], error) {
	items, err := q.readStore.FindByHostID(ctx, hostID)
	if err != nil {
		return Page[*BookingListItem]{}, errs.Wrap(err, "failed to list host bookings")
	}
	return Paginate(filter.Apply(items), p), nil
}

func canSeeBooking(actorID uuid.UUID, role user.Role, view *BookingView) bool {
	switch role {
	case user.RoleAdmin:
		return true
	case user.RoleHost:
		return view.HostID == actorID || view.UserID == actorID
	default:
		return view.UserID == actorID
	}
}
