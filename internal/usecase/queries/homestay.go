package queries

import (
	"context"
	"time"

	"homestay-booking/internal/domain/room"
	"homestay-booking/internal/infra"
	"homestay-booking/internal/pkg/calendar"
	"homestay-booking/internal/pkg/clock"
	"homestay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHomestayNotFound = errs.New("homestay not found")
	ErrRoomNotFound     = errs.New("room not found")
	ErrInvalidMonth     = errs.New("invalid calendar month")
)

// MonthCalendarView is one rendered month of a room's booking calendar.
type MonthCalendarView struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Cells []calendar.Cell `json:"cells"`
}

type HomestayReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HomestayView, error)
	FindAll(ctx context.Context) ([]*HomestayView, error)
	FindRooms(ctx context.Context, homestayID uuid.UUID) ([]*RoomView, error)
	// BookedDates returns the stayed-on dates of active bookings for the
	// room, half-open over [from, to).
	BookedDates(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]time.Time, error)
}

type HomestayQueries interface {
	List(ctx context.Context, filter HomestayFilter, p Pagination) (Page[*HomestayView], error)
	GetByID(ctx context.Context, id uuid.UUID) (*HomestayView, error)
	ListRoomTypes(ctx context.Context, homestayID uuid.UUID) ([]*RoomTypeView, error)
	MonthCalendar(ctx context.Context, homestayID, roomID uuid.UUID, year, month int) (*MonthCalendarView, error)
}

type homestayQueriesImpl struct {
	readStore HomestayReadStore
	weekStart calendar.WeekStart
	clock     clock.Clock
}

func NewHomestayQueries(readStore HomestayReadStore, weekStart calendar.WeekStart, clock clock.Clock) HomestayQueries {
	return &homestayQueriesImpl{
		readStore: readStore,
		weekStart: weekStart,
		clock:     clock,
	}
}

func (q *homestayQueriesImpl) List(ctx context.Context, filter HomestayFilter, p Pagination) (Page[*HomestayView], error) {
	items, err := q.readStore.FindAll(ctx)
	if err != nil {
		return Page[*HomestayView]{}, errs.Wrap(err, "failed to list homestays")
	}
	return Paginate(filter.Apply(items), p), nil
}

func (q *homestayQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HomestayView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHomestayNotFound
		}
		return nil, errs.Wrap(err, "failed to find homestay")
	}
	return view, nil
}

// ListRoomTypes groups the homestay's rooms by type in first-seen order,
// with per-group counts and price ranges for the room-type picker.
func (q *homestayQueriesImpl) ListRoomTypes(ctx context.Context, homestayID uuid.UUID) ([]*RoomTypeView, error) {
	roomViews, err := q.readStore.FindRooms(ctx, homestayID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHomestayNotFound
		}
		return nil, errs.Wrap(err, "failed to list rooms")
	}

	rooms := make([]room.Room, len(roomViews))
	for i, rv := range roomViews {
		rooms[i] = room.Room{
			ID:            rv.ID,
			HomestayID:    rv.HomestayID,
			Type:          rv.Type,
			Name:          rv.Name,
			PricePerNight: rv.PricePerNight,
			MaxGuests:     rv.MaxGuests,
			Status:        room.Status(rv.Status),
		}
	}

	groups := room.GroupByType(rooms)
	views := make([]*RoomTypeView, len(groups))
	for i, g := range groups {
		view := &RoomTypeView{
			Type:     g.Type,
			Count:    g.Count,
			MinPrice: g.MinPrice,
			MaxPrice: g.MaxPrice,
		}
		for _, rv := range roomViews {
			if rv.Type == g.Type {
				view.Rooms = append(view.Rooms, *rv)
			}
		}
		views[i] = view
	}
	return views, nil
}

// MonthCalendar renders the 42-cell grid for one room and month, marking
// booked dates unavailable.
func (q *homestayQueriesImpl) MonthCalendar(ctx context.Context, homestayID, roomID uuid.UUID, year, month int) (*MonthCalendarView, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	if err := q.roomBelongsToHomestay(ctx, homestayID, roomID); err != nil {
		return nil, err
	}

	m := calendar.Month{Year: year, Month: time.Month(month)}

	// The grid shows tails of the adjacent months, so fetch one week of
	// slack on both sides.
	from := m.First().AddDate(0, 0, -7)
	to := m.First().AddDate(0, 1, 7)
	bookedDates, err := q.readStore.BookedDates(ctx, roomID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booked dates")
	}

	booked := make(map[time.Time]bool, len(bookedDates))
	for _, d := range bookedDates {
		booked[time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)] = true
	}

	cells := calendar.Grid(m, calendar.Options{
		WeekStart:   q.weekStart,
		Today:       q.clock.Now(),
		Unavailable: func(d time.Time) bool { return booked[d] },
	})

	return &MonthCalendarView{
		Year:  year,
		Month: month,
		Cells: cells,
	}, nil
}

func (q *homestayQueriesImpl) roomBelongsToHomestay(ctx context.Context, homestayID, roomID uuid.UUID) error {
	roomViews, err := q.readStore.FindRooms(ctx, homestayID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHomestayNotFound
		}
		return errs.Wrap(err, "failed to list rooms")
	}
	for _, rv := range roomViews {
		if rv.ID == roomID {
			return nil
		}
	}
	return ErrRoomNotFound
}
