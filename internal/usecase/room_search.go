package usecase

import (
	"context"

	"homestay-booking/internal/domain/room"
	"homestay-booking/internal/domain/stay"
	"homestay-booking/internal/pkg/errs"
	"homestay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// RoomSearch resolves which of a homestay's rooms can host a stay and
// regroups them by type for the picker.
type RoomSearch interface {
	AvailableRooms(ctx context.Context, homestayID uuid.UUID, stayRange stay.Range) ([]*queries.RoomTypeView, error)
}

type roomSearchImpl struct {
	rooms         queries.HomestayReadStore
	checker       AvailabilityChecker
	policy        FailurePolicy
	maxConcurrent int
}

func NewRoomSearch(rooms queries.HomestayReadStore, checker AvailabilityChecker, policy FailurePolicy, maxConcurrent int) RoomSearch {
	return &roomSearchImpl{
		rooms:         rooms,
		checker:       checker,
		policy:        policy,
		maxConcurrent: maxConcurrent,
	}
}

// AvailableRooms runs one availability batch per call: each request is its
// own batch, so the stale-batch guard only bites when a caller shares a
// filter across overlapping interactive refreshes.
func (s *roomSearchImpl) AvailableRooms(ctx context.Context, homestayID uuid.UUID, stayRange stay.Range) ([]*queries.RoomTypeView, error) {
	roomViews, err := s.rooms.FindRooms(ctx, homestayID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}

	// Rooms delisted by the host never reach the availability check.
	rooms := make([]room.Room, 0, len(roomViews))
	for _, rv := range roomViews {
		if room.Status(rv.Status) != room.StatusAvailable {
			continue
		}
		rooms = append(rooms, room.Room{
			ID:            rv.ID,
			HomestayID:    rv.HomestayID,
			Type:          rv.Type,
			Name:          rv.Name,
			PricePerNight: rv.PricePerNight,
			MaxGuests:     rv.MaxGuests,
			Status:        room.Status(rv.Status),
		})
	}

	filter := NewAvailabilityFilter(s.checker, s.policy, s.maxConcurrent)
	results, err := filter.Filter(ctx, rooms, stayRange)
	if err != nil {
		return nil, err
	}

	availableByID := make(map[uuid.UUID]bool, len(results))
	for _, r := range results {
		availableByID[r.Room.ID] = r.Available
	}

	// Type groups reflect only the rooms that can host the stay; a type with
	// nothing free drops out of the picker entirely.
	available := Available(results)
	groups := room.GroupByType(available)

	views := make([]*queries.RoomTypeView, len(groups))
	for i, g := range groups {
		view := &queries.RoomTypeView{
			Type:     g.Type,
			Count:    g.Count,
			MinPrice: g.MinPrice,
			MaxPrice: g.MaxPrice,
		}
		for _, rv := range roomViews {
			if rv.Type != g.Type {
				continue
			}
			roomView := *rv
			roomView.Available = availableByID[rv.ID]
			if roomView.Available {
				view.Rooms = append(view.Rooms, roomView)
			}
		}
		views[i] = view
	}
	return views, nil
}
