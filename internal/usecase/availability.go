package usecase

import (
	"context"
	"sync/atomic"

	"homestay-booking/internal/domain/room"
	"homestay-booking/internal/domain/stay"
	"homestay-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrStaleAvailability    = errs.New("availability batch superseded")
	ErrAvailabilityCheck    = errs.New("availability check failed")
	ErrUnknownFailurePolicy = errs.New("unknown availability failure policy")
)

// FailurePolicy decides how a failed per-room availability check is treated.
type FailurePolicy string

const (
	// AssumeAvailable keeps the room selectable when its check fails.
	AssumeAvailable FailurePolicy = "assume_available"
	// AssumeUnavailable drops the room when its check fails.
	AssumeUnavailable FailurePolicy = "assume_unavailable"
	// PropagateFailure fails the whole batch on the first check error.
	PropagateFailure FailurePolicy = "propagate"
)

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case AssumeAvailable, AssumeUnavailable, PropagateFailure:
		return FailurePolicy(s), nil
	default:
		return "", errs.Mark(errs.New("failure policy "+s), ErrUnknownFailurePolicy)
	}
}

// AvailabilityChecker answers whether a single room is free for a stay range.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, roomID uuid.UUID, stayRange stay.Range) (bool, error)
}

type RoomAvailability struct {
	Room      room.Room
	Available bool
}

type AvailabilityFilter struct {
	checker       AvailabilityChecker
	policy        FailurePolicy
	maxConcurrent int
	generation    atomic.Int64
}

func NewAvailabilityFilter(checker AvailabilityChecker, policy FailurePolicy, maxConcurrent int) *AvailabilityFilter {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &AvailabilityFilter{
		checker:       checker,
		policy:        policy,
		maxConcurrent: maxConcurrent,
	}
}

// Filter checks every room against the stay range concurrently and returns
// per-room results in input order. Starting a new batch invalidates any batch
// still in flight: a superseded batch returns ErrStaleAvailability so callers
// never apply results for a range the user has already moved past.
//
// An incomplete range yields an empty result without running any checks:
// until both dates are picked there is nothing to offer.
func (f *AvailabilityFilter) Filter(ctx context.Context, rooms []room.Room, stayRange stay.Range) ([]RoomAvailability, error) {
	gen := f.generation.Add(1)

	if stayRange.IsZero() || len(rooms) == 0 {
		return nil, nil
	}

	results := make([]RoomAvailability, len(rooms))
	for i, rm := range rooms {
		results[i] = RoomAvailability{Room: rm, Available: true}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.maxConcurrent)

	for i, rm := range rooms {
		i, rm := i, rm
		g.Go(func() error {
			available, err := f.checker.IsAvailable(gctx, rm.ID, stayRange)
			if err != nil {
				switch f.policy {
				case AssumeUnavailable:
					results[i].Available = false
					return nil
				case PropagateFailure:
					return errs.Mark(err, ErrAvailabilityCheck)
				default: // AssumeAvailable
					return nil
				}
			}
			results[i].Available = available
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if f.generation.Load() != gen {
		return nil, ErrStaleAvailability
	}
	return results, nil
}

// Available returns only the rooms reported available, preserving order.
func Available(results []RoomAvailability) []room.Room {
	rooms := make([]room.Room, 0, len(results))
	for _, r := range results {
		if r.Available {
			rooms = append(rooms, r.Room)
		}
	}
	return rooms
}

// Selection tracks what the user has picked from the room list. Either field
// may be nil; a set field must stay consistent with the available rooms.
type Selection struct {
	RoomID   *uuid.UUID
	RoomType *string
}

// Narrow drops any selected room or room type that is no longer present in
// the available set. Clearing the type also clears the room, since a room
// pick is only meaningful within its type group.
func (s *Selection) Narrow(available []room.Room) {
	if s.RoomType != nil {
		found := false
		for _, rm := range available {
			if rm.Type == *s.RoomType {
				found = true
				break
			}
		}
		if !found {
			s.RoomType = nil
			s.RoomID = nil
			return
		}
	}

	if s.RoomID != nil {
		found := false
		for _, rm := range available {
			if rm.ID == *s.RoomID {
				found = true
				break
			}
		}
		if !found {
			s.RoomID = nil
		}
	}
}
