// Package room models the bookable rooms of a homestay and the room-type
// grouping used by the two-step "pick type, then pick room" flow.
package room

import (
	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

func (s Status) IsValid() bool {
	return s == StatusAvailable || s == StatusUnavailable
}

// Room carries the listing-level facts. Whether the room is free for a
// concrete date range is never stored here; that is resolved per query.
type Room struct {
	ID            uuid.UUID
	HomestayID    uuid.UUID
	Type          string
	Name          string
	PricePerNight int64
	MaxGuests     int
	Status        Status
}

// TypeGroup is derived per render, never persisted.
type TypeGroup struct {
	Type     string
	Count    int
	MinPrice int64
	MaxPrice int64
}

// GroupByType reduces rooms into one group per type, in first-seen order.
func GroupByType(rooms []Room) []TypeGroup {
	index := make(map[string]int, len(rooms))
	groups := make([]TypeGroup, 0, len(rooms))

	for _, r := range rooms {
		i, ok := index[r.Type]
		if !ok {
			index[r.Type] = len(groups)
			groups = append(groups, TypeGroup{
				Type:     r.Type,
				Count:    1,
				MinPrice: r.PricePerNight,
				MaxPrice: r.PricePerNight,
			})
			continue
		}
		groups[i].Count++
		if r.PricePerNight < groups[i].MinPrice {
			groups[i].MinPrice = r.PricePerNight
		}
		if r.PricePerNight > groups[i].MaxPrice {
			groups[i].MaxPrice = r.PricePerNight
		}
	}
	return groups
}
