package commands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type RoomSnapshot struct {
	ID            uuid.UUID
	HomestayID    uuid.UUID
	HostID        uuid.UUID
	Type          string
	Name          string
	PricePerNight int64
	MaxGuests     int
	Status        string
}

type CouponSnapshot struct {
	ID            uuid.UUID
	Code          string
	Name          string
	DiscountType  string
	DiscountValue int64
	MinOrder      *int64
	StartsAt      time.Time
	EndsAt        time.Time
}
