//go:build unit

package room_test

import (
	"testing"

	"homestay-booking/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGroupByType(t *testing.T) {
	rooms := []room.Room{
		{ID: uuid.New(), Type: "double", Name: "Double 101", PricePerNight: 500000, Status: room.StatusAvailable},
		{ID: uuid.New(), Type: "dorm", Name: "Dorm A", PricePerNight: 150000, Status: room.StatusAvailable},
		{ID: uuid.New(), Type: "double", Name: "Double 102", PricePerNight: 650000, Status: room.StatusAvailable},
		{ID: uuid.New(), Type: "double", Name: "Double 103", PricePerNight: 450000, Status: room.StatusUnavailable},
	}

	groups := room.GroupByType(rooms)

	assert.Equal(t, []room.TypeGroup{
		{Type: "double", Count: 3, MinPrice: 450000, MaxPrice: 650000},
		{Type: "dorm", Count: 1, MinPrice: 150000, MaxPrice: 150000},
	}, groups)
}

func TestGroupByTypeEmpty(t *testing.T) {
	assert.Empty(t, room.GroupByType(nil))
}
