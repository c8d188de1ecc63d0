package response

import "homestay-booking/internal/usecase/queries"

type HomestayDetailResponse struct {
	Homestay  *queries.HomestayView   `json:"homestay"`
	RoomTypes []*queries.RoomTypeView `json:"roomTypes"`
}

// AvailabilityResponse echoes the queried range so clients can discard
// responses for a range they have already moved past.
type AvailabilityResponse struct {
	CheckIn   string                  `json:"checkIn"`
	CheckOut  string                  `json:"checkOut"`
	Nights    int                     `json:"nights"`
	RoomTypes []*queries.RoomTypeView `json:"roomTypes"`
}
