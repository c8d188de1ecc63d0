package queries

import (
	"time"

	"github.com/google/uuid"
)

// HomestayView represents read-optimized homestay data
type HomestayView struct {
	ID           uuid.UUID `json:"id"`
	HostID       uuid.UUID `json:"hostId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	CheckInTime  string    `json:"checkInTime"`
	CheckOutTime string    `json:"checkOutTime"`
	MinPrice     int64     `json:"minPrice"`
	MaxPrice     int64     `json:"maxPrice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RoomView represents read-optimized room data
type RoomView struct {
	ID            uuid.UUID `json:"id"`
	HomestayID    uuid.UUID `json:"homestayId"`
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	PricePerNight int64     `json:"pricePerNight"`
	MaxGuests     int       `json:"maxGuests"`
	Status        string    `json:"status"`
	Available     bool      `json:"available"`
}

// RoomTypeView aggregates rooms of the same type for the room picker
type RoomTypeView struct {
	Type     string     `json:"type"`
	Count    int        `json:"count"`
	MinPrice int64      `json:"minPrice"`
	MaxPrice int64      `json:"maxPrice"`
	Rooms    []RoomView `json:"rooms"`
}

// BookingView represents read-optimized booking data
type BookingView struct {
	ID             uuid.UUID `json:"id"`
	HomestayID     uuid.UUID `json:"homestayId"`
	HomestayName   string    `json:"homestayName"`
	HostID         uuid.UUID `json:"hostId"`
	RoomID         uuid.UUID `json:"roomId"`
	RoomType       string    `json:"roomType"`
	UserID         uuid.UUID `json:"userId"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	Nights         int       `json:"nights"`
	NumberOfGuests int       `json:"numberOfGuests"`
	GuestName      string    `json:"guestName"`
	GuestEmail     string    `json:"guestEmail"`
	GuestPhone     string    `json:"guestPhone"`
	OriginalPrice  int64     `json:"originalPrice"`
	DiscountAmount int64     `json:"discountAmount"`
	TotalPrice     int64     `json:"totalPrice"`
	CouponCode     *string   `json:"couponCode,omitempty"`
	PaymentMethod  *string   `json:"paymentMethod,omitempty"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BookingListItem carries the subset of booking data the list screens need
type BookingListItem struct {
	ID             uuid.UUID `json:"id"`
	HomestayName   string    `json:"homestayName"`
	RoomType       string    `json:"roomType"`
	RoomName       string    `json:"roomName"`
	GuestName      string    `json:"guestName"`
	GuestEmail     string    `json:"guestEmail"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	NumberOfGuests int       `json:"numberOfGuests"`
	TotalPrice     int64     `json:"totalPrice"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CouponView represents read-optimized coupon data
type CouponView struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	DiscountType  string    `json:"discountType"`
	DiscountValue int64     `json:"discountValue"`
	MinOrder      *int64    `json:"minOrder,omitempty"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

// Page wraps a filtered list with its pagination metadata
type Page[T any] struct {
	Items   []T `json:"items"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
}
