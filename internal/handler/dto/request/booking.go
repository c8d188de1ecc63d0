package request

import (
	"homestay-booking/internal/domain/booking"
	"homestay-booking/internal/domain/stay"
	"homestay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID         uuid.UUID `json:"roomId" binding:"required"`
	CheckIn        string    `json:"checkIn" binding:"required"`
	CheckOut       string    `json:"checkOut" binding:"required"`
	NumberOfGuests int       `json:"numberOfGuests" binding:"required,min=1"`
	GuestName      string    `json:"guestName" binding:"required"`
	GuestEmail     string    `json:"guestEmail" binding:"required,email"`
	GuestPhone     string    `json:"guestPhone" binding:"required"`
	CouponCode     *string   `json:"couponCode,omitempty"`
	PaymentMethod  *string   `json:"paymentMethod,omitempty"`
}

type BookingDomainData struct {
	Stay      stay.Range
	GuestInfo booking.GuestInfo
}

func (r *CreateBookingRequest) ToDomain() (BookingDomainData, error) {
	stayRange, err := stay.ParseRange(r.CheckIn, r.CheckOut)
	if err != nil {
		return BookingDomainData{}, err
	}
	guestInfo, err := booking.NewGuestInfo(r.GuestName, r.GuestEmail, r.GuestPhone)
	if err != nil {
		return BookingDomainData{}, err
	}
	return BookingDomainData{Stay: stayRange, GuestInfo: guestInfo}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListBookingsQuery carries the host booking list filters from the query
// string. Empty fields mean "no restriction".
type ListBookingsQuery struct {
	Status    string `form:"status"`
	RoomType  string `form:"roomType"`
	CreatedOn string `form:"createdOn"`
	Query     string `form:"q"`
	Page      int    `form:"page"`
	PerPage   int    `form:"perPage"`
}

func (r *ListBookingsQuery) ToFilter() (queries.BookingFilter, queries.Pagination, error) {
	var filter queries.BookingFilter
	if r.Status != "" {
		filter.Status = &r.Status
	}
	if r.RoomType != "" {
		filter.RoomType = &r.RoomType
	}
	if r.CreatedOn != "" {
		createdOn, err := stay.ParseDate(r.CreatedOn)
		if err != nil {
			return queries.BookingFilter{}, queries.Pagination{}, err
		}
		filter.CreatedOn = &createdOn
	}
	if r.Query != "" {
		filter.Query = &r.Query
	}
	return filter, queries.Pagination{Page: r.Page, PerPage: r.PerPage}, nil
}
