package request

import (
	"homestay-booking/internal/domain/stay"
	"homestay-booking/internal/usecase/queries"
)

type ListHomestaysQuery struct {
	City    string `form:"city"`
	Query   string `form:"q"`
	Page    int    `form:"page"`
	PerPage int    `form:"perPage"`
}

func (r *ListHomestaysQuery) ToFilter() (queries.HomestayFilter, queries.Pagination) {
	var filter queries.HomestayFilter
	if r.City != "" {
		filter.City = &r.City
	}
	if r.Query != "" {
		filter.Query = &r.Query
	}
	return filter, queries.Pagination{Page: r.Page, PerPage: r.PerPage}
}

type AvailabilityQuery struct {
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
}

func (r *AvailabilityQuery) ToDomain() (stay.Range, error) {
	return stay.ParseRange(r.CheckIn, r.CheckOut)
}

type CalendarQuery struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required"`
}
