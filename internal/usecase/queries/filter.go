package queries

import (
	"strings"
	"time"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// BookingFilter narrows a booking list. All set fields must match (AND).
type BookingFilter struct {
	Status    *string
	RoomType  *string
	CreatedOn *time.Time
	Query     *string
}

func (f BookingFilter) Matches(item *BookingListItem) bool {
	if f.Status != nil && item.Status != *f.Status {
		return false
	}
	if f.RoomType != nil && item.RoomType != *f.RoomType {
		return false
	}
	if f.CreatedOn != nil {
		y1, m1, d1 := item.CreatedAt.Date()
		y2, m2, d2 := f.CreatedOn.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			return false
		}
	}
	if f.Query != nil {
		q := strings.ToLower(strings.TrimSpace(*f.Query))
		if q != "" && !containsFold(q,
			item.HomestayName, item.RoomName, item.RoomType,
			item.GuestName, item.GuestEmail,
		) {
			return false
		}
	}
	return true
}

func (f BookingFilter) Apply(items []*BookingListItem) []*BookingListItem {
	filtered := make([]*BookingListItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// HomestayFilter narrows the homestay list. All set fields must match (AND).
type HomestayFilter struct {
	City  *string
	Query *string
}

func (f HomestayFilter) Matches(item *HomestayView) bool {
	if f.City != nil && !strings.EqualFold(item.City, *f.City) {
		return false
	}
	if f.Query != nil {
		q := strings.ToLower(strings.TrimSpace(*f.Query))
		if q != "" && !containsFold(q, item.Name, item.Description, item.Address) {
			return false
		}
	}
	return true
}

func (f HomestayFilter) Apply(items []*HomestayView) []*HomestayView {
	filtered := make([]*HomestayView, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// containsFold reports whether any field contains the lowercased query.
func containsFold(lowerQuery string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}

type Pagination struct {
	Page    int
	PerPage int
}

func (p Pagination) normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Paginate slices the filtered items into the requested page. A page past the
// end yields an empty item list with the total unchanged.
func Paginate[T any](items []T, p Pagination) Page[T] {
	p = p.normalize()

	start := (p.Page - 1) * p.PerPage
	end := start + p.PerPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:   items[start:end],
		Total:   len(items),
		Page:    p.Page,
		PerPage: p.PerPage,
	}
}
