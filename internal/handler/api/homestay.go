package api

import (
	"net/http"

	"homestay-booking/internal/domain/stay"
	reqdto "homestay-booking/internal/handler/dto/request"
	resdto "homestay-booking/internal/handler/dto/response"
	"homestay-booking/internal/pkg/errs"
	"homestay-booking/internal/usecase"
	"homestay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HomestayHandler struct {
	homestayQueries queries.HomestayQueries
	roomSearch      usecase.RoomSearch
}

func NewHomestayHandler(homestayQueries queries.HomestayQueries, roomSearch usecase.RoomSearch) *HomestayHandler {
	return &HomestayHandler{
		homestayQueries: homestayQueries,
		roomSearch:      roomSearch,
	}
}

// @Summary List homestays
// @Description List homestays with optional city and text filters
// @Tags homestays
// @Produce json
// @Param city query string false "City filter"
// @Param q query string false "Search query"
// @Param page query int false "Page number"
// @Param perPage query int false "Items per page"
// @Success 200 {object} queries.Page[queries.HomestayView]
// @Router /homestays [get]
func (h *HomestayHandler) List(c *gin.Context) {
	var req reqdto.ListHomestaysQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	filter, pagination := req.ToFilter()
	page, err := h.homestayQueries.List(c.Request.Context(), filter, pagination)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary Get homestay detail
// @Description Get a homestay with its rooms grouped by type
// @Tags homestays
// @Produce json
// @Param id path string true "Homestay ID"
// @Success 200 {object} resdto.HomestayDetailResponse
// @Failure 404 {object} map[string]string
// @Router /homestays/{id} [get]
func (h *HomestayHandler) Get(c *gin.Context) {
	homestayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid homestay ID"})
		return
	}

	homestay, err := h.homestayQueries.GetByID(c.Request.Context(), homestayID)
	if err != nil {
		if errs.Is(err, queries.ErrHomestayNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Homestay not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	roomTypes, err := h.homestayQueries.ListRoomTypes(c.Request.Context(), homestayID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.HomestayDetailResponse{
		Homestay:  homestay,
		RoomTypes: roomTypes,
	})
}

// @Summary Check room availability
// @Description List room types with rooms available for the given date range
// @Tags homestays
// @Produce json
// @Param id path string true "Homestay ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /homestays/{id}/availability [get]
func (h *HomestayHandler) Availability(c *gin.Context) {
	homestayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid homestay ID"})
		return
	}

	var req reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkIn and checkOut are required"})
		return
	}

	stayRange, err := req.ToDomain()
	if err != nil {
		switch {
		case errs.Is(err, stay.ErrCheckOutNotAfterCheckIn):
			c.JSON(http.StatusBadRequest, gin.H{"error": "check-out must be after check-in"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		}
		return
	}

	roomTypes, err := h.roomSearch.AvailableRooms(c.Request.Context(), homestayID, stayRange)
	if err != nil {
		if errs.Is(err, usecase.ErrAvailabilityCheck) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Availability check failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		CheckIn:   stay.FormatDate(stayRange.CheckIn()),
		CheckOut:  stay.FormatDate(stayRange.CheckOut()),
		Nights:    stayRange.Nights(),
		RoomTypes: roomTypes,
	})
}

// @Summary Room month calendar
// @Description Render a month grid for a room with booked dates marked
// @Tags homestays
// @Produce json
// @Param id path string true "Homestay ID"
// @Param roomID path string true "Room ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} queries.MonthCalendarView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /homestays/{id}/rooms/{roomID}/calendar [get]
func (h *HomestayHandler) Calendar(c *gin.Context) {
	homestayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid homestay ID"})
		return
	}
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var req reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month are required"})
		return
	}

	view, err := h.homestayQueries.MonthCalendar(c.Request.Context(), homestayID, roomID, req.Year, req.Month)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidMonth):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid calendar month"})
		case errs.Is(err, queries.ErrHomestayNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Homestay not found"})
		case errs.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
