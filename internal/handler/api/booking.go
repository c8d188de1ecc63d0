package api

import (
	"net/http"

	"homestay-booking/internal/domain/booking"
	"homestay-booking/internal/domain/stay"
	reqdto "homestay-booking/internal/handler/dto/request"
	"homestay-booking/internal/handler/middleware"
	"homestay-booking/internal/pkg/errs"
	"homestay-booking/internal/usecase/commands"
	"homestay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a room for a date range
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *BookingHandler) respondCreateError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, stay.ErrCheckOutNotAfterCheckIn):
		c.JSON(http.StatusBadRequest, gin.H{"error": "check-out must be after check-in"})
	case errs.Is(err, stay.ErrCheckInPast):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-in cannot be in the past"})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data"})
	case errs.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	case errs.Is(err, commands.ErrCouponNotFound), errs.Is(err, commands.ErrInvalidCoupon):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon code"})
	case errs.Is(err, commands.ErrRoomUnavailable), errs.Is(err, commands.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Room is not available for the selected dates"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// @Summary Get booking
// @Description Get a booking the caller is allowed to see
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, role, bookingID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errs.Is(err, queries.ErrBookingAccess):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List own bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BookingListItem
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary List host bookings
// @Description List bookings across the host's homestays with filters
// @Tags host
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param roomType query string false "Room type filter"
// @Param createdOn query string false "Created-on date (YYYY-MM-DD)"
// @Param q query string false "Search query"
// @Param page query int false "Page number"
// @Param perPage query int false "Items per page"
// @Success 200 {object} queries.Page[queries.BookingListItem]
// @Failure 400 {object} map[string]string
// @Router /host/bookings [get]
func (h *BookingHandler) ListForHost(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	filter, pagination, err := req.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid createdOn date, expected YYYY-MM-DD"})
		return
	}

	page, err := h.bookingQueries.ListForHost(c.Request.Context(), userID, filter, pagination)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary Update booking status
// @Description Move a booking along its status machine
// @Tags host
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /host/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), userID, role, bookingID, req.Status)
	if err != nil {
		h.respondStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Cancel booking
// @Description Cancel the caller's own booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), userID, role, bookingID, booking.StatusCancelled.String())
	if err != nil {
		h.respondStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) respondStatusError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown booking status"})
	case errs.Is(err, commands.ErrInvalidStatusTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
	case errs.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errs.Is(err, commands.ErrBookingAccess):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
