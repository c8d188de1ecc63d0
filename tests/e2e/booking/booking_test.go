//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"homestay-booking/internal/domain/user"
	reqdto "homestay-booking/internal/handler/dto/request"
	"homestay-booking/internal/usecase/queries"
	"homestay-booking/tests/common/authtest"
	"homestay-booking/tests/common/builder"
	"homestay-booking/tests/common/dbtest"
	"homestay-booking/tests/common/httptest"
	"homestay-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	hostBookingsURL = "/api/host/bookings"

	nightlyPrice = int64(500_000)
)

type bookingSuite struct {
	e2e.SharedSuite

	hostID     uuid.UUID
	guestID    uuid.UUID
	homestayID uuid.UUID
	roomID     uuid.UUID
	secondRoom uuid.UUID

	guestToken string
	hostToken  string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.hostID = dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleHost))
	s.guestID = dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))
	s.homestayID = dbtest.CreateTestHomestay(t, s.DB, s.hostID, "Riverside Homestay", "Hoi An")
	s.roomID = dbtest.CreateTestRoom(t, s.DB, s.homestayID, "double", "Double 101", nightlyPrice)
	s.secondRoom = dbtest.CreateTestRoom(t, s.DB, s.homestayID, "family", "Family 201", 2*nightlyPrice)

	s.guestToken = authtest.LoginUser(t, s.Router, "guest@example.com", dbtest.TestPassword)
	s.hostToken = authtest.LoginUser(t, s.Router, "host@example.com", dbtest.TestPassword)
}

func (s *bookingSuite) createBooking(t *testing.T, token string, req reqdto.CreateBookingRequest) queries.BookingView {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view queries.BookingView
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
	return view
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("three night stay is priced per night", func() {
		t := s.T()

		checkIn, checkOut := builder.FutureDate(30), builder.FutureDate(33)
		req := builder.NewBookingBuilder().
			WithRoom(s.roomID).
			WithStay(checkIn, checkOut).
			BuildCreateRequestDTO()

		got := s.createBooking(t, s.guestToken, req)

		want := queries.BookingView{
			HomestayID:     s.homestayID,
			HomestayName:   "Riverside Homestay",
			HostID:         s.hostID,
			RoomID:         s.roomID,
			RoomType:       "double",
			UserID:         s.guestID,
			CheckIn:        checkIn,
			CheckOut:       checkOut,
			Nights:         3,
			NumberOfGuests: req.NumberOfGuests,
			GuestName:      req.GuestName,
			GuestEmail:     req.GuestEmail,
			GuestPhone:     req.GuestPhone,
			OriginalPrice:  3 * nightlyPrice,
			DiscountAmount: 0,
			TotalPrice:     3 * nightlyPrice,
			Status:         "pending",
			PaymentStatus:  "unpaid",
		}
		if diff := cmp.Diff(want, got,
			cmpopts.IgnoreFields(queries.BookingView{}, "ID", "CreatedAt", "UpdatedAt")); diff != "" {
			t.Errorf("booking view mismatch (-want +got):\n%s", diff)
		}
		require.NotEqual(t, uuid.Nil, got.ID)
	})

	s.Run("percent coupon reduces the total", func() {
		t := s.T()

		dbtest.CreateTestCoupon(t, s.DB, "SUMMER10", "percent", 10, nil)

		req := builder.NewBookingBuilder().
			WithRoom(s.roomID).
			WithStay(builder.FutureDate(30), builder.FutureDate(32)).
			WithCoupon("SUMMER10").
			BuildCreateRequestDTO()

		got := s.createBooking(t, s.guestToken, req)

		original := 2 * nightlyPrice
		discount := original * 10 / 100
		require.Equal(t, original, got.OriginalPrice)
		require.Equal(t, discount, got.DiscountAmount)
		require.Equal(t, original-discount, got.TotalPrice)
		require.NotNil(t, got.CouponCode)
		require.Equal(t, "SUMMER10", *got.CouponCode)
	})

	s.Run("coupon below minimum order is rejected", func() {
		t := s.T()

		minOrder := 10 * nightlyPrice
		dbtest.CreateTestCoupon(t, s.DB, "BIGSPEND", "flat", 100_000, &minOrder)

		req := builder.NewBookingBuilder().
			WithRoom(s.roomID).
			WithStay(builder.FutureDate(30), builder.FutureDate(32)).
			WithCoupon("BIGSPEND").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.guestToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("check-out before check-in is rejected", func() {
		t := s.T()

		req := builder.NewBookingBuilder().
			WithRoom(s.roomID).
			WithStay(builder.FutureDate(33), builder.FutureDate(30)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.guestToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("past check-in is rejected", func() {
		t := s.T()

		yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
		tomorrow := time.Now().AddDate(0, 0, 1).Format(time.DateOnly)
		req := builder.NewBookingBuilder().
			WithRoom(s.roomID).
			WithStay(yesterday, tomorrow).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.guestToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("unknown room returns 404", func() {
		t := s.T()

		req := builder.NewBookingBuilder().
			WithRoom(uuid.New()).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.guestToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("overlapping stay on the same room conflicts", func() {
		t := s.T()

		first := builder.NewBookingBuilder().
			WithRoom(s.roomID).
			WithStay(builder.FutureDate(30), builder.FutureDate(34)).
			BuildCreateRequestDTO()
		s.createBooking(t, s.guestToken, first)

		overlapping := builder.NewBookingBuilder().
			WithRoom(s.roomID).
			WithStay(builder.FutureDate(32), builder.FutureDate(36)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, overlapping, s.guestToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// A different room is unaffected
		otherRoom := builder.NewBookingBuilder().
			WithRoom(s.secondRoom).
			WithStay(builder.FutureDate(32), builder.FutureDate(36)).
			BuildCreateRequestDTO()
		s.createBooking(t, s.guestToken, otherRoom)
	})

	s.Run("back to back stays share the turnover day", func() {
		t := s.T()

		first := builder.NewBookingBuilder().
			WithRoom(s.roomID).
			WithStay(builder.FutureDate(30), builder.FutureDate(33)).
			BuildCreateRequestDTO()
		s.createBooking(t, s.guestToken, first)

		// Check-in on the previous guest's check-out day must succeed
		second := builder.NewBookingBuilder().
			WithRoom(s.roomID).
			WithStay(builder.FutureDate(33), builder.FutureDate(35)).
			BuildCreateRequestDTO()
		s.createBooking(t, s.guestToken, second)
	})
}

func (s *bookingSuite) TestGetBooking() {
	s.Run("owner, host and admin can see the booking", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).BuildCreateRequestDTO())
		url := fmt.Sprintf("%s/%s", bookingsURL, view.ID)

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		for name, token := range map[string]string{
			"owner": s.guestToken,
			"host":  s.hostToken,
			"admin": adminToken,
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
			require.Equal(t, http.StatusOK, w.Code, "%s should see the booking: %s", name, w.Body.String())
		}
	})

	s.Run("unrelated guest is denied", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).BuildCreateRequestDTO())

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleGuest))

		url := fmt.Sprintf("%s/%s", bookingsURL, view.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("unknown booking returns 404", func() {
		t := s.T()

		url := fmt.Sprintf("%s/%s", bookingsURL, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.guestToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestListOwnBookings() {
	s.Run("only the caller's bookings are listed", func() {
		t := s.T()

		s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).WithStay(builder.FutureDate(30), builder.FutureDate(32)).BuildCreateRequestDTO())
		s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.secondRoom).WithStay(builder.FutureDate(30), builder.FutureDate(32)).BuildCreateRequestDTO())

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleGuest))

		var mine []queries.BookingListItem
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, s.guestToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 2)

		var theirs []queries.BookingListItem
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, otherToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &theirs)
		require.Empty(t, theirs)
	})
}

func (s *bookingSuite) TestHostBookingList() {
	s.Run("status filter and pagination", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).WithStay(builder.FutureDate(30), builder.FutureDate(32)).BuildCreateRequestDTO())
		s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.secondRoom).WithStay(builder.FutureDate(30), builder.FutureDate(32)).BuildCreateRequestDTO())

		// Confirm one so the status filter has something to separate
		statusURL := fmt.Sprintf("%s/%s/status", hostBookingsURL, view.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			reqdto.UpdateBookingStatusRequest{Status: "confirmed"}, s.hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page queries.Page[queries.BookingListItem]
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, hostBookingsURL+"?status=confirmed", nil, s.hostToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Equal(t, 1, page.Total)
		require.Len(t, page.Items, 1)
		require.Equal(t, view.ID, page.Items[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, hostBookingsURL+"?perPage=1&page=2", nil, s.hostToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Equal(t, 2, page.Total)
		require.Len(t, page.Items, 1)
		require.Equal(t, 2, page.Page)
	})

	s.Run("room type and free text filters", func() {
		t := s.T()

		s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).WithStay(builder.FutureDate(30), builder.FutureDate(32)).BuildCreateRequestDTO())
		s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.secondRoom).WithStay(builder.FutureDate(30), builder.FutureDate(32)).BuildCreateRequestDTO())

		var page queries.Page[queries.BookingListItem]
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, hostBookingsURL+"?roomType=family", nil, s.hostToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Equal(t, 1, page.Total)
		require.Equal(t, "family", page.Items[0].RoomType)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, hostBookingsURL+"?q=nguyen", nil, s.hostToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Equal(t, 2, page.Total, "guest name match should be case-insensitive")
	})

	s.Run("invalid createdOn date is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, hostBookingsURL+"?createdOn=not-a-date", nil, s.hostToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestUpdateStatus() {
	s.Run("host confirms a pending booking", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).BuildCreateRequestDTO())

		url := fmt.Sprintf("%s/%s/status", hostBookingsURL, view.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			reqdto.UpdateBookingStatusRequest{Status: "confirmed"}, s.hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated queries.BookingView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "confirmed", updated.Status)
	})

	s.Run("pending cannot jump to completed", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).BuildCreateRequestDTO())

		url := fmt.Sprintf("%s/%s/status", hostBookingsURL, view.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			reqdto.UpdateBookingStatusRequest{Status: "completed"}, s.hostToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("unknown status is rejected", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).BuildCreateRequestDTO())

		url := fmt.Sprintf("%s/%s/status", hostBookingsURL, view.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			reqdto.UpdateBookingStatusRequest{Status: "teleported"}, s.hostToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("guest cannot reach the host status endpoint", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).BuildCreateRequestDTO())

		url := fmt.Sprintf("%s/%s/status", hostBookingsURL, view.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			reqdto.UpdateBookingStatusRequest{Status: "cancelled"}, s.guestToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("another host cannot touch the booking", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).BuildCreateRequestDTO())

		otherHostToken := authtest.CreateAndLogin(t, s.DB, s.Router, "otherhost@example.com", string(user.RoleHost))

		url := fmt.Sprintf("%s/%s/status", hostBookingsURL, view.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			reqdto.UpdateBookingStatusRequest{Status: "confirmed"}, otherHostToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("guest cancels their own booking", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).BuildCreateRequestDTO())

		url := fmt.Sprintf("%s/%s/cancel", bookingsURL, view.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, s.guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated queries.BookingView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "cancelled", updated.Status)
	})

	s.Run("guest cannot cancel someone else's booking", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).BuildCreateRequestDTO())

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleGuest))

		url := fmt.Sprintf("%s/%s/cancel", bookingsURL, view.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("cancelled room frees the dates", func() {
		t := s.T()

		view := s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).WithStay(builder.FutureDate(30), builder.FutureDate(33)).BuildCreateRequestDTO())

		url := fmt.Sprintf("%s/%s/status", hostBookingsURL, view.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			reqdto.UpdateBookingStatusRequest{Status: "cancelled"}, s.hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// Same dates become bookable again
		s.createBooking(t, s.guestToken, builder.NewBookingBuilder().
			WithRoom(s.roomID).WithStay(builder.FutureDate(30), builder.FutureDate(33)).BuildCreateRequestDTO())
	})
}
