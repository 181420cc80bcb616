//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"home-dispatch/internal/domain/user"
	resdto "home-dispatch/internal/handler/dto/response"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/queries"
	"home-dispatch/tests/common/authtest"
	"home-dispatch/tests/common/builder"
	"home-dispatch/tests/common/dbtest"
	"home-dispatch/tests/common/httptest"
	"home-dispatch/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	bookingURL      = "/api/bookings/%s"
	statusURL       = "/api/bookings/%s/status"
	otpURL          = "/api/bookings/%s/otp"
	acceptURL       = "/api/bookings/%s/accept"
	rejectURL       = "/api/bookings/%s/reject"
	eventsURL       = "/api/bookings/%s/events"
	availabilityURL = "/api/providers/me/availability"
	offersURL       = "/api/providers/me/requests"
	sweepURL        = "/api/admin/dispatch/sweep"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingSuite))
}

// goOnline registers a provider next to the default booking location.
func (s *BookingSuite) goOnline(p authtest.Actor, category string) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPut, availabilityURL,
		map[string]any{"categories": []string{category}, "latitude": 35.6813, "longitude": 139.7672}, p.Token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func (s *BookingSuite) createBooking(c authtest.Actor) resdto.CreateBookingResponse {
	t := s.T()
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, c.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created resdto.CreateBookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *BookingSuite) transition(a authtest.Actor, id uuid.UUID, body map[string]any) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(statusURL, id), body, a.Token)
}

// =============================================================================
// TestLifecycle - create, dispatch, accept and drive a booking to completion
// =============================================================================

func (s *BookingSuite) TestLifecycle() {
	s.Run("Normal case: booking runs from PENDING to COMPLETED", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		provider := s.JWT.NewActor(t, user.RoleProvider)
		s.goOnline(provider, "plumbing")

		created := s.createBooking(customer)
		require.Equal(t, commands.DispatchBroadcast, created.Dispatch.Status)
		require.Equal(t, 1, created.Dispatch.Providers)
		id := created.Booking.ID

		// the provider sees the offer
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL, nil, provider.Token)
		var offers resdto.OfferListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &offers)
		require.Len(t, offers.Offers, 1)
		require.Equal(t, id, offers.Offers[0].BookingID)

		// accept
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptURL, id), nil, provider.Token)
		var accepted queries.BookingView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &accepted)
		require.Equal(t, "CONFIRMED", accepted.Status)
		require.Equal(t, &provider.Actor.ID, accepted.ProviderID)

		// travel
		w = s.transition(provider, id, map[string]any{"status": "EN_ROUTE"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// customer reads the code
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(otpURL, id), nil, customer.Token)
		var code commands.OtpResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &code)
		require.Len(t, code.Code, 6)

		wrong := "000000"
		if code.Code == wrong {
			wrong = "111111"
		}
		w = s.transition(provider, id, map[string]any{"status": "IN_PROGRESS", "otp": wrong})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid OTP")

		w = s.transition(provider, id, map[string]any{"status": "IN_PROGRESS", "otp": code.Code})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.transition(provider, id, map[string]any{"status": "COMPLETED", "final_cost": 15000})
		var completed queries.BookingView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &completed)

		expected := &queries.BookingView{
			ID:              id,
			CustomerID:      customer.Actor.ID,
			ProviderID:      &provider.Actor.ID,
			Status:          "COMPLETED",
			ServiceCategory: "plumbing",
			Requirements:    "Kitchen sink is leaking",
			Address:         queries.AddressView{Line: "1-9-1 Marunouchi", City: "Tokyo", PostalCode: "100-0005"},
			Location:        &queries.LocationView{Lat: 35.6812, Lng: 139.7671},
			EstimatedCost:   12000,
			FinalCost:       ptr(int64(15000)),
			PaymentStatus:   "PENDING",
			StatusVersion:   4,
			BroadcastRound:  1,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(queries.BookingView{}, "CreatedAt", "UpdatedAt", "ConfirmedAt", "StartedAt", "CompletedAt"),
		}
		if diff := cmp.Diff(expected, &completed, opts...); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, completed.StartedAt)
		require.NotNil(t, completed.CompletedAt)

		// audit trail
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(eventsURL, id), nil, customer.Token)
		var events resdto.EventListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &events)
		kinds := make([]string, len(events.Events))
		for i, e := range events.Events {
			kinds[i] = e.Kind
		}
		require.Equal(t, []string{
			"created", "providers_notified", "accepted", "status_changed",
			"otp_issued", "status_changed", "status_changed",
		}, kinds)

		// accept plus three transitions each queued a customer notification
		require.Equal(t, 4, dbtest.CountJobs(t, s.DB, commands.NotifyStatusChanged))
	})

	s.Run("Error case: strangers cannot read or drive the booking", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		stranger := s.JWT.NewActor(t, user.RoleCustomer)
		provider := s.JWT.NewActor(t, user.RoleProvider)
		s.goOnline(provider, "plumbing")
		id := s.createBooking(customer).Booking.ID

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, id), nil, stranger.Token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")

		w = s.transition(stranger, id, map[string]any{"status": "CANCELLED"})
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")

		// providers never create bookings
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, builder.NewBookingBuilder().BuildCreateRequestDTO(), provider.Token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Normal case: customer cancels before anyone accepts", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		provider := s.JWT.NewActor(t, user.RoleProvider)
		s.goOnline(provider, "plumbing")
		id := s.createBooking(customer).Booking.ID

		w := s.transition(customer, id, map[string]any{"status": "CANCELLED", "reason": "found someone else"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptURL, id), nil, provider.Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "no longer available")
		require.Equal(t, "CANCELLED", dbtest.BookingStatus(t, s.DB, id))
	})
}

// =============================================================================
// TestDispatch - offers, rejection, races and expiry
// =============================================================================

func (s *BookingSuite) TestDispatch() {
	s.Run("Normal case: no provider online", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)

		created := s.createBooking(customer)
		require.Equal(t, commands.DispatchNoCandidates, created.Dispatch.Status)
		require.Equal(t, "PENDING", created.Booking.Status)
	})

	s.Run("Normal case: other categories are not offered", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		provider := s.JWT.NewActor(t, user.RoleProvider)
		s.goOnline(provider, "electrical")

		created := s.createBooking(customer)
		require.Equal(t, commands.DispatchNoCandidates, created.Dispatch.Status)
	})

	s.Run("Normal case: reject is idempotent and clears the offer", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		provider := s.JWT.NewActor(t, user.RoleProvider)
		s.goOnline(provider, "plumbing")
		id := s.createBooking(customer).Booking.ID

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(rejectURL, id), nil, provider.Token)
			require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		}
		require.Equal(t, 1, dbtest.CountRequests(t, s.DB, id, "REJECTED"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptURL, id), nil, provider.Token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking request not found")
	})

	s.Run("Normal case: exactly one concurrent accept wins", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		const n = 6
		providers := make([]authtest.Actor, n)
		for i := range providers {
			providers[i] = s.JWT.NewActor(t, user.RoleProvider)
			s.goOnline(providers[i], "plumbing")
		}
		created := s.createBooking(customer)
		require.Equal(t, n, created.Dispatch.Providers)
		id := created.Booking.ID

		codes := make([]int, n)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i, p := range providers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				req := nethttptest.NewRequest(http.MethodPost, fmt.Sprintf(acceptURL, id), nil)
				req.Header.Set("Authorization", "Bearer "+p.Token)
				rec := nethttptest.NewRecorder()
				s.Router.ServeHTTP(rec, req)
				codes[i] = rec.Code
			}()
		}
		close(start)
		wg.Wait()

		won := 0
		for _, c := range codes {
			switch c {
			case http.StatusOK:
				won++
			case http.StatusConflict:
			default:
				t.Errorf("unexpected status %d", c)
			}
		}
		require.Equal(t, 1, won, "codes: %v", codes)
		require.Equal(t, "CONFIRMED", dbtest.BookingStatus(t, s.DB, id))
		require.Equal(t, 1, dbtest.CountRequests(t, s.DB, id, "ACCEPTED"))

		// losers' offers are expired in the background
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		require.NoError(t, s.Dispatch.Drain(ctx))
		require.Equal(t, 0, dbtest.CountRequests(t, s.DB, id, "PENDING"))
	})

	s.Run("Normal case: sweep expires stale offers and re-broadcasts", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		first := s.JWT.NewActor(t, user.RoleProvider)
		s.goOnline(first, "plumbing")
		id := s.createBooking(customer).Booking.ID

		second := s.JWT.NewActor(t, user.RoleProvider)
		s.goOnline(second, "plumbing")
		dbtest.AgeRequests(t, s.DB, id, 2*s.Config.Dispatch.RequestTimeout)

		admin := s.JWT.NewActor(t, user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sweepURL, nil, admin.Token)
		var res commands.SweepResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, commands.SweepResult{ExpiredBookings: 1, Rebroadcast: 1}, res)

		require.Equal(t, 1, dbtest.CountRequests(t, s.DB, id, "EXPIRED"))
		require.Equal(t, 1, dbtest.CountRequests(t, s.DB, id, "PENDING"))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptURL, id), nil, second.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Normal case: sweep exhausts when nobody is left", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		provider := s.JWT.NewActor(t, user.RoleProvider)
		s.goOnline(provider, "plumbing")
		id := s.createBooking(customer).Booking.ID
		dbtest.AgeRequests(t, s.DB, id, 2*s.Config.Dispatch.RequestTimeout)

		admin := s.JWT.NewActor(t, user.RoleAdmin)
		sweep := func() commands.SweepResult {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, sweepURL, nil, admin.Token)
			var res commands.SweepResult
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			return res
		}

		// every round but the last is retried on a later sweep
		for round := 2; round < s.Config.Dispatch.MaxRounds; round++ {
			require.Equal(t, 1, sweep().Deferred, "round %d", round)
			require.Equal(t, 0, dbtest.CountJobs(t, s.DB, commands.NotifyDispatchExhausted))
		}
		require.Equal(t, 1, sweep().Exhausted)
		require.Equal(t, 1, dbtest.CountJobs(t, s.DB, commands.NotifyDispatchExhausted))
		require.Equal(t, "PENDING", dbtest.BookingStatus(t, s.DB, id))
	})
}

// =============================================================================
// TestIdempotency - Idempotency-Key replays
// =============================================================================

func (s *BookingSuite) TestIdempotency() {
	s.Run("Normal case: replay returns the original booking", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, reqBody, headers, customer.Token)
		var first resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &first)

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, reqBody, headers, customer.Token)
		var replay resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replay)
		require.Equal(t, first.Booking.ID, replay.Booking.ID)
		require.Equal(t, commands.DispatchReplayed, replay.Dispatch.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, customer.Token)
		var list resdto.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Bookings, 1)
	})

	s.Run("Error case: key reused with a different body", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			builder.NewBookingBuilder().BuildCreateRequestDTO(), headers, customer.Token)
		require.Equal(t, http.StatusCreated, w.Code)

		other := builder.NewBookingBuilder().WithCategory("electrical").BuildCreateRequestDTO()
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, other, headers, customer.Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "different request")
	})
}

// =============================================================================
// TestList - keyset pagination
// =============================================================================

func (s *BookingSuite) TestList() {
	s.Run("Normal case: pages follow the cursor newest first", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		base := time.Now().UTC().Add(-time.Hour)
		var ids []uuid.UUID
		for i := range 5 {
			ids = append(ids, dbtest.InsertPendingBooking(t, s.DB, customer.Actor.ID, "plumbing", base.Add(time.Duration(i)*time.Minute)))
		}

		var seen []uuid.UUID
		url := bookingsURL + "?limit=2"
		for {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, customer.Token)
			var page resdto.BookingListResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
			for _, b := range page.Bookings {
				seen = append(seen, b.ID)
			}
			if page.NextCursor == nil {
				break
			}
			url = bookingsURL + "?limit=2&after=" + *page.NextCursor
		}

		want := []uuid.UUID{ids[4], ids[3], ids[2], ids[1], ids[0]}
		require.Equal(t, want, seen)
	})

	s.Run("Error case: garbage cursor", func() {
		t := s.T()
		customer := s.JWT.NewActor(t, user.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?after=not-a-cursor", nil, customer.Token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})
}

func ptr[T any](v T) *T { return &v }
