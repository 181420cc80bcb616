//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/handler/api"
	resdto "home-dispatch/internal/handler/dto/response"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/queries"
	"home-dispatch/tests/common/httptest"
	commandsmock "home-dispatch/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DispatchHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockDispatch *commandsmock.MockDispatchCommands
	handler      *api.DispatchHandler
	actor        user.Actor
	bookingID    uuid.UUID
}

func (s *DispatchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDispatch = commandsmock.NewMockDispatchCommands(s.mockCtrl)
	s.handler = api.NewDispatchHandler(s.mockDispatch)
	s.actor = user.Actor{ID: uuid.New(), Role: user.RoleProvider}
	s.bookingID = uuid.New()

	auth := mockAuth(&s.actor)
	s.router.POST("/bookings/:id/accept", auth, s.handler.Accept)
	s.router.POST("/bookings/:id/reject", auth, s.handler.Reject)
	s.router.POST("/admin/bookings/:id/dispatch", auth, s.handler.Dispatch)
	s.router.POST("/admin/bookings/:id/broadcast", auth, s.handler.Broadcast)
	s.router.POST("/admin/dispatch/sweep", auth, s.handler.Sweep)
}

func TestDispatchHandlerSuite(t *testing.T) {
	suite.Run(t, new(DispatchHandlerTestSuite))
}

func (s *DispatchHandlerTestSuite) TestAccept() {
	url := "/bookings/" + s.bookingID.String() + "/accept"

	s.Run("success: returns the confirmed booking", func() {
		pid := s.actor.ID
		s.mockDispatch.EXPECT().AcceptBooking(gomock.Any(), s.bookingID, s.actor.ID).
			Return(&queries.BookingView{ID: s.bookingID, Status: "CONFIRMED", ProviderID: &pid}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CONFIRMED", body.Status)
		s.Equal(&pid, body.ProviderID)
	})

	s.Run("error: usecase errors map to statuses", func() {
		cases := []struct {
			name string
			err  error
			code int
			msg  string
		}{
			{"lost the race", errs.ErrAlreadyClaimed, http.StatusConflict, "already claimed"},
			{"booking gone", errs.ErrBookingNoLongerAvailable, http.StatusConflict, "no longer available"},
			{"never offered", errs.ErrRequestNotFound, http.StatusNotFound, "Booking request not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockDispatch.EXPECT().AcceptBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.msg)
			})
		}
	})
}

func (s *DispatchHandlerTestSuite) TestReject() {
	url := "/bookings/" + s.bookingID.String() + "/reject"

	s.Run("success: 204 No Content", func() {
		s.mockDispatch.EXPECT().RejectBooking(gomock.Any(), s.bookingID, s.actor.ID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when nothing was offered", func() {
		s.mockDispatch.EXPECT().RejectBooking(gomock.Any(), s.bookingID, s.actor.ID).Return(errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking request not found")
	})
}

func (s *DispatchHandlerTestSuite) TestAdmin() {
	reqs := []*queries.RequestView{{ID: uuid.New(), BookingID: s.bookingID, ProviderID: uuid.New(), Status: "PENDING", BroadcastRound: 2}}

	s.Run("success: dispatch returns the new requests", func() {
		s.mockDispatch.EXPECT().Dispatch(gomock.Any(), s.bookingID).Return(reqs, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+s.bookingID.String()+"/dispatch", nil, "bearer-token")

		var body resdto.RequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().Len(body.Requests, 1)
		s.Equal(int32(2), body.Requests[0].BroadcastRound)
	})

	s.Run("error: 422 when no candidates remain", func() {
		s.mockDispatch.EXPECT().Dispatch(gomock.Any(), s.bookingID).Return(nil, errs.ErrNoCandidates).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+s.bookingID.String()+"/dispatch", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "No candidate providers")
	})

	s.Run("success: broadcast forwards the provider list", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockDispatch.EXPECT().Broadcast(gomock.Any(), s.bookingID, ids).Return(reqs, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+s.bookingID.String()+"/broadcast",
			map[string]any{"provider_ids": ids}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: broadcast without provider_ids", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+s.bookingID.String()+"/broadcast",
			map[string]any{}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("success: sweep reports counts", func() {
		s.mockDispatch.EXPECT().SweepExpired(gomock.Any()).
			Return(&commands.SweepResult{ExpiredBookings: 2, Rebroadcast: 1, Exhausted: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/dispatch/sweep", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"expired_bookings":2,"rebroadcast":1,"deferred":0,"exhausted":1,"failed":0}`, rec.Body.String())
	})
}
