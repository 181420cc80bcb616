//go:build unit

package commands_test

import (
	"context"
	"testing"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/shared"
	"home-dispatch/tests/common/builder"
	"home-dispatch/tests/common/memstore"
	sharedmock "home-dispatch/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReportLocation(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(builder.DefaultNow)
	store := memstore.New(clk)
	bb := builder.NewBookingBuilder()
	providerID := uuid.New()
	provider := user.Actor{ID: providerID, Role: user.RoleProvider}

	enRoute := bb.BuildInStatus(booking.StatusEnRoute, providerID, 2)
	confirmed := bb.BuildInStatus(booking.StatusConfirmed, providerID, 1)
	store.PutBooking(enRoute)
	store.PutBooking(confirmed)

	t.Run("assigned provider en route is relayed", func(t *testing.T) {
		publisher := sharedmock.NewMockLocationPublisher(gomock.NewController(t))
		uc := commands.NewLocationUseCase(store, publisher, clk)

		publisher.EXPECT().PublishLocation(gomock.Any(), shared.LocationUpdate{
			BookingID:  enRoute.ID(),
			ProviderID: providerID,
			Lat:        35.1,
			Lng:        139.2,
			At:         builder.DefaultNow,
		}).Return(nil).Times(1)

		assert.NoError(t, uc.ReportLocation(ctx, enRoute.ID(), provider, 35.1, 139.2))
	})

	cases := []struct {
		name  string
		id    uuid.UUID
		actor user.Actor
		lat   float64
		errIs error
	}{
		{"other provider", enRoute.ID(), user.Actor{ID: uuid.New(), Role: user.RoleProvider}, 35, errs.ErrForbidden},
		{"customer", enRoute.ID(), bb.Customer(), 35, errs.ErrForbidden},
		{"not travelling yet", confirmed.ID(), provider, 35, errs.ErrInvalidTransition},
		{"unknown booking", uuid.New(), provider, 35, errs.ErrBookingNotFound},
		{"bad coordinates", enRoute.ID(), provider, 120, booking.ErrInvalidLocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			publisher := sharedmock.NewMockLocationPublisher(gomock.NewController(t))
			uc := commands.NewLocationUseCase(store, publisher, clk)

			err := uc.ReportLocation(ctx, tc.id, tc.actor, tc.lat, 139)
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
		})
	}
}
