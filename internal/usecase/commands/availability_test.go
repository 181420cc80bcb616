//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/commands"
	sharedmock "home-dispatch/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGoOnline(t *testing.T) {
	ctx := context.Background()
	provider := user.Actor{ID: uuid.New(), Role: user.RoleProvider}
	valid := commands.AvailabilityRequest{Categories: []string{"plumbing"}, Latitude: 35.68, Longitude: 139.76}

	t.Run("categories are normalized and deduplicated", func(t *testing.T) {
		store := sharedmock.NewMockAvailabilityStore(gomock.NewController(t))
		uc := commands.NewAvailabilityUseCase(store)
		loc, _ := booking.NewLocation(35.68, 139.76)

		store.EXPECT().SetOnline(gomock.Any(), provider.ID, []string{"plumbing", "electrical"}, loc).Return(nil).Times(1)

		err := uc.GoOnline(ctx, provider, commands.AvailabilityRequest{
			Categories: []string{"Plumbing", "electrical", " plumbing "},
			Latitude:   35.68,
			Longitude:  139.76,
		})
		assert.NoError(t, err)
	})

	cases := []struct {
		name  string
		actor user.Actor
		req   commands.AvailabilityRequest
		errIs error
	}{
		{"customer", user.Actor{ID: uuid.New(), Role: user.RoleCustomer}, valid, errs.ErrForbidden},
		{"no categories", provider, commands.AvailabilityRequest{Latitude: 1, Longitude: 1}, commands.ErrNoCategories},
		{"bad category", provider, commands.AvailabilityRequest{Categories: []string{"a b"}, Latitude: 1, Longitude: 1}, booking.ErrInvalidCategory},
		{"bad coordinates", provider, commands.AvailabilityRequest{Categories: []string{"plumbing"}, Latitude: 100}, booking.ErrInvalidLocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := sharedmock.NewMockAvailabilityStore(gomock.NewController(t))
			uc := commands.NewAvailabilityUseCase(store)

			err := uc.GoOnline(ctx, tc.actor, tc.req)
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
		})
	}

	t.Run("store failure is returned", func(t *testing.T) {
		store := sharedmock.NewMockAvailabilityStore(gomock.NewController(t))
		uc := commands.NewAvailabilityUseCase(store)
		boom := errors.New("redis down")
		store.EXPECT().SetOnline(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

		assert.ErrorIs(t, uc.GoOnline(ctx, provider, valid), boom)
	})
}

func TestGoOffline(t *testing.T) {
	ctx := context.Background()
	store := sharedmock.NewMockAvailabilityStore(gomock.NewController(t))
	uc := commands.NewAvailabilityUseCase(store)
	provider := user.Actor{ID: uuid.New(), Role: user.RoleProvider}

	store.EXPECT().SetOffline(gomock.Any(), provider.ID).Return(nil).Times(1)
	assert.NoError(t, uc.GoOffline(ctx, provider))

	err := uc.GoOffline(ctx, user.Actor{ID: uuid.New(), Role: user.RoleAdmin})
	assert.True(t, errs.Is(err, errs.ErrForbidden))
}
