//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []booking.Status{
	booking.StatusPending,
	booking.StatusConfirmed,
	booking.StatusEnRoute,
	booking.StatusInProgress,
	booking.StatusCompleted,
	booking.StatusCancelled,
}

func TestCanTransition(t *testing.T) {
	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:    {booking.StatusConfirmed, booking.StatusCancelled},
		booking.StatusConfirmed:  {booking.StatusEnRoute, booking.StatusCancelled},
		booking.StatusEnRoute:    {booking.StatusInProgress},
		booking.StatusInProgress: {booking.StatusCompleted},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, booking.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestValidateTransition(t *testing.T) {
	t.Run("terminal states are final", func(t *testing.T) {
		for _, from := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled} {
			for _, to := range allStatuses {
				err := booking.ValidateTransition(from, to)
				assert.True(t, errs.Is(err, errs.ErrInvalidTransition), "%s -> %s", from, to)
			}
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		err := booking.ValidateTransition(booking.StatusPending, booking.Status("PAUSED"))
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("cancelling after the provider left is refused", func(t *testing.T) {
		err := booking.ValidateTransition(booking.StatusEnRoute, booking.StatusCancelled)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})
}

func TestAuthorizeTransition(t *testing.T) {
	provider := uuid.New()
	b := builder.NewBookingBuilder()
	confirmed := b.BuildInStatus(booking.StatusConfirmed, provider, 1)

	customer := b.Customer()
	otherCustomer := user.Actor{ID: uuid.New(), Role: user.RoleCustomer}
	assigned := user.Actor{ID: provider, Role: user.RoleProvider}
	otherProvider := user.Actor{ID: uuid.New(), Role: user.RoleProvider}
	admin := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	cases := []struct {
		name   string
		actor  user.Actor
		target booking.Status
		ok     bool
	}{
		{"assigned provider starts travelling", assigned, booking.StatusEnRoute, true},
		{"other provider cannot start travelling", otherProvider, booking.StatusEnRoute, false},
		{"customer cannot mark en route", customer, booking.StatusEnRoute, false},
		{"admin cannot mark en route", admin, booking.StatusEnRoute, false},
		{"owner cancels", customer, booking.StatusCancelled, true},
		{"other customer cannot cancel", otherCustomer, booking.StatusCancelled, false},
		{"assigned provider cancels", assigned, booking.StatusCancelled, true},
		{"other provider cannot cancel", otherProvider, booking.StatusCancelled, false},
		{"admin cancels", admin, booking.StatusCancelled, true},
		{"assigned provider completes", assigned, booking.StatusCompleted, true},
		{"customer cannot complete", customer, booking.StatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := confirmed.AuthorizeTransition(tc.actor, tc.target)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errs.Is(err, errs.ErrForbidden), "got %v", err)
		})
	}
}

func TestIsParty(t *testing.T) {
	provider := uuid.New()
	b := builder.NewBookingBuilder()
	pending := b.MustBuildDomain()
	confirmed := b.BuildInStatus(booking.StatusConfirmed, provider, 1)

	assert.True(t, pending.IsParty(b.Customer()))
	assert.False(t, pending.IsParty(user.Actor{ID: provider, Role: user.RoleProvider}))
	assert.True(t, confirmed.IsParty(user.Actor{ID: provider, Role: user.RoleProvider}))
	assert.True(t, confirmed.IsParty(user.Actor{ID: uuid.New(), Role: user.RoleAdmin}))
	assert.False(t, confirmed.IsParty(user.Actor{ID: provider, Role: user.RoleCustomer}))
}

func TestTransition(t *testing.T) {
	now := builder.DefaultNow.Add(time.Hour)
	provider := uuid.New()
	b := builder.NewBookingBuilder()

	t.Run("confirm assigns the provider", func(t *testing.T) {
		pending := b.MustBuildDomain()
		next, err := pending.Transition(booking.TransitionInput{
			Target:     booking.StatusConfirmed,
			Actor:      user.Actor{ID: provider, Role: user.RoleProvider},
			ProviderID: provider,
			Now:        now,
		})
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, next.Status())
		assert.Equal(t, pending.Version()+1, next.Version())
		require.NotNil(t, next.ProviderID())
		assert.Equal(t, provider, *next.ProviderID())
		assert.Equal(t, now, *next.ConfirmedAt())

		// the receiver stays usable as the compare-and-swap guard
		assert.Equal(t, booking.StatusPending, pending.Status())
		assert.Nil(t, pending.ProviderID())
	})

	t.Run("confirm without provider", func(t *testing.T) {
		_, err := b.MustBuildDomain().Transition(booking.TransitionInput{Target: booking.StatusConfirmed, Now: now})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("start stamps started_at", func(t *testing.T) {
		enRoute := b.BuildInStatus(booking.StatusEnRoute, provider, 2)
		next, err := enRoute.Transition(booking.TransitionInput{Target: booking.StatusInProgress, Now: now})
		require.NoError(t, err)
		assert.Equal(t, now, *next.StartedAt())
		assert.Equal(t, int32(3), next.Version())
	})

	t.Run("complete defaults final cost to the estimate", func(t *testing.T) {
		inProgress := b.BuildInStatus(booking.StatusInProgress, provider, 3)
		next, err := inProgress.Transition(booking.TransitionInput{Target: booking.StatusCompleted, Now: now})
		require.NoError(t, err)
		require.NotNil(t, next.FinalCost())
		assert.Equal(t, b.EstimatedCost, next.FinalCost().Minor())
		assert.Equal(t, now, *next.CompletedAt())
	})

	t.Run("complete with explicit final cost", func(t *testing.T) {
		inProgress := b.BuildInStatus(booking.StatusInProgress, provider, 3)
		final := int64(15000)
		next, err := inProgress.Transition(booking.TransitionInput{Target: booking.StatusCompleted, FinalCost: &final, Now: now})
		require.NoError(t, err)
		assert.Equal(t, final, next.FinalCost().Minor())
	})

	t.Run("complete with negative final cost", func(t *testing.T) {
		inProgress := b.BuildInStatus(booking.StatusInProgress, provider, 3)
		final := int64(-1)
		_, err := inProgress.Transition(booking.TransitionInput{Target: booking.StatusCompleted, FinalCost: &final, Now: now})
		assert.True(t, errs.Is(err, booking.ErrNegativeAmount))
	})

	t.Run("cancel records who and why", func(t *testing.T) {
		confirmed := b.BuildInStatus(booking.StatusConfirmed, provider, 1)
		next, err := confirmed.Transition(booking.TransitionInput{
			Target: booking.StatusCancelled,
			Actor:  b.Customer(),
			Reason: "  plans changed ",
			Now:    now,
		})
		require.NoError(t, err)
		require.NotNil(t, next.CancelledBy())
		assert.Equal(t, user.RoleCustomer, *next.CancelledBy())
		assert.Equal(t, "plans changed", next.CancelReason())
		assert.Equal(t, now, *next.CancelledAt())
		assert.Equal(t, provider, *next.ProviderID())
	})

	t.Run("cancel reason too long", func(t *testing.T) {
		_, err := b.MustBuildDomain().Transition(booking.TransitionInput{
			Target: booking.StatusCancelled,
			Actor:  b.Customer(),
			Reason: strings.Repeat("x", booking.MaxCancelReasonLength+1),
			Now:    now,
		})
		assert.True(t, errs.Is(err, booking.ErrReasonTooLong))
	})

	t.Run("illegal edge", func(t *testing.T) {
		_, err := b.MustBuildDomain().Transition(booking.TransitionInput{Target: booking.StatusCompleted, Now: now})
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.OtpEligible())
	assert.True(t, booking.StatusEnRoute.OtpEligible())
	assert.False(t, booking.StatusInProgress.OtpEligible())
	assert.False(t, booking.StatusPending.OtpEligible())

	assert.False(t, booking.StatusCancelled.HasProvider())
	assert.True(t, booking.StatusCompleted.HasProvider())
	assert.True(t, booking.StatusCancelled.IsTerminal())
}

func TestLifecycleEvents(t *testing.T) {
	provider := uuid.New()
	b := builder.NewBookingBuilder()
	pending := b.MustBuildDomain()

	created := booking.NewCreatedEvent(pending)
	assert.Equal(t, booking.EventCreated, created.Kind)
	assert.Equal(t, booking.StatusPending, *created.To)
	assert.Nil(t, created.From)
	assert.Equal(t, b.CustomerID, created.Actor.ID)

	confirmed := b.BuildInStatus(booking.StatusConfirmed, provider, 1)
	accepted := booking.NewAcceptedEvent(confirmed)
	assert.Equal(t, booking.EventAccepted, accepted.Kind)
	assert.Equal(t, booking.StatusPending, *accepted.From)
	assert.Equal(t, booking.StatusConfirmed, *accepted.To)
	assert.Equal(t, user.RoleProvider, accepted.Actor.Role)
	assert.Equal(t, provider.String(), accepted.Metadata["provider_id"])
}
