package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/dispatch"
	"home-dispatch/internal/infra"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/queries"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultSweepBatch = 100

// DispatchPolicy tunes request expiry and the re-broadcast loop.
type DispatchPolicy struct {
	RequestTimeout time.Duration
	Rebroadcast    bool
	MaxRounds      int
	// SiblingExpiry bounds the background expiry that follows a successful accept.
	SiblingExpiry time.Duration
	SweepBatch    int32
}

type SweepResult struct {
	// ExpiredBookings counts bookings that lost at least one pending request.
	ExpiredBookings int `json:"expired_bookings"`
	Rebroadcast     int `json:"rebroadcast"`
	// Deferred counts bookings whose re-broadcast found nobody and that wait
	// for the next sweep with one round spent.
	Deferred  int `json:"deferred"`
	Exhausted int `json:"exhausted"`
	Failed    int `json:"failed"`
}

type DispatchCommands interface {
	Broadcast(ctx context.Context, bookingID uuid.UUID, candidateIDs []uuid.UUID) ([]*queries.RequestView, error)
	Dispatch(ctx context.Context, bookingID uuid.UUID) ([]*queries.RequestView, error)
	AcceptBooking(ctx context.Context, bookingID, providerID uuid.UUID) (*queries.BookingView, error)
	RejectBooking(ctx context.Context, bookingID, providerID uuid.UUID) error
	SweepExpired(ctx context.Context) (*SweepResult, error)
	// Drain waits for background sibling expiry started by AcceptBooking.
	Drain(ctx context.Context) error
}

type dispatchUseCaseImpl struct {
	uow      shared.UnitOfWork
	selector shared.CandidateSelector
	clock    clock.Clock
	policy   DispatchPolicy

	background sync.WaitGroup
}

func NewDispatchUseCase(uow shared.UnitOfWork, selector shared.CandidateSelector, clk clock.Clock, policy DispatchPolicy) DispatchCommands {
	if policy.SweepBatch <= 0 {
		policy.SweepBatch = defaultSweepBatch
	}
	if policy.SiblingExpiry <= 0 {
		policy.SiblingExpiry = 5 * time.Second
	}
	return &dispatchUseCaseImpl{
		uow:      uow,
		selector: selector,
		clock:    clk,
		policy:   policy,
	}
}

func (uc *dispatchUseCaseImpl) Broadcast(ctx context.Context, bookingID uuid.UUID, candidateIDs []uuid.UUID) ([]*queries.RequestView, error) {
	var created []*dispatch.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBooking(ctx, tx.Reads(), bookingID)
		if err != nil {
			return err
		}
		if b.Status() != booking.StatusPending {
			return errs.Mark(errs.Newf("booking %s is %s, not PENDING", bookingID, b.Status()), errs.ErrInvalidTransition)
		}

		now := uc.clock.Now()
		// bumping the round first takes the row lock, so concurrent broadcasts serialize here
		round, err := tx.Bookings().StartBroadcastRound(ctx, tx.DB(), bookingID, now)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrInvalidTransition)
			}
			return err
		}

		offered, err := tx.Requests().OfferedProviderIDs(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}
		reqs, err := dispatch.NewRequests(bookingID, candidateIDs, idSet(offered), round, now)
		if err != nil {
			return err
		}
		inserted, err := tx.Requests().CreateBatch(ctx, tx.DB(), reqs)
		if err != nil {
			return err
		}
		if len(inserted) == 0 {
			return errs.Wrapf(errs.ErrNoCandidates, "booking %s", bookingID)
		}

		if err = enqueueJobOffers(ctx, tx, b, inserted, now); err != nil {
			return err
		}
		event := booking.NewProvidersNotifiedEvent(bookingID, round, dispatch.ProviderIDs(inserted), now)
		if err = tx.Events().Append(ctx, tx.DB(), event); err != nil {
			return err
		}
		created = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking broadcast",
		"booking_id", bookingID.String(),
		"providers", len(created))
	return queries.NewRequestViews(created), nil
}

func (uc *dispatchUseCaseImpl) Dispatch(ctx context.Context, bookingID uuid.UUID) ([]*queries.RequestView, error) {
	b, err := loadBooking(ctx, uc.uow.CommandReads(), bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status() != booking.StatusPending {
		return nil, errs.Mark(errs.Newf("booking %s is %s, not PENDING", bookingID, b.Status()), errs.ErrInvalidTransition)
	}

	var offered []uuid.UUID
	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		offered, derr = tx.Requests().OfferedProviderIDs(ctx, tx.DB(), bookingID)
		return derr
	})
	if err != nil {
		return nil, err
	}

	candidates, err := uc.selector.SelectCandidates(ctx, shared.CandidateQuery{
		BookingID: bookingID,
		Category:  b.Category().String(),
		Location:  b.Location(),
		Exclude:   idSet(offered),
	})
	if err != nil {
		return nil, errs.Wrap(err, "select candidates")
	}
	return uc.Broadcast(ctx, bookingID, candidates)
}

// AcceptBooking claims the booking for providerID. The claim, the booking
// confirmation (or its compensation) and the audit records commit together;
// only the expiry of the losing offers runs afterwards.
func (uc *dispatchUseCaseImpl) AcceptBooking(ctx context.Context, bookingID, providerID uuid.UUID) (*queries.BookingView, error) {
	var (
		confirmed *booking.Booking
		outcome   error
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		confirmed, outcome = nil, nil
		now := uc.clock.Now()

		req, won, err := tx.Requests().Accept(ctx, tx.DB(), bookingID, providerID, now)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrapf(errs.ErrAlreadyClaimed, "booking %s", bookingID)
			}
			return err
		}
		if !won {
			claimed, herr := tx.Requests().HasAccepted(ctx, tx.DB(), bookingID)
			if herr != nil {
				return herr
			}
			if claimed {
				return errs.Wrapf(errs.ErrAlreadyClaimed, "booking %s", bookingID)
			}
			return errs.Wrapf(errs.ErrRequestNotFound, "booking %s provider %s", bookingID, providerID)
		}

		b, err := tx.Bookings().Confirm(ctx, tx.DB(), bookingID, providerID, now)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			// booking left PENDING under us: give the claim back and commit that
			if err = tx.Requests().ExpireAccepted(ctx, tx.DB(), req.ID(), now); err != nil {
				return err
			}
			outcome = errs.Wrapf(errs.ErrBookingNoLongerAvailable, "booking %s", bookingID)
			return nil
		}

		if err = tx.Events().Append(ctx, tx.DB(), booking.NewAcceptedEvent(b)); err != nil {
			return err
		}
		if err = enqueueStatusChanged(ctx, tx, booking.StatusPending, b); err != nil {
			return err
		}
		confirmed = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	if outcome != nil {
		return nil, outcome
	}

	slog.Info("booking accepted",
		"booking_id", bookingID.String(),
		"provider_id", providerID.String())
	uc.expireSiblings(ctx, bookingID)
	return queries.NewBookingView(confirmed), nil
}

func (uc *dispatchUseCaseImpl) expireSiblings(ctx context.Context, bookingID uuid.UUID) {
	uc.background.Add(1)
	go func() {
		defer uc.background.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.policy.SiblingExpiry)
		defer cancel()

		var expired int64
		err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
			var derr error
			expired, derr = tx.Requests().ExpirePendingForBooking(ctx, tx.DB(), bookingID, uc.clock.Now())
			return derr
		})
		if err != nil {
			// the sweep picks these up once the booking is no longer PENDING
			slog.Warn("failed to expire sibling requests",
				"booking_id", bookingID.String(),
				"error", err.Error())
			return
		}
		slog.Debug("sibling requests expired",
			"booking_id", bookingID.String(),
			"count", expired)
	}()
}

func (uc *dispatchUseCaseImpl) RejectBooking(ctx context.Context, bookingID, providerID uuid.UUID) error {
	return uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		rejected, err := tx.Requests().Reject(ctx, tx.DB(), bookingID, providerID, uc.clock.Now())
		if err != nil {
			return err
		}
		if rejected {
			return nil
		}
		// already resolved is a no-op; only a missing pair is an error
		if _, err = tx.Reads().RequestFor(ctx, bookingID, providerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(errs.ErrRequestNotFound, "booking %s provider %s", bookingID, providerID)
			}
			return err
		}
		return nil
	})
}

func (uc *dispatchUseCaseImpl) SweepExpired(ctx context.Context) (*SweepResult, error) {
	now := uc.clock.Now()
	res := &SweepResult{}

	var touched []uuid.UUID
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		touched, derr = tx.Requests().ExpireStale(ctx, tx.DB(), now.Add(-uc.policy.RequestTimeout), now)
		return derr
	})
	if err != nil {
		return nil, err
	}
	res.ExpiredBookings = len(touched)

	unmatched, err := uc.uow.CommandReads().UnmatchedBookings(ctx, now.Add(-uc.policy.RequestTimeout), uc.policy.SweepBatch)
	if err != nil {
		return res, err
	}

	for _, u := range unmatched {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		if uc.policy.Rebroadcast && int(u.BroadcastRound) < uc.policy.MaxRounds {
			_, derr := uc.Dispatch(ctx, u.ID)
			switch {
			case derr == nil:
				res.Rebroadcast++
				continue
			case errs.Is(derr, errs.ErrInvalidTransition):
				// accepted or cancelled since it was listed
				continue
			case !errs.Is(derr, errs.ErrNoCandidates):
				res.Failed++
				slog.Warn("re-broadcast failed",
					"booking_id", u.ID.String(),
					"error", derr.Error())
				continue
			}
			if int(u.BroadcastRound)+1 < uc.policy.MaxRounds {
				spent, serr := uc.spendEmptyRound(ctx, u.ID)
				switch {
				case serr != nil:
					res.Failed++
					slog.Warn("failed to spend empty dispatch round",
						"booking_id", u.ID.String(),
						"error", serr.Error())
				case spent:
					res.Deferred++
				}
				continue
			}
		}

		marked, derr := uc.markExhausted(ctx, u.ID)
		if derr != nil {
			res.Failed++
			slog.Warn("failed to mark dispatch exhausted",
				"booking_id", u.ID.String(),
				"error", derr.Error())
			continue
		}
		if marked {
			res.Exhausted++
		}
	}

	if res.ExpiredBookings > 0 || res.Rebroadcast > 0 || res.Deferred > 0 || res.Exhausted > 0 || res.Failed > 0 {
		slog.Info("dispatch sweep finished",
			"expired_bookings", res.ExpiredBookings,
			"rebroadcast", res.Rebroadcast,
			"deferred", res.Deferred,
			"exhausted", res.Exhausted,
			"failed", res.Failed)
	}
	return res, nil
}

// spendEmptyRound counts a round in which nobody could be offered the job, so
// a booking with no providers around reaches MaxRounds instead of retrying forever.
func (uc *dispatchUseCaseImpl) spendEmptyRound(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var spent bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		spent = false
		round, err := tx.Bookings().StartBroadcastRound(ctx, tx.DB(), bookingID, uc.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// accepted or cancelled since it was listed
				return nil
			}
			return err
		}
		slog.Info("no providers for re-broadcast, retrying next sweep",
			"booking_id", bookingID.String(),
			"round", round)
		spent = true
		return nil
	})
	return spent, err
}

func (uc *dispatchUseCaseImpl) markExhausted(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var marked bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		ok, err := tx.Bookings().MarkDispatchExhausted(ctx, tx.DB(), bookingID, now)
		if err != nil || !ok {
			marked = false
			return err
		}
		b, err := loadBooking(ctx, tx.Reads(), bookingID)
		if err != nil {
			return err
		}
		if err = tx.Events().Append(ctx, tx.DB(), booking.NewDispatchExhaustedEvent(bookingID, b.BroadcastRound(), now)); err != nil {
			return err
		}
		if err = enqueueDispatchExhausted(ctx, tx, b, now); err != nil {
			return err
		}
		marked = true
		return nil
	})
	return marked, err
}

func (uc *dispatchUseCaseImpl) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.background.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func loadBooking(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*booking.Booking, error) {
	b, err := reads.BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrBookingNotFound, "booking %s", id)
		}
		return nil, err
	}
	return b, nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
