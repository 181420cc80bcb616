//go:build unit || e2e

package memstore

import (
	"context"
	"math"
	"sort"
	"time"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/dispatch"
	"home-dispatch/internal/domain/otp"
	"home-dispatch/internal/domain/review"
	"home-dispatch/internal/infra"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	st    *state
	clock clock.Clock
}

func (t *memTx) Bookings() shared.BookingRepository { return bookingRepo{t.st} }
func (t *memTx) Requests() shared.BookingRequestRepository { return requestRepo{t.st} }
func (t *memTx) Otps() shared.OtpRepository { return otpRepo{t.st} }
func (t *memTx) Events() shared.LifecycleEventRepository { return eventRepo{t.st} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t.st} }
func (t *memTx) Idempotency() shared.IdempotencyRepository { return idempotencyRepo{t.st, t.clock} }
func (t *memTx) Reviews() shared.ReviewRepository { return reviewRepo{t.st} }
func (t *memTx) RatingStats() shared.RatingStatsRepository { return ratingStatsRepo{t.st} }
func (t *memTx) Reads() shared.CommandReads { return reads{t.st} }
func (t *memTx) DB() sqlc.DBTX { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func conflict(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindConflict)
}

// ---- bookings ----

type bookingRepo struct{ st *state }

func paramsOf(b *booking.Booking) booking.ReconstructParams {
	p := booking.ReconstructParams{
		ID:             b.ID(),
		CustomerID:     b.CustomerID(),
		ProviderID:     b.ProviderID(),
		Category:       b.Category().String(),
		Requirements:   b.Requirements(),
		AddressLine:    b.Address().Line(),
		City:           b.Address().City(),
		PostalCode:     b.Address().PostalCode(),
		EstimatedCost:  b.EstimatedCost().Minor(),
		ScheduledAt:    b.ScheduledAt(),
		Status:         b.Status(),
		PaymentStatus:  b.PaymentStatus(),
		Version:        b.Version(),
		BroadcastRound: b.BroadcastRound(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
		ConfirmedAt:    b.ConfirmedAt(),
		StartedAt:      b.StartedAt(),
		CompletedAt:    b.CompletedAt(),
		CancelledAt:    b.CancelledAt(),
		CancelledBy:    b.CancelledBy(),
		CancelReason:   b.CancelReason(),
	}
	if loc := b.Location(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		p.Latitude, p.Longitude = &lat, &lng
	}
	if fc := b.FinalCost(); fc != nil {
		minor := fc.Minor()
		p.FinalCost = &minor
	}
	return p
}

func (r bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (*booking.Booking, error) {
	if _, exists := r.st.bookings[b.ID()]; exists {
		return nil, infra.WrapRepoErr("booking exists", nil, infra.KindDuplicateKey)
	}
	stored := booking.Reconstruct(paramsOf(b))
	r.st.bookings[b.ID()] = stored
	return stored, nil
}

func (r bookingRepo) Confirm(_ context.Context, _ sqlc.DBTX, bookingID, providerID uuid.UUID, at time.Time) (*booking.Booking, error) {
	b, ok := r.st.bookings[bookingID]
	if !ok || b.Status() != booking.StatusPending {
		return nil, notFound("booking is no longer pending")
	}
	p := paramsOf(b)
	p.Status = booking.StatusConfirmed
	p.ProviderID = &providerID
	p.ConfirmedAt = &at
	p.UpdatedAt = at
	p.Version++
	next := booking.Reconstruct(p)
	r.st.bookings[bookingID] = next
	return next, nil
}

func (r bookingRepo) Transition(_ context.Context, _ sqlc.DBTX, prev, next *booking.Booking) (*booking.Booking, error) {
	cur, ok := r.st.bookings[prev.ID()]
	if !ok || cur.Status() != prev.Status() || cur.Version() != prev.Version() {
		return nil, conflict("booking status or version changed")
	}
	p := paramsOf(cur)
	p.Status = next.Status()
	p.Version = cur.Version() + 1
	p.FinalCost = paramsOf(next).FinalCost
	p.StartedAt = next.StartedAt()
	p.CompletedAt = next.CompletedAt()
	p.CancelledAt = next.CancelledAt()
	p.CancelledBy = next.CancelledBy()
	p.CancelReason = next.CancelReason()
	p.UpdatedAt = next.UpdatedAt()
	written := booking.Reconstruct(p)
	r.st.bookings[prev.ID()] = written
	return written, nil
}

func (r bookingRepo) StartBroadcastRound(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID, at time.Time) (int32, error) {
	b, ok := r.st.bookings[bookingID]
	if !ok || b.Status() != booking.StatusPending {
		return 0, conflict("booking is not pending")
	}
	p := paramsOf(b)
	p.BroadcastRound++
	p.UpdatedAt = at
	r.st.bookings[bookingID] = booking.Reconstruct(p)
	return p.BroadcastRound, nil
}

func (r bookingRepo) UpdateLocation(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID, loc booking.Location) error {
	b, ok := r.st.bookings[bookingID]
	if !ok {
		return nil
	}
	p := paramsOf(b)
	lat, lng := loc.Lat(), loc.Lng()
	p.Latitude, p.Longitude = &lat, &lng
	r.st.bookings[bookingID] = booking.Reconstruct(p)
	return nil
}

func (r bookingRepo) MarkDispatchExhausted(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID, at time.Time) (bool, error) {
	b, ok := r.st.bookings[bookingID]
	if !ok || b.Status() != booking.StatusPending {
		return false, nil
	}
	if _, done := r.st.exhausted[bookingID]; done {
		return false, nil
	}
	r.st.exhausted[bookingID] = at
	return true, nil
}

// ---- booking requests ----

type requestRepo struct{ st *state }

func withStatus(r *dispatch.Request, status dispatch.RequestStatus, at time.Time) *dispatch.Request {
	return dispatch.ReconstructRequest(r.ID(), r.BookingID(), r.ProviderID(), status, r.Round(), r.CreatedAt(), &at)
}

func (r requestRepo) CreateBatch(_ context.Context, _ sqlc.DBTX, reqs []*dispatch.Request) ([]*dispatch.Request, error) {
	inserted := make([]*dispatch.Request, 0, len(reqs))
	for _, req := range reqs {
		if r.st.requestFor(req.BookingID(), req.ProviderID()) != nil {
			continue
		}
		r.st.requests[req.ID()] = req
		r.st.reqSeq[req.ID()] = r.st.next()
		inserted = append(inserted, req)
	}
	return inserted, nil
}

func (r requestRepo) Accept(_ context.Context, _ sqlc.DBTX, bookingID, providerID uuid.UUID, at time.Time) (*dispatch.Request, bool, error) {
	req := r.st.requestFor(bookingID, providerID)
	if req == nil || req.Status() != dispatch.RequestPending || r.hasAccepted(bookingID) {
		return nil, false, nil
	}
	accepted := withStatus(req, dispatch.RequestAccepted, at)
	r.st.requests[req.ID()] = accepted
	return accepted, true, nil
}

func (r requestRepo) hasAccepted(bookingID uuid.UUID) bool {
	for _, req := range r.st.requests {
		if req.BookingID() == bookingID && req.Status() == dispatch.RequestAccepted {
			return true
		}
	}
	return false
}

func (r requestRepo) HasAccepted(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID) (bool, error) {
	return r.hasAccepted(bookingID), nil
}

func (r requestRepo) ExpireAccepted(_ context.Context, _ sqlc.DBTX, requestID uuid.UUID, at time.Time) error {
	req, ok := r.st.requests[requestID]
	if !ok || req.Status() != dispatch.RequestAccepted {
		return nil
	}
	r.st.requests[requestID] = withStatus(req, dispatch.RequestExpired, at)
	return nil
}

func (r requestRepo) Reject(_ context.Context, _ sqlc.DBTX, bookingID, providerID uuid.UUID, at time.Time) (bool, error) {
	req := r.st.requestFor(bookingID, providerID)
	if req == nil || req.Status() != dispatch.RequestPending {
		return false, nil
	}
	r.st.requests[req.ID()] = withStatus(req, dispatch.RequestRejected, at)
	return true, nil
}

func (r requestRepo) ExpirePendingForBooking(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID, at time.Time) (int64, error) {
	var n int64
	for id, req := range r.st.requests {
		if req.BookingID() == bookingID && req.Status() == dispatch.RequestPending {
			r.st.requests[id] = withStatus(req, dispatch.RequestExpired, at)
			n++
		}
	}
	return n, nil
}

func (r requestRepo) ExpireStale(_ context.Context, _ sqlc.DBTX, cutoff, at time.Time) ([]uuid.UUID, error) {
	var touched []uuid.UUID
	for id, req := range r.st.requests {
		if req.Status() != dispatch.RequestPending {
			continue
		}
		b := r.st.bookings[req.BookingID()]
		if !req.CreatedAt().Before(cutoff) && b != nil && b.Status() == booking.StatusPending {
			continue
		}
		r.st.requests[id] = withStatus(req, dispatch.RequestExpired, at)
		touched = append(touched, req.BookingID())
	}
	return distinct(touched), nil
}

func (r requestRepo) OfferedProviderIDs(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID) ([]uuid.UUID, error) {
	return dispatch.ProviderIDs(r.st.requestsFor(bookingID)), nil
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ---- otp ----

type otpRepo struct{ st *state }

func (r otpRepo) Upsert(_ context.Context, _ sqlc.DBTX, c *otp.Challenge) (*otp.Challenge, error) {
	if cur, ok := r.st.otps[c.BookingID()]; ok && cur.IsConsumed() {
		return nil, conflict("otp already consumed")
	}
	stored := otp.ReconstructChallenge(c.BookingID(), c.Code(), c.CreatedAt(), 0, nil)
	r.st.otps[c.BookingID()] = stored
	return stored, nil
}

func (r otpRepo) Lock(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID) (*otp.Challenge, error) {
	c, ok := r.st.otps[bookingID]
	if !ok {
		return nil, notFound("otp challenge not found")
	}
	return c, nil
}

func (r otpRepo) Consume(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID, code string, at time.Time) (bool, error) {
	cur, ok := r.st.otps[bookingID]
	if !ok || cur.IsConsumed() || cur.Code() != code {
		return false, nil
	}
	r.st.otps[bookingID] = otp.ReconstructChallenge(bookingID, cur.Code(), cur.CreatedAt(), cur.FailedAttempts(), &at)
	return true, nil
}

func (r otpRepo) RecordFailure(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID) (int32, error) {
	cur, ok := r.st.otps[bookingID]
	if !ok || cur.IsConsumed() {
		return 0, notFound("no active otp")
	}
	n := cur.FailedAttempts() + 1
	r.st.otps[bookingID] = otp.ReconstructChallenge(bookingID, cur.Code(), cur.CreatedAt(), n, nil)
	return n, nil
}

func (r otpRepo) Delete(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID) error {
	if cur, ok := r.st.otps[bookingID]; ok && !cur.IsConsumed() {
		delete(r.st.otps, bookingID)
	}
	return nil
}

// ---- lifecycle events ----

type eventRepo struct{ st *state }

func (r eventRepo) Append(_ context.Context, _ sqlc.DBTX, e booking.LifecycleEvent) error {
	r.st.events = append(r.st.events, e)
	return nil
}

// ---- notification jobs ----

type notificationRepo struct{ st *state }

func (r notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	id := uuid.New()
	r.st.jobs[id] = Job{
		NotificationJob: shared.NotificationJob{ID: id, Kind: kind, Topic: topic, Payload: payload, RunAt: runAt},
		Status:          JobQueued,
		seq:             r.st.next(),
	}
	return nil
}

func (r notificationRepo) ClaimDue(_ context.Context, _ sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	var due []Job
	for _, j := range r.st.jobs {
		if j.Status == JobQueued && !j.RunAt.After(now) {
			due = append(due, j)
		}
	}
	sort.Slice(due, func(i, k int) bool {
		if !due[i].RunAt.Equal(due[k].RunAt) {
			return due[i].RunAt.Before(due[k].RunAt)
		}
		return due[i].seq < due[k].seq
	})
	if int(limit) < len(due) {
		due = due[:limit]
	}
	out := make([]shared.NotificationJob, len(due))
	for i, j := range due {
		out[i] = j.NotificationJob
	}
	return out, nil
}

func (r notificationRepo) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID, _ time.Time) error {
	j, ok := r.st.jobs[id]
	if !ok {
		return notFound("notification job")
	}
	j.Status = JobSent
	j.Attempts++
	j.LastError = ""
	r.st.jobs[id] = j
	return nil
}

func (r notificationRepo) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, cause string, maxAttempts int32, retryAt, _ time.Time) error {
	j, ok := r.st.jobs[id]
	if !ok {
		return notFound("notification job")
	}
	j.Attempts++
	j.LastError = cause
	j.RunAt = retryAt
	if j.Attempts >= maxAttempts {
		j.Status = JobFailed
	} else {
		j.Status = JobQueued
	}
	r.st.jobs[id] = j
	return nil
}

// ---- reviews ----

type reviewRepo struct{ st *state }

func (r reviewRepo) Create(_ context.Context, _ sqlc.DBTX, rev *review.Review) (*review.Review, error) {
	if _, ok := r.st.reviews[rev.BookingID()]; ok {
		return nil, infra.WrapRepoErr("failed to create review", nil, infra.KindDuplicateKey)
	}
	r.st.reviews[rev.BookingID()] = rev
	return rev, nil
}

type ratingStatsRepo struct{ st *state }

func (r ratingStatsRepo) Recalc(_ context.Context, _ sqlc.DBTX, providerID uuid.UUID, at time.Time) error {
	ps := ProviderStats{UpdatedAt: at}
	sum := 0
	for _, rev := range r.st.reviews {
		if rev.ProviderID() != providerID {
			continue
		}
		v := rev.Rating().Value()
		ps.TotalReviews++
		ps.Counts[v-1]++
		sum += v
	}
	if ps.TotalReviews > 0 {
		ps.AverageRating = math.Round(float64(sum)/float64(ps.TotalReviews)*100) / 100
	}
	r.st.stats[providerID] = ps
	return nil
}

// ---- idempotency ----

type idempotencyRepo struct {
	st    *state
	clock clock.Clock
}

func (r idempotencyRepo) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{key: key, userID: userID}
	if _, exists := r.st.idem[k]; exists {
		return false, nil
	}
	r.st.idem[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idempotencyRepo) Complete(_ context.Context, _ sqlc.DBTX, key, userID, bookingID uuid.UUID) error {
	k := idemKey{key: key, userID: userID}
	rec, ok := r.st.idem[k]
	if !ok {
		return nil
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultBookingID = &bookingID
	r.st.idem[k] = rec
	return nil
}

func (r idempotencyRepo) ClaimExpired(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{key: key, userID: userID}
	rec, ok := r.st.idem[k]
	if !ok || !rec.ExpiresAt.Before(r.clock.Now()) {
		return false, nil
	}
	rec.RequestHash = requestHash
	rec.Status = shared.IdempotencyProcessing
	rec.ResultBookingID = nil
	rec.ExpiresAt = expiresAt
	r.st.idem[k] = rec
	return true, nil
}

// ---- command reads ----

type reads struct{ st *state }

func (r reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return b, nil
}

func (r reads) RequestFor(_ context.Context, bookingID, providerID uuid.UUID) (*dispatch.Request, error) {
	req := r.st.requestFor(bookingID, providerID)
	if req == nil {
		return nil, notFound("booking request not found")
	}
	return req, nil
}

func (r reads) OtpByBooking(_ context.Context, bookingID uuid.UUID) (*otp.Challenge, error) {
	c, ok := r.st.otps[bookingID]
	if !ok {
		return nil, notFound("otp challenge not found")
	}
	return c, nil
}

func (r reads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.idem[idemKey{key: key, userID: userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

func (r reads) UnmatchedBookings(_ context.Context, staleBefore time.Time, limit int32) ([]shared.UnmatchedBooking, error) {
	var candidates []*booking.Booking
	for id, b := range r.st.bookings {
		if b.Status() != booking.StatusPending {
			continue
		}
		if b.BroadcastRound() == 0 && !b.CreatedAt().Before(staleBefore) {
			continue
		}
		if _, done := r.st.exhausted[id]; done {
			continue
		}
		live := false
		for _, req := range r.st.requestsFor(id) {
			if req.Status() == dispatch.RequestPending || req.Status() == dispatch.RequestAccepted {
				live = true
				break
			}
		}
		if !live {
			candidates = append(candidates, b)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].CreatedAt().Before(candidates[j].CreatedAt()) })
	if int(limit) < len(candidates) {
		candidates = candidates[:limit]
	}
	out := make([]shared.UnmatchedBooking, len(candidates))
	for i, b := range candidates {
		out[i] = shared.UnmatchedBooking{ID: b.ID(), BroadcastRound: b.BroadcastRound()}
	}
	return out, nil
}

// lockedReads serves uow.CommandReads() outside any transaction.
type lockedReads struct{ store *Store }

func (l *lockedReads) with(fn func(reads)) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	fn(reads{l.store.st})
}

func (l *lockedReads) BookingByID(ctx context.Context, id uuid.UUID) (b *booking.Booking, err error) {
	l.with(func(r reads) { b, err = r.BookingByID(ctx, id) })
	return
}

func (l *lockedReads) RequestFor(ctx context.Context, bookingID, providerID uuid.UUID) (req *dispatch.Request, err error) {
	l.with(func(r reads) { req, err = r.RequestFor(ctx, bookingID, providerID) })
	return
}

func (l *lockedReads) OtpByBooking(ctx context.Context, bookingID uuid.UUID) (c *otp.Challenge, err error) {
	l.with(func(r reads) { c, err = r.OtpByBooking(ctx, bookingID) })
	return
}

func (l *lockedReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (rec *shared.IdempotencyRecord, err error) {
	l.with(func(r reads) { rec, err = r.IdempotencyByKey(ctx, key, userID) })
	return
}

func (l *lockedReads) UnmatchedBookings(ctx context.Context, staleBefore time.Time, limit int32) (out []shared.UnmatchedBooking, err error) {
	l.with(func(r reads) { out, err = r.UnmatchedBookings(ctx, staleBefore, limit) })
	return
}
