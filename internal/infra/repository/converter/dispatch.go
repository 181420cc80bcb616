package converter

import (
	"encoding/json"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/dispatch"
	"home-dispatch/internal/domain/otp"
	sqlc "home-dispatch/internal/infra/sqlc/generated"
	"home-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func RequestFromRow(row sqlc.BookingRequests) *dispatch.Request {
	return dispatch.ReconstructRequest(
		row.ID,
		row.BookingID,
		row.ProviderID,
		dispatch.RequestStatus(row.Status),
		row.BroadcastRound,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.RespondedAt),
	)
}

// RequestsToCreateParams assumes a non-empty batch for a single booking and round.
func RequestsToCreateParams(reqs []*dispatch.Request) sqlc.CreateBookingRequestsParams {
	ids := make([]uuid.UUID, len(reqs))
	providers := make([]uuid.UUID, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID()
		providers[i] = r.ProviderID()
	}
	first := reqs[0]
	return sqlc.CreateBookingRequestsParams{
		Ids:            ids,
		BookingID:      first.BookingID(),
		ProviderIds:    providers,
		BroadcastRound: first.Round(),
		CreatedAt:      pgconv.TimeToPgtype(first.CreatedAt()),
	}
}

func ChallengeFromRow(row sqlc.OtpChallenges) *otp.Challenge {
	return otp.ReconstructChallenge(
		row.BookingID,
		row.Code,
		pgconv.TimeFromPgtype(row.CreatedAt),
		row.FailedAttempts,
		pgconv.TimePtrFromPgtype(row.ConsumedAt),
	)
}

func EventToCreateParams(e booking.LifecycleEvent) (sqlc.CreateLifecycleEventParams, error) {
	meta := e.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return sqlc.CreateLifecycleEventParams{}, err
	}
	params := sqlc.CreateLifecycleEventParams{
		BookingID: e.BookingID,
		Kind:      e.Kind.String(),
		Metadata:  raw,
		CreatedAt: pgconv.TimeToPgtype(e.At),
	}
	if e.From != nil {
		params.FromStatus = pgtype.Text{String: e.From.String(), Valid: true}
	}
	if e.To != nil {
		params.ToStatus = pgtype.Text{String: e.To.String(), Valid: true}
	}
	if e.Actor != nil {
		params.ActorID = pgconv.UUIDToPgtype(e.Actor.ID)
		params.ActorRole = pgtype.Text{String: e.Actor.Role.String(), Valid: true}
	}
	return params, nil
}
