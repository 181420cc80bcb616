package components

import (
	"home-dispatch/internal/domain/otp"
	"home-dispatch/internal/infra/candidate"
	"home-dispatch/internal/infra/geocode"
	"home-dispatch/internal/pkg/clock"
	"home-dispatch/internal/pkg/config"
	"home-dispatch/internal/usecase"
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/queries"
	"home-dispatch/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	otp.NewRandomGenerator,
	NewCandidateIndex,
	func(idx *candidate.RedisGeoSelector) shared.CandidateSelector { return idx },
	func(idx *candidate.RedisGeoSelector) shared.AvailabilityStore { return idx },
	NewGeocoder,
	NewDispatchPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDispatchUseCase,
		NewOtpUseCase,
		commands.NewLifecycleUseCase,
		commands.NewBookingUseCase,
		commands.NewAvailabilityUseCase,
		commands.NewLocationUseCase,
		commands.NewReviewUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCandidateIndex(client *redis.Client, cfg config.Config) *candidate.RedisGeoSelector {
	return candidate.NewRedisGeoSelector(client, cfg.Dispatch.CandidateRadius, cfg.Dispatch.CandidateLimit)
}

// NewGeocoder returns a nil Geocoder when no API key is configured.
func NewGeocoder(cfg config.Config) (shared.Geocoder, error) {
	if cfg.Geocode.APIKey == "" {
		return nil, nil
	}
	g, err := geocode.NewGoogleGeocoder(cfg.Geocode.APIKey)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func NewDispatchPolicy(cfg config.Config) commands.DispatchPolicy {
	return commands.DispatchPolicy{
		RequestTimeout: cfg.Dispatch.RequestTimeout,
		Rebroadcast:    cfg.Dispatch.Rebroadcast,
		MaxRounds:      cfg.Dispatch.MaxRounds,
		SiblingExpiry:  cfg.Dispatch.SiblingExpiry,
	}
}

func NewOtpUseCase(uow shared.UnitOfWork, generator otp.Generator, clk clock.Clock, cfg config.Config) commands.OtpCommands {
	return commands.NewOtpUseCase(uow, generator, clk, cfg.OTP.MaxFailedAttempts)
}
