package candidate

import (
	"context"
	"fmt"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	categoryGeoKeyFmt     = "dispatch:providers:%s"
	providerCategoriesFmt = "dispatch:provider:%s:categories"
)

// RedisGeoSelector keeps one GEO set of online providers per service
// category and answers candidate queries with a radius search around the job.
type RedisGeoSelector struct {
	redis    *redis.Client
	radiusKm float64
	limit    int
}

var (
	_ shared.CandidateSelector = (*RedisGeoSelector)(nil)
	_ shared.AvailabilityStore = (*RedisGeoSelector)(nil)
)

func NewRedisGeoSelector(client *redis.Client, radiusKm float64, limit int) *RedisGeoSelector {
	if limit <= 0 {
		limit = 10
	}
	return &RedisGeoSelector{redis: client, radiusKm: radiusKm, limit: limit}
}

func (s *RedisGeoSelector) SetOnline(ctx context.Context, providerID uuid.UUID, categories []string, loc booking.Location) error {
	member := providerID.String()
	previous, err := s.redis.SMembers(ctx, categoriesKey(providerID)).Result()
	if err != nil {
		return markUnavailable(err, "load provider categories")
	}

	_, err = s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, c := range previous {
			pipe.ZRem(ctx, geoKey(c), member)
		}
		pipe.Del(ctx, categoriesKey(providerID))
		for _, c := range categories {
			pipe.GeoAdd(ctx, geoKey(c), &redis.GeoLocation{
				Name:      member,
				Longitude: loc.Lng(),
				Latitude:  loc.Lat(),
			})
			pipe.SAdd(ctx, categoriesKey(providerID), c)
		}
		return nil
	})
	if err != nil {
		return markUnavailable(err, "set provider online")
	}
	return nil
}

func (s *RedisGeoSelector) SetOffline(ctx context.Context, providerID uuid.UUID) error {
	member := providerID.String()
	categories, err := s.redis.SMembers(ctx, categoriesKey(providerID)).Result()
	if err != nil {
		return markUnavailable(err, "load provider categories")
	}
	_, err = s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, c := range categories {
			pipe.ZRem(ctx, geoKey(c), member)
		}
		pipe.Del(ctx, categoriesKey(providerID))
		return nil
	})
	if err != nil {
		return markUnavailable(err, "set provider offline")
	}
	return nil
}

// SelectCandidates returns the nearest online providers for the category,
// closest first. Without a job location any online provider qualifies.
func (s *RedisGeoSelector) SelectCandidates(ctx context.Context, q shared.CandidateQuery) ([]uuid.UUID, error) {
	want := s.limit + len(q.Exclude)

	var members []string
	var err error
	if q.Location != nil {
		members, err = s.redis.GeoSearch(ctx, geoKey(q.Category), &redis.GeoSearchQuery{
			Longitude:  q.Location.Lng(),
			Latitude:   q.Location.Lat(),
			Radius:     s.radiusKm,
			RadiusUnit: "km",
			Sort:       "ASC",
			Count:      want,
		}).Result()
	} else {
		members, err = s.redis.ZRange(ctx, geoKey(q.Category), 0, int64(want-1)).Result()
	}
	if err != nil {
		return nil, markUnavailable(err, "search candidates")
	}

	out := make([]uuid.UUID, 0, s.limit)
	for _, m := range members {
		id, perr := uuid.Parse(m)
		if perr != nil {
			continue
		}
		if _, skip := q.Exclude[id]; skip {
			continue
		}
		out = append(out, id)
		if len(out) == s.limit {
			break
		}
	}
	return out, nil
}

func geoKey(category string) string {
	return fmt.Sprintf(categoryGeoKeyFmt, category)
}

func categoriesKey(providerID uuid.UUID) string {
	return fmt.Sprintf(providerCategoriesFmt, providerID.String())
}

func markUnavailable(err error, msg string) error {
	return errs.Mark(errs.Wrap(err, msg), errs.ErrStoreUnavailable)
}
