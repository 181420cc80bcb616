package geocode

import (
	"context"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/shared"

	"googlemaps.github.io/maps"
)

var ErrNoResult = errs.New("address did not geocode")

type geocodeClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleGeocoder resolves booking addresses with the Google Geocoding API.
type GoogleGeocoder struct {
	client geocodeClient
}

var _ shared.Geocoder = (*GoogleGeocoder)(nil)

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create maps client")
	}
	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (*booking.Location, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, errs.Wrap(err, "geocoding api error")
	}
	if len(results) == 0 {
		return nil, errs.Wrapf(ErrNoResult, "%q", address)
	}
	ll := results[0].Geometry.Location
	loc, err := booking.NewLocation(ll.Lat, ll.Lng)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
