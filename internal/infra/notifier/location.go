package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const locationChannelPattern = "booking:*:location"

// LocationBroker relays live provider positions through Redis Pub/Sub so
// every API instance can stream them to its own subscribers.
type LocationBroker struct {
	redis  *redis.Client
	hub    *Hub
	logger *slog.Logger

	pubsub *redis.PubSub
	wg     sync.WaitGroup
}

var _ shared.LocationPublisher = (*LocationBroker)(nil)

func NewLocationBroker(client *redis.Client, hub *Hub, logger *slog.Logger) *LocationBroker {
	return &LocationBroker{
		redis:  client,
		hub:    hub,
		logger: logger.With("component", "location_broker"),
	}
}

func LocationChannel(u shared.LocationUpdate) string {
	return fmt.Sprintf("booking:%s:location", u.BookingID)
}

func (b *LocationBroker) PublishLocation(ctx context.Context, u shared.LocationUpdate) error {
	body, err := json.Marshal(u)
	if err != nil {
		return errs.Wrap(err, "marshal location update")
	}
	if err = b.redis.Publish(ctx, LocationChannel(u), body).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "publish location"), errs.ErrStoreUnavailable)
	}
	return nil
}

func (b *LocationBroker) Start(ctx context.Context) error {
	b.pubsub = b.redis.PSubscribe(ctx, locationChannelPattern)
	// wait for the subscription confirmation so startup fails fast on a bad redis
	if _, err := b.pubsub.Receive(ctx); err != nil {
		_ = b.pubsub.Close()
		return errs.Wrap(err, "subscribe to location channels")
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for msg := range b.pubsub.Channel() {
			var u shared.LocationUpdate
			if err := json.Unmarshal([]byte(msg.Payload), &u); err != nil {
				b.logger.Warn("malformed location update", "channel", msg.Channel, "error", err.Error())
				continue
			}
			b.hub.Publish(ChangeEvent{
				Kind:       KindLocation,
				BookingID:  u.BookingID,
				ProviderID: &u.ProviderID,
				Location:   &u,
			})
		}
	}()
	b.logger.Info("location broker started", "pattern", locationChannelPattern)
	return nil
}

func (b *LocationBroker) Stop() error {
	if b.pubsub == nil {
		return nil
	}
	err := b.pubsub.Close()
	b.wg.Wait()
	return err
}
