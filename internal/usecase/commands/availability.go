package commands

import (
	"context"

	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/errs"
	"home-dispatch/internal/usecase/shared"
)

var ErrNoCategories = errs.Mark(errs.New("at least one service category is required"), errs.ErrDomainValidation)

type AvailabilityRequest struct {
	Categories []string
	Latitude   float64
	Longitude  float64
}

type AvailabilityCommands interface {
	GoOnline(ctx context.Context, actor user.Actor, req AvailabilityRequest) error
	GoOffline(ctx context.Context, actor user.Actor) error
}

type availabilityUseCaseImpl struct {
	store shared.AvailabilityStore
}

func NewAvailabilityUseCase(store shared.AvailabilityStore) AvailabilityCommands {
	return &availabilityUseCaseImpl{store: store}
}

func (uc *availabilityUseCaseImpl) GoOnline(ctx context.Context, actor user.Actor, req AvailabilityRequest) error {
	if !actor.IsProvider() {
		return errs.Mark(errs.Newf("%s cannot publish availability", actor.Role), errs.ErrForbidden)
	}
	loc, err := booking.NewLocation(req.Latitude, req.Longitude)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(req.Categories))
	categories := make([]string, 0, len(req.Categories))
	for _, raw := range req.Categories {
		c, cerr := booking.NewServiceCategory(raw)
		if cerr != nil {
			return cerr
		}
		if _, dup := seen[c.String()]; dup {
			continue
		}
		seen[c.String()] = struct{}{}
		categories = append(categories, c.String())
	}
	if len(categories) == 0 {
		return ErrNoCategories
	}
	return uc.store.SetOnline(ctx, actor.ID, categories, loc)
}

func (uc *availabilityUseCaseImpl) GoOffline(ctx context.Context, actor user.Actor) error {
	if !actor.IsProvider() {
		return errs.Mark(errs.Newf("%s cannot publish availability", actor.Role), errs.ErrForbidden)
	}
	return uc.store.SetOffline(ctx, actor.ID)
}
