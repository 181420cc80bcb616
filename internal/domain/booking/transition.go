package booking

import (
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/pkg/errs"
)

var allowedTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusEnRoute, StatusCancelled},
	StatusEnRoute:    {StatusInProgress},
	StatusInProgress: {StatusCompleted},
}

func CanTransition(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidateTransition(from, to Status) error {
	if !to.IsValid() {
		return errs.Mark(errs.Newf("unknown target status %q", to), errs.ErrInvalidTransition)
	}
	if !CanTransition(from, to) {
		return errs.Mark(errs.Newf("transition %s -> %s is not allowed", from, to), errs.ErrInvalidTransition)
	}
	return nil
}

// AuthorizeTransition checks that actor may drive b to target. It assumes the
// edge itself has already been validated.
func (b *Booking) AuthorizeTransition(actor user.Actor, target Status) error {
	switch target {
	case StatusConfirmed:
		if actor.IsProvider() {
			return nil
		}
	case StatusEnRoute, StatusInProgress, StatusCompleted:
		if actor.IsProvider() && b.IsAssignedTo(actor.ID) {
			return nil
		}
	case StatusCancelled:
		switch {
		case actor.IsAdmin():
			return nil
		case actor.IsCustomer() && b.customerID == actor.ID:
			return nil
		case actor.IsProvider() && b.IsAssignedTo(actor.ID):
			return nil
		}
	}
	return errs.Mark(errs.Newf("%s %s cannot move booking to %s", actor.Role, actor.ID, target), errs.ErrForbidden)
}
