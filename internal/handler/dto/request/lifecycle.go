package request

import (
	"home-dispatch/internal/domain/booking"
	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
)

type TransitionRequest struct {
	Status         string  `json:"status" binding:"required"`
	OTP            string  `json:"otp" binding:"omitempty,len=6,numeric"`
	FinalCost      *int64  `json:"final_cost" binding:"omitempty,gte=0"`
	ExpectedStatus *string `json:"expected_status"`
	Reason         string  `json:"reason" binding:"max=500"`
}

func (r TransitionRequest) ToCommand(bookingID uuid.UUID, actor user.Actor) (commands.TransitionCommand, error) {
	target, err := booking.ParseStatus(r.Status)
	if err != nil {
		return commands.TransitionCommand{}, err
	}
	cmd := commands.TransitionCommand{
		BookingID: bookingID,
		Target:    target,
		Actor:     actor,
		OTP:       r.OTP,
		FinalCost: r.FinalCost,
		Reason:    r.Reason,
	}
	if r.ExpectedStatus != nil {
		expected, err := booking.ParseStatus(*r.ExpectedStatus)
		if err != nil {
			return commands.TransitionCommand{}, err
		}
		cmd.ExpectedStatus = &expected
	}
	return cmd, nil
}
