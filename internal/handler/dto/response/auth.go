package response

import "home-dispatch/internal/domain/user"

type MeResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func FromActor(a user.Actor) *MeResponse {
	return &MeResponse{UserID: a.ID.String(), Role: a.Role.String()}
}
