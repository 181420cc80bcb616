package request

import "home-dispatch/internal/usecase/commands"

type ReviewRequest struct {
	Rating  *int   `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

func (r ReviewRequest) ToInput() commands.SubmitReviewInput {
	return commands.SubmitReviewInput{Rating: *r.Rating, Comment: r.Comment}
}
