package response

import "home-dispatch/internal/usecase/queries"

type ReviewListResponse struct {
	Reviews    []*queries.ReviewView `json:"reviews"`
	NextCursor *string               `json:"next_cursor"`
}

func FromReviewList(items []*queries.ReviewView, next *queries.Cursor) *ReviewListResponse {
	if items == nil {
		items = []*queries.ReviewView{}
	}
	resp := &ReviewListResponse{Reviews: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
