package response

import (
	"home-dispatch/internal/usecase/commands"
	"home-dispatch/internal/usecase/queries"
)

type CreateBookingResponse struct {
	Booking  *queries.BookingView     `json:"booking"`
	Dispatch commands.DispatchOutcome `json:"dispatch"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{Booking: r.Booking, Dispatch: r.Dispatch}
}

type BookingListResponse struct {
	Bookings   []*queries.BookingView `json:"bookings"`
	NextCursor *string                `json:"next_cursor"`
}

func FromBookingList(items []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	if items == nil {
		items = []*queries.BookingView{}
	}
	resp := &BookingListResponse{Bookings: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

type EventListResponse struct {
	Events []*queries.LifecycleEventView `json:"events"`
}

func FromEventList(items []*queries.LifecycleEventView) *EventListResponse {
	if items == nil {
		items = []*queries.LifecycleEventView{}
	}
	return &EventListResponse{Events: items}
}
