package response

import (
	"home-dispatch/internal/usecase/queries"
)

type RequestListResponse struct {
	Requests []*queries.RequestView `json:"requests"`
}

func FromRequestList(items []*queries.RequestView) *RequestListResponse {
	if items == nil {
		items = []*queries.RequestView{}
	}
	return &RequestListResponse{Requests: items}
}

type OfferListResponse struct {
	Offers []*queries.OfferView `json:"offers"`
}

func FromOfferList(items []*queries.OfferView) *OfferListResponse {
	if items == nil {
		items = []*queries.OfferView{}
	}
	return &OfferListResponse{Offers: items}
}
