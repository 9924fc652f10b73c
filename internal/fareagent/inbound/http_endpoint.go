package inbound

import (
	"context"
	"net/http"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Search(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseSearchInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Search(ctx, input)
	if err != nil {
		return nil, err
	}

	return SearchResponse{
		Criteria: output.Criteria,
		Metadata: output.Metadata,
		Offers:   output.Offers,
	}, nil
}

func (h *HTTPEndpoint) Book(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseBookInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Book(ctx, input)
	if err != nil {
		return nil, err
	}

	return BookResponse{
		BookingID: output.BookingID,
		Payment:   mapPayment(input.PaymentMode, output),
	}, nil
}

func (h *HTTPEndpoint) PNRDates(ctx context.Context, r *http.Request) (any, error) {
	origin, destination, err := parsePNRDatesQuery(r)
	if err != nil {
		return nil, err
	}

	dates, err := h.uc.PNRDates(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	return PNRDatesResponse{
		Origin:      origin,
		Destination: destination,
		Dates:       dates,
	}, nil
}

func (h *HTTPEndpoint) PaymentModules(ctx context.Context, _ *http.Request) (any, error) {
	return h.uc.PaymentModules(ctx)
}
