package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/cache"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/outbound"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/provider"
)

// fakeBackend records calls and returns canned responses.
type fakeBackend struct {
	searchResult *outbound.SearchResult
	searchErr    error
	airlines     []outbound.Airline
	airlinesErr  error
	pnrDates     []string

	bookingID  int64
	bookingErr error
	bookingReq *outbound.BookingRequest

	phonePeURL    string
	phonePeErr    error
	phonePeAmount float64
	phonePeCalled bool

	cashfreeURL      string
	cashfreeErr      error
	cashfreeAmount   float64
	cashfreeCustomer outbound.GatewayCustomer
	cashfreeCalled   bool

	atomPage   string
	atomErr    error
	atomCalled bool

	modules []outbound.PaymentModule
}

func (f *fakeBackend) SearchFlights(_ context.Context, _ outbound.SearchRequest) (*outbound.SearchResult, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.searchResult == nil {
		return &outbound.SearchResult{}, nil
	}
	return f.searchResult, nil
}

func (f *fakeBackend) Airlines(_ context.Context) ([]outbound.Airline, error) {
	if f.airlinesErr != nil {
		return nil, f.airlinesErr
	}
	return f.airlines, nil
}

func (f *fakeBackend) AvailablePNRDates(_ context.Context, _, _ string) ([]string, error) {
	return f.pnrDates, nil
}

func (f *fakeBackend) CreateBooking(_ context.Context, req outbound.BookingRequest) (int64, error) {
	f.bookingReq = &req
	if f.bookingErr != nil {
		return 0, f.bookingErr
	}
	return f.bookingID, nil
}

func (f *fakeBackend) PaymentModules(_ context.Context) ([]outbound.PaymentModule, error) {
	return f.modules, nil
}

func (f *fakeBackend) PhonePeURL(_ context.Context, amountMinor float64, _ int64) (string, error) {
	f.phonePeCalled = true
	f.phonePeAmount = amountMinor
	return f.phonePeURL, f.phonePeErr
}

func (f *fakeBackend) CashfreeURL(_ context.Context, amount float64, _ int64, customer outbound.GatewayCustomer) (string, error) {
	f.cashfreeCalled = true
	f.cashfreeAmount = amount
	f.cashfreeCustomer = customer
	return f.cashfreeURL, f.cashfreeErr
}

func (f *fakeBackend) AtomPage(_ context.Context, _ float64, _, _ int64) (string, error) {
	f.atomCalled = true
	return f.atomPage, f.atomErr
}

var errBackendDown = errors.New("backend down")

func newTestUsecase(backend Backend) *Usecase {
	return New(Dependency{
		Backend:   backend,
		Providers: provider.All(),
		Cache:     cache.New(CloneSearchOutput),
		CacheTTL:  time.Minute,
	})
}
