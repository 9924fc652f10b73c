package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/cache"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/outbound"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/provider"
)

// Backend is the slice of the booking-backend client the usecase needs.
type Backend interface {
	SearchFlights(ctx context.Context, req outbound.SearchRequest) (*outbound.SearchResult, error)
	Airlines(ctx context.Context) ([]outbound.Airline, error)
	AvailablePNRDates(ctx context.Context, originAPT, destinAPT string) ([]string, error)
	CreateBooking(ctx context.Context, req outbound.BookingRequest) (int64, error)
	PaymentModules(ctx context.Context) ([]outbound.PaymentModule, error)
	PhonePeURL(ctx context.Context, amountMinor float64, bookingID int64) (string, error)
	CashfreeURL(ctx context.Context, amount float64, bookingID int64, customer outbound.GatewayCustomer) (string, error)
	AtomPage(ctx context.Context, amount float64, bookingID, agentID int64) (string, error)
}

type Dependency struct {
	Backend   Backend
	Providers []provider.Provider
	Cache     *cache.Cache[*SearchOutput]
	CacheTTL  time.Duration
}

type Usecase struct {
	backend   Backend
	providers []provider.Provider
	cache     *cache.Cache[*SearchOutput]
	cacheTTL  time.Duration
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		backend:   dep.Backend,
		providers: dep.Providers,
		cache:     dep.Cache,
		cacheTTL:  dep.CacheTTL,
	}
}
