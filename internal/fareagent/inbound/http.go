package inbound

import (
	"context"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/outbound"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/usecase"
	"github.com/shandysiswandi/gofareagent/internal/pkg/pkgrouter"
)

type uc interface {
	Search(ctx context.Context, in usecase.SearchInput) (*usecase.SearchOutput, error)
	Book(ctx context.Context, in usecase.BookInput) (*usecase.BookOutput, error)
	PNRDates(ctx context.Context, origin, destination string) ([]string, error)
	PaymentModules(ctx context.Context) ([]outbound.PaymentModule, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/flights/search", end.Search)
	r.POST("/bookings", end.Book)
	r.GET("/flights/pnr-dates", end.PNRDates)
	r.GET("/payment-modules", end.PaymentModules)
}
