package inbound

import (
	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/usecase"
)

type SearchRequest struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	BoardingDate string `json:"boarding_date"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Infants      int    `json:"infants"`
	TripType     string `json:"trip_type,omitempty"`
}

type SearchResponse struct {
	Criteria usecase.SearchCriteria `json:"search_criteria"`
	Metadata usecase.SearchMetadata `json:"metadata"`
	Offers   []entity.FlightOffer   `json:"offers"`
}

type BookRequest struct {
	Offer          *entity.FlightOffer `json:"offer"`
	Passengers     []entity.Passenger  `json:"passengers"`
	Travellers     string              `json:"travellers"`
	MobileNo       string              `json:"mobile_no"`
	EmailID        string              `json:"email_id"`
	PaymentMode    string              `json:"payment_mode"`
	PaymentGateway int                 `json:"payment_gateway,omitempty"`
	Agent          entity.AgentContact `json:"agent"`
}

// PaymentState values in BookResponse.
const (
	PaymentNotRequired = "not_required"
	PaymentRedirect    = "redirect"
	PaymentPage        = "page"
	PaymentFailed      = "failed"
)

type PaymentResponse struct {
	State       string `json:"state"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Page        string `json:"page,omitempty"`
	Error       string `json:"error,omitempty"`
}

type BookResponse struct {
	BookingID int64           `json:"booking_id"`
	Payment   PaymentResponse `json:"payment"`
}

type PNRDatesResponse struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Dates       []string `json:"dates"`
}
