package inbound

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/traveller"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/usecase"
	"github.com/shandysiswandi/gofareagent/internal/pkg/pkgerror"
)

func parseSearchInput(r *http.Request) (usecase.SearchInput, error) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return usecase.SearchInput{}, pkgerror.NewBusiness("invalid request body", pkgerror.CodeInvalidInput)
	}

	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Origin == "" || req.Destination == "" {
		return usecase.SearchInput{}, pkgerror.NewBusiness("origin and destination are required", pkgerror.CodeInvalidInput)
	}
	if strings.EqualFold(req.Origin, req.Destination) {
		return usecase.SearchInput{}, pkgerror.NewBusiness("origin and destination must differ", pkgerror.CodeInvalidInput)
	}

	if _, err := time.Parse("2006-01-02", req.BoardingDate); err != nil {
		return usecase.SearchInput{}, pkgerror.NewBusiness("invalid boarding_date, expected YYYY-MM-DD", pkgerror.CodeInvalidInput)
	}

	if req.Adults < 1 {
		return usecase.SearchInput{}, pkgerror.NewBusiness("at least one adult is required", pkgerror.CodeInvalidInput)
	}
	if req.Children < 0 || req.Infants < 0 {
		return usecase.SearchInput{}, pkgerror.NewBusiness("traveller counts must not be negative", pkgerror.CodeInvalidInput)
	}
	if req.Infants > req.Adults {
		return usecase.SearchInput{}, pkgerror.NewBusiness("each infant must travel with an adult", pkgerror.CodeInvalidInput)
	}

	return usecase.SearchInput{
		Origin:       strings.ToUpper(req.Origin),
		Destination:  strings.ToUpper(req.Destination),
		BoardingDate: req.BoardingDate,
		Travellers: traveller.Counts{
			Adults:   req.Adults,
			Children: req.Children,
			Infants:  req.Infants,
		},
		TripType: strings.ToLower(strings.TrimSpace(req.TripType)),
	}, nil
}

func parseBookInput(r *http.Request) (usecase.BookInput, error) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return usecase.BookInput{}, pkgerror.NewBusiness("invalid request body", pkgerror.CodeInvalidInput)
	}

	if req.Offer == nil {
		return usecase.BookInput{}, pkgerror.NewBusiness("offer is required", pkgerror.CodeInvalidInput)
	}
	if strings.TrimSpace(req.MobileNo) == "" || strings.TrimSpace(req.EmailID) == "" {
		return usecase.BookInput{}, pkgerror.NewBusiness("mobile_no and email_id are required", pkgerror.CodeInvalidInput)
	}

	switch req.PaymentMode {
	case entity.PaymentModeDeposit:
	case entity.PaymentModeOnline:
		if req.PaymentGateway == 0 {
			return usecase.BookInput{}, pkgerror.NewBusiness("payment_gateway is required for online payment", pkgerror.CodeInvalidInput)
		}
	default:
		return usecase.BookInput{}, pkgerror.NewBusiness("payment_mode must be deposit or online", pkgerror.CodeInvalidInput)
	}

	return usecase.BookInput{
		Offer:          req.Offer,
		Passengers:     req.Passengers,
		Travellers:     req.Travellers,
		MobileNo:       strings.TrimSpace(req.MobileNo),
		EmailID:        strings.TrimSpace(req.EmailID),
		PaymentMode:    req.PaymentMode,
		PaymentGateway: req.PaymentGateway,
		Agent:          req.Agent,
	}, nil
}

func parsePNRDatesQuery(r *http.Request) (string, string, error) {
	q := r.URL.Query()
	origin := strings.ToUpper(strings.TrimSpace(q.Get("origin")))
	destination := strings.ToUpper(strings.TrimSpace(q.Get("destination")))
	if origin == "" || destination == "" {
		return "", "", pkgerror.NewBusiness("origin and destination are required", pkgerror.CodeInvalidInput)
	}
	return origin, destination, nil
}

// mapPayment folds the booking output's payment fields into the
// response state machine.
func mapPayment(mode string, out *usecase.BookOutput) PaymentResponse {
	if mode == entity.PaymentModeDeposit {
		return PaymentResponse{State: PaymentNotRequired}
	}
	if out.GatewayError != "" {
		return PaymentResponse{State: PaymentFailed, Error: out.GatewayError}
	}
	if out.PaymentPage != "" {
		return PaymentResponse{State: PaymentPage, Page: out.PaymentPage}
	}
	return PaymentResponse{State: PaymentRedirect, RedirectURL: out.RedirectURL}
}
