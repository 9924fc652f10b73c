package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/outbound"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/provider"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/traveller"
	"github.com/shandysiswandi/gofareagent/internal/pkg/pkgerror"
)

type BookInput struct {
	Offer          *entity.FlightOffer
	Passengers     []entity.Passenger
	Travellers     string
	MobileNo       string
	EmailID        string
	PaymentMode    string
	PaymentGateway int
	Agent          entity.AgentContact
}

// BookOutput reports one booking attempt. BookingID is set whenever the
// backend accepted the booking; GatewayError is set when the booking
// exists but the payment hand-off failed, so the agent can retry
// payment without re-booking.
type BookOutput struct {
	BookingID    int64  `json:"booking_id"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	PaymentPage  string `json:"payment_page,omitempty"`
	GatewayError string `json:"gateway_error,omitempty"`
}

// Book submits one booking: builds the supplier payload, records the
// booking on the backend, then hands off to the selected payment
// gateway unless the agent pays from deposit.
func (u *Usecase) Book(ctx context.Context, in BookInput) (*BookOutput, error) {
	if in.Offer == nil {
		return nil, pkgerror.NewBusiness("no flight selected", pkgerror.CodeInvalidInput)
	}
	if err := validatePassengers(in.Offer, in.Passengers, in.Travellers); err != nil {
		return nil, err
	}

	p, ok := provider.BySource(in.Offer.Source)
	if !ok {
		return nil, pkgerror.NewBusiness("unknown flight source", pkgerror.CodeInvalidInput)
	}

	sub := entity.BookingSubmission{
		Offer:          in.Offer,
		Passengers:     in.Passengers,
		Travellers:     in.Travellers,
		MobileNo:       in.MobileNo,
		EmailID:        in.EmailID,
		TotalPrice:     Total(in.Offer, in.Travellers),
		PaymentMode:    in.PaymentMode,
		PaymentGateway: in.PaymentGateway,
		Agent:          in.Agent,
	}
	sub.DisplayPrice = formatAmount(DisplayTotal(in.Offer, in.Travellers, 0))

	payload, err := p.BookingPayload(sub)
	if err != nil {
		return nil, err
	}

	req, err := buildBookingRequest(sub, payload)
	if err != nil {
		return nil, err
	}

	bookingID, err := u.backend.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	out := &BookOutput{BookingID: bookingID}
	if in.PaymentMode == entity.PaymentModeDeposit {
		return out, nil
	}

	if err := u.startPayment(ctx, in, bookingID, sub.TotalPrice, out); err != nil {
		// The booking already exists; surface the gateway failure
		// without discarding it.
		slog.ErrorContext(ctx, "payment hand-off failed after booking",
			"booking_id", bookingID,
			"gateway", in.PaymentGateway,
			"error", err,
		)
		out.GatewayError = pkgerror.UserMessage(err)
	}
	return out, nil
}

// PaymentModules lists the online gateways available to the agent.
func (u *Usecase) PaymentModules(ctx context.Context) ([]outbound.PaymentModule, error) {
	return u.backend.PaymentModules(ctx)
}

func (u *Usecase) startPayment(ctx context.Context, in BookInput, bookingID int64, total float64, out *BookOutput) error {
	switch in.PaymentGateway {
	case entity.GatewayRedirectPrimary:
		url, err := u.backend.PhonePeURL(ctx, total*100, bookingID)
		if err != nil {
			return err
		}
		out.RedirectURL = url
	case entity.GatewayRedirectSecondary:
		customer := outbound.GatewayCustomer{
			Phone: in.Agent.MobileNo,
			Email: in.Agent.EmailID,
			Name:  strings.TrimSpace(in.Agent.FirstName + " " + in.Agent.LastName),
		}
		url, err := u.backend.CashfreeURL(ctx, total, bookingID, customer)
		if err != nil {
			return err
		}
		out.RedirectURL = url
	case entity.GatewayInlinePage:
		page, err := u.backend.AtomPage(ctx, total, bookingID, in.Agent.ID)
		if err != nil {
			return err
		}
		out.PaymentPage = page
	default:
		return pkgerror.NewBusiness("unknown payment gateway", pkgerror.CodeInvalidInput)
	}
	return nil
}

func buildBookingRequest(sub entity.BookingSubmission, payload any) (outbound.BookingRequest, error) {
	offer := sub.Offer

	outsideBlob, err := json.Marshal(payload)
	if err != nil {
		return outbound.BookingRequest{}, fmt.Errorf("encode supplier payload: %w", err)
	}
	bookingBlob, err := json.Marshal(offer)
	if err != nil {
		return outbound.BookingRequest{}, fmt.Errorf("encode booking data: %w", err)
	}

	req := outbound.BookingRequest{
		AgentID:            sub.Agent.ID,
		PNRNo:              offer.PNRNo,
		PNRID:              offer.PNRID,
		BookingPhone:       sub.MobileNo,
		BookingEmail:       sub.EmailID,
		DisplayFarePrice:   sub.DisplayPrice,
		BookingPrice:       formatAmount(sub.TotalPrice),
		PaymentMethod:      sub.PaymentMode,
		Travellers:         sub.Travellers,
		PaxData:            sub.Passengers,
		OutsideBookingData: string(outsideBlob),
		BookingData:        string(bookingBlob),
	}

	if offer.Source == entity.SourceInternal {
		if offer.SupplierID != 0 {
			supplierID := offer.SupplierID
			req.SupplierID = &supplierID
		}
		return req, nil
	}

	source := string(offer.Source)
	req.OutsideAPIProvider = &source
	if offer.Ref.TicketID != "" {
		ticketID := offer.Ref.TicketID
		req.OutsideAPIProviderTicketID = &ticketID
	}
	return req, nil
}

// validatePassengers checks the form against the traveller counts and
// the offer's per-type document requirements.
func validatePassengers(offer *entity.FlightOffer, passengers []entity.Passenger, travellers string) error {
	c := traveller.Parse(travellers)
	want := c.Adults + c.Children + c.Infants
	if want == 0 {
		return pkgerror.NewBusiness("traveller counts are required", pkgerror.CodeInvalidInput)
	}
	if len(passengers) != want {
		return pkgerror.NewBusiness(
			fmt.Sprintf("expected %d passengers, got %d", want, len(passengers)),
			pkgerror.CodeInvalidInput,
		)
	}

	for i, pax := range passengers {
		if pax.FirstName == "" || pax.LastName == "" {
			return pkgerror.NewBusiness(fmt.Sprintf("passenger %d: name is required", i+1), pkgerror.CodeInvalidInput)
		}
		if offer.RequiresDOB(pax.Type) && pax.DOB == "" {
			return pkgerror.NewBusiness(fmt.Sprintf("passenger %d: date of birth is required", i+1), pkgerror.CodeInvalidInput)
		}
		if offer.RequiresPassport(pax.Type) && pax.PassportNo == "" {
			return pkgerror.NewBusiness(fmt.Sprintf("passenger %d: passport number is required", i+1), pkgerror.CodeInvalidInput)
		}
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
