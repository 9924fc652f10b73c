package outbound

import (
	"context"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
)

// BookingRequest is the booking-creation body. OutsideBookingData and
// BookingData are opaque serialized blobs, not structured JSON; that is
// the backend's contract, so they travel as strings.
type BookingRequest struct {
	ID                         int64              `json:"id,omitempty"`
	AgentID                    int64              `json:"agent_id"`
	PNRNo                      string             `json:"pnr_no,omitempty"`
	PNRID                      int64              `json:"pnr_id,omitempty"`
	BookingPhone               string             `json:"booking_phone"`
	BookingEmail               string             `json:"booking_email"`
	DisplayFarePrice           string             `json:"display_fare_price"`
	BookingPrice               string             `json:"booking_price"`
	PaymentMethod              string             `json:"payment_method"`
	Travellers                 string             `json:"travellers"`
	PaxData                    []entity.Passenger `json:"pax_data"`
	SupplierID                 *int64             `json:"supplier_id"`
	OutsideAPIProvider         *string            `json:"outside_api_provider"`
	OutsideAPIProviderTicketID *string            `json:"outside_api_provider_ticket_id"`
	OutsideBookingData         string             `json:"outside_booking_data"`
	BookingData                string             `json:"booking_data"`
}

// CreateBooking submits one booking attempt and returns the backend's
// booking id.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (int64, error) {
	var resp struct {
		Status    bool   `json:"status"`
		Message   string `json:"message"`
		BookingID int64  `json:"booking_id"`
	}
	if err := c.post(ctx, pathBookingRequest, req, &resp); err != nil {
		return 0, err
	}
	if !resp.Status {
		return 0, rejected(ctx, pathBookingRequest, resp.Message)
	}
	return resp.BookingID, nil
}

type PaymentModule struct {
	ID            int    `json:"id"`
	PaymentModule string `json:"payment_module"`
}

// PaymentModules lists the online gateways the agent may choose from.
func (c *Client) PaymentModules(ctx context.Context) ([]PaymentModule, error) {
	var resp struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Result  []PaymentModule `json:"result"`
	}
	if err := c.post(ctx, pathPaymentModules, struct{}{}, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, rejected(ctx, pathPaymentModules, resp.Message)
	}
	return resp.Result, nil
}
