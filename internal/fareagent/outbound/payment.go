package outbound

import (
	"context"
)

// GatewayCustomer identifies the payer on the secondary redirect
// gateway.
type GatewayCustomer struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PhonePeURL requests a redirect URL from the primary gateway. The
// amount is in minor units (rupees x 100); that convention belongs to
// this gateway alone.
func (c *Client) PhonePeURL(ctx context.Context, amountMinor float64, bookingID int64) (string, error) {
	body := map[string]any{
		"amount":  amountMinor,
		"book_id": bookingID,
	}
	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		URL     struct {
			RedirectURL string `json:"redirectUrl"`
		} `json:"url"`
	}
	if err := c.post(ctx, pathPhonePeURL, body, &resp); err != nil {
		return "", err
	}
	if !resp.Status {
		return "", rejected(ctx, pathPhonePeURL, resp.Message)
	}
	return resp.URL.RedirectURL, nil
}

// CashfreeURL requests a redirect URL from the secondary gateway; amount
// in major units.
func (c *Client) CashfreeURL(ctx context.Context, amount float64, bookingID int64, customer GatewayCustomer) (string, error) {
	body := map[string]any{
		"amount":   amount,
		"book_id":  bookingID,
		"purpose":  "Booking",
		"customer": customer,
	}
	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		URL     string `json:"url"`
	}
	if err := c.post(ctx, pathCashfreePayment, body, &resp); err != nil {
		return "", err
	}
	if !resp.Status {
		return "", rejected(ctx, pathCashfreePayment, resp.Message)
	}
	return resp.URL, nil
}

// AtomPage requests the inline payment page from the third gateway;
// amount in major units. The result is an HTML document the caller
// renders directly.
func (c *Client) AtomPage(ctx context.Context, amount float64, bookingID, agentID int64) (string, error) {
	body := map[string]any{
		"amount":     amount,
		"booking_id": bookingID,
		"agent_id":   agentID,
	}
	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Result  string `json:"result"`
	}
	if err := c.post(ctx, pathAtomPayment, body, &resp); err != nil {
		return "", err
	}
	if !resp.Status {
		return "", rejected(ctx, pathAtomPayment, resp.Message)
	}
	return resp.Result, nil
}
