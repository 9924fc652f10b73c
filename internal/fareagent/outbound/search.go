package outbound

import (
	"context"
)

// SearchRequest mirrors the backend's flight-list body. Seats is the
// formatted travellers display string; Type distinguishes one-way
// ("single") searches.
type SearchRequest struct {
	OriginAPT    string `json:"origin_apt"`
	DestinAPT    string `json:"destin_apt"`
	BoardingDate string `json:"boarding_date"`
	Seats        string `json:"seats"`
	Type         string `json:"type"`
}

// SearchResult carries one serialized offer array per supplier. Each
// field is a JSON string (or empty when the supplier returned nothing);
// decoding them is the provider adapters' job, not the client's.
type SearchResult struct {
	InnerFlights string `json:"innerFlights"`
	AirIQ        string `json:"AIR_IQ"`
	Ease2Fly     string `json:"EASE2FLY"`
	Travelogy    string `json:"TRAVELOGY"`
}

// SearchFlights runs one flight search against the backend.
func (c *Client) SearchFlights(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	var resp struct {
		Status  bool         `json:"status"`
		Message string       `json:"message"`
		Result  SearchResult `json:"result"`
	}
	if err := c.post(ctx, pathFlightList, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, rejected(ctx, pathFlightList, resp.Message)
	}
	return &resp.Result, nil
}

type Airline struct {
	AirlineName string `json:"airline_name"`
	AirlineCode string `json:"airline_code"`
	AirlineLogo string `json:"airline_logo"`
}

// Airlines returns the backend's airline directory, used to backfill
// segment logos the suppliers leave blank.
func (c *Client) Airlines(ctx context.Context) ([]Airline, error) {
	var resp struct {
		Status  bool      `json:"status"`
		Message string    `json:"message"`
		Result  []Airline `json:"result"`
	}
	if err := c.post(ctx, pathAirlines, struct{}{}, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, rejected(ctx, pathAirlines, resp.Message)
	}
	return resp.Result, nil
}

// AvailablePNRDates lists the dates within the next two months that have
// in-house inventory for the route.
func (c *Client) AvailablePNRDates(ctx context.Context, originAPT, destinAPT string) ([]string, error) {
	body := map[string]string{
		"origin_apt": originAPT,
		"destin_apt": destinAPT,
	}
	var resp struct {
		Status  bool     `json:"status"`
		Message string   `json:"message"`
		Result  []string `json:"result"`
	}
	if err := c.post(ctx, pathAvailablePNRDates, body, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, rejected(ctx, pathAvailablePNRDates, resp.Message)
	}
	return resp.Result, nil
}
