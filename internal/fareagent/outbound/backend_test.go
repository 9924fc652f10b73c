package outbound

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/gofareagent/internal/pkg/pkgerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFlights(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/agent/flight-list", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "ok",
			"result": map[string]string{
				"innerFlights": `[{"pnr_no":"PNR1"}]`,
				"AIR_IQ":       `[]`,
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token")
	result, err := c.SearchFlights(context.Background(), SearchRequest{
		OriginAPT:    "DEL",
		DestinAPT:    "BOM",
		BoardingDate: "2026-09-10",
		Seats:        "2 Adults, 0 Children, 0 Infants",
		Type:         "single",
	})
	require.NoError(t, err)

	assert.Equal(t, "DEL", gotBody["origin_apt"])
	assert.Equal(t, "single", gotBody["type"])
	assert.Equal(t, `[{"pnr_no":"PNR1"}]`, result.InnerFlights)
	assert.Equal(t, `[]`, result.AirIQ)
	assert.Empty(t, result.Travelogy)
}

func TestSearchFlightsApplicationRejection(t *testing.T) {
	// HTTP 200 with status:false is a logical failure, not a transport
	// one; the server's message must survive.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":  false,
			"message": "no flights on this route",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.SearchFlights(context.Background(), SearchRequest{})
	require.Error(t, err)

	var be *pkgerror.Business
	require.True(t, errors.As(err, &be))
	assert.Equal(t, pkgerror.CodeUpstreamRejected, be.Code)
	assert.Equal(t, "no flights on this route", be.Message)
}

func TestSearchFlightsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.SearchFlights(context.Background(), SearchRequest{})
	require.Error(t, err)

	var be *pkgerror.Business
	assert.False(t, errors.As(err, &be), "transport failures are not business errors")
}

func TestCreateBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		// The blobs must arrive as strings, not nested objects.
		_, isString := body["booking_data"].(string)
		assert.True(t, isString)
		_, isString = body["outside_booking_data"].(string)
		assert.True(t, isString)

		json.NewEncoder(w).Encode(map[string]any{
			"status":     true,
			"booking_id": 4411,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	id, err := c.CreateBooking(context.Background(), BookingRequest{
		AgentID:            7,
		BookingPrice:       "13000",
		OutsideBookingData: "null",
		BookingData:        `{"pnr_no":"PNR1"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4411), id)
}

func TestPhonePeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 1300000.0, body["amount"])
		assert.Equal(t, 4411.0, body["book_id"])

		json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"url":    map[string]string{"redirectUrl": "https://pay.example/redirect"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	url, err := c.PhonePeURL(context.Background(), 1300000, 4411)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/redirect", url)
}

func TestCashfreeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Booking", body["purpose"])
		customer := body["customer"].(map[string]any)
		assert.Equal(t, "Asha Verma", customer["name"])

		json.NewEncoder(w).Encode(map[string]any{"status": true, "url": "https://cf.example/pay"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	url, err := c.CashfreeURL(context.Background(), 13000, 4411, GatewayCustomer{
		Phone: "9876543210", Email: "asha@example.com", Name: "Asha Verma",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cf.example/pay", url)
}

func TestAtomPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": true, "result": "<html>pay</html>"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	page, err := c.AtomPage(context.Background(), 13000, 4411, 7)
	require.NoError(t, err)
	assert.Equal(t, "<html>pay</html>", page)
}
