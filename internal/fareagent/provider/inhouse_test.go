package provider

import (
	"testing"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalDecodeOffers(t *testing.T) {
	raw := `[{
		"pnr_no": "PNR1",
		"pnr_id": 10,
		"flight_id": 55,
		"segments": [{"origin":"DEL","destination":"BOM","depDate":"2026-09-10","depTime":"06:15","arrDate":"2026-09-10","arrTime":"08:30","airline_code":"6E","flightNo":"6E-203","baggage":"15kg"}],
		"adult_price": 5000,
		"child_price": 3000,
		"infant_price": 1500,
		"fare_type": "Refundable",
		"available_seats": 4,
		"requirements": "[\"require_dob_adt\"]",
		"isinternational": false,
		"pnr_date": "2026-09-10",
		"supplier_id": 3
	}]`

	offers := NewInternalProvider().DecodeOffers(raw)
	require.Len(t, offers, 1)

	offer := offers[0]
	assert.Equal(t, entity.SourceInternal, offer.Source)
	assert.Equal(t, "PNR1", offer.PNRNo)
	assert.Equal(t, int64(10), offer.PNRID)
	assert.Equal(t, int64(55), offer.FlightID)
	assert.Equal(t, 5000.0, offer.AdultPrice)
	assert.Equal(t, 3000.0, offer.ChildPrice)
	assert.Equal(t, 1500.0, offer.InfantPrice)
	assert.Equal(t, int64(3), offer.SupplierID)
	require.Len(t, offer.Segments, 1)
	assert.Equal(t, "6E-203", offer.Segments[0].FlightNo)
	assert.True(t, offer.RequiresDOB(entity.PassengerAdult))
}

func TestInternalDecodeOffersEmptyAndGarbage(t *testing.T) {
	p := NewInternalProvider()

	assert.Empty(t, p.DecodeOffers(""))
	assert.Empty(t, p.DecodeOffers("   "))
	assert.Empty(t, p.DecodeOffers("{{{"))
}

func TestInternalBookingPayloadIsNil(t *testing.T) {
	payload, err := NewInternalProvider().BookingPayload(entity.BookingSubmission{})
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestAllMergeOrder(t *testing.T) {
	sources := []entity.SourceProvider{}
	for _, p := range All() {
		sources = append(sources, p.Source())
	}
	assert.Equal(t, []entity.SourceProvider{
		entity.SourceInternal,
		entity.SourceAirIQ,
		entity.SourceEase2Fly,
		entity.SourceTravelogy,
	}, sources)
}
