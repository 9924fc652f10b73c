package provider

import (
	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
)

// InternalProvider is the in-house inventory. Its offers carry flat
// per-passenger prices and a PNR, and bookings need no outbound payload
// beyond the standard booking fields.
type InternalProvider struct{}

func NewInternalProvider() *InternalProvider {
	return &InternalProvider{}
}

func (*InternalProvider) Source() entity.SourceProvider {
	return entity.SourceInternal
}

type internalRow struct {
	PNRNo           string       `json:"pnr_no"`
	PNRID           int64        `json:"pnr_id"`
	FlightID        int64        `json:"flight_id"`
	Segments        []segmentRow `json:"segments"`
	AdultPrice      float64      `json:"adult_price"`
	ChildPrice      float64      `json:"child_price"`
	InfantPrice     float64      `json:"infant_price"`
	FareType        string       `json:"fare_type"`
	AvailableSeats  int          `json:"available_seats"`
	Requirements    string       `json:"requirements"`
	IsInternational bool         `json:"isinternational"`
	PNRDate         string       `json:"pnr_date"`
	SupplierID      int64        `json:"supplier_id"`
}

func (p *InternalProvider) DecodeOffers(raw string) []entity.FlightOffer {
	rows := unmarshalRows[internalRow](p.Source(), raw)
	offers := make([]entity.FlightOffer, 0, len(rows))
	for _, r := range rows {
		offers = append(offers, entity.FlightOffer{
			PNRNo:           r.PNRNo,
			PNRID:           r.PNRID,
			FlightID:        r.FlightID,
			Source:          p.Source(),
			Segments:        mapSegments(r.Segments),
			AdultPrice:      r.AdultPrice,
			ChildPrice:      r.ChildPrice,
			InfantPrice:     r.InfantPrice,
			FareType:        r.FareType,
			AvailableSeats:  r.AvailableSeats,
			Requirements:    r.Requirements,
			IsInternational: r.IsInternational,
			PNRDate:         r.PNRDate,
			SupplierID:      r.SupplierID,
		})
	}
	return offers
}

// BookingPayload is nil for in-house offers; the booking backend owns
// the whole flow for its own inventory.
func (*InternalProvider) BookingPayload(entity.BookingSubmission) (any, error) {
	return nil, nil
}
