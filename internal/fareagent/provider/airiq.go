package provider

import (
	"strconv"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
)

// AirIQProvider adapts the AIR_IQ aggregator. Its booking contract wants
// passengers split into per-type arrays, dates with slash separators, and
// every count serialized as a string.
type AirIQProvider struct{}

func NewAirIQProvider() *AirIQProvider {
	return &AirIQProvider{}
}

func (*AirIQProvider) Source() entity.SourceProvider {
	return entity.SourceAirIQ
}

type airIQRow struct {
	TicketID        string       `json:"ticket_id"`
	Segments        []segmentRow `json:"segments"`
	AdultPrice      float64      `json:"adult_price"`
	ChildPrice      float64      `json:"child_price"`
	InfantPrice     float64      `json:"infant_price"`
	Requirements    string       `json:"requirements"`
	IsInternational bool         `json:"isinternational"`
	PNRDate         string       `json:"pnr_date"`
	SupplierID      int64        `json:"supplier_id"`
}

func (p *AirIQProvider) DecodeOffers(raw string) []entity.FlightOffer {
	rows := unmarshalRows[airIQRow](p.Source(), raw)
	offers := make([]entity.FlightOffer, 0, len(rows))
	for _, r := range rows {
		offers = append(offers, entity.FlightOffer{
			Source:          p.Source(),
			Segments:        mapSegments(r.Segments),
			AdultPrice:      r.AdultPrice,
			ChildPrice:      r.ChildPrice,
			InfantPrice:     r.InfantPrice,
			Requirements:    r.Requirements,
			IsInternational: r.IsInternational,
			PNRDate:         r.PNRDate,
			SupplierID:      r.SupplierID,
			Ref:             entity.ProviderRef{TicketID: r.TicketID},
		})
	}
	return offers
}

// airIQPassenger is AIR_IQ's wire shape for one traveller. TravelWith is
// set only on infant entries.
type airIQPassenger struct {
	Title                      string `json:"title"`
	FirstName                  string `json:"first_name"`
	LastName                   string `json:"last_name"`
	DOB                        string `json:"dob"`
	TravelWith                 string `json:"travel_with,omitempty"`
	PassportExpiryDate         string `json:"passport_expirydate"`
	PassportIssuingCountryCode string `json:"passport_issuing_country_code"`
	Nationality                string `json:"nationality"`
	PassportNumber             string `json:"passport_number"`
}

// airIQBooking is the outbound booking request. The counts are strings
// by AIR_IQ's contract, not ours.
type airIQBooking struct {
	TicketID   string           `json:"ticket_id"`
	TotalPax   string           `json:"total_pax"`
	Adult      string           `json:"adult"`
	Child      string           `json:"child"`
	Infant     string           `json:"infant"`
	AdultInfo  []airIQPassenger `json:"adult_info"`
	ChildInfo  []airIQPassenger `json:"child_info"`
	InfantInfo []airIQPassenger `json:"infant_info"`
}

func (p *AirIQProvider) BookingPayload(sub entity.BookingSubmission) (any, error) {
	adults := make([]airIQPassenger, 0)
	children := make([]airIQPassenger, 0)
	infants := make([]airIQPassenger, 0)

	for _, pax := range sub.Passengers {
		entry := airIQPassenger{
			Title:                      pax.Title,
			FirstName:                  pax.FirstName,
			LastName:                   pax.LastName,
			DOB:                        dashToSlash(pax.DOB),
			PassportExpiryDate:         dashToSlash(pax.PassportExpiryDate),
			PassportIssuingCountryCode: pax.PassportIssuingCountryCode,
			Nationality:                pax.Nationality,
			PassportNumber:             pax.PassportNo,
		}
		switch pax.Type {
		case entity.PassengerAdult:
			adults = append(adults, entry)
		case entity.PassengerChild:
			children = append(children, entry)
		case entity.PassengerInfant:
			entry.TravelWith = "1"
			infants = append(infants, entry)
		}
	}

	ticketID := ""
	if sub.Offer != nil {
		ticketID = sub.Offer.Ref.TicketID
	}

	return airIQBooking{
		TicketID:   ticketID,
		TotalPax:   strconv.Itoa(len(sub.Passengers)),
		Adult:      strconv.Itoa(len(adults)),
		Child:      strconv.Itoa(len(children)),
		Infant:     strconv.Itoa(len(infants)),
		AdultInfo:  adults,
		ChildInfo:  children,
		InfantInfo: infants,
	}, nil
}
