package provider

import (
	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
)

// Ease2FlyProvider adapts the EASE2FLY aggregator. Its booking contract
// keeps dates dash-separated, flags the wheelchair need as the strings
// "true"/"false", and wants a fresh reference code per request.
type Ease2FlyProvider struct{}

func NewEase2FlyProvider() *Ease2FlyProvider {
	return &Ease2FlyProvider{}
}

func (*Ease2FlyProvider) Source() entity.SourceProvider {
	return entity.SourceEase2Fly
}

type ease2flyRow struct {
	TicketID        string       `json:"ticket_id"`
	BaseFare        float64      `json:"base_fare"`
	Segments        []segmentRow `json:"segments"`
	AdultPrice      float64      `json:"adult_price"`
	ChildPrice      float64      `json:"child_price"`
	InfantPrice     float64      `json:"infant_price"`
	Requirements    string       `json:"requirements"`
	IsInternational bool         `json:"isinternational"`
	PNRDate         string       `json:"pnr_date"`
	SupplierID      int64        `json:"supplier_id"`
}

func (p *Ease2FlyProvider) DecodeOffers(raw string) []entity.FlightOffer {
	rows := unmarshalRows[ease2flyRow](p.Source(), raw)
	offers := make([]entity.FlightOffer, 0, len(rows))
	for _, r := range rows {
		offers = append(offers, entity.FlightOffer{
			Source:          p.Source(),
			Segments:        mapSegments(r.Segments),
			AdultPrice:      r.AdultPrice,
			ChildPrice:      r.ChildPrice,
			InfantPrice:     r.InfantPrice,
			BaseFare:        r.BaseFare,
			Requirements:    r.Requirements,
			IsInternational: r.IsInternational,
			PNRDate:         r.PNRDate,
			SupplierID:      r.SupplierID,
			Ref:             entity.ProviderRef{TicketID: r.TicketID},
		})
	}
	return offers
}

// ease2flyPassenger is EASE2FLY's wire shape for one traveller. Age is a
// pointer because child and infant entries carry an empty age field while
// adult entries omit it entirely.
type ease2flyPassenger struct {
	TTL                 string  `json:"ttl"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	PassportDOB         string  `json:"passport_dob"`
	Wheelchair          string  `json:"whlchr"`
	PassportNo          string  `json:"passport_no"`
	PassportNationality string  `json:"passport_nationality"`
	PassportExp         string  `json:"passport_exp"`
	Age                 *string `json:"age,omitempty"`
}

type ease2flyBooking struct {
	AdultInfo   []ease2flyPassenger `json:"adult_info"`
	ChildInfo   []ease2flyPassenger `json:"child_info"`
	InfantInfo  []ease2flyPassenger `json:"infant_info"`
	Adults      int                 `json:"adults"`
	Child       int                 `json:"child"`
	Infant      int                 `json:"infant"`
	SectorID    string              `json:"sector_id"`
	Fare        float64             `json:"fare"`
	Phone       string              `json:"phone"`
	Email       string              `json:"email"`
	ReferenceNo string              `json:"reference_no"`
}

func (p *Ease2FlyProvider) BookingPayload(sub entity.BookingSubmission) (any, error) {
	adults := make([]ease2flyPassenger, 0)
	children := make([]ease2flyPassenger, 0)
	infants := make([]ease2flyPassenger, 0)

	emptyAge := ""
	for _, pax := range sub.Passengers {
		entry := ease2flyPassenger{
			TTL:         pax.Title,
			FirstName:   pax.FirstName,
			LastName:    pax.LastName,
			PassportDOB: pax.DOB,
			Wheelchair:  wheelchairFlag(pax.NeedWheelchair),
			PassportNo:  pax.PassportNo,
		}
		switch pax.Type {
		case entity.PassengerAdult:
			adults = append(adults, entry)
		case entity.PassengerChild:
			entry.Age = &emptyAge
			children = append(children, entry)
		case entity.PassengerInfant:
			entry.Age = &emptyAge
			infants = append(infants, entry)
		}
	}

	sectorID := ""
	fare := 0.0
	if sub.Offer != nil {
		sectorID = sub.Offer.Ref.TicketID
		fare = sub.Offer.BaseFare
	}

	return ease2flyBooking{
		AdultInfo:   adults,
		ChildInfo:   children,
		InfantInfo:  infants,
		Adults:      len(adults),
		Child:       len(children),
		Infant:      len(infants),
		SectorID:    sectorID,
		Fare:        fare,
		Phone:       sub.MobileNo,
		Email:       sub.EmailID,
		ReferenceNo: NewReferenceCode(),
	}, nil
}

// wheelchairFlag is a case-sensitive comparison against "YES" by the
// upstream contract; the form only ever writes "YES"/"NO", so lowercase
// values intentionally map to "false".
func wheelchairFlag(need string) string {
	if need == "YES" {
		return "true"
	}
	return "false"
}
