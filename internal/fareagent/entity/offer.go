package entity

import (
	"encoding/json"
	"time"
)

// SourceProvider identifies the upstream supplier an offer originates
// from. The values are wire strings shared with the booking backend.
type SourceProvider string

const (
	SourceInternal  SourceProvider = "INTERNAL"
	SourceAirIQ     SourceProvider = "AIR_IQ"
	SourceEase2Fly  SourceProvider = "EASE2FLY"
	SourceTravelogy SourceProvider = "TRAVELOGY"
)

// ProviderRef carries the identifiers a third-party supplier needs to
// reconcile a booking against its own inventory. Only the fields matching
// the offer's Source are populated; the rest stay zero.
type ProviderRef struct {
	TicketID     string `json:"ticket_id,omitempty"`    // AIR_IQ, EASE2FLY
	RequestID    string `json:"requestId,omitempty"`    // TRAVELOGY
	SearchKey    string `json:"Search_key,omitempty"`   // TRAVELOGY
	FlightKey    string `json:"Flight_Key,omitempty"`   // TRAVELOGY
	SelectedFare int    `json:"selected_fare"`          // TRAVELOGY, index into Fares
}

// FlightOffer is one bookable itinerary returned by a search, normalized
// across suppliers. Exactly one pricing mechanism is authoritative per
// offer: Fares when non-empty, otherwise the flat per-passenger prices.
type FlightOffer struct {
	PNRNo           string          `json:"pnr_no,omitempty"`
	PNRID           int64           `json:"pnr_id,omitempty"`
	FlightID        int64           `json:"flight_id,omitempty"`
	Source          SourceProvider  `json:"source_provider"`
	Segments        []FlightSegment `json:"segments"`
	Fares           []FareOption    `json:"fares,omitempty"`
	AdultPrice      float64         `json:"adult_price,omitempty"`
	ChildPrice      float64         `json:"child_price,omitempty"`
	InfantPrice     float64         `json:"infant_price,omitempty"`
	BaseFare        float64         `json:"base_fare,omitempty"`
	FareType        string          `json:"fare_type,omitempty"`
	AvailableSeats  int             `json:"available_seats,omitempty"`
	Requirements    string          `json:"requirements,omitempty"`
	IsInternational bool            `json:"isinternational"`
	PNRDate         string          `json:"pnr_date"`
	SupplierID      int64           `json:"supplier_id,omitempty"`
	Ref             ProviderRef     `json:"provider_ref"`
}

// FlightSegment is one flown leg. Dates and times are separate strings,
// not combined timestamps; that is how every supplier ships them.
type FlightSegment struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	DepDate      string `json:"depDate"`
	DepTime      string `json:"depTime"`
	ArrDate      string `json:"arrDate"`
	ArrTime      string `json:"arrTime"`
	AirlineCode  string `json:"airline_code"`
	AirlineName  string `json:"airline_name,omitempty"`
	AirlineLogo  string `json:"airline_logo,omitempty"`
	FlightNo     string `json:"flightNo"`
	Baggage      string `json:"baggage,omitempty"`
	CabinBaggage string `json:"cabin_baggage,omitempty"`
}

// FareOption is a priced combination of booking classes across all
// segments of an offer.
type FareOption struct {
	FareID         string       `json:"Fare_Id"`
	FareDetails    []FareDetail `json:"FareDetails"`
	TotalAmount    float64      `json:"Total_Amount"`
	SeatsAvailable string       `json:"Seats_Available,omitempty"`
	Refundable     bool         `json:"Refundable,omitempty"`
}

// FareDetail is the per-passenger-type breakdown inside a fare.
// FareDetails[0] is conventionally the adult breakdown, but PAXType is
// authoritative, not position.
type FareDetail struct {
	PAXType          int     `json:"PAX_Type"`
	TotalAmount      float64 `json:"Total_Amount"`
	BasicAmount      float64 `json:"Basic_Amount"`
	AirportTaxAmount float64 `json:"AirportTax_Amount,omitempty"`
	GST              float64 `json:"GST,omitempty"`
	YQAmount         float64 `json:"YQ_Amount,omitempty"`
	ServiceFeeAmount float64 `json:"Service_Fee_Amount,omitempty"`
}

var pnrDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// PNRTime parses PNRDate for sorting. Unparsable dates yield the zero
// time, which sorts before everything else.
func (o FlightOffer) PNRTime() time.Time {
	for _, layout := range pnrDateLayouts {
		if t, err := time.Parse(layout, o.PNRDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

// RequirementFlags decodes the serialized required-field flag list, e.g.
// ["require_dob_adt","require_passport_adt"]. Malformed input yields nil.
func (o FlightOffer) RequirementFlags() []string {
	if o.Requirements == "" {
		return nil
	}
	var flags []string
	if err := json.Unmarshal([]byte(o.Requirements), &flags); err != nil {
		return nil
	}
	return flags
}

// RequiresDOB reports whether the booking form must collect a date of
// birth for the passenger type. International itineraries always do.
func (o FlightOffer) RequiresDOB(t PassengerType) bool {
	if o.IsInternational {
		return true
	}
	return o.hasFlag(dobFlag(t))
}

// RequiresPassport reports whether a passport number is mandatory for the
// passenger type. International itineraries always require one.
func (o FlightOffer) RequiresPassport(t PassengerType) bool {
	if o.IsInternational {
		return true
	}
	return o.hasFlag(passportFlag(t))
}

func (o FlightOffer) hasFlag(flag string) bool {
	for _, f := range o.RequirementFlags() {
		if f == flag {
			return true
		}
	}
	return false
}

func dobFlag(t PassengerType) string {
	switch t {
	case PassengerChild:
		return "require_dob_chd"
	case PassengerInfant:
		return "require_dob_inf"
	default:
		return "require_dob_adt"
	}
}

func passportFlag(t PassengerType) string {
	switch t {
	case PassengerChild:
		return "require_passport_chd"
	case PassengerInfant:
		return "require_passport_inf"
	default:
		return "require_passport_adt"
	}
}
