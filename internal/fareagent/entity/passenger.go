package entity

type PassengerType string

const (
	PassengerAdult  PassengerType = "Adult"
	PassengerChild  PassengerType = "Child"
	PassengerInfant PassengerType = "Infant"
)

// Passenger is one traveller's booking-form record. Within a passenger
// list, entries are grouped by type in the fixed order Adult, Child,
// Infant; index arithmetic elsewhere relies on that ordering.
type Passenger struct {
	Type                       PassengerType `json:"type"`
	Title                      string        `json:"title"`
	FirstName                  string        `json:"firstName"`
	LastName                   string        `json:"lastName"`
	DOB                        string        `json:"dob,omitempty"`
	PassportNo                 string        `json:"passportNo,omitempty"`
	NeedWheelchair             string        `json:"needWheelchair,omitempty"`
	PassportExpiryDate         string        `json:"passport_expirydate,omitempty"`
	PassportIssuingCountryCode string        `json:"passport_issuing_country_code,omitempty"`
	Nationality                string        `json:"nationality,omitempty"`
}

// AgentContact is the booking agent's identity, used for gateway
// customer records.
type AgentContact struct {
	ID        int64  `json:"id"`
	MobileNo  string `json:"mobile_no"`
	EmailID   string `json:"email_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Payment modes accepted by the booking backend.
const (
	PaymentModeDeposit = "deposit"
	PaymentModeOnline  = "online"
)

// Gateway selectors for online payments.
const (
	GatewayRedirectPrimary   = 1 // amount in minor units (x100)
	GatewayRedirectSecondary = 2 // amount in major units
	GatewayInlinePage        = 3 // amount in major units, returns a page
)

// BookingSubmission aggregates everything one booking attempt needs.
// Created at submit time and never mutated.
type BookingSubmission struct {
	Offer          *FlightOffer
	Passengers     []Passenger
	Travellers     string // display string, e.g. "2 Adults, 1 Children, 0 Infants"
	MobileNo       string
	EmailID        string
	DisplayPrice   string
	TotalPrice     float64
	PaymentMode    string
	PaymentGateway int
	Agent          AgentContact
}
