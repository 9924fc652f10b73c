// Package provider holds one adapter per upstream flight supplier. Each
// adapter knows two things about its supplier: how to decode the
// supplier's slice of the search response into normalized offers, and how
// to shape a booking submission into the supplier's outbound request.
// Adapters never touch the network themselves.
package provider

import (
	"errors"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
)

// ErrFareIndexOutOfRange is returned when an offer's selected fare index
// does not point into its fare list.
var ErrFareIndexOutOfRange = errors.New("selected fare index out of range")

type Provider interface {
	Source() entity.SourceProvider

	// DecodeOffers parses the provider's serialized result array from the
	// search response. An absent or unparsable payload yields no offers,
	// never an error; a failed supplier must not sink the whole search.
	DecodeOffers(raw string) []entity.FlightOffer

	// BookingPayload builds the provider-specific booking request for the
	// submission. Providers without an outbound contract return nil.
	BookingPayload(sub entity.BookingSubmission) (any, error)
}

// All returns every supplier adapter in merge order: in-house inventory
// first, then the third-party aggregators.
func All() []Provider {
	return []Provider{
		NewInternalProvider(),
		NewAirIQProvider(),
		NewEase2FlyProvider(),
		NewTravelogyProvider(),
	}
}

// BySource resolves the adapter for an offer's source tag.
func BySource(source entity.SourceProvider) (Provider, bool) {
	for _, p := range All() {
		if p.Source() == source {
			return p, true
		}
	}
	return nil, false
}
