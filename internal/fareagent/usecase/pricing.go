package usecase

import (
	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/traveller"
)

// Total prices an offer for the travellers described by the display
// string. The per-adult price falls back to the first fare's first
// breakdown when the flat adult price is absent; child and infant
// prices only ever come from the flat fields. A count of zero in any
// category contributes nothing, and an offer with no usable price in a
// category prices that category at zero rather than failing.
func Total(offer *entity.FlightOffer, travellers string) float64 {
	if offer == nil {
		return 0
	}
	c := traveller.Parse(travellers)

	adult := adultPrice(offer)
	return adult*float64(c.Adults) +
		offer.ChildPrice*float64(c.Children) +
		offer.InfantPrice*float64(c.Infants)
}

// DisplayTotal is the figure shown to the agent before submission. The
// agent discount is computed against the total but never applied; the
// displayed amount always equals the booking amount.
func DisplayTotal(offer *entity.FlightOffer, travellers string, discountPct float64) float64 {
	total := Total(offer, travellers)
	_ = total - total*discountPct/100
	return total
}

func adultPrice(offer *entity.FlightOffer) float64 {
	if offer.AdultPrice != 0 {
		return offer.AdultPrice
	}
	if len(offer.Fares) > 0 && len(offer.Fares[0].FareDetails) > 0 {
		return offer.Fares[0].FareDetails[0].TotalAmount
	}
	return 0
}
