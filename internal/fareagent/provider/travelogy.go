package provider

import (
	"fmt"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
)

// TravelogyProvider adapts the TRAVELOGY aggregator. Its booking step is
// a reprice of the already-selected fare; passengers are not part of the
// outbound payload at all.
type TravelogyProvider struct{}

func NewTravelogyProvider() *TravelogyProvider {
	return &TravelogyProvider{}
}

func (*TravelogyProvider) Source() entity.SourceProvider {
	return entity.SourceTravelogy
}

type travelogyFareDetail struct {
	PAXType          int     `json:"PAX_Type"`
	TotalAmount      float64 `json:"Total_Amount"`
	BasicAmount      float64 `json:"Basic_Amount"`
	AirportTaxAmount float64 `json:"AirportTax_Amount"`
	GST              float64 `json:"GST"`
	YQAmount         float64 `json:"YQ_Amount"`
	ServiceFeeAmount float64 `json:"Service_Fee_Amount"`
}

type travelogyFare struct {
	FareID         string                `json:"Fare_Id"`
	FareDetails    []travelogyFareDetail `json:"FareDetails"`
	TotalAmount    float64               `json:"Total_Amount"`
	SeatsAvailable string                `json:"Seats_Available"`
	Refundable     bool                  `json:"Refundable"`
}

type travelogyRow struct {
	RequestID       string          `json:"requestId"`
	SearchKey       string          `json:"Search_key"`
	FlightKey       string          `json:"Flight_Key"`
	SelectedFare    int             `json:"selected_fare"`
	Fares           []travelogyFare `json:"fares"`
	Segments        []segmentRow    `json:"segments"`
	Requirements    string          `json:"requirements"`
	IsInternational bool            `json:"isinternational"`
	PNRDate         string          `json:"pnr_date"`
	SupplierID      int64           `json:"supplier_id"`
}

func (p *TravelogyProvider) DecodeOffers(raw string) []entity.FlightOffer {
	rows := unmarshalRows[travelogyRow](p.Source(), raw)
	offers := make([]entity.FlightOffer, 0, len(rows))
	for _, r := range rows {
		fares := make([]entity.FareOption, 0, len(r.Fares))
		for _, f := range r.Fares {
			details := make([]entity.FareDetail, 0, len(f.FareDetails))
			for _, d := range f.FareDetails {
				details = append(details, entity.FareDetail{
					PAXType:          d.PAXType,
					TotalAmount:      d.TotalAmount,
					BasicAmount:      d.BasicAmount,
					AirportTaxAmount: d.AirportTaxAmount,
					GST:              d.GST,
					YQAmount:         d.YQAmount,
					ServiceFeeAmount: d.ServiceFeeAmount,
				})
			}
			fares = append(fares, entity.FareOption{
				FareID:         f.FareID,
				FareDetails:    details,
				TotalAmount:    f.TotalAmount,
				SeatsAvailable: f.SeatsAvailable,
				Refundable:     f.Refundable,
			})
		}
		offers = append(offers, entity.FlightOffer{
			Source:          p.Source(),
			Segments:        mapSegments(r.Segments),
			Fares:           fares,
			Requirements:    r.Requirements,
			IsInternational: r.IsInternational,
			PNRDate:         r.PNRDate,
			SupplierID:      r.SupplierID,
			Ref: entity.ProviderRef{
				RequestID:    r.RequestID,
				SearchKey:    r.SearchKey,
				FlightKey:    r.FlightKey,
				SelectedFare: r.SelectedFare,
			},
		})
	}
	return offers
}

type travelogyReprice struct {
	FlightKey string `json:"Flight_Key"`
	FareID    string `json:"Fare_Id"`
}

type travelogyBooking struct {
	RequestID          string             `json:"requestId"`
	SearchKey          string             `json:"Search_Key"`
	AirRepriceRequests []travelogyReprice `json:"AirRepriceRequests"`
	CustomerMobile     string             `json:"Customer_Mobile"`
	GSTInput           bool               `json:"GST_Input"`
	SinglePricing      bool               `json:"SinglePricing"`
}

func (p *TravelogyProvider) BookingPayload(sub entity.BookingSubmission) (any, error) {
	offer := sub.Offer
	if offer == nil {
		return nil, fmt.Errorf("travelogy booking: no offer selected")
	}
	idx := offer.Ref.SelectedFare
	if idx < 0 || idx >= len(offer.Fares) {
		return nil, fmt.Errorf("travelogy booking: fare %d of %d: %w",
			idx, len(offer.Fares), ErrFareIndexOutOfRange)
	}

	return travelogyBooking{
		RequestID: offer.Ref.RequestID,
		SearchKey: offer.Ref.SearchKey,
		AirRepriceRequests: []travelogyReprice{
			{FlightKey: offer.Ref.FlightKey, FareID: offer.Fares[idx].FareID},
		},
		CustomerMobile: sub.Agent.MobileNo,
		GSTInput:       false,
		SinglePricing:  true,
	}, nil
}
