package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/outbound"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/traveller"
)

type SearchInput struct {
	Origin       string
	Destination  string
	BoardingDate string
	Travellers   traveller.Counts
	TripType     string
}

type SearchCriteria struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	BoardingDate string `json:"boarding_date"`
	Travellers   string `json:"travellers"`
}

type SearchMetadata struct {
	TotalResults int   `json:"total_results"`
	SearchTimeMs int64 `json:"search_time_ms"`
	CacheHit     bool  `json:"cache_hit"`
}

type SearchOutput struct {
	Criteria SearchCriteria       `json:"search_criteria"`
	Metadata SearchMetadata       `json:"metadata"`
	Offers   []entity.FlightOffer `json:"offers"`
}

// Search runs one flight search across every supplier and merges the
// results into a single list ordered by departure date. The in-house
// inventory always comes first in the pre-sort concatenation so that
// ties resolve in its favour.
func (u *Usecase) Search(ctx context.Context, in SearchInput) (*SearchOutput, error) {
	start := time.Now()
	seats := traveller.Format(in.Travellers)

	cacheKey := buildSearchKey(in, seats)
	if cached, ok := u.cache.Get(cacheKey); ok {
		cached.Metadata.CacheHit = true
		cached.Metadata.SearchTimeMs = time.Since(start).Milliseconds()
		return cached, nil
	}

	tripType := in.TripType
	if tripType == "" {
		tripType = "single"
	}

	result, err := u.backend.SearchFlights(ctx, outbound.SearchRequest{
		OriginAPT:    in.Origin,
		DestinAPT:    in.Destination,
		BoardingDate: in.BoardingDate,
		Seats:        seats,
		Type:         tripType,
	})
	if err != nil {
		return nil, err
	}

	offers := make([]entity.FlightOffer, 0)
	for _, p := range u.providers {
		offers = append(offers, p.DecodeOffers(rawFor(p.Source(), result))...)
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].PNRTime().Before(offers[j].PNRTime())
	})

	u.enrichAirlineLogos(ctx, offers)

	output := &SearchOutput{
		Criteria: SearchCriteria{
			Origin:       in.Origin,
			Destination:  in.Destination,
			BoardingDate: in.BoardingDate,
			Travellers:   seats,
		},
		Metadata: SearchMetadata{
			TotalResults: len(offers),
			SearchTimeMs: time.Since(start).Milliseconds(),
		},
		Offers: offers,
	}

	u.cache.Set(cacheKey, output, u.cacheTTL)

	return output, nil
}

// PNRDates lists the upcoming dates with in-house inventory on a route.
func (u *Usecase) PNRDates(ctx context.Context, origin, destination string) ([]string, error) {
	return u.backend.AvailablePNRDates(ctx, origin, destination)
}

// rawFor picks the supplier's slice of the search response. Each slice
// is itself a serialized JSON array.
func rawFor(source entity.SourceProvider, result *outbound.SearchResult) string {
	switch source {
	case entity.SourceInternal:
		return result.InnerFlights
	case entity.SourceAirIQ:
		return result.AirIQ
	case entity.SourceEase2Fly:
		return result.Ease2Fly
	case entity.SourceTravelogy:
		return result.Travelogy
	default:
		return ""
	}
}

// enrichAirlineLogos backfills segment logos and names from the backend
// airline directory. A directory failure only costs the logos, never
// the search.
func (u *Usecase) enrichAirlineLogos(ctx context.Context, offers []entity.FlightOffer) {
	airlines, err := u.backend.Airlines(ctx)
	if err != nil {
		slog.WarnContext(ctx, "airline directory unavailable, skipping logo enrichment", "error", err)
		return
	}

	byCode := make(map[string]outbound.Airline, len(airlines))
	for _, a := range airlines {
		byCode[strings.ToUpper(a.AirlineCode)] = a
	}

	for i := range offers {
		for j := range offers[i].Segments {
			seg := &offers[i].Segments[j]
			a, ok := byCode[strings.ToUpper(seg.AirlineCode)]
			if !ok {
				continue
			}
			if seg.AirlineLogo == "" {
				seg.AirlineLogo = a.AirlineLogo
			}
			if seg.AirlineName == "" {
				seg.AirlineName = a.AirlineName
			}
		}
	}
}

func buildSearchKey(in SearchInput, seats string) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		strings.ToUpper(in.Origin),
		strings.ToUpper(in.Destination),
		in.BoardingDate,
		seats,
		strings.ToLower(in.TripType),
	)
}

// CloneSearchOutput is the cache clone function; offers are copied so a
// caller mutating its result cannot poison the cached value.
func CloneSearchOutput(value *SearchOutput) *SearchOutput {
	if value == nil {
		return nil
	}
	clone := &SearchOutput{
		Criteria: value.Criteria,
		Metadata: value.Metadata,
		Offers:   make([]entity.FlightOffer, len(value.Offers)),
	}
	copy(clone.Offers, value.Offers)
	return clone
}
