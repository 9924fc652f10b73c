package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/outbound"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/traveller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMergesAllSuppliers(t *testing.T) {
	backend := &fakeBackend{
		searchResult: &outbound.SearchResult{
			InnerFlights: `[{"pnr_no":"IN1","pnr_id":10,"adult_price":5000,"pnr_date":"2026-09-12"}]`,
			AirIQ:        `[{"ticket_id":"AQ1","adult_price":4800,"pnr_date":"2026-09-10"}]`,
			Ease2Fly:     `[{"ticket_id":"E2F1","base_fare":4600,"adult_price":4600,"pnr_date":"not a date"}]`,
			Travelogy:    `[{"requestId":"R1","Search_key":"SK1","Flight_Key":"FK1","pnr_date":"2026-09-11"}]`,
		},
	}
	uc := newTestUsecase(backend)

	out, err := uc.Search(context.Background(), SearchInput{
		Origin:       "DEL",
		Destination:  "BOM",
		BoardingDate: "2026-09-10",
		Travellers:   traveller.Counts{Adults: 2},
	})
	require.NoError(t, err)
	require.Len(t, out.Offers, 4)

	// Ascending by departure date; the unparsable date sorts first.
	assert.Equal(t, entity.SourceEase2Fly, out.Offers[0].Source)
	assert.Equal(t, entity.SourceAirIQ, out.Offers[1].Source)
	assert.Equal(t, entity.SourceTravelogy, out.Offers[2].Source)
	assert.Equal(t, entity.SourceInternal, out.Offers[3].Source)

	assert.Equal(t, 4, out.Metadata.TotalResults)
	assert.False(t, out.Metadata.CacheHit)
	assert.Equal(t, "2 Adults, 0 Children, 0 Infants", out.Criteria.Travellers)
}

func TestSearchTieKeepsInHouseFirst(t *testing.T) {
	backend := &fakeBackend{
		searchResult: &outbound.SearchResult{
			InnerFlights: `[{"pnr_no":"IN1","pnr_date":"2026-09-10"}]`,
			AirIQ:        `[{"ticket_id":"AQ1","pnr_date":"2026-09-10"}]`,
		},
	}
	uc := newTestUsecase(backend)

	out, err := uc.Search(context.Background(), SearchInput{
		Origin: "DEL", Destination: "BOM", BoardingDate: "2026-09-10",
		Travellers: traveller.Counts{Adults: 1},
	})
	require.NoError(t, err)
	require.Len(t, out.Offers, 2)
	assert.Equal(t, entity.SourceInternal, out.Offers[0].Source)
	assert.Equal(t, entity.SourceAirIQ, out.Offers[1].Source)
}

func TestSearchSkipsGarbageSupplierFeed(t *testing.T) {
	backend := &fakeBackend{
		searchResult: &outbound.SearchResult{
			InnerFlights: `[{"pnr_no":"IN1","pnr_date":"2026-09-10"}]`,
			AirIQ:        `{{{not json`,
		},
	}
	uc := newTestUsecase(backend)

	out, err := uc.Search(context.Background(), SearchInput{
		Origin: "DEL", Destination: "BOM", BoardingDate: "2026-09-10",
		Travellers: traveller.Counts{Adults: 1},
	})
	require.NoError(t, err)
	require.Len(t, out.Offers, 1)
	assert.Equal(t, "IN1", out.Offers[0].PNRNo)
}

func TestSearchPropagatesBackendError(t *testing.T) {
	uc := newTestUsecase(&fakeBackend{searchErr: errBackendDown})

	_, err := uc.Search(context.Background(), SearchInput{
		Origin: "DEL", Destination: "BOM", BoardingDate: "2026-09-10",
		Travellers: traveller.Counts{Adults: 1},
	})
	assert.ErrorIs(t, err, errBackendDown)
}

func TestSearchCacheHit(t *testing.T) {
	backend := &fakeBackend{
		searchResult: &outbound.SearchResult{
			InnerFlights: `[{"pnr_no":"IN1","pnr_date":"2026-09-10"}]`,
		},
	}
	uc := newTestUsecase(backend)
	in := SearchInput{
		Origin: "DEL", Destination: "BOM", BoardingDate: "2026-09-10",
		Travellers: traveller.Counts{Adults: 1},
	}

	first, err := uc.Search(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)

	// A later backend failure must not matter while the entry is warm.
	backend.searchErr = errBackendDown
	second, err := uc.Search(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, first.Offers, second.Offers)
}

func TestSearchEnrichesAirlineLogos(t *testing.T) {
	backend := &fakeBackend{
		searchResult: &outbound.SearchResult{
			InnerFlights: `[{"pnr_no":"IN1","pnr_date":"2026-09-10","segments":[{"origin":"DEL","destination":"BOM","airline_code":"6E","flightNo":"6E-203"}]}]`,
		},
		airlines: []outbound.Airline{
			{AirlineName: "IndiGo", AirlineCode: "6E", AirlineLogo: "https://img.example/6e.png"},
		},
	}
	uc := newTestUsecase(backend)

	out, err := uc.Search(context.Background(), SearchInput{
		Origin: "DEL", Destination: "BOM", BoardingDate: "2026-09-10",
		Travellers: traveller.Counts{Adults: 1},
	})
	require.NoError(t, err)
	require.Len(t, out.Offers, 1)
	require.Len(t, out.Offers[0].Segments, 1)
	assert.Equal(t, "https://img.example/6e.png", out.Offers[0].Segments[0].AirlineLogo)
	assert.Equal(t, "IndiGo", out.Offers[0].Segments[0].AirlineName)
}

func TestSearchSurvivesAirlineDirectoryFailure(t *testing.T) {
	backend := &fakeBackend{
		searchResult: &outbound.SearchResult{
			InnerFlights: `[{"pnr_no":"IN1","pnr_date":"2026-09-10","segments":[{"airline_code":"6E"}]}]`,
		},
		airlinesErr: errBackendDown,
	}
	uc := newTestUsecase(backend)

	out, err := uc.Search(context.Background(), SearchInput{
		Origin: "DEL", Destination: "BOM", BoardingDate: "2026-09-10",
		Travellers: traveller.Counts{Adults: 1},
	})
	require.NoError(t, err)
	require.Len(t, out.Offers, 1)
	assert.Empty(t, out.Offers[0].Segments[0].AirlineLogo)
}

func TestPNRDates(t *testing.T) {
	backend := &fakeBackend{pnrDates: []string{"2026-09-10", "2026-09-14"}}
	uc := newTestUsecase(backend)

	dates, err := uc.PNRDates(context.Background(), "DEL", "BOM")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-10", "2026-09-14"}, dates)
}
