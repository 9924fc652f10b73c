package provider

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
)

// segmentRow is the leg shape shared by every supplier feed.
type segmentRow struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	DepDate      string `json:"depDate"`
	DepTime      string `json:"depTime"`
	ArrDate      string `json:"arrDate"`
	ArrTime      string `json:"arrTime"`
	AirlineCode  string `json:"airline_code"`
	AirlineName  string `json:"airline_name"`
	AirlineLogo  string `json:"airline_logo"`
	FlightNo     string `json:"flightNo"`
	Baggage      string `json:"baggage"`
	CabinBaggage string `json:"cabin_baggage"`
}

func mapSegments(rows []segmentRow) []entity.FlightSegment {
	segments := make([]entity.FlightSegment, 0, len(rows))
	for _, s := range rows {
		segments = append(segments, entity.FlightSegment{
			Origin:       s.Origin,
			Destination:  s.Destination,
			DepDate:      s.DepDate,
			DepTime:      s.DepTime,
			ArrDate:      s.ArrDate,
			ArrTime:      s.ArrTime,
			AirlineCode:  s.AirlineCode,
			AirlineName:  s.AirlineName,
			AirlineLogo:  s.AirlineLogo,
			FlightNo:     s.FlightNo,
			Baggage:      s.Baggage,
			CabinBaggage: s.CabinBaggage,
		})
	}
	return segments
}

// unmarshalRows decodes a supplier's serialized result array. Empty or
// malformed payloads decode to nothing; the search carries on with the
// remaining suppliers.
func unmarshalRows[T any](source entity.SourceProvider, raw string) []T {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var rows []T
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		slog.Warn("discarding unparsable supplier feed", "source", source, "error", err)
		return nil
	}
	return rows
}

// dashToSlash rewrites date separators, "1990-05-01" -> "1990/05/01".
func dashToSlash(s string) string {
	return strings.ReplaceAll(s, "-", "/")
}
