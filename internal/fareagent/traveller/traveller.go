// Package traveller parses the human-readable traveller-count string
// ("2 Adults, 1 Children, 1 Infants") that the booking flow threads
// between search, pricing and the passenger form.
package traveller

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/entity"
)

// Counts is the per-category traveller tally derived from a display
// string. It is never persisted independently of that string.
type Counts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

var countPattern = regexp.MustCompile(`(?i)(\d+)\s*(Adult|Adults|Child|Children|Infant|Infants)`)

// Parse sums every "<n> <category>" occurrence in s. Categories may
// repeat (counts accumulate), appear in any order, and be surrounded by
// arbitrary text. Unrecognized tokens are skipped silently; a string
// with no matches yields all zeros.
func Parse(s string) Counts {
	var c Counts
	for _, m := range countPattern.FindAllStringSubmatch(s, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		switch typeOf(m[2]) {
		case entity.PassengerAdult:
			c.Adults += n
		case entity.PassengerChild:
			c.Children += n
		case entity.PassengerInfant:
			c.Infants += n
		}
	}
	return c
}

// Expand produces one blank passenger record per counted traveller,
// grouped Adult then Child then Infant regardless of the order the
// categories appear in s; index arithmetic downstream depends on that
// grouping. Adults get the default title "Mr.", children and infants
// "Mstr."; wheelchair defaults to "NO".
func Expand(s string) []entity.Passenger {
	c := Parse(s)

	var passengers []entity.Passenger
	emit := func(t entity.PassengerType, n int) {
		for i := 0; i < n; i++ {
			passengers = append(passengers, entity.Passenger{
				Type:           t,
				Title:          defaultTitle(t),
				NeedWheelchair: "NO",
			})
		}
	}
	emit(entity.PassengerAdult, c.Adults)
	emit(entity.PassengerChild, c.Children)
	emit(entity.PassengerInfant, c.Infants)

	return passengers
}

// Format renders counts back into the display string the rest of the
// flow consumes. "Children" is always plural; the others pluralise on
// counts other than one.
func Format(c Counts) string {
	return fmt.Sprintf("%d Adult%s, %d Children, %d Infant%s",
		c.Adults, plural(c.Adults),
		c.Children,
		c.Infants, plural(c.Infants),
	)
}

// typeOf decides the category by prefix, so "Adult" and "Adults" both
// match. Anything else is no category.
func typeOf(raw string) entity.PassengerType {
	t := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(t, "adult"):
		return entity.PassengerAdult
	case strings.HasPrefix(t, "child"):
		return entity.PassengerChild
	case strings.HasPrefix(t, "infant"):
		return entity.PassengerInfant
	default:
		return ""
	}
}

func defaultTitle(t entity.PassengerType) string {
	if t == entity.PassengerChild || t == entity.PassengerInfant {
		return "Mstr."
	}
	return "Mr."
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
