// Package search implements the flight search engine: pure filtering and
// multi-key stable sorting over an in-memory flight set. None of the
// functions mutate their input slice.
package search

import (
	"sort"
	"strings"

	"github.com/skyways/skybook/internal/domain"
)

// Criteria holds the route and cabin constraints. Origin and destination
// tokens match either an airport code (contains, uppercased) or a city
// name (contains, case-insensitive). An empty token matches everything.
type Criteria struct {
	Origin      string
	Destination string
	Cabin       string
}

// Search keeps the flights satisfying origin AND destination AND cabin.
func Search(flights []domain.Flight, c Criteria) []domain.Flight {
	out := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if Matches(f, c) {
			out = append(out, f)
		}
	}
	return out
}

// Matches reports whether a single flight satisfies the criteria
// conjunction. Exposed so the catalog can scan with it directly.
func Matches(f domain.Flight, c Criteria) bool {
	return airportMatch(f.DepartureAirport, c.Origin) &&
		airportMatch(f.ArrivalAirport, c.Destination) &&
		cabinMatch(f.CabinClass, c.Cabin)
}

func airportMatch(a domain.Airport, token string) bool {
	return strings.Contains(a.Code, strings.ToUpper(token)) ||
		strings.Contains(strings.ToLower(a.City), strings.ToLower(token))
}

func cabinMatch(cabin, requested string) bool {
	return requested == "" || strings.EqualFold(cabin, requested)
}

type StopsFilter string

const (
	StopsAll     StopsFilter = "all"
	StopsNonstop StopsFilter = "nonstop"
	StopsOneStop StopsFilter = "1stop"
)

type DepartureWindow string

const (
	DepartureAll       DepartureWindow = "all"
	DepartureMorning   DepartureWindow = "morning"   // [5, 12)
	DepartureAfternoon DepartureWindow = "afternoon" // [12, 17)
	DepartureEvening   DepartureWindow = "evening"   // [17, 21)
	DepartureNight     DepartureWindow = "night"     // [21, 24) U [0, 5)
)

// FilterSpec toggles the post-search filters independently. The zero
// value is the identity filter: PriceMax <= 0 means no upper price bound
// and an empty airline list means no airline restriction.
type FilterSpec struct {
	Stops     StopsFilter
	PriceMin  float64
	PriceMax  float64
	Airlines  []string
	Departure DepartureWindow
}

// Filter applies the spec to an already-searched flight list.
func Filter(flights []domain.Flight, spec FilterSpec) []domain.Flight {
	out := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if keep(f, spec) {
			out = append(out, f)
		}
	}
	return out
}

func keep(f domain.Flight, spec FilterSpec) bool {
	// Flights with 2+ stops fail both non-"all" stop filters.
	switch spec.Stops {
	case StopsNonstop:
		if f.Stops != 0 {
			return false
		}
	case StopsOneStop:
		if f.Stops != 1 {
			return false
		}
	}

	if f.Price.Amount < spec.PriceMin {
		return false
	}
	if spec.PriceMax > 0 && f.Price.Amount > spec.PriceMax {
		return false
	}

	if len(spec.Airlines) > 0 {
		allowed := false
		for _, code := range spec.Airlines {
			if f.Airline.Code == code {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	return inWindow(f.DepartureTime.Hour(), spec.Departure)
}

func inWindow(hour int, w DepartureWindow) bool {
	switch w {
	case DepartureMorning:
		return hour >= 5 && hour < 12
	case DepartureAfternoon:
		return hour >= 12 && hour < 17
	case DepartureEvening:
		return hour >= 17 && hour < 21
	case DepartureNight:
		return hour >= 21 || hour < 5
	default:
		return true
	}
}

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByDeparture SortKey = "departure"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Sort returns a stably sorted copy of the flight list. Descending order
// is defined as the reverse of the stable ascending result, so ties keep
// their original relative order under reversal.
func Sort(flights []domain.Flight, key SortKey, order SortOrder) []domain.Flight {
	sorted := make([]domain.Flight, len(flights))
	copy(sorted, flights)

	sort.SliceStable(sorted, func(i, j int) bool {
		switch key {
		case SortByDuration:
			return sorted[i].DurationMinutes < sorted[j].DurationMinutes
		case SortByDeparture:
			return sorted[i].DepartureTime.Before(sorted[j].DepartureTime)
		default:
			return sorted[i].Price.Amount < sorted[j].Price.Amount
		}
	})

	if order == Desc {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return sorted
}
