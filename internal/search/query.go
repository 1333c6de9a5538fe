package search

import (
	"net/url"
	"strconv"
	"time"
)

const (
	TripRoundTrip = "roundtrip"
	TripOneWay    = "oneway"
)

// Query is the flat string key/value search encoding produced by the
// presentation layer: from, to, depart, return, tripType, cabin, adults,
// children, infants. All values arrive as strings.
type Query struct {
	From     string
	To       string
	Depart   time.Time
	Return   time.Time
	TripType string
	Cabin    string
	Adults   int
	Children int
	Infants  int
}

// ParseQuery decodes the search parameters. Numeric fields default to
// one adult and zero children/infants on missing or invalid input, the
// trip type defaults to roundtrip, and dates are ISO-8601 instants
// (left zero when absent or unparseable).
func ParseQuery(values url.Values) Query {
	q := Query{
		From:     values.Get("from"),
		To:       values.Get("to"),
		TripType: values.Get("tripType"),
		Cabin:    values.Get("cabin"),
		Adults:   parseCount(values.Get("adults"), 1),
		Children: parseCount(values.Get("children"), 0),
		Infants:  parseCount(values.Get("infants"), 0),
	}
	if q.TripType == "" {
		q.TripType = TripRoundTrip
	}
	if t, err := time.Parse(time.RFC3339, values.Get("depart")); err == nil {
		q.Depart = t
	}
	if t, err := time.Parse(time.RFC3339, values.Get("return")); err == nil {
		q.Return = t
	}
	return q
}

func parseCount(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// Criteria is the outbound leg of the query.
func (q Query) Criteria() Criteria {
	return Criteria{Origin: q.From, Destination: q.To, Cabin: q.Cabin}
}

// ReturnCriteria is the reversed route, used for the return leg of a
// round trip.
func (q Query) ReturnCriteria() Criteria {
	return Criteria{Origin: q.To, Destination: q.From, Cabin: q.Cabin}
}

// RoundTrip reports whether the query asks for a return leg.
func (q Query) RoundTrip() bool {
	return q.TripType == TripRoundTrip && !q.Return.IsZero()
}
