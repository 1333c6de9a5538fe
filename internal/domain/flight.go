package domain

import "time"

// Airport codes are 3-letter IATA-style identifiers and double as both
// match keys and display keys.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Flight is immutable once loaded from the catalog.
type Flight struct {
	ID               string    `json:"id"`
	FlightNumber     string    `json:"flight_number"`
	Airline          Airline   `json:"airline"`
	DepartureAirport Airport   `json:"departure_airport"`
	ArrivalAirport   Airport   `json:"arrival_airport"`
	DepartureTime    time.Time `json:"departure_time"`
	DurationMinutes  int       `json:"duration_minutes"`
	Stops            int       `json:"stops"`
	Price            Price     `json:"price"`
	CabinClass       string    `json:"cabin_class"`
	Aircraft         string    `json:"aircraft"`
	SeatsAvailable   int       `json:"seats_available"`
}

// ArrivalTime is derived from departure plus duration so the two can
// never drift apart.
func (f Flight) ArrivalTime() time.Time {
	return f.DepartureTime.Add(time.Duration(f.DurationMinutes) * time.Minute)
}
