package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyways/skybook/internal/domain"
)

const flightColumns = `id, flight_number, airline_code, airline_name,
	departure_code, departure_name, departure_city, departure_country,
	arrival_code, arrival_name, arrival_city, arrival_country,
	departure_time, duration_minutes, stops, price_amount, price_currency,
	cabin_class, aircraft, seats_available`

// PG reads the flight inventory from Postgres. Scanning with an
// arbitrary predicate happens client-side over the full list, which is
// fine at catalog scale.
type PG struct {
	db *pgxpool.Pool
}

func NewPG(db *pgxpool.Pool) *PG {
	return &PG{db: db}
}

func (r *PG) FindByID(ctx context.Context, id string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *PG) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PG) Scan(ctx context.Context, pred func(domain.Flight) bool) ([]domain.Flight, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Flight, 0, len(all))
	for _, f := range all {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(
		&f.ID, &f.FlightNumber, &f.Airline.Code, &f.Airline.Name,
		&f.DepartureAirport.Code, &f.DepartureAirport.Name, &f.DepartureAirport.City, &f.DepartureAirport.Country,
		&f.ArrivalAirport.Code, &f.ArrivalAirport.Name, &f.ArrivalAirport.City, &f.ArrivalAirport.Country,
		&f.DepartureTime, &f.DurationMinutes, &f.Stops, &f.Price.Amount, &f.Price.Currency,
		&f.CabinClass, &f.Aircraft, &f.SeatsAvailable,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

var _ Catalog = (*PG)(nil)
