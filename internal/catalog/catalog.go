// Package catalog provides read-only access to the flight inventory.
package catalog

import (
	"context"
	"errors"

	"github.com/skyways/skybook/internal/domain"
)

var ErrFlightNotFound = errors.New("flight not found")

// Catalog is an immutable, queryable flight set.
type Catalog interface {
	FindByID(ctx context.Context, id string) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	Scan(ctx context.Context, pred func(domain.Flight) bool) ([]domain.Flight, error)
}
