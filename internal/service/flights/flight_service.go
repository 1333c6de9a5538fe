package flights

import (
	"context"

	"github.com/skyways/skybook/internal/catalog"
	"github.com/skyways/skybook/internal/domain"
	"github.com/skyways/skybook/internal/search"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Search(ctx context.Context, criteria search.Criteria, spec search.FilterSpec, key search.SortKey, order search.SortOrder) ([]domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

// Service answers flight queries from the catalog through a
// read-through cache, delegating matching, filtering, and ranking to
// the pure search engine.
type Service struct {
	catalog catalog.Catalog
	cache   Cache
}

func NewService(cat catalog.Catalog, cache Cache) *Service {
	return &Service{catalog: cat, cache: cache}
}

func (s *Service) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.catalog.FindByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, criteria search.Criteria, spec search.FilterSpec, key search.SortKey, order search.SortOrder) ([]domain.Flight, error) {
	var matched []domain.Flight
	if s.cache != nil {
		flights, err := s.List(ctx)
		if err != nil {
			return nil, err
		}
		matched = search.Search(flights, criteria)
	} else {
		var err error
		matched, err = s.catalog.Scan(ctx, func(f domain.Flight) bool {
			return search.Matches(f, criteria)
		})
		if err != nil {
			return nil, err
		}
	}

	filtered := search.Filter(matched, spec)
	return search.Sort(filtered, key, order), nil
}

var _ FlightUseCase = (*Service)(nil)
