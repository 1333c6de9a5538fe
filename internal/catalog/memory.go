package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/skyways/skybook/internal/domain"
)

// Memory is an in-memory catalog loaded once at startup. Flights are
// never mutated after loading.
type Memory struct {
	flights []domain.Flight
	byID    map[string]domain.Flight
}

func NewMemory(flights []domain.Flight) *Memory {
	byID := make(map[string]domain.Flight, len(flights))
	for _, f := range flights {
		byID[f.ID] = f
	}
	return &Memory{flights: flights, byID: byID}
}

// NewMemoryFromFile loads the catalog from a JSON fixture file.
func NewMemoryFromFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog fixture: %w", err)
	}
	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("parse catalog fixture: %w", err)
	}
	return NewMemory(flights), nil
}

func (m *Memory) FindByID(_ context.Context, id string) (*domain.Flight, error) {
	f, ok := m.byID[id]
	if !ok {
		return nil, ErrFlightNotFound
	}
	return &f, nil
}

func (m *Memory) List(_ context.Context) ([]domain.Flight, error) {
	out := make([]domain.Flight, len(m.flights))
	copy(out, m.flights)
	return out, nil
}

func (m *Memory) Scan(_ context.Context, pred func(domain.Flight) bool) ([]domain.Flight, error) {
	out := make([]domain.Flight, 0, len(m.flights))
	for _, f := range m.flights {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

var _ Catalog = (*Memory)(nil)
