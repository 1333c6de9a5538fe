package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyways/skybook/internal/domain"
	"github.com/skyways/skybook/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Search(ctx context.Context, criteria search.Criteria, spec search.FilterSpec, key search.SortKey, order search.SortOrder) ([]domain.Flight, error) {
	args := m.Called(ctx, criteria, spec, key, order)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func testFlight() domain.Flight {
	return domain.Flight{
		ID:               "FL-002",
		FlightNumber:     "SK 202",
		Airline:          domain.Airline{Code: "SK", Name: "SkyWays Airlines"},
		DepartureAirport: domain.Airport{Code: "JFK", City: "New York", Country: "USA"},
		ArrivalAirport:   domain.Airport{Code: "LAX", City: "Los Angeles", Country: "USA"},
		DepartureTime:    time.Date(2025, 7, 10, 10, 30, 0, 0, time.UTC),
		DurationMinutes:  375,
		Stops:            1,
		Price:            domain.Price{Amount: 349.99, Currency: "USD"},
		CabinClass:       "Economy",
		SeatsAvailable:   15,
	}
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights?from=JFK&to=LAX&cabin=economy&tripType=oneway&stops=nonstop&sortBy=price&order=asc", nil)

	mockService.On("Search", c.Request.Context(),
		search.Criteria{Origin: "JFK", Destination: "LAX", Cabin: "economy"},
		search.FilterSpec{Stops: search.StopsNonstop, Departure: search.DepartureAll},
		search.SortByPrice, search.Asc,
	).Return([]domain.Flight{testFlight()}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Outbound, 1)
	assert.Equal(t, "FL-002", response.Outbound[0].ID)
	assert.Empty(t, response.Return)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_roundTripAddsReturnLeg(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights?from=JFK&to=LAX&depart=2025-07-10T00:00:00Z&return=2025-07-17T00:00:00Z", nil)

	spec := search.FilterSpec{Stops: search.StopsAll, Departure: search.DepartureAll}
	mockService.On("Search", c.Request.Context(),
		search.Criteria{Origin: "JFK", Destination: "LAX"},
		spec, search.SortByPrice, search.Asc,
	).Return([]domain.Flight{testFlight()}, nil)
	mockService.On("Search", c.Request.Context(),
		search.Criteria{Origin: "LAX", Destination: "JFK"},
		spec, search.SortByPrice, search.Asc,
	).Return([]domain.Flight{}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "FL-002"}}
	c.Request = httptest.NewRequest("GET", "/flights/FL-002", nil)

	flight := testFlight()
	mockService.On("GetByID", c.Request.Context(), "FL-002").Return(&flight, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.Flight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "FL-002", response.ID)
	assert.Equal(t, 349.99, response.Price.Amount)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_notFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "FL-404"}}
	c.Request = httptest.NewRequest("GET", "/flights/FL-404", nil)

	mockService.On("GetByID", c.Request.Context(), "FL-404").Return(nil, assert.AnError)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
