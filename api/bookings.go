package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyways/skybook/internal/domain"
	"github.com/skyways/skybook/internal/service/flights"
)

type BookingHandler struct {
	sessions   *SessionRegistry
	flights    flights.FlightUseCase
	payTimeout time.Duration
}

func NewBookingHandler(sessions *SessionRegistry, flightSvc flights.FlightUseCase, payTimeout time.Duration) *BookingHandler {
	return &BookingHandler{sessions: sessions, flights: flightSvc, payTimeout: payTimeout}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/select", h.selectFlight)
	router.POST("/", h.create)
	router.POST("/:id/payment", h.pay)
	router.GET("/:id", h.get)
	router.GET("/", h.history)
	router.DELETE("/current", h.clear)
}

type selectFlightRequest struct {
	FlightID string `json:"flight_id"`
	IsReturn bool   `json:"is_return"`
}

type passengerRequest struct {
	Type        string `json:"type"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Passport    string `json:"passport"`
	Nationality string `json:"nationality"`
}

type createBookingRequest struct {
	Passengers   []passengerRequest `json:"passengers"`
	ContactEmail string             `json:"contact_email"`
	ContactPhone string             `json:"contact_phone"`
}

type paymentRequest struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

func (h *BookingHandler) selectFlight(c *gin.Context) {
	var req selectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.flights.GetByID(c.Request.Context(), req.FlightID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	session := h.sessions.Get(c.GetHeader(SessionHeader))
	if err := session.SelectFlight(*flight, req.IsReturn); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passengers := make([]domain.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passenger := domain.Passenger{
			Type:        domain.PassengerType(p.Type),
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Passport:    p.Passport,
			Nationality: p.Nationality,
		}
		if p.DateOfBirth != "" {
			dob, err := time.Parse("2006-01-02", p.DateOfBirth)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date of birth: " + p.DateOfBirth})
				return
			}
			passenger.DateOfBirth = dob
		}
		passengers = append(passengers, passenger)
	}

	session := h.sessions.Get(c.GetHeader(SessionHeader))
	booking, err := session.CreateBooking(c.Request.Context(), passengers, req.ContactEmail, req.ContactPhone)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) pay(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if h.payTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.payTimeout)
		defer cancel()
	}

	session := h.sessions.Get(c.GetHeader(SessionHeader))
	booking, err := session.Pay(ctx, c.Param("id"), req.Method, req.Amount)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) get(c *gin.Context) {
	session := h.sessions.Get(c.GetHeader(SessionHeader))
	booking, err := session.GetBookingByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) history(c *gin.Context) {
	session := h.sessions.Get(c.GetHeader(SessionHeader))
	c.JSON(http.StatusOK, session.History())
}

func (h *BookingHandler) clear(c *gin.Context) {
	session := h.sessions.Get(c.GetHeader(SessionHeader))
	session.ClearCurrentBooking()
	c.Status(http.StatusNoContent)
}

func statusFor(err error) int {
	var validation *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPaymentTimedOut):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrNoFlightSelected),
		errors.Is(err, domain.ErrNoSeatsAvailable),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrPaymentAmountMismatch):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
