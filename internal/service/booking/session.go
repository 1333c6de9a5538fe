// Package booking owns the booking lifecycle: one in-progress selection
// and booking per session, advanced through validation, payment, and a
// terminal state.
package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/skyways/skybook/internal/domain"
	"github.com/skyways/skybook/internal/kafka"
	"github.com/skyways/skybook/internal/payment"
)

type Lifecycle interface {
	SelectFlight(flight domain.Flight, isReturn bool) error
	CreateBooking(ctx context.Context, passengers []domain.Passenger, contactEmail, contactPhone string) (*domain.Booking, error)
	ConfirmPayment(ctx context.Context, bookingID, method string, amount float64) (*domain.Booking, error)
	Pay(ctx context.Context, bookingID, method string, amount float64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetBookingByID(id string) (*domain.Booking, error)
	History() []domain.Booking
	ClearCurrentBooking()
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Session holds the mutable lifecycle state for one logical user
// session: the selected legs, the current booking, and the append-only
// history. Each session is single-writer; callers needing multiple
// users create one Session per user.
type Session struct {
	gateway            payment.Gateway
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	now                func() time.Time
	strictAmount       bool

	outbound     *domain.Flight
	returnFlight *domain.Flight
	current      *domain.Booking
	history      []domain.Booking
}

type SessionOption func(*Session)

func WithProducer(p Producer, eventsTopic string) SessionOption {
	return func(s *Session) {
		s.producer = p
		s.eventsTopic = eventsTopic
	}
}

func WithNotificationsTopic(topic string) SessionOption {
	return func(s *Session) {
		s.notificationsTopic = topic
	}
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// WithStrictAmountCheck makes ConfirmPayment reject amounts that do not
// match the booking total. Off by default: the reference behavior
// trusts the caller's amount.
func WithStrictAmountCheck() SessionOption {
	return func(s *Session) {
		s.strictAmount = true
	}
}

func NewSession(gateway payment.Gateway, opts ...SessionOption) *Session {
	s := &Session{
		gateway: gateway,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectFlight records the outbound or return leg choice, overwriting
// any previous selection for the same leg.
func (s *Session) SelectFlight(flight domain.Flight, isReturn bool) error {
	if flight.SeatsAvailable <= 0 {
		return domain.ErrNoSeatsAvailable
	}
	f := flight
	if isReturn {
		s.returnFlight = &f
	} else {
		s.outbound = &f
	}
	return nil
}

// CreateBooking validates the draft and, only if everything passes,
// creates a fresh pending booking and appends it to history. A failed
// call leaves no trace. Calling it twice deliberately creates two
// bookings: each call is a new user submission.
func (s *Session) CreateBooking(ctx context.Context, passengers []domain.Passenger, contactEmail, contactPhone string) (*domain.Booking, error) {
	if s.outbound == nil {
		return nil, domain.ErrNoFlightSelected
	}
	if err := validatePassengers(passengers, s.now()); err != nil {
		return nil, err
	}
	if err := validateContact(contactEmail, contactPhone); err != nil {
		return nil, err
	}
	if s.returnFlight != nil && s.returnFlight.Price.Currency != s.outbound.Price.Currency {
		return nil, domain.ErrCurrencyMismatch
	}

	total := s.outbound.Price.Amount
	if s.returnFlight != nil {
		total += s.returnFlight.Price.Amount
	}

	booking := domain.Booking{
		ID:             "BOOK-" + uuid.NewString(),
		Status:         domain.BookingStatusPending,
		OutboundFlight: *s.outbound,
		ReturnFlight:   s.returnFlight,
		Passengers:     append([]domain.Passenger(nil), passengers...),
		ContactEmail:   contactEmail,
		ContactPhone:   contactPhone,
		TotalAmount:    total,
		Currency:       s.outbound.Price.Currency,
		BookingDate:    s.now(),
		PaymentStatus:  domain.PaymentStatusPending,
	}

	s.history = append(s.history, booking)
	current := booking
	s.current = &current

	s.publish(ctx, "booking_created", &booking)
	return &booking, nil
}

// ConfirmPayment moves a pending booking to its terminal confirmed
// state and records the payment audit fields. The amount is trusted
// unless the session was built with WithStrictAmountCheck.
func (s *Session) ConfirmPayment(ctx context.Context, bookingID, method string, amount float64) (*domain.Booking, error) {
	idx := s.indexOf(bookingID)
	if idx < 0 {
		return nil, domain.ErrBookingNotFound
	}
	if s.history[idx].Status == domain.BookingStatusCancelled || s.history[idx].Status == domain.BookingStatusConfirmed {
		return nil, domain.ErrBookingNotPending
	}
	if s.strictAmount && amount != s.history[idx].TotalAmount {
		return nil, domain.ErrPaymentAmountMismatch
	}

	paidAt := s.now()
	b := &s.history[idx]
	b.Status = domain.BookingStatusConfirmed
	b.PaymentStatus = domain.PaymentStatusCompleted
	b.PaymentMethod = method
	b.PaymentAmount = amount
	b.PaymentDate = &paidAt

	if s.current != nil && s.current.ID == bookingID {
		current := *b
		s.current = &current
	}

	s.publish(ctx, "booking_confirmed", b)
	confirmed := *b
	return &confirmed, nil
}

// Pay runs the two-phase payment protocol end to end: it begins a
// gateway charge and completes it, confirming the booking on approval.
func (s *Session) Pay(ctx context.Context, bookingID, method string, amount float64) (*domain.Booking, error) {
	attempt, err := s.BeginPayment(ctx, bookingID, method, amount)
	if err != nil {
		return nil, err
	}
	return s.CompletePayment(ctx, attempt)
}

// CancelBooking moves a pending booking to its terminal cancelled
// state. Cancelling an already-cancelled booking is a no-op; confirmed
// bookings refuse cancellation.
func (s *Session) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	idx := s.indexOf(bookingID)
	if idx < 0 {
		return nil, domain.ErrBookingNotFound
	}
	b := &s.history[idx]
	if b.Status == domain.BookingStatusCancelled {
		cancelled := *b
		return &cancelled, nil
	}
	if b.Status == domain.BookingStatusConfirmed {
		return nil, domain.ErrBookingNotPending
	}

	b.Status = domain.BookingStatusCancelled
	if s.current != nil && s.current.ID == bookingID {
		current := *b
		s.current = &current
	}

	s.publish(ctx, "booking_cancelled", b)
	cancelled := *b
	return &cancelled, nil
}

func (s *Session) GetBookingByID(id string) (*domain.Booking, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrBookingNotFound
	}
	b := s.history[idx]
	return &b, nil
}

// History returns a snapshot of the append-only audit log.
func (s *Session) History() []domain.Booking {
	out := make([]domain.Booking, len(s.history))
	copy(out, s.history)
	return out
}

// CurrentBooking returns the active booking, if any.
func (s *Session) CurrentBooking() *domain.Booking {
	if s.current == nil {
		return nil
	}
	b := *s.current
	return &b
}

// ClearCurrentBooking resets the selection and current-booking pointers.
// History is kept: it is an append-only audit log.
func (s *Session) ClearCurrentBooking() {
	s.outbound = nil
	s.returnFlight = nil
	s.current = nil
}

func (s *Session) indexOf(bookingID string) int {
	for i := range s.history {
		if s.history[i].ID == bookingID {
			return i
		}
	}
	return -1
}

func (s *Session) markPaymentFailed(ctx context.Context, idx int) {
	b := &s.history[idx]
	b.PaymentStatus = domain.PaymentStatusFailed
	if s.current != nil && s.current.ID == b.ID {
		current := *b
		s.current = &current
	}
	s.publish(ctx, "payment_failed", b)
}

func (s *Session) publish(ctx context.Context, eventType string, b *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		BookingID:     b.ID,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		ContactEmail:  b.ContactEmail,
		TotalAmount:   b.TotalAmount,
		Currency:      b.Currency,
		OccurredAt:    s.now(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, b.ID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, b.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, b.ID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", eventType, b.ID, err)
		}
	}
}

// errPaymentDeclined carries the gateway's reason code.
func errPaymentDeclined(reason string) error {
	if reason == "" {
		return domain.ErrPaymentFailed
	}
	return fmt.Errorf("%w: %s", domain.ErrPaymentFailed, reason)
}

var _ Lifecycle = (*Session)(nil)
