package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type PassengerType string

const (
	PassengerAdult  PassengerType = "adult"
	PassengerChild  PassengerType = "child"
	PassengerInfant PassengerType = "infant"
)

type Passenger struct {
	Type        PassengerType `json:"type"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	DateOfBirth time.Time     `json:"date_of_birth"`
	Passport    string        `json:"passport"`
	Nationality string        `json:"nationality"`
}

// Booking is created in pending/pending and only ever moves forward.
// Once confirmed it is immutable except for the payment audit fields.
type Booking struct {
	ID             string        `json:"id"`
	Status         BookingStatus `json:"status"`
	OutboundFlight Flight        `json:"outbound_flight"`
	ReturnFlight   *Flight       `json:"return_flight,omitempty"`
	Passengers     []Passenger   `json:"passengers"`
	ContactEmail   string        `json:"contact_email"`
	ContactPhone   string        `json:"contact_phone"`
	TotalAmount    float64       `json:"total_amount"`
	Currency       string        `json:"currency"`
	BookingDate    time.Time     `json:"booking_date"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	PaymentMethod  string        `json:"payment_method,omitempty"`
	PaymentAmount  float64       `json:"payment_amount,omitempty"`
	PaymentDate    *time.Time    `json:"payment_date,omitempty"`
}
