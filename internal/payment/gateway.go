// Package payment defines the gateway contract consumed by the booking
// lifecycle and a stub implementation that approves charges after a
// fixed delay.
package payment

import (
	"context"
	"time"
)

// Result is the gateway's verdict on a charge attempt.
type Result struct {
	Approved bool
	Reason   string
}

type Gateway interface {
	Charge(ctx context.Context, bookingID, method string, amount float64) (Result, error)
}

// Stub resolves every charge after Delay. Booking ids listed in declined
// are rejected with a reason code, which lets tests drive the retry
// loop. Context expiry aborts the wait and returns ctx.Err().
type Stub struct {
	Delay    time.Duration
	declined map[string]string
}

func NewStub(delay time.Duration) *Stub {
	return &Stub{Delay: delay, declined: make(map[string]string)}
}

// FailFor makes the stub decline charges for the given booking id.
func (s *Stub) FailFor(bookingID, reason string) {
	s.declined[bookingID] = reason
}

func (s *Stub) Charge(ctx context.Context, bookingID, _ string, _ float64) (Result, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	if reason, ok := s.declined[bookingID]; ok {
		return Result{Approved: false, Reason: reason}, nil
	}
	return Result{Approved: true}, nil
}

var _ Gateway = (*Stub)(nil)
