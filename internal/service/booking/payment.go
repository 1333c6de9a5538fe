package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyways/skybook/internal/domain"
	"github.com/skyways/skybook/internal/payment"
)

// PaymentAttempt is the handle for one in-flight gateway charge. The
// two-phase split (begin, then complete) makes timeout and cancellation
// first-class instead of being implied by a sleep.
type PaymentAttempt struct {
	BookingID string
	Method    string
	Amount    float64
	done      chan chargeOutcome
}

type chargeOutcome struct {
	result payment.Result
	err    error
}

// BeginPayment checks the booking and fires the gateway charge. The
// booking is not touched until CompletePayment observes the outcome.
func (s *Session) BeginPayment(ctx context.Context, bookingID, method string, amount float64) (*PaymentAttempt, error) {
	idx := s.indexOf(bookingID)
	if idx < 0 {
		return nil, domain.ErrBookingNotFound
	}
	if s.history[idx].Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}
	if s.strictAmount && amount != s.history[idx].TotalAmount {
		return nil, domain.ErrPaymentAmountMismatch
	}

	attempt := &PaymentAttempt{
		BookingID: bookingID,
		Method:    method,
		Amount:    amount,
		done:      make(chan chargeOutcome, 1),
	}
	go func() {
		result, err := s.gateway.Charge(ctx, bookingID, method, amount)
		attempt.done <- chargeOutcome{result: result, err: err}
	}()
	return attempt, nil
}

// CompletePayment waits for the gateway outcome. Approval confirms the
// booking; a decline records a failed payment status and leaves the
// booking pending so the caller can retry; a context expiry surfaces as
// ErrPaymentTimedOut with the booking left fully untouched.
func (s *Session) CompletePayment(ctx context.Context, attempt *PaymentAttempt) (*domain.Booking, error) {
	outcome := <-attempt.done

	if outcome.err != nil {
		if errors.Is(outcome.err, context.DeadlineExceeded) || errors.Is(outcome.err, context.Canceled) {
			return nil, domain.ErrPaymentTimedOut
		}
		return nil, fmt.Errorf("payment gateway: %w", outcome.err)
	}

	if !outcome.result.Approved {
		if idx := s.indexOf(attempt.BookingID); idx >= 0 {
			s.markPaymentFailed(ctx, idx)
		}
		return nil, errPaymentDeclined(outcome.result.Reason)
	}

	return s.ConfirmPayment(ctx, attempt.BookingID, attempt.Method, attempt.Amount)
}
