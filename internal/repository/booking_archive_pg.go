package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyways/skybook/internal/kafka"
)

// BookingArchive persists the booking event stream so the audit trail
// survives the process. The in-session history stays the source of
// truth for the lifecycle itself.
type BookingArchive interface {
	Save(ctx context.Context, event kafka.BookingEvent) error
}

type PGBookingArchive struct {
	db *pgxpool.Pool
}

func NewBookingArchive(db *pgxpool.Pool) BookingArchive {
	return &PGBookingArchive{db: db}
}

func (r *PGBookingArchive) Save(ctx context.Context, event kafka.BookingEvent) error {
	_, err := r.db.Exec(ctx, `INSERT INTO booking_archive (booking_id, event_type, status, payment_status, contact_email, total_amount, currency, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (booking_id) DO UPDATE SET
			event_type = EXCLUDED.event_type,
			status = EXCLUDED.status,
			payment_status = EXCLUDED.payment_status,
			occurred_at = EXCLUDED.occurred_at`,
		event.BookingID, event.Type, event.Status, event.PaymentStatus, event.ContactEmail, event.TotalAmount, event.Currency, event.OccurredAt)
	return err
}

var _ BookingArchive = (*PGBookingArchive)(nil)
