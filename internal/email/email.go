package email

import (
	"context"
	"fmt"

	"github.com/skyways/skybook/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email to %s about %s for booking %s (%.2f %s)\n",
		event.ContactEmail, event.Type, event.BookingID, event.TotalAmount, event.Currency)
	return nil
}
