package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelgo/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email to user %s about %s for trip to %s on %s\n",
		event.UserID, event.Type, event.Destination, event.FlightDate.Format("2006-01-02"))
	return nil
}
