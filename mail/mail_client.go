package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

const (
	SubjectBookingConfirmation = "Booking Confirmation"
	SubjectBookingCancellation = "Booking Cancellation"
)

// Sender sends a single plain-text email per call. Sends are synchronous
// with no batching and no retry.
type Sender interface {
	Send(ctx context.Context, subject string, recipients []string, body string) error
}

// Client sends mail through the club's SMTP server over SSL.
type Client struct {
	host     string
	port     int
	username string
	password string
	from     string
	timeout  time.Duration
}

func NewClient(host string, port int, username, password, from string) *Client {
	return &Client{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		timeout:  10 * time.Second,
	}
}

func (c *Client) Send(ctx context.Context, subject string, recipients []string, body string) error {
	if len(recipients) == 0 {
		return errors.New("recipients list cannot be empty")
	}

	msg := gomail.NewMsg()

	if err := msg.From(c.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}

	if err := msg.To(recipients...); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(c.host,
		gomail.WithPort(c.port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(c.username),
		gomail.WithPassword(c.password),
		gomail.WithTimeout(c.timeout),
	)

	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// CancellationBody builds the waiting-list notification sent when a booked
// slot is freed. Date must be dd/mm/yyyy and timeSlot HH:MM.
func CancellationBody(firstName, date, timeSlot string) (string, error) {
	if _, err := time.Parse("02/01/2006", date); err != nil {
		return "", fmt.Errorf("invalid date %q, expected dd/mm/yyyy", date)
	}

	if _, err := time.Parse("15:04", timeSlot); err != nil {
		return "", fmt.Errorf("invalid time slot %q, expected HH:MM", timeSlot)
	}

	body := fmt.Sprintf(`Hi %s,

The following booking on the squash court waiting list has been cancelled and is now available for bookings:

Details:
- Date: %s
- Time Slot: %s

Please note that all bookings are processed on a first-come, first-served basis. Therefore, to secure a spot, make a new reservation as soon as possible.
If the booking is no longer available, you are welcome to add yourself back to the waiting list.

Kind regards,
Squash Committee

P.S: Please note that this mailbox is not being monitored, and any emails sent here will not be read or responded to.
`, firstName, date, timeSlot)

	return body, nil
}
