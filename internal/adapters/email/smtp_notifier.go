package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"airport-nav-service/internal/ports"
)

// SMTP settings plus the two recipient groups: Receivers get success
// notifications, ErrorGroup gets failure notifications.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Sender     string
	Receivers  []string
	ErrorGroup []string
}

// SMTPNotifier implements Notifier over SMTP with HTML bodies.
type SMTPNotifier struct {
	client     *mail.Client
	sender     string
	receivers  []string
	errorGroup []string
}

func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp notifier: host is empty")
	}
	if cfg.Sender == "" {
		return nil, errors.New("smtp notifier: sender is empty")
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp notifier: create client: %w", err)
	}

	return &SMTPNotifier{
		client:     client,
		sender:     cfg.Sender,
		receivers:  cfg.Receivers,
		errorGroup: cfg.ErrorGroup,
	}, nil
}

// Send delivers a raw HTML message to explicit recipients.
func (n *SMTPNotifier) Send(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return errors.New("send email: no recipients")
	}

	msg := mail.NewMsg()
	if err := msg.From(n.sender); err != nil {
		return fmt.Errorf("send email: set sender: %w", err)
	}
	if err := msg.To(to...); err != nil {
		return fmt.Errorf("send email: set recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send email %q: %w", subject, err)
	}

	return nil
}

// NotifySuccess emails the receiver group. A non-empty facilities slice is
// appended as an HTML table; a non-negative count adds a total-count line.
// A timestamp line is always appended.
func (n *SMTPNotifier) NotifySuccess(ctx context.Context, subject, body string, facilities []ports.FacilitySummary, count int) error {
	if len(facilities) > 0 {
		body += "<br><br>" + FormatFacilityTable(facilities)
	}
	if count != ports.OmitCount {
		body += fmt.Sprintf("<br><br>Total Count: %d", count)
	}
	body += "<br><br>Timestamp: " + time.Now().Format("03:04 PM")

	return n.Send(ctx, n.receivers, subject, body)
}

// NotifyFailure emails the error-handling group, appending optional details
// and a timestamp line.
func (n *SMTPNotifier) NotifyFailure(ctx context.Context, subject, body, details string) error {
	if details != "" {
		body += "<br><br>Details:<br>" + details
	}
	body += "<br><br>Timestamp: " + time.Now().Format("03:04 PM")

	return n.Send(ctx, n.errorGroup, subject, body)
}
