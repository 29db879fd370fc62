package smtp

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"billbook/internal/email"
	"billbook/internal/port"
)

type smtpSender struct {
	send        func(*gomail.Message) error
	fromAddress string
	fromName    string
}

// NewSMTPSender creates an EmailSender that delivers through an SMTP relay.
// Each message opens its own connection.
func NewSMTPSender(host string, port int, username, password, fromAddress, fromName string) port.EmailSender {
	dialer := gomail.NewDialer(host, port, username, password)
	return newSender(dialer.DialAndSend, fromAddress, fromName)
}

func newSender(send func(...*gomail.Message) error, fromAddress, fromName string) *smtpSender {
	return &smtpSender{
		send:        func(m *gomail.Message) error { return send(m) },
		fromAddress: fromAddress,
		fromName:    fromName,
	}
}

func (s *smtpSender) SendInvoiceLink(ctx context.Context, msg *port.InvoiceLinkEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", msg.ToEmail)
	m.SetHeader("Subject", email.InvoiceSubject(s.fromName, msg))
	m.SetBody("text/plain", email.BuildInvoiceText(s.fromName, msg))
	m.AddAlternative("text/html", email.BuildInvoiceHTML(s.fromName, msg))

	if err := s.send(m); err != nil {
		return fmt.Errorf("SMTP send: %w", err)
	}
	return nil
}
