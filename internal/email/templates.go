// Package email renders the invoice-link message shared by every sender.
package email

import (
	"fmt"
	"html"

	"billbook/internal/port"
)

// InvoiceSubject is the subject line of an invoice email.
func InvoiceSubject(sender string, msg *port.InvoiceLinkEmail) string {
	return fmt.Sprintf("Invoice %s from %s", msg.InvoiceNumber, sender)
}

// BuildInvoiceText renders the plain-text body of an invoice email.
func BuildInvoiceText(sender string, msg *port.InvoiceLinkEmail) string {
	return fmt.Sprintf("Dear %s,\n\nPlease find invoice %s for %s at the link below:\n%s\n\nThe link expires in 7 days.\n\n%s",
		msg.CustomerName, msg.InvoiceNumber, msg.TotalAmount, msg.Link, sender)
}

// BuildInvoiceHTML renders the HTML body of an invoice email.
func BuildInvoiceHTML(sender string, msg *port.InvoiceLinkEmail) string {
	link := html.EscapeString(msg.Link)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Tax Invoice %s</h2>
  <p>Dear %s,</p>
  <p>Please find your invoice for <strong>%s</strong> below.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #1F7A4D; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Download Invoice</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <p style="color: #999; font-size: 12px;">This link expires in 7 days.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`,
		html.EscapeString(msg.InvoiceNumber),
		html.EscapeString(msg.CustomerName),
		html.EscapeString(msg.TotalAmount),
		link, link,
		html.EscapeString(sender))
}
