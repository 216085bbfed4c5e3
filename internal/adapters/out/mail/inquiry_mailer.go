// internal/adapters/out/mail/inquiry_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"

	inqdom "patisserie/internal/domain/inquiry"
)

// EmailClient abstracts the low-level mail transport (SMTP / SendGrid).
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// InquiryMailer notifies the shop inbox about a new contact inquiry. It
// implements usecase.InquiryMailer on top of an EmailClient.
type InquiryMailer struct {
	client      EmailClient
	fromAddress string
	shopInbox   string
}

func NewInquiryMailer(client EmailClient, fromAddress, shopInbox string) *InquiryMailer {
	return &InquiryMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
		shopInbox:   strings.TrimSpace(shopInbox),
	}
}

func (m *InquiryMailer) NotifyInquiry(ctx context.Context, q inqdom.Inquiry) error {
	subject := fmt.Sprintf("[Patisserie] New inquiry from %s", q.Name)

	body := fmt.Sprintf(
		`A new inquiry arrived via the storefront contact form.

  Name : %s
  Email: %s
  Sent : %s

Message:
%s

--
Patisserie storefront`,
		q.Name,
		q.Email,
		q.CreatedAt.Format("2006-01-02 15:04 MST"),
		q.Message,
	)

	return m.client.Send(ctx, m.fromAddress, m.shopInbox, subject, body)
}
