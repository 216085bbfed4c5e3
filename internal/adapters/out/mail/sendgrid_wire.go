package mail

import (
	"log"
	"os"
)

const (
	envSendGridAPIKey = "SENDGRID_API_KEY"
	envSendGridFrom   = "SENDGRID_FROM" // e.g. no-reply@patisserie.example
	envShopInbox      = "SHOP_INBOX"    // where inquiry notifications go
)

// NewInquiryMailerWithSendGrid builds the SendGrid-backed InquiryMailer from
// environment variables. apiKey may also come from Secret Manager; when the
// caller resolved one, it wins over the env var.
func NewInquiryMailerWithSendGrid(resolvedAPIKey string) *InquiryMailer {
	apiKey := resolvedAPIKey
	if apiKey == "" {
		apiKey = os.Getenv(envSendGridAPIKey)
	}
	fromAddr := os.Getenv(envSendGridFrom)
	shopInbox := os.Getenv(envShopInbox)

	if apiKey == "" {
		log.Printf("[mail] WARN: SENDGRID_API_KEY is empty. InquiryMailer will fail to send mail.")
	}
	if fromAddr == "" {
		log.Printf("[mail] WARN: SENDGRID_FROM is empty. InquiryMailer will fail to send mail.")
	}
	if shopInbox == "" {
		shopInbox = fromAddr
		log.Printf("[mail] INFO: SHOP_INBOX is empty. default=%s", shopInbox)
	}

	client := NewSendGridClient(apiKey)
	mailer := NewInquiryMailer(client, fromAddr, shopInbox)

	log.Printf("[mail] InquiryMailerWithSendGrid initialized. from=%s inbox=%s",
		fromAddr, shopInbox)

	return mailer
}
