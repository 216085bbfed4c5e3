// internal/platform/di/store/container.go
package store

import (
	"context"
	"errors"
	"log"

	"patisserie/internal/adapters/out/db"
	fsrepo "patisserie/internal/adapters/out/firestore"
	"patisserie/internal/adapters/out/gcs"
	"patisserie/internal/adapters/out/mail"
	"patisserie/internal/adapters/out/pdf"
	usecase "patisserie/internal/application/usecase"
	orderdom "patisserie/internal/domain/order"
	shared "patisserie/internal/platform/di/shared"
)

// Container wires repositories, adapters and usecases for the storefront
// service.
type Container struct {
	Infra *shared.Infra

	// Usecases
	Catalog   *usecase.CatalogUsecase
	Cakes     *usecase.CakeUsecase
	Cart      *usecase.CartUsecase
	Checkout  *usecase.CheckoutUsecase
	Orders    *usecase.OrderUsecase
	Payments  *usecase.PaymentUsecase
	Invoices  *usecase.InvoiceUsecase
	Discounts *usecase.DiscountUsecase
	Feedback  *usecase.FeedbackUsecase
	Inquiries *usecase.InquiryUsecase
	Config    *usecase.SystemConfigUsecase

	// Adapters shared with handlers
	Images *gcs.ImageRepositoryGCS
}

func NewContainer(ctx context.Context, infra *shared.Infra) (*Container, error) {
	if infra == nil {
		var err error
		infra, err = shared.NewInfra(ctx)
		if err != nil {
			return nil, err
		}
	}
	if infra.Config == nil {
		return nil, errors.New("di.store: shared infra config is nil")
	}
	if infra.Firestore == nil {
		return nil, errors.New("di.store: infra.Firestore is nil")
	}
	if infra.GCS == nil {
		return nil, errors.New("di.store: infra.GCS is nil")
	}

	c := &Container{Infra: infra}

	// ------------------------------------------------------------
	// Outbound adapters
	// ------------------------------------------------------------
	catalogRepo := fsrepo.NewCatalogRepositoryFS(infra.Firestore)
	cakeRepo := fsrepo.NewCakeRepositoryFS(infra.Firestore)
	cartRepo := fsrepo.NewCartRepositoryFS(infra.Firestore)
	discountRepo := fsrepo.NewDiscountRepositoryFS(infra.Firestore)
	cardRepo := fsrepo.NewCardRepositoryFS(infra.Firestore)
	feedbackRepo := fsrepo.NewFeedbackRepositoryFS(infra.Firestore)
	inquiryRepo := fsrepo.NewInquiryRepositoryFS(infra.Firestore)
	configRepo := fsrepo.NewSystemConfigRepositoryFS(infra.Firestore)

	var orderRepo orderdom.Repository = fsrepo.NewOrderRepositoryFS(infra.Firestore)
	var revenue usecase.RevenueReader

	// Postgres read model, when configured: orders project into it on every
	// write and the revenue report queries it.
	if infra.DB != nil && infra.DB.Client != nil {
		pg := db.NewOrderRevenuePG(infra.DB.Client)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Printf("[di.store] WARN: order_revenue schema init failed: %v (revenue served from Firestore)", err)
		} else {
			orderRepo = db.NewOrderProjectionRepository(orderRepo, pg)
			revenue = pg
			log.Printf("[di.store] order revenue read model enabled (postgres)")
		}
	}

	c.Images = gcs.NewImageRepositoryGCS(infra.GCS, infra.ImageBucket)

	// Invoice artifacts: GCS bucket when configured, local dir otherwise.
	var artifacts usecase.InvoiceArtifactStore
	if infra.InvoiceBucket != "" {
		artifacts = gcs.NewInvoiceArtifactGCS(infra.GCS, infra.InvoiceBucket)
	} else {
		artifacts = pdf.NewInvoiceArtifactLocal(infra.InvoiceDir)
	}

	// SendGrid key: Secret Manager first, env fallback inside the wire
	// helper.
	apiKey, err := resolveSendGridAPIKey(ctx, infra.SecretManager, infra.ProjectID, infra.Config.SendGridSecretName)
	if err != nil {
		log.Printf("[di.store] WARN: sendgrid secret resolve failed: %v (falling back to env)", err)
	}
	mailer := mail.NewInquiryMailerWithSendGrid(apiKey)

	// ------------------------------------------------------------
	// Usecases
	// ------------------------------------------------------------
	c.Catalog = usecase.NewCatalogUsecase(catalogRepo)
	c.Cakes = usecase.NewCakeUsecase(cakeRepo)
	c.Cart = usecase.NewCartUsecase(cartRepo, catalogRepo, cakeRepo)
	c.Checkout = usecase.NewCheckoutUsecase(cartRepo, catalogRepo, cakeRepo, orderRepo, configRepo)
	c.Orders = usecase.NewOrderUsecaseWithRevenue(orderRepo, revenue)
	c.Payments = usecase.NewPaymentUsecase(cardRepo)
	c.Invoices = usecase.NewInvoiceUsecase(orderRepo, pdf.NewInvoiceRendererFPDF(), artifacts)
	c.Discounts = usecase.NewDiscountUsecase(discountRepo)
	c.Feedback = usecase.NewFeedbackUsecase(feedbackRepo)
	c.Inquiries = usecase.NewInquiryUsecase(inquiryRepo, mailer)
	c.Config = usecase.NewSystemConfigUsecase(configRepo)

	log.Printf("[di.store] container initialized")
	return c, nil
}

// Close releases container-owned resources. The shared infra is owned by the
// caller (main) and closed there.
func (c *Container) Close() error {
	return nil
}
