// internal/adapters/in/http/store/handler/payment_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "patisserie/internal/application/usecase"
)

// PaymentHandler serves card verification and invoice generation.
// Verification has no side effect on order status: completion stays a
// separate admin action.
type PaymentHandler struct {
	payments *usecase.PaymentUsecase
	invoices *usecase.InvoiceUsecase
}

func NewPaymentHandler(payments *usecase.PaymentUsecase, invoices *usecase.InvoiceUsecase) http.Handler {
	return &PaymentHandler{payments: payments, invoices: invoices}
}

func (h *PaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	log.Printf("[payment_handler] enter method=%s path=%q\n", r.Method, path)

	switch {
	case r.Method == http.MethodPost && hasSuffixAny(path, "/payment/verify-card"):
		h.handleVerifyCard(w, r, start)
	case r.Method == http.MethodGet && strings.Contains(path, "/payment/generate-invoice/"):
		h.handleGenerateInvoice(w, r, start)
	default:
		notFound(w, "not found")
	}
}

type verifyCardReq struct {
	HolderName string `json:"holderName"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

func (h *PaymentHandler) handleVerifyCard(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.payments == nil {
		internalError(w, "payment handler is not configured")
		return
	}

	var req verifyCardReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	err := h.payments.VerifyCard(r.Context(), req.HolderName, req.CardNumber, req.Expiry, req.CVV)
	if err != nil {
		// Wrong number, wrong expiry, wrong cvv, unknown card: one answer.
		if errors.Is(err, usecase.ErrPaymentCardNotRecognized) || errors.Is(err, usecase.ErrPaymentInvalidArgument) {
			log.Printf("[payment_handler] POST verify-card rejected elapsed=%s\n", time.Since(start))
			badRequest(w, "invalid card details")
			return
		}
		internalError(w, err.Error())
		return
	}

	log.Printf("[payment_handler] POST verify-card ok elapsed=%s\n", time.Since(start))
	writeSuccess(w, http.StatusOK, nil)
}

func (h *PaymentHandler) handleGenerateInvoice(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.invoices == nil {
		internalError(w, "invoice handler is not configured")
		return
	}

	orderID := lastPathSegment(r.URL.Path)
	if orderID == "" || orderID == "generate-invoice" {
		badRequest(w, "orderId is required")
		return
	}

	url, err := h.invoices.Render(r.Context(), orderID)
	if err != nil {
		log.Printf("[payment_handler] GET generate-invoice error order=%q err=%v\n", orderID, err)
		switch {
		case errors.Is(err, usecase.ErrInvoiceOrderNotFound):
			notFound(w, "order not found")
		case errors.Is(err, usecase.ErrInvoiceInvalidArgument):
			badRequest(w, err.Error())
		default:
			internalError(w, err.Error())
		}
		return
	}

	log.Printf("[payment_handler] GET generate-invoice ok order=%q elapsed=%s\n", orderID, time.Since(start))
	writeSuccess(w, http.StatusOK, map[string]any{"invoiceUrl": url})
}
