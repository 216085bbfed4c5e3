// internal/platform/di/store/register.go
package store

import (
	"encoding/json"
	"log"
	"net/http"

	storeHandler "patisserie/internal/adapters/in/http/store/handler"
	"patisserie/internal/adapters/in/http/middleware"
)

// requireAdminAuth wraps handler with AdminAuth (fail-closed). If the
// middleware is not initialized it returns 503 so the misconfiguration is
// obvious.
func requireAdminAuth(mw *middleware.AdminAuth, h http.Handler, name string) http.Handler {
	if h == nil {
		h = http.NotFoundHandler()
	}
	if mw == nil || mw.FirebaseAuth == nil {
		log.Printf("[store.register] ERROR: AdminAuth is not initialized (endpoint=%s). returning 503", name)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "admin_auth_not_initialized",
				"name":  name,
			})
		})
	}
	return mw.Handler(h)
}

// Register registers storefront routes onto mux. Pure DI: construct
// handlers and mount them; method/path branching lives in the handlers.
func Register(mux *http.ServeMux, cont *Container) {
	if mux == nil || cont == nil {
		return
	}

	var adminMW *middleware.AdminAuth
	if cont.Infra != nil && cont.Infra.FirebaseAuth != nil {
		adminMW = &middleware.AdminAuth{FirebaseAuth: cont.Infra.FirebaseAuth}
	} else {
		log.Printf("[store.register] WARN: FirebaseAuth is nil (admin endpoints will return 503)")
		adminMW = &middleware.AdminAuth{FirebaseAuth: nil}
	}

	cartH := storeHandler.NewCartHandler(cont.Cart)
	catalogH := storeHandler.NewCatalogHandler(cont.Catalog)
	cakeH := storeHandler.NewCakeHandler(cont.Cakes, cont.Images)
	checkoutH := storeHandler.NewCheckoutHandler(cont.Checkout)
	paymentH := storeHandler.NewPaymentHandler(cont.Payments, cont.Invoices)
	discountH := storeHandler.NewDiscountHandler(cont.Discounts)
	feedbackH := storeHandler.NewFeedbackHandler(cont.Feedback, cont.Images)
	inquiryH := storeHandler.NewInquiryHandler(cont.Inquiries)
	adminH := storeHandler.NewAdminHandler(cont.Orders, cont.Feedback, cont.Inquiries, cont.Discounts, cont.Config)

	mux.Handle("/cart", cartH)
	mux.Handle("/cart/", cartH)
	mux.Handle("/store/", catalogH)
	mux.Handle("/cakes", cakeH)
	mux.Handle("/cakes/", cakeH)
	mux.Handle("/create_order_from_cart", checkoutH)
	mux.Handle("/payment/", paymentH)
	mux.Handle("/discount/", discountH)
	mux.Handle("/feedback", feedbackH)
	mux.Handle("/inquiries", inquiryH)
	mux.Handle("/admin/", requireAdminAuth(adminMW, adminH, "admin"))

	log.Printf("[store.register] storefront routes registered")
}
