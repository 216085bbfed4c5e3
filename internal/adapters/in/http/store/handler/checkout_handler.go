// internal/adapters/in/http/store/handler/checkout_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "patisserie/internal/application/usecase"
)

// CheckoutHandler serves POST /create_order_from_cart: the single
// materialization point where the server-persisted cart intent becomes a
// frozen Order.
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{uc: uc}
}

type checkoutReq struct {
	CustomerID string `json:"customerId"`
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	log.Printf("[checkout_handler] enter method=%s path=%q\n", r.Method, path)

	if h.uc == nil {
		internalError(w, "checkout handler is not configured")
		return
	}
	if r.Method != http.MethodPost || !hasSuffixAny(path, "/create_order_from_cart") {
		notFound(w, "not found")
		return
	}

	var req checkoutReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	cid := customerID(r, req.CustomerID)
	if cid == "" {
		badRequest(w, "customerId is required")
		return
	}

	res, err := h.uc.Materialize(r.Context(), cid)
	if err != nil {
		log.Printf("[checkout_handler] POST materialize error customer=%q err=%v elapsed=%s\n", cid, err, time.Since(start))
		h.writeCheckoutErr(w, err)
		return
	}

	log.Printf("[checkout_handler] POST materialize ok customer=%q order=%q total=%d elapsed=%s\n",
		cid, res.OrderID, res.Total, time.Since(start))
	writeData(w, http.StatusCreated, map[string]any{
		"orderId": res.OrderID,
		"total":   res.Total,
	})
}

func (h *CheckoutHandler) writeCheckoutErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrCheckoutEmptyOrder):
		badRequest(w, "cart is empty")
	case errors.Is(err, usecase.ErrCheckoutVacationMode):
		badRequest(w, "store is on vacation")
	case errors.Is(err, usecase.ErrCheckoutItemNotFound):
		notFound(w, "catalog item not found")
	case errors.Is(err, usecase.ErrCheckoutCakeNotFound):
		notFound(w, "cake spec not found")
	case errors.Is(err, usecase.ErrCheckoutOutOfStock):
		badRequest(w, "insufficient stock")
	case errors.Is(err, usecase.ErrCheckoutInvalidArgument):
		badRequest(w, err.Error())
	default:
		// persistence and unknown failures surface as 500 with the
		// underlying message passed through
		internalError(w, err.Error())
	}
}
