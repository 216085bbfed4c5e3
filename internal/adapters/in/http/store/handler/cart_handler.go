// internal/adapters/in/http/store/handler/cart_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "patisserie/internal/application/usecase"
)

// CartHandler serves the storefront cart endpoints.
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")
	if path == "" {
		path = "/"
	}

	log.Printf("[cart_handler] enter method=%s path=%q query=%q\n", r.Method, path, r.URL.RawQuery)

	if h.uc == nil {
		log.Printf("[cart_handler] exit status=500 reason=uc is nil elapsed=%s\n", time.Since(start))
		internalError(w, "cart handler is not configured")
		return
	}

	switch {
	case r.Method == http.MethodGet && hasSuffixAny(path, "/cart"):
		h.handleView(w, r, start)
	case r.Method == http.MethodDelete && hasSuffixAny(path, "/cart"):
		h.handleClear(w, r, start)
	case r.Method == http.MethodPost && hasSuffixAny(path, "/cart/add"):
		h.handleAdd(w, r, start)
	case r.Method == http.MethodPost && hasSuffixAny(path, "/cart/add-cake"):
		h.handleAddCake(w, r, start)
	case r.Method == http.MethodPut && hasSuffixAny(path, "/cart/update-quantity"):
		h.handleUpdateQuantity(w, r, start)
	case r.Method == http.MethodDelete && hasSuffixAny(path, "/cart/remove-item"):
		h.handleRemoveItem(w, r, start)
	case r.Method == http.MethodDelete && hasSuffixAny(path, "/cart/remove-cake"):
		h.handleRemoveCake(w, r, start)
	default:
		log.Printf("[cart_handler] exit status=404 method=%s path=%q elapsed=%s\n", r.Method, path, time.Since(start))
		notFound(w, "not found")
	}
}

type cartItemReq struct {
	CustomerID string `json:"customerId"`
	ItemID     string `json:"itemId"`
	Qty        int    `json:"qty"`
}

type cartCakeReq struct {
	CustomerID string `json:"customerId"`
	CakeSpecID string `json:"cakeSpecId"`
}

func (h *CartHandler) handleView(w http.ResponseWriter, r *http.Request, start time.Time) {
	cid := customerID(r, "")
	if cid == "" {
		badRequest(w, "customerId is required")
		return
	}

	v, err := h.uc.View(r.Context(), cid)
	if err != nil {
		h.writeCartErr(w, err)
		return
	}
	log.Printf("[cart_handler] GET view ok customer=%q lines=%d cakes=%d subtotal=%d elapsed=%s\n",
		cid, len(v.Lines), len(v.Cakes), v.Subtotal, time.Since(start))
	writeData(w, http.StatusOK, v)
}

func (h *CartHandler) handleAdd(w http.ResponseWriter, r *http.Request, start time.Time) {
	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	cid := customerID(r, req.CustomerID)
	itemID := strings.TrimSpace(req.ItemID)
	if cid == "" || itemID == "" || req.Qty <= 0 {
		badRequest(w, "customerId, itemId, qty(>=1) are required")
		return
	}

	if _, err := h.uc.AddCatalogItem(r.Context(), cid, itemID, req.Qty); err != nil {
		log.Printf("[cart_handler] POST add uc error customer=%q item=%q err=%v\n", cid, itemID, err)
		h.writeCartErr(w, err)
		return
	}
	log.Printf("[cart_handler] POST add ok customer=%q item=%q qty=%d elapsed=%s\n", cid, itemID, req.Qty, time.Since(start))
	h.respondView(w, r, cid)
}

func (h *CartHandler) handleAddCake(w http.ResponseWriter, r *http.Request, start time.Time) {
	var req cartCakeReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	cid := customerID(r, req.CustomerID)
	specID := strings.TrimSpace(req.CakeSpecID)
	if cid == "" || specID == "" {
		badRequest(w, "customerId and cakeSpecId are required")
		return
	}

	if _, err := h.uc.AddCake(r.Context(), cid, specID); err != nil {
		log.Printf("[cart_handler] POST add-cake uc error customer=%q spec=%q err=%v\n", cid, specID, err)
		h.writeCartErr(w, err)
		return
	}
	log.Printf("[cart_handler] POST add-cake ok customer=%q spec=%q elapsed=%s\n", cid, specID, time.Since(start))
	h.respondView(w, r, cid)
}

func (h *CartHandler) handleUpdateQuantity(w http.ResponseWriter, r *http.Request, start time.Time) {
	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	cid := customerID(r, req.CustomerID)
	itemID := strings.TrimSpace(req.ItemID)
	if cid == "" || itemID == "" {
		badRequest(w, "customerId and itemId are required")
		return
	}

	if _, err := h.uc.UpdateQuantity(r.Context(), cid, itemID, req.Qty); err != nil {
		log.Printf("[cart_handler] PUT update-quantity uc error customer=%q item=%q qty=%d err=%v\n", cid, itemID, req.Qty, err)
		h.writeCartErr(w, err)
		return
	}
	log.Printf("[cart_handler] PUT update-quantity ok customer=%q item=%q qty=%d elapsed=%s\n", cid, itemID, req.Qty, time.Since(start))
	h.respondView(w, r, cid)
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request, start time.Time) {
	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	cid := customerID(r, req.CustomerID)
	itemID := strings.TrimSpace(req.ItemID)
	if cid == "" || itemID == "" {
		badRequest(w, "customerId and itemId are required")
		return
	}

	if _, err := h.uc.RemoveItem(r.Context(), cid, itemID); err != nil {
		h.writeCartErr(w, err)
		return
	}
	log.Printf("[cart_handler] DELETE remove-item ok customer=%q item=%q elapsed=%s\n", cid, itemID, time.Since(start))
	h.respondView(w, r, cid)
}

func (h *CartHandler) handleRemoveCake(w http.ResponseWriter, r *http.Request, start time.Time) {
	var req cartCakeReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	cid := customerID(r, req.CustomerID)
	specID := strings.TrimSpace(req.CakeSpecID)
	if cid == "" || specID == "" {
		badRequest(w, "customerId and cakeSpecId are required")
		return
	}

	if _, err := h.uc.RemoveCake(r.Context(), cid, specID); err != nil {
		h.writeCartErr(w, err)
		return
	}
	log.Printf("[cart_handler] DELETE remove-cake ok customer=%q spec=%q elapsed=%s\n", cid, specID, time.Since(start))
	h.respondView(w, r, cid)
}

func (h *CartHandler) handleClear(w http.ResponseWriter, r *http.Request, start time.Time) {
	cid := customerID(r, "")
	if cid == "" {
		badRequest(w, "customerId is required")
		return
	}

	if err := h.uc.Clear(r.Context(), cid); err != nil {
		h.writeCartErr(w, err)
		return
	}
	log.Printf("[cart_handler] DELETE clear ok customer=%q elapsed=%s\n", cid, time.Since(start))
	writeSuccess(w, http.StatusOK, nil)
}

// respondView answers a mutation with the recomputed cart view (subtotal
// from live catalog prices).
func (h *CartHandler) respondView(w http.ResponseWriter, r *http.Request, cid string) {
	v, err := h.uc.View(r.Context(), cid)
	if err != nil {
		h.writeCartErr(w, err)
		return
	}
	writeData(w, http.StatusOK, v)
}

func (h *CartHandler) writeCartErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrCartNotFound):
		notFound(w, "cart not found")
	case errors.Is(err, usecase.ErrCartItemNotFound):
		notFound(w, "item not found")
	case errors.Is(err, usecase.ErrCartCakeNotFound):
		notFound(w, "cake spec not found")
	case errors.Is(err, usecase.ErrCartOutOfStock):
		badRequest(w, "requested quantity exceeds stock")
	case errors.Is(err, usecase.ErrCartInvalidQuantity):
		badRequest(w, "quantity must be >= 1")
	case errors.Is(err, usecase.ErrCartInvalidArgument):
		badRequest(w, err.Error())
	default:
		internalError(w, err.Error())
	}
}
