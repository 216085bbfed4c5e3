// internal/adapters/in/http/store/handler/catalog_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "patisserie/internal/application/usecase"
)

// CatalogHandler serves the catalog browse surface and the admin CRUD on
// catalog items, including PUT /store/update-stock.
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	log.Printf("[catalog_handler] enter method=%s path=%q\n", r.Method, path)

	if h.uc == nil {
		internalError(w, "catalog handler is not configured")
		return
	}

	switch {
	case r.Method == http.MethodGet && hasSuffixAny(path, "/store/items"):
		h.handleList(w, r, start)
	case r.Method == http.MethodGet && strings.Contains(path, "/store/items/"):
		h.handleGet(w, r, start)
	case r.Method == http.MethodPost && hasSuffixAny(path, "/store/items"):
		h.handleCreate(w, r, start)
	case r.Method == http.MethodPut && hasSuffixAny(path, "/store/update-stock"):
		h.handleUpdateStock(w, r, start)
	case r.Method == http.MethodPut && strings.Contains(path, "/store/items/"):
		h.handleUpdate(w, r, start)
	case r.Method == http.MethodDelete && strings.Contains(path, "/store/items/"):
		h.handleDelete(w, r, start)
	default:
		notFound(w, "not found")
	}
}

func (h *CatalogHandler) handleList(w http.ResponseWriter, r *http.Request, start time.Time) {
	items, err := h.uc.List(r.Context())
	if err != nil {
		internalError(w, err.Error())
		return
	}
	log.Printf("[catalog_handler] GET list ok count=%d elapsed=%s\n", len(items), time.Since(start))
	writeData(w, http.StatusOK, items)
}

func (h *CatalogHandler) handleGet(w http.ResponseWriter, r *http.Request, start time.Time) {
	id := lastPathSegment(r.URL.Path)
	it, err := h.uc.Get(r.Context(), id)
	if err != nil {
		h.writeCatalogErr(w, err)
		return
	}
	log.Printf("[catalog_handler] GET item ok id=%q elapsed=%s\n", id, time.Since(start))
	writeData(w, http.StatusOK, it)
}

type catalogItemReq struct {
	Name      string `json:"name"`
	ImagePath string `json:"imagePath"`
	UnitPrice int    `json:"unitPrice"`
	Stock     int    `json:"stock"`
}

func (h *CatalogHandler) handleCreate(w http.ResponseWriter, r *http.Request, start time.Time) {
	var req catalogItemReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.UnitPrice < 0 || req.Stock < 0 {
		badRequest(w, "name, unitPrice(>=0), stock(>=0) are required")
		return
	}

	it, err := h.uc.Create(r.Context(), req.Name, req.ImagePath, req.UnitPrice, req.Stock)
	if err != nil {
		h.writeCatalogErr(w, err)
		return
	}
	log.Printf("[catalog_handler] POST create ok id=%q elapsed=%s\n", it.ID, time.Since(start))
	writeData(w, http.StatusCreated, it)
}

func (h *CatalogHandler) handleUpdate(w http.ResponseWriter, r *http.Request, start time.Time) {
	id := lastPathSegment(r.URL.Path)

	var req catalogItemReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	it, err := h.uc.Update(r.Context(), id, req.Name, req.ImagePath, req.UnitPrice, req.Stock)
	if err != nil {
		h.writeCatalogErr(w, err)
		return
	}
	log.Printf("[catalog_handler] PUT update ok id=%q elapsed=%s\n", id, time.Since(start))
	writeData(w, http.StatusOK, it)
}

type updateStockReq struct {
	ItemID string `json:"itemId"`
	Qty    int    `json:"qty"`
}

// handleUpdateStock is the confirmed-add stock decrement: an atomic
// check-and-decrement that either reserves the full quantity or changes
// nothing.
func (h *CatalogHandler) handleUpdateStock(w http.ResponseWriter, r *http.Request, start time.Time) {
	var req updateStockReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" || req.Qty <= 0 {
		badRequest(w, "itemId and qty(>=1) are required")
		return
	}

	it, err := h.uc.ReserveStock(r.Context(), itemID, req.Qty)
	if err != nil {
		log.Printf("[catalog_handler] PUT update-stock uc error item=%q qty=%d err=%v\n", itemID, req.Qty, err)
		h.writeCatalogErr(w, err)
		return
	}
	log.Printf("[catalog_handler] PUT update-stock ok item=%q qty=%d remaining=%d elapsed=%s\n",
		itemID, req.Qty, it.Stock, time.Since(start))
	writeData(w, http.StatusOK, it)
}

func (h *CatalogHandler) handleDelete(w http.ResponseWriter, r *http.Request, start time.Time) {
	id := lastPathSegment(r.URL.Path)
	if err := h.uc.Delete(r.Context(), id); err != nil {
		h.writeCatalogErr(w, err)
		return
	}
	log.Printf("[catalog_handler] DELETE ok id=%q elapsed=%s\n", id, time.Since(start))
	writeSuccess(w, http.StatusOK, nil)
}

func (h *CatalogHandler) writeCatalogErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrCatalogNotFound):
		notFound(w, "item not found")
	case errors.Is(err, usecase.ErrCatalogOutOfStock):
		badRequest(w, "insufficient stock")
	case errors.Is(err, usecase.ErrCatalogInvalidArgument):
		badRequest(w, err.Error())
	default:
		internalError(w, err.Error())
	}
}
