// internal/adapters/in/http/store/handler/admin_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "patisserie/internal/application/usecase"
	orderdom "patisserie/internal/domain/order"
)

// AdminHandler serves the back-office surface: order lifecycle, revenue
// report, feedback moderation, inquiry inbox, vacation mode, discount
// grant creation. Mounted behind the admin auth middleware.
type AdminHandler struct {
	orders    *usecase.OrderUsecase
	feedback  *usecase.FeedbackUsecase
	inquiries *usecase.InquiryUsecase
	discounts *usecase.DiscountUsecase
	config    *usecase.SystemConfigUsecase
}

func NewAdminHandler(
	orders *usecase.OrderUsecase,
	feedback *usecase.FeedbackUsecase,
	inquiries *usecase.InquiryUsecase,
	discounts *usecase.DiscountUsecase,
	config *usecase.SystemConfigUsecase,
) http.Handler {
	return &AdminHandler{
		orders:    orders,
		feedback:  feedback,
		inquiries: inquiries,
		discounts: discounts,
		config:    config,
	}
}

func (h *AdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	log.Printf("[admin_handler] enter method=%s path=%q query=%q\n", r.Method, path, r.URL.RawQuery)

	switch {
	// Orders
	case r.Method == http.MethodPut && strings.Contains(path, "/admin/orders/") && hasSuffixAny(path, "/status"):
		h.handleOrderStatus(w, r, start)
	case r.Method == http.MethodGet && hasSuffixAny(path, "/admin/orders"):
		h.handleOrderList(w, r, start)
	case r.Method == http.MethodDelete && strings.Contains(path, "/admin/orders/"):
		h.handleOrderDelete(w, r, start)
	case r.Method == http.MethodGet && hasSuffixAny(path, "/admin/order-counts"):
		h.handleOrderCounts(w, r, start)
	case r.Method == http.MethodGet && hasSuffixAny(path, "/admin/monthly-revenue"):
		h.handleMonthlyRevenue(w, r, start)

	// Feedback moderation
	case r.Method == http.MethodGet && hasSuffixAny(path, "/admin/feedback"):
		h.handleFeedbackList(w, r, start)
	case r.Method == http.MethodPut && strings.Contains(path, "/admin/feedback/") && hasSuffixAny(path, "/approve"):
		h.handleFeedbackApprove(w, r, start)
	case r.Method == http.MethodDelete && strings.Contains(path, "/admin/feedback/"):
		h.handleFeedbackDelete(w, r, start)

	// Inquiry inbox
	case r.Method == http.MethodGet && hasSuffixAny(path, "/admin/inquiries"):
		h.handleInquiryList(w, r, start)
	case r.Method == http.MethodDelete && strings.Contains(path, "/admin/inquiries/"):
		h.handleInquiryDelete(w, r, start)

	// Vacation mode
	case r.Method == http.MethodGet && hasSuffixAny(path, "/admin/vacation-mode"):
		h.handleVacationGet(w, r, start)
	case r.Method == http.MethodPut && hasSuffixAny(path, "/admin/vacation-mode"):
		h.handleVacationSet(w, r, start)

	// Discount grants
	case r.Method == http.MethodPost && hasSuffixAny(path, "/admin/discounts"):
		h.handleDiscountCreate(w, r, start)

	default:
		notFound(w, "not found")
	}
}

// -------------------------
// Orders
// -------------------------

type orderStatusReq struct {
	Status string `json:"status"`
}

// handleOrderStatus implements PUT /admin/orders/:id/status. The only
// accepted target is "completed"; completed→completed re-applies without
// error.
func (h *AdminHandler) handleOrderStatus(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.orders == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	// ".../admin/orders/<id>/status"
	trimmed := strings.TrimSuffix(strings.TrimRight(r.URL.Path, "/"), "/status")
	orderID := lastPathSegment(trimmed)
	if orderID == "" || orderID == "orders" {
		badRequest(w, "order id is required")
		return
	}

	var req orderStatusReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	st, err := orderdom.ParseStatus(req.Status)
	if err != nil || st != orderdom.StatusCompleted {
		badRequest(w, "status must be \"completed\"")
		return
	}

	o, err := h.orders.MarkCompleted(r.Context(), orderID)
	if err != nil {
		log.Printf("[admin_handler] PUT order-status error order=%q err=%v\n", orderID, err)
		h.writeOrderErr(w, err)
		return
	}

	log.Printf("[admin_handler] PUT order-status ok order=%q status=%s elapsed=%s\n", orderID, o.Status, time.Since(start))
	writeData(w, http.StatusOK, o)
}

func (h *AdminHandler) handleOrderList(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.orders == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	var (
		orders []orderdom.Order
		err    error
	)
	if cid := strings.TrimSpace(r.URL.Query().Get("customerId")); cid != "" {
		orders, err = h.orders.ListByCustomer(r.Context(), cid)
	} else {
		orders, err = h.orders.List(r.Context())
	}
	if err != nil {
		h.writeOrderErr(w, err)
		return
	}

	log.Printf("[admin_handler] GET orders ok count=%d elapsed=%s\n", len(orders), time.Since(start))
	writeData(w, http.StatusOK, orders)
}

func (h *AdminHandler) handleOrderDelete(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.orders == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	orderID := lastPathSegment(r.URL.Path)
	if err := h.orders.Delete(r.Context(), orderID); err != nil {
		h.writeOrderErr(w, err)
		return
	}
	log.Printf("[admin_handler] DELETE order ok order=%q elapsed=%s\n", orderID, time.Since(start))
	writeSuccess(w, http.StatusOK, nil)
}

func (h *AdminHandler) handleOrderCounts(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.orders == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	st, err := orderdom.ParseStatus(r.URL.Query().Get("status"))
	if err != nil {
		badRequest(w, "status must be pending or completed")
		return
	}

	var count int
	if cid := strings.TrimSpace(r.URL.Query().Get("customerId")); cid != "" {
		count, err = h.orders.CountForCustomer(r.Context(), cid, st)
	} else {
		count, err = h.orders.CountByStatus(r.Context(), st)
	}
	if err != nil {
		h.writeOrderErr(w, err)
		return
	}

	log.Printf("[admin_handler] GET order-counts ok status=%s count=%d elapsed=%s\n", st, count, time.Since(start))
	writeData(w, http.StatusOK, map[string]any{"status": st, "count": count})
}

func (h *AdminHandler) handleMonthlyRevenue(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.orders == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	now := time.Now().UTC()
	month := parseIntDefault(r.URL.Query().Get("month"), int(now.Month()))
	year := parseIntDefault(r.URL.Query().Get("year"), now.Year())

	report, err := h.orders.MonthlyRevenue(r.Context(), month, year)
	if err != nil {
		log.Printf("[admin_handler] GET monthly-revenue error month=%d year=%d err=%v\n", month, year, err)
		if errors.Is(err, usecase.ErrOrderInvalidArgument) {
			badRequest(w, "month must be 1..12")
			return
		}
		internalError(w, err.Error())
		return
	}

	log.Printf("[admin_handler] GET monthly-revenue ok month=%d year=%d revenue=%d growth=%d%% elapsed=%s\n",
		month, year, report.Revenue, report.GrowthPercent, time.Since(start))
	writeData(w, http.StatusOK, report)
}

func (h *AdminHandler) writeOrderErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		notFound(w, "order not found")
	case errors.Is(err, usecase.ErrOrderInvalidArgument):
		badRequest(w, err.Error())
	default:
		internalError(w, err.Error())
	}
}

// -------------------------
// Feedback moderation
// -------------------------

func (h *AdminHandler) handleFeedbackList(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.feedback == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	items, err := h.feedback.ListAll(r.Context())
	if err != nil {
		internalError(w, err.Error())
		return
	}
	log.Printf("[admin_handler] GET feedback ok count=%d elapsed=%s\n", len(items), time.Since(start))
	writeData(w, http.StatusOK, items)
}

func (h *AdminHandler) handleFeedbackApprove(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.feedback == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	trimmed := strings.TrimSuffix(strings.TrimRight(r.URL.Path, "/"), "/approve")
	id := lastPathSegment(trimmed)

	fb, err := h.feedback.Approve(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrFeedbackNotFound) {
			notFound(w, "feedback not found")
			return
		}
		internalError(w, err.Error())
		return
	}
	log.Printf("[admin_handler] PUT feedback-approve ok id=%q elapsed=%s\n", id, time.Since(start))
	writeData(w, http.StatusOK, fb)
}

func (h *AdminHandler) handleFeedbackDelete(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.feedback == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	id := lastPathSegment(r.URL.Path)
	if err := h.feedback.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrFeedbackNotFound) {
			notFound(w, "feedback not found")
			return
		}
		internalError(w, err.Error())
		return
	}
	log.Printf("[admin_handler] DELETE feedback ok id=%q elapsed=%s\n", id, time.Since(start))
	writeSuccess(w, http.StatusOK, nil)
}

// -------------------------
// Inquiry inbox
// -------------------------

func (h *AdminHandler) handleInquiryList(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.inquiries == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	items, err := h.inquiries.ListAll(r.Context())
	if err != nil {
		internalError(w, err.Error())
		return
	}
	log.Printf("[admin_handler] GET inquiries ok count=%d elapsed=%s\n", len(items), time.Since(start))
	writeData(w, http.StatusOK, items)
}

func (h *AdminHandler) handleInquiryDelete(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.inquiries == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	id := lastPathSegment(r.URL.Path)
	if err := h.inquiries.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrInquiryNotFound) {
			notFound(w, "inquiry not found")
			return
		}
		internalError(w, err.Error())
		return
	}
	log.Printf("[admin_handler] DELETE inquiry ok id=%q elapsed=%s\n", id, time.Since(start))
	writeSuccess(w, http.StatusOK, nil)
}

// -------------------------
// Vacation mode
// -------------------------

type vacationReq struct {
	Enabled bool `json:"enabled"`
}

func (h *AdminHandler) handleVacationGet(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.config == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	enabled, err := h.config.VacationMode(r.Context())
	if err != nil {
		internalError(w, err.Error())
		return
	}
	log.Printf("[admin_handler] GET vacation-mode ok enabled=%t elapsed=%s\n", enabled, time.Since(start))
	writeData(w, http.StatusOK, map[string]any{"enabled": enabled})
}

func (h *AdminHandler) handleVacationSet(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.config == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	var req vacationReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	if err := h.config.SetVacationMode(r.Context(), req.Enabled); err != nil {
		internalError(w, err.Error())
		return
	}
	log.Printf("[admin_handler] PUT vacation-mode ok enabled=%t elapsed=%s\n", req.Enabled, time.Since(start))
	writeData(w, http.StatusOK, map[string]any{"enabled": req.Enabled})
}

// -------------------------
// Discount grants
// -------------------------

type discountCreateReq struct {
	Percent int `json:"percent"`
}

func (h *AdminHandler) handleDiscountCreate(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.discounts == nil {
		internalError(w, "admin handler is not configured")
		return
	}

	var req discountCreateReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	g, err := h.discounts.CreateGrant(r.Context(), req.Percent)
	if err != nil {
		if errors.Is(err, usecase.ErrDiscountInvalidPercent) {
			badRequest(w, "percent must be within 0..100")
			return
		}
		internalError(w, err.Error())
		return
	}

	log.Printf("[admin_handler] POST discount ok code=%q percent=%d elapsed=%s\n", g.Code, g.Percent, time.Since(start))
	writeData(w, http.StatusCreated, g)
}
