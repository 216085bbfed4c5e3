// internal/adapters/in/http/store/handler/discount_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "patisserie/internal/application/usecase"
)

// DiscountHandler serves discount redemption. A code is single-use: the
// percent comes back exactly once, after which the same code answers 400.
type DiscountHandler struct {
	uc *usecase.DiscountUsecase
}

func NewDiscountHandler(uc *usecase.DiscountUsecase) http.Handler {
	return &DiscountHandler{uc: uc}
}

type redeemReq struct {
	Code     string `json:"code"`
	Subtotal int    `json:"subtotal"`
}

func (h *DiscountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	log.Printf("[discount_handler] enter method=%s path=%q\n", r.Method, path)

	if h.uc == nil {
		internalError(w, "discount handler is not configured")
		return
	}
	if r.Method != http.MethodPost || !hasSuffixAny(path, "/discount/redeem") {
		notFound(w, "not found")
		return
	}

	var req redeemReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		badRequest(w, "code is required")
		return
	}
	if req.Subtotal < 0 {
		badRequest(w, "subtotal must be >= 0")
		return
	}

	percent, err := h.uc.Redeem(r.Context(), req.Code)
	if err != nil {
		// unknown and already-used are indistinguishable on purpose
		if errors.Is(err, usecase.ErrDiscountInvalidCode) || errors.Is(err, usecase.ErrDiscountInvalidArgument) {
			log.Printf("[discount_handler] POST redeem rejected code=%q elapsed=%s\n", req.Code, time.Since(start))
			badRequest(w, "invalid or used discount code")
			return
		}
		internalError(w, err.Error())
		return
	}

	discounted, err := h.uc.Apply(req.Subtotal, percent)
	if err != nil {
		internalError(w, err.Error())
		return
	}

	log.Printf("[discount_handler] POST redeem ok code=%q percent=%d subtotal=%d discounted=%d elapsed=%s\n",
		req.Code, percent, req.Subtotal, discounted, time.Since(start))
	writeData(w, http.StatusOK, map[string]any{
		"percent":    percent,
		"subtotal":   req.Subtotal,
		"discounted": discounted,
	})
}
