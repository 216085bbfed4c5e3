// internal/adapters/in/http/store/handler/inquiry_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "patisserie/internal/application/usecase"
)

// InquiryHandler serves the storefront contact form. The inbox
// notification is best-effort inside the usecase; a mail failure never
// fails the submission.
type InquiryHandler struct {
	uc *usecase.InquiryUsecase
}

func NewInquiryHandler(uc *usecase.InquiryUsecase) http.Handler {
	return &InquiryHandler{uc: uc}
}

type inquiryReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *InquiryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	log.Printf("[inquiry_handler] enter method=%s path=%q\n", r.Method, path)

	if h.uc == nil {
		internalError(w, "inquiry handler is not configured")
		return
	}
	if r.Method != http.MethodPost || !hasSuffixAny(path, "/inquiries") {
		notFound(w, "not found")
		return
	}

	var req inquiryReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	q, err := h.uc.Create(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrInquiryInvalidArgument) {
			badRequest(w, "name, email, message are required")
			return
		}
		internalError(w, err.Error())
		return
	}

	log.Printf("[inquiry_handler] POST create ok id=%q elapsed=%s\n", q.ID, time.Since(start))
	writeData(w, http.StatusCreated, q)
}
