// internal/adapters/in/http/store/handler/feedback_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "patisserie/internal/application/usecase"
)

// FeedbackHandler serves customer feedback: submission (with optional
// photo) and the approved-only storefront listing. Moderation lives in the
// admin handler.
type FeedbackHandler struct {
	uc     *usecase.FeedbackUsecase
	images ImageStore
}

func NewFeedbackHandler(uc *usecase.FeedbackUsecase, images ImageStore) http.Handler {
	return &FeedbackHandler{uc: uc, images: images}
}

func (h *FeedbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	log.Printf("[feedback_handler] enter method=%s path=%q\n", r.Method, path)

	if h.uc == nil {
		internalError(w, "feedback handler is not configured")
		return
	}

	switch {
	case r.Method == http.MethodPost && hasSuffixAny(path, "/feedback"):
		h.handleCreate(w, r, start)
	case r.Method == http.MethodGet && hasSuffixAny(path, "/feedback"):
		h.handleListApproved(w, r, start)
	default:
		notFound(w, "not found")
	}
}

// handleCreate accepts multipart/form-data: customerEmail, text, optional
// "photo" file part. Upload precedes persistence; the object is removed if
// persistence fails.
func (h *FeedbackHandler) handleCreate(w http.ResponseWriter, r *http.Request, start time.Time) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		badRequest(w, "invalid multipart form")
		return
	}

	get := func(key string) string {
		if vs := r.MultipartForm.Value[key]; len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}

	cid := customerID(r, get("customerEmail"))
	text := get("text")
	if cid == "" || text == "" {
		badRequest(w, "customerEmail and text are required")
		return
	}

	uploadedPath := ""
	if file, header, ferr := r.FormFile("photo"); ferr == nil {
		defer file.Close()

		ct := header.Header.Get("Content-Type")
		if _, ok := allowedImageTypes[ct]; !ok {
			badRequest(w, "photo must be JPEG, PNG, or GIF")
			return
		}
		if h.images == nil {
			internalError(w, "image store is not configured")
			return
		}

		p, uerr := h.images.Put(r.Context(), "feedback_images", cid, header.Filename, ct, file)
		if uerr != nil {
			log.Printf("[feedback_handler] POST create image upload failed customer=%q err=%v\n", cid, uerr)
			internalError(w, "image upload failed")
			return
		}
		uploadedPath = p
	}

	fb, err := h.uc.Create(r.Context(), cid, text, uploadedPath)
	if err != nil {
		if uploadedPath != "" {
			if derr := h.images.Delete(r.Context(), uploadedPath); derr != nil {
				log.Printf("[feedback_handler] WARN: orphan image cleanup failed path=%q err=%v\n", uploadedPath, derr)
			}
		}
		h.writeFeedbackErr(w, err)
		return
	}

	log.Printf("[feedback_handler] POST create ok id=%q customer=%q elapsed=%s\n", fb.ID, cid, time.Since(start))
	writeData(w, http.StatusCreated, fb)
}

func (h *FeedbackHandler) handleListApproved(w http.ResponseWriter, r *http.Request, start time.Time) {
	items, err := h.uc.ListApproved(r.Context())
	if err != nil {
		internalError(w, err.Error())
		return
	}
	log.Printf("[feedback_handler] GET list-approved ok count=%d elapsed=%s\n", len(items), time.Since(start))
	writeData(w, http.StatusOK, items)
}

func (h *FeedbackHandler) writeFeedbackErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrFeedbackNotFound):
		notFound(w, "feedback not found")
	case errors.Is(err, usecase.ErrFeedbackInvalidArgument):
		badRequest(w, err.Error())
	default:
		internalError(w, err.Error())
	}
}
