// internal/adapters/in/http/store/handler/cake_handler.go
package storeHandler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "patisserie/internal/application/usecase"
)

// ImageStore is the object-storage slice the upload handlers need. The GCS
// adapter satisfies it.
type ImageStore interface {
	Put(ctx context.Context, prefix, ownerID, fileName, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

// CakeHandler serves the custom cake configurator: spec creation with an
// optional multipart reference image, listing, deletion.
type CakeHandler struct {
	uc     *usecase.CakeUsecase
	images ImageStore
}

func NewCakeHandler(uc *usecase.CakeUsecase, images ImageStore) http.Handler {
	return &CakeHandler{uc: uc, images: images}
}

func (h *CakeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	log.Printf("[cake_handler] enter method=%s path=%q\n", r.Method, path)

	if h.uc == nil {
		internalError(w, "cake handler is not configured")
		return
	}

	switch {
	case r.Method == http.MethodPost && hasSuffixAny(path, "/cakes"):
		h.handleCreate(w, r, start)
	case r.Method == http.MethodGet && hasSuffixAny(path, "/cakes"):
		h.handleListByCustomer(w, r, start)
	case r.Method == http.MethodDelete && strings.Contains(path, "/cakes/"):
		h.handleDelete(w, r, start)
	default:
		notFound(w, "not found")
	}
}

// handleCreate accepts multipart/form-data: scalar spec fields plus an
// optional "referenceImage" file part (JPEG/PNG/GIF, 10MB cap). The image
// is uploaded first; if validation or persistence then fails, the uploaded
// object is deleted so no orphan remains.
func (h *CakeHandler) handleCreate(w http.ResponseWriter, r *http.Request, start time.Time) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		badRequest(w, "invalid multipart form")
		return
	}

	form := r.MultipartForm
	get := func(key string) string {
		if form == nil {
			return ""
		}
		if vs := form.Value[key]; len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}

	cid := customerID(r, get("customerEmail"))
	if cid == "" {
		badRequest(w, "customerEmail is required")
		return
	}

	requiredDate, err := time.Parse("2006-01-02", get("requiredDate"))
	if err != nil {
		badRequest(w, "requiredDate must be YYYY-MM-DD")
		return
	}

	in := usecase.CreateCakeSpecInput{
		CustomerEmail: cid,
		Event:         get("event"),
		BaseType:      get("baseType"),
		RequiredDate:  requiredDate,
		Size:          get("size"),
		Colors:        splitCSV(get("colors")),
		Pickup:        strings.EqualFold(get("pickup"), "true"),
		Toppings:      splitCSV(get("toppings")),
		Writing:       get("writing"),
		Notes:         get("notes"),
		Price:         parseIntDefault(get("price"), 0),
	}

	// Optional reference image. Uploaded before the spec is persisted so the
	// stored imagePath is final; cleaned up when anything after it fails.
	uploadedPath := ""
	if file, header, ferr := r.FormFile("referenceImage"); ferr == nil {
		defer file.Close()

		ct := header.Header.Get("Content-Type")
		if _, ok := allowedImageTypes[ct]; !ok {
			badRequest(w, "referenceImage must be JPEG, PNG, or GIF")
			return
		}
		if h.images == nil {
			internalError(w, "image store is not configured")
			return
		}

		p, uerr := h.images.Put(r.Context(), "cake_images", cid, header.Filename, ct, file)
		if uerr != nil {
			log.Printf("[cake_handler] POST create image upload failed customer=%q err=%v\n", cid, uerr)
			internalError(w, "image upload failed")
			return
		}
		uploadedPath = p
		in.ImagePath = p
	}

	spec, err := h.uc.Create(r.Context(), in)
	if err != nil {
		if uploadedPath != "" {
			if derr := h.images.Delete(r.Context(), uploadedPath); derr != nil {
				log.Printf("[cake_handler] WARN: orphan image cleanup failed path=%q err=%v\n", uploadedPath, derr)
			}
		}
		h.writeCakeErr(w, err)
		return
	}

	log.Printf("[cake_handler] POST create ok id=%q customer=%q elapsed=%s\n", spec.ID, cid, time.Since(start))
	writeData(w, http.StatusCreated, spec)
}

func (h *CakeHandler) handleListByCustomer(w http.ResponseWriter, r *http.Request, start time.Time) {
	cid := customerID(r, "")
	if cid == "" {
		badRequest(w, "customerId is required")
		return
	}

	specs, err := h.uc.ListByCustomer(r.Context(), cid)
	if err != nil {
		h.writeCakeErr(w, err)
		return
	}
	log.Printf("[cake_handler] GET list ok customer=%q count=%d elapsed=%s\n", cid, len(specs), time.Since(start))
	writeData(w, http.StatusOK, specs)
}

func (h *CakeHandler) handleDelete(w http.ResponseWriter, r *http.Request, start time.Time) {
	id := lastPathSegment(r.URL.Path)
	if err := h.uc.Delete(r.Context(), id); err != nil {
		h.writeCakeErr(w, err)
		return
	}
	log.Printf("[cake_handler] DELETE ok id=%q elapsed=%s\n", id, time.Since(start))
	writeSuccess(w, http.StatusOK, nil)
}

func (h *CakeHandler) writeCakeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrCakeNotFound):
		notFound(w, "cake spec not found")
	case errors.Is(err, usecase.ErrCakeInvalidArgument):
		badRequest(w, err.Error())
	default:
		internalError(w, err.Error())
	}
}

func splitCSV(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
