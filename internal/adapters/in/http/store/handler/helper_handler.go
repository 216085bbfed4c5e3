// internal/adapters/in/http/store/handler/helper_handler.go
package storeHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ============================================================
// Response envelope
// ============================================================

// Every endpoint answers {success:true, data:...} or
// {success:false, message:"..."}; the storefront client shows message
// verbatim.

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, map[string]any{"success": true, "data": data})
}

func writeSuccess(w http.ResponseWriter, code int, extra map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, code, body)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"success": false, "message": strings.TrimSpace(msg)})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
}

func notFound(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusNotFound, msg)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg)
}

func internalError(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusInternalServerError, msg)
}

// ============================================================
// Request helpers
// ============================================================

func readJSON(r *http.Request, dst any) error {
	if dst == nil {
		return errors.New("dst is nil")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)) // 1MB
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// customerID resolves the acting customer: query param first, then the
// X-Customer-Id header, then the body-provided fallback.
func customerID(r *http.Request, fallback string) string {
	if v := strings.TrimSpace(r.URL.Query().Get("customerId")); v != "" {
		return v
	}
	if v := strings.TrimSpace(r.Header.Get("X-Customer-Id")); v != "" {
		return v
	}
	return strings.TrimSpace(fallback)
}

// lastPathSegment returns the final non-empty path segment
// (".../generate-invoice/ord-1" → "ord-1").
func lastPathSegment(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

func hasSuffixAny(p string, suffixes ...string) bool {
	for _, s := range suffixes {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if strings.HasSuffix(p, s) {
			return true
		}
	}
	return false
}

func parseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func toRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ============================================================
// Multipart upload limits
// ============================================================

const maxImageUploadBytes = 10 << 20 // 10MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}
