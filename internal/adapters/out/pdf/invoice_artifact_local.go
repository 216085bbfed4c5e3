// internal/adapters/out/pdf/invoice_artifact_local.go
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InvoiceArtifactLocal writes invoice PDFs to a local directory. Used in
// development when no object-storage bucket is configured; the returned
// "URL" is the filesystem path.
type InvoiceArtifactLocal struct {
	Dir string
}

func NewInvoiceArtifactLocal(dir string) *InvoiceArtifactLocal {
	return &InvoiceArtifactLocal{Dir: strings.TrimSpace(dir)}
}

func (s *InvoiceArtifactLocal) Put(_ context.Context, orderID string, pdf []byte) (string, error) {
	if s == nil || s.Dir == "" {
		return "", errors.New("invoice_artifact_local: dir not configured")
	}
	oid := strings.TrimSpace(orderID)
	if oid == "" {
		return "", errors.New("invoice_artifact_local: empty orderID")
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	p := filepath.Join(s.Dir, fmt.Sprintf("invoice_%s.pdf", oid))
	if err := os.WriteFile(p, pdf, 0o644); err != nil {
		return "", err
	}
	return p, nil
}
