// internal/adapters/out/gcs/invoice_artifact_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"cloud.google.com/go/storage"
)

// InvoiceArtifactGCS stores rendered invoice PDFs under a deterministic
// object path keyed by order id, so re-rendering overwrites the prior
// artifact.
//
// Object naming convention: "invoices/invoice_<orderID>.pdf"
type InvoiceArtifactGCS struct {
	Client *storage.Client
	Bucket string
}

func NewInvoiceArtifactGCS(client *storage.Client, bucket string) *InvoiceArtifactGCS {
	b := strings.TrimSpace(bucket)
	if b == "" {
		b = defaultImageBucket
	}
	return &InvoiceArtifactGCS{
		Client: client,
		Bucket: b,
	}
}

func (s *InvoiceArtifactGCS) Put(ctx context.Context, orderID string, pdf []byte) (string, error) {
	if s == nil || s.Client == nil {
		return "", errors.New("InvoiceArtifactGCS: nil storage client")
	}
	oid := strings.TrimSpace(orderID)
	if oid == "" {
		return "", errors.New("InvoiceArtifactGCS: empty orderID")
	}

	objectPath := path.Join("invoices", fmt.Sprintf("invoice_%s.pdf", oid))
	w := s.Client.Bucket(s.Bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = "application/pdf"

	if _, err := w.Write(pdf); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("InvoiceArtifactGCS: upload %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("InvoiceArtifactGCS: upload %s: %w", objectPath, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.Bucket, objectPath), nil
}
