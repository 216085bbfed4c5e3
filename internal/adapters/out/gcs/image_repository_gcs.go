// internal/adapters/out/gcs/image_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
)

const defaultImageBucket = "patisserie-images"

// ImageRepositoryGCS stores uploaded images (cake reference photos, catalog
// item photos, feedback photos) as GCS objects.
//
// Object naming convention:
// - "cake_images/<specID>/<fileName>"
// - "catalog_images/<itemID>/<fileName>"
// - "feedback_images/<feedbackID>/<fileName>"
//
// The stored object path is what goes into the entity's imagePath field;
// PublicURL derives the serving URL from it.
type ImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

func NewImageRepositoryGCS(client *storage.Client, bucket string) *ImageRepositoryGCS {
	b := strings.TrimSpace(bucket)
	if b == "" {
		b = defaultImageBucket
	}
	return &ImageRepositoryGCS{
		Client: client,
		Bucket: b,
	}
}

func (r *ImageRepositoryGCS) bucket() string {
	b := strings.TrimSpace(r.Bucket)
	if b == "" {
		return defaultImageBucket
	}
	return b
}

// Put uploads one object and returns its object path ("<prefix>/<owner>/<fileName>").
func (r *ImageRepositoryGCS) Put(ctx context.Context, prefix, ownerID, fileName, contentType string, body io.Reader) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("ImageRepositoryGCS: nil storage client")
	}
	ownerID = strings.TrimSpace(ownerID)
	fileName = strings.TrimSpace(fileName)
	if ownerID == "" || fileName == "" {
		return "", errors.New("ImageRepositoryGCS: empty ownerID or fileName")
	}

	objectPath := path.Join(strings.TrimSpace(prefix), ownerID, fileName)
	w := r.Client.Bucket(r.bucket()).Object(objectPath).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("ImageRepositoryGCS: upload %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("ImageRepositoryGCS: upload %s: %w", objectPath, err)
	}
	return objectPath, nil
}

// Delete removes one object. An already-absent object is not an error
// (orphan cleanup retries are idempotent).
func (r *ImageRepositoryGCS) Delete(ctx context.Context, objectPath string) error {
	if r == nil || r.Client == nil {
		return errors.New("ImageRepositoryGCS: nil storage client")
	}
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	if obj == "" {
		return nil
	}

	err := r.Client.Bucket(r.bucket()).Object(obj).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return err
	}
	return nil
}

// PublicURL returns the serving URL for a stored object path.
func (r *ImageRepositoryGCS) PublicURL(objectPath string) string {
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", r.bucket(), obj)
}
