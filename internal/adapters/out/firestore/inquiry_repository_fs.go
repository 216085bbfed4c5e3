// internal/adapters/out/firestore/inquiry_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	inquirydom "patisserie/internal/domain/inquiry"
)

const inquiryCollection = "inquiries"

// InquiryRepositoryFS implements inquiry.Repository using Firestore.
//
// Collection design:
// - collection: inquiries
// - docId: inquiry id
type InquiryRepositoryFS struct {
	Client *firestore.Client
}

func NewInquiryRepositoryFS(client *firestore.Client) *InquiryRepositoryFS {
	return &InquiryRepositoryFS{Client: client}
}

func (r *InquiryRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(inquiryCollection)
}

func (r *InquiryRepositoryFS) GetByID(ctx context.Context, id string) (*inquirydom.Inquiry, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("inquiry_repository_fs: firestore client is nil")
	}
	qid := strings.TrimSpace(id)
	if qid == "" {
		return nil, inquirydom.ErrInvalidID
	}

	snap, err := r.col().Doc(qid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, inquirydom.ErrNotFound
		}
		return nil, err
	}

	var q inquirydom.Inquiry
	if err := snap.DataTo(&q); err != nil {
		return nil, err
	}
	q.ID = qid
	return &q, nil
}

func (r *InquiryRepositoryFS) Create(ctx context.Context, q *inquirydom.Inquiry) error {
	if r == nil || r.Client == nil {
		return errors.New("inquiry_repository_fs: firestore client is nil")
	}
	if q == nil {
		return errors.New("inquiry_repository_fs: inquiry is nil")
	}
	qid := strings.TrimSpace(q.ID)
	if qid == "" {
		return inquirydom.ErrInvalidID
	}

	_, err := r.col().Doc(qid).Create(ctx, q)
	return err
}

func (r *InquiryRepositoryFS) ListAll(ctx context.Context) ([]inquirydom.Inquiry, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("inquiry_repository_fs: firestore client is nil")
	}

	it := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer it.Stop()

	out := []inquirydom.Inquiry{}
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var q inquirydom.Inquiry
		if err := snap.DataTo(&q); err != nil {
			return nil, err
		}
		q.ID = snap.Ref.ID
		out = append(out, q)
	}
	return out, nil
}

func (r *InquiryRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("inquiry_repository_fs: firestore client is nil")
	}
	qid := strings.TrimSpace(id)
	if qid == "" {
		return inquirydom.ErrInvalidID
	}

	ref := r.col().Doc(qid)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return inquirydom.ErrNotFound
		}
		return err
	}

	_, err := ref.Delete(ctx)
	return err
}
