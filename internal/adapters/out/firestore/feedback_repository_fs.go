// internal/adapters/out/firestore/feedback_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	feedbackdom "patisserie/internal/domain/feedback"
)

const feedbackCollection = "feedbacks"

// FeedbackRepositoryFS implements feedback.Repository using Firestore.
//
// Collection design:
// - collection: feedbacks
// - docId: feedback id
type FeedbackRepositoryFS struct {
	Client *firestore.Client
}

func NewFeedbackRepositoryFS(client *firestore.Client) *FeedbackRepositoryFS {
	return &FeedbackRepositoryFS{Client: client}
}

func (r *FeedbackRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(feedbackCollection)
}

func (r *FeedbackRepositoryFS) GetByID(ctx context.Context, id string) (*feedbackdom.Feedback, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("feedback_repository_fs: firestore client is nil")
	}
	fid := strings.TrimSpace(id)
	if fid == "" {
		return nil, feedbackdom.ErrInvalidID
	}

	snap, err := r.col().Doc(fid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, feedbackdom.ErrNotFound
		}
		return nil, err
	}

	var f feedbackdom.Feedback
	if err := snap.DataTo(&f); err != nil {
		return nil, err
	}
	f.ID = fid
	return &f, nil
}

func (r *FeedbackRepositoryFS) Create(ctx context.Context, f *feedbackdom.Feedback) error {
	if r == nil || r.Client == nil {
		return errors.New("feedback_repository_fs: firestore client is nil")
	}
	if f == nil {
		return errors.New("feedback_repository_fs: feedback is nil")
	}
	fid := strings.TrimSpace(f.ID)
	if fid == "" {
		return feedbackdom.ErrInvalidID
	}

	_, err := r.col().Doc(fid).Create(ctx, f)
	return err
}

func (r *FeedbackRepositoryFS) ListApproved(ctx context.Context) ([]feedbackdom.Feedback, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("feedback_repository_fs: firestore client is nil")
	}
	return r.collect(ctx, r.col().Where("approved", "==", true))
}

func (r *FeedbackRepositoryFS) ListAll(ctx context.Context) ([]feedbackdom.Feedback, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("feedback_repository_fs: firestore client is nil")
	}
	return r.collect(ctx, r.col().Query)
}

func (r *FeedbackRepositoryFS) SetApproved(ctx context.Context, id string, approved bool) (*feedbackdom.Feedback, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("feedback_repository_fs: firestore client is nil")
	}
	fid := strings.TrimSpace(id)
	if fid == "" {
		return nil, feedbackdom.ErrInvalidID
	}

	_, err := r.col().Doc(fid).Update(ctx, []firestore.Update{
		{Path: "approved", Value: approved},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, feedbackdom.ErrNotFound
		}
		return nil, err
	}

	return r.GetByID(ctx, fid)
}

func (r *FeedbackRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("feedback_repository_fs: firestore client is nil")
	}
	fid := strings.TrimSpace(id)
	if fid == "" {
		return feedbackdom.ErrInvalidID
	}

	ref := r.col().Doc(fid)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return feedbackdom.ErrNotFound
		}
		return err
	}

	_, err := ref.Delete(ctx)
	return err
}

func (r *FeedbackRepositoryFS) collect(ctx context.Context, q firestore.Query) ([]feedbackdom.Feedback, error) {
	it := q.Documents(ctx)
	defer it.Stop()

	out := []feedbackdom.Feedback{}
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var f feedbackdom.Feedback
		if err := snap.DataTo(&f); err != nil {
			return nil, err
		}
		f.ID = snap.Ref.ID
		out = append(out, f)
	}
	return out, nil
}
