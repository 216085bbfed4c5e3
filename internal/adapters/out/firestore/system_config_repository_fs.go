// internal/adapters/out/firestore/system_config_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	systemConfigCollection = "system_config"
	vacationModeDoc        = "vacation_mode"
)

type vacationModeDocModel struct {
	Enabled   bool      `firestore:"enabled"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// SystemConfigRepositoryFS implements systemconfig.Repository using
// Firestore.
//
// Collection design:
// - collection: system_config
// - docId: vacation_mode (fixed, single document)
//
// The document is created with enabled=false on first read so the admin
// toggle always has something to flip.
type SystemConfigRepositoryFS struct {
	Client *firestore.Client
}

func NewSystemConfigRepositoryFS(client *firestore.Client) *SystemConfigRepositoryFS {
	return &SystemConfigRepositoryFS{Client: client}
}

func (r *SystemConfigRepositoryFS) doc() *firestore.DocumentRef {
	return r.Client.Collection(systemConfigCollection).Doc(vacationModeDoc)
}

func (r *SystemConfigRepositoryFS) GetVacationMode(ctx context.Context) (bool, error) {
	if r == nil || r.Client == nil {
		return false, errors.New("system_config_repository_fs: firestore client is nil")
	}

	snap, err := r.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			log.Printf("[SystemConfigFS] vacation_mode doc missing, creating with enabled=false")
			if err := r.SetVacationMode(ctx, false); err != nil {
				return false, err
			}
			return false, nil
		}
		return false, err
	}

	var m vacationModeDocModel
	if err := snap.DataTo(&m); err != nil {
		return false, err
	}
	return m.Enabled, nil
}

func (r *SystemConfigRepositoryFS) SetVacationMode(ctx context.Context, enabled bool) error {
	if r == nil || r.Client == nil {
		return errors.New("system_config_repository_fs: firestore client is nil")
	}

	_, err := r.doc().Set(ctx, vacationModeDocModel{
		Enabled:   enabled,
		UpdatedAt: time.Now().UTC(),
	})
	return err
}
