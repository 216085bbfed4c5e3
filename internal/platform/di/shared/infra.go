// internal/platform/di/shared/infra.go
package shared

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	appcfg "patisserie/internal/infra/config"
	"patisserie/internal/infra/database"
)

// Infra is shared runtime infrastructure for DI.
// - owns external clients (Firestore/FirebaseAuth/GCS/SecretManager/Postgres)
// - owns env/config-resolved runtime settings (bucket names)
//
// Infra must NOT depend on routers, handlers, or usecases.
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	// Clients (owned; Close-managed)
	Firestore     *firestore.Client
	GCS           *storage.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client

	// Optional reporting database (nil when DB_HOST is unset)
	DB *database.DB

	// Runtime settings (resolved once)
	ImageBucket   string
	InvoiceBucket string
	InvoiceDir    string
}

// NewInfra initializes shared infra.
// Firestore and GCS are strict (return error). Firebase/Auth, SecretManager
// and Postgres are best-effort (warn + continue degraded).
func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()
	if cfg == nil {
		return nil, errors.New("shared.infra: config is nil")
	}

	projectID := resolveProjectID(cfg)
	if projectID == "" {
		return nil, errors.New("shared.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GOOGLE_CLOUD_PROJECT)")
	}

	inf := &Infra{
		Config:    cfg,
		ProjectID: projectID,
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[shared.infra] Using credentials file for GCP clients: %s", redactPath(credFile))
	} else {
		log.Printf("[shared.infra] Using Application Default Credentials (no credentials file configured)")
	}

	// 1) Optional: Secret Manager client (SendGrid key resolution)
	{
		var sm *secretmanager.Client
		var err error
		if len(clientOpts) > 0 {
			sm, err = secretmanager.NewClient(ctx, clientOpts...)
		} else {
			sm, err = secretmanager.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[shared.infra] WARN: secretmanager.NewClient failed: %v (SecretManager-dependent features may be disabled)", err)
			sm = nil
		}
		inf.SecretManager = sm
	}

	// 2) Firestore (strict)
	{
		var fsClient *firestore.Client
		var err error
		if len(clientOpts) > 0 {
			fsClient, err = firestore.NewClient(ctx, inf.ProjectID, clientOpts...)
		} else {
			fsClient, err = firestore.NewClient(ctx, inf.ProjectID)
		}
		if err != nil {
			return nil, fmt.Errorf("shared.infra: firestore.NewClient failed (project=%s): %w", inf.ProjectID, err)
		}
		inf.Firestore = fsClient
		log.Printf("[shared.infra] Firestore connected project=%s", inf.ProjectID)
	}

	// 3) GCS (strict)
	{
		var gcsClient *storage.Client
		var err error
		if len(clientOpts) > 0 {
			gcsClient, err = storage.NewClient(ctx, clientOpts...)
		} else {
			gcsClient, err = storage.NewClient(ctx)
		}
		if err != nil {
			_ = inf.Firestore.Close()
			return nil, fmt.Errorf("shared.infra: storage.NewClient failed: %w", err)
		}
		inf.GCS = gcsClient
		log.Printf("[shared.infra] GCS storage client initialized")
	}

	// 4) Firebase App/Auth (best-effort; admin auth degrades to 503)
	{
		fbCfg := &firebase.Config{ProjectID: inf.ProjectID}
		var fbApp *firebase.App
		var err error
		if len(clientOpts) > 0 {
			fbApp, err = firebase.NewApp(ctx, fbCfg, clientOpts...)
		} else {
			fbApp, err = firebase.NewApp(ctx, fbCfg)
		}
		if err != nil {
			log.Printf("[shared.infra] WARN: firebase app init failed: %v", err)
		} else {
			inf.FirebaseApp = fbApp
			authClient, err := fbApp.Auth(ctx)
			if err != nil {
				log.Printf("[shared.infra] WARN: firebase auth init failed: %v", err)
			} else {
				inf.FirebaseAuth = authClient
				log.Printf("[shared.infra] Firebase Auth initialized")
			}
		}
	}

	// 5) Optional: Postgres reporting read model
	if strings.TrimSpace(cfg.DBHost) != "" {
		db, err := database.NewConnection(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		if err != nil {
			log.Printf("[shared.infra] WARN: postgres init failed: %v (revenue served from Firestore)", err)
		} else {
			inf.DB = db
		}
	} else {
		log.Printf("[shared.infra] Postgres not configured (DB_HOST empty); revenue served from Firestore")
	}

	// 6) Buckets (resolve once)
	inf.ImageBucket = strings.TrimSpace(cfg.ImageBucket)
	if inf.ImageBucket == "" {
		log.Printf("[shared.infra] WARN: IMAGE_BUCKET is empty (image upload features may fail)")
	}
	inf.InvoiceBucket = strings.TrimSpace(cfg.InvoiceBucket)
	inf.InvoiceDir = strings.TrimSpace(cfg.InvoiceDir)
	if inf.InvoiceBucket == "" {
		log.Printf("[shared.infra] INVOICE_BUCKET is empty; invoices stored locally under %q", inf.InvoiceDir)
	}

	return inf, nil
}

// Close releases all owned clients. Safe on a partially-initialized Infra.
func (inf *Infra) Close() error {
	if inf == nil {
		return nil
	}
	var firstErr error

	if inf.DB != nil {
		if err := inf.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		inf.DB = nil
	}
	if inf.SecretManager != nil {
		if err := inf.SecretManager.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		inf.SecretManager = nil
	}
	if inf.GCS != nil {
		if err := inf.GCS.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		inf.GCS = nil
	}
	if inf.Firestore != nil {
		if err := inf.Firestore.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		inf.Firestore = nil
	}
	return firstErr
}

func resolveProjectID(cfg *appcfg.Config) string {
	if v := strings.TrimSpace(cfg.FirestoreProjectID); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("GOOGLE_CLOUD_PROJECT")); v != "" {
		return v
	}
	return ""
}

func redactPath(p string) string {
	p = strings.TrimSpace(p)
	if len(p) <= 12 {
		return "***"
	}
	return "..." + p[len(p)-12:]
}
