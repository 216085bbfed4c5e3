// internal/infra/config/config.go
package config

import "os"

// Config holds the environment-derived settings for the whole service.
type Config struct {
	Port                     string
	GCPCreds                 string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	// Object storage
	ImageBucket   string
	InvoiceBucket string
	// Local fallback for invoice artifacts when no bucket is configured.
	InvoiceDir string

	// Optional Postgres reporting read model. Revenue queries fall back to
	// the document store when DBHost is empty.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// SendGrid API key secret in Secret Manager; env SENDGRID_API_KEY wins
	// when set.
	SendGridSecretName string
}

// Load reads the environment into a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "patisserie-store-dev")

	return &Config{
		Port:                     getenvDefault("PORT", "8080"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		ImageBucket:   os.Getenv("IMAGE_BUCKET"),
		InvoiceBucket: os.Getenv("INVOICE_BUCKET"),
		InvoiceDir:    getenvDefault("INVOICE_DIR", "invoices"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getenvDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenvDefault("DB_NAME", "patisserie"),

		SendGridSecretName: getenvDefault("SENDGRID_SECRET_NAME", "patisserie-sendgrid-api-key"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
