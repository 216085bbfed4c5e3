// internal/platform/di/store/secret_provider_sm.go
package store

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// resolveSendGridAPIKey reads the SendGrid API key from Secret Manager.
// Returns "" (not an error) when the client is absent so the caller can
// fall back to the env var.
func resolveSendGridAPIKey(ctx context.Context, sm *secretmanager.Client, projectID, secretName string) (string, error) {
	if sm == nil {
		return "", nil
	}
	prj := strings.TrimSpace(projectID)
	sec := strings.TrimSpace(secretName)
	if prj == "" || sec == "" {
		return "", errors.New("di.store: projectID or secretName is empty")
	}

	name := "projects/" + prj + "/secrets/" + sec + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("di.store: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("di.store: empty secret payload (" + name + ")")
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
