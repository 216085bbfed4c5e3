package pdf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalArtifactPut(t *testing.T) {
	dir := t.TempDir()
	store := NewInvoiceArtifactLocal(dir)

	p, err := store.Put(context.Background(), "ord-1", []byte("%PDF-1.3 fake"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "invoice_ord-1.pdf"), p)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 fake", string(data))

	// re-rendering overwrites, never versions
	_, err = store.Put(context.Background(), "ord-1", []byte("%PDF-1.3 fake v2"))
	require.NoError(t, err)
	data, err = os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 fake v2", string(data))
}

func TestLocalArtifactPutValidation(t *testing.T) {
	store := NewInvoiceArtifactLocal("")
	_, err := store.Put(context.Background(), "ord-1", []byte("x"))
	assert.Error(t, err)

	store = NewInvoiceArtifactLocal(t.TempDir())
	_, err = store.Put(context.Background(), "  ", []byte("x"))
	assert.Error(t, err)
}
