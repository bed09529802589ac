package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCredential(t *testing.T) {
	hash, err := secret.Hash("letmein")
	require.NoError(t, err)

	got, err := importCredential("", "plain-secret")
	require.NoError(t, err)
	assert.Equal(t, "plain-secret", got)

	got, err = importCredential("letmein", hash)
	require.NoError(t, err)
	assert.Equal(t, "letmein", got)

	_, err = importCredential("", hash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--password")
}

func runContentImport(t *testing.T, args ...string) error {
	t.Helper()

	cmd := contentImportCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.ExecuteContext(context.Background())
}

func TestContentImport_HashedSecret(t *testing.T) {
	hash, err := secret.Hash("letmein")
	require.NoError(t, err)

	t.Setenv("EDIT_PASSWORD", hash)
	t.Setenv("KV_DRIVER", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hero":{"title":"Imported"}}`), 0o600))

	err = runContentImport(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--password")

	// With the plain password the credential passes and the missing store
	// is reported instead.
	err = runContentImport(t, path, "--password", "letmein")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Content store is not configured")
}
