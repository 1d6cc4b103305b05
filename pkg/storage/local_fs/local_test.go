package local_fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS_GetContent(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "sub", "links.json"), []byte(`[]`), 0o644))

	client, err := NewClient(&Config{SavePath: tempDir, CustomPath: "sub"})
	require.NoError(t, err)

	content, err := client.GetContent(context.Background(), "links.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))
}

func TestLocalFS_GetContent_Missing(t *testing.T) {
	client, err := NewClient(&Config{SavePath: t.TempDir()})
	require.NoError(t, err)

	_, err = client.GetContent(context.Background(), "links.json")
	assert.Error(t, err)
}

func TestLocalFS_GetContent_Canceled(t *testing.T) {
	client, err := NewClient(&Config{SavePath: t.TempDir()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.GetContent(ctx, "links.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_NilConfig(t *testing.T) {
	_, err := NewClient(nil)
	assert.Error(t, err)
}
