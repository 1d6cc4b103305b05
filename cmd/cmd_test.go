package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePort(t *testing.T) {
	assert.Equal(t, ":8080", normalizePort("8080"))
	assert.Equal(t, ":8080", normalizePort(":8080"))
	assert.Equal(t, "127.0.0.1:8080", normalizePort("127.0.0.1:8080"))
}

func TestWriteDefaultConfig(t *testing.T) {
	configDefault = "server:\n  http-port: \":9999\"\n"
	path := filepath.Join(t.TempDir(), "config", "config.yaml")

	require.NoError(t, writeDefaultConfig(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, configDefault, string(data))
}

func TestSourceCheckCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "links.json"),
		[]byte(`[{"title":"Go","url":"https://go.dev"},{"title":"Gin","url":"https://gin-gonic.com"}]`), 0o644))

	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("links:\n  source:\n    type: localfs\n    save-path: "+dir+"\n"), 0o644))

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"source", "check", "-c", configFile})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "records: 2")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "links.json"), []byte(`{"title":"Go"}`), 0o644))
	rootCmd.SetArgs([]string{"source", "check", "-c", configFile})
	assert.Error(t, rootCmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "v0.1.0")
}
