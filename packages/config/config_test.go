package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
baseUrl: https://api.example.com
headers:
  Authorization: Bearer token
proxy:
  host: 127.0.0.1
  port: 8080
  scheme: http
debug: true
timeout: 5000
`)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", f.BaseURL)
	assert.Equal(t, "Bearer token", f.Headers["Authorization"])
	require.NotNil(t, f.Proxy)
	assert.Equal(t, "127.0.0.1", f.Proxy.Host)
	assert.Equal(t, 8080, f.Proxy.Port)
	assert.True(t, f.GetDebug())
	assert.Equal(t, 5000, f.Timeout)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "baseUrl: [broken")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFindAndLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".reqwrap.yaml", "baseUrl: https://found.example.com\n")

	f, err := FindAndLoad(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://found.example.com", f.BaseURL)
}

func TestFindAndLoad_NoFileReturnsDefaults(t *testing.T) {
	f, err := FindAndLoad(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", f.BaseURL)
	assert.False(t, f.GetDebug())
}

func TestFile_Merge(t *testing.T) {
	base := &File{
		BaseURL: "https://base.example.com",
		Headers: map[string]string{"A": "1", "B": "2"},
		Debug:   BoolPtr(false),
		Timeout: 1000,
	}
	overlay := &File{
		BaseURL: "https://overlay.example.com",
		Headers: map[string]string{"B": "override", "C": "3"},
		Debug:   BoolPtr(true),
	}

	merged := base.Merge(overlay)

	assert.Equal(t, "https://overlay.example.com", merged.BaseURL)
	assert.Equal(t, "1", merged.Headers["A"])
	assert.Equal(t, "override", merged.Headers["B"])
	assert.Equal(t, "3", merged.Headers["C"])
	assert.True(t, merged.GetDebug())
	assert.Equal(t, 1000, merged.Timeout, "unset overlay fields keep base values")

	// Merging never mutates the receiver.
	assert.Equal(t, "https://base.example.com", base.BaseURL)
	assert.Equal(t, "2", base.Headers["B"])
}

func TestFile_MergeNil(t *testing.T) {
	base := &File{BaseURL: "https://base.example.com"}
	assert.Same(t, base, base.Merge(nil))
}

func TestFile_ClientConfig(t *testing.T) {
	f := &File{
		BaseURL: "https://api.example.com",
		Headers: map[string]string{"X-Key": "k"},
		Proxy: &Proxy{
			Host:     "127.0.0.1",
			Port:     8080,
			Scheme:   "http",
			Username: "u",
			Password: "p",
		},
		Debug: BoolPtr(true),
	}

	cfg := f.ClientConfig()

	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, "k", cfg.DefaultHeaders["X-Key"])
	assert.True(t, cfg.Debug)
	require.NotNil(t, cfg.Proxy)

	url, ok := cfg.Proxy.URL()
	require.True(t, ok)
	assert.Equal(t, "http://u:p@127.0.0.1:8080", url)
}

func TestFile_ClientConfig_NoProxy(t *testing.T) {
	cfg := (&File{}).ClientConfig()
	assert.Nil(t, cfg.Proxy)
	assert.False(t, cfg.Debug)
}
