package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVerifyHosts(t *testing.T, profile, raw string) {
	t.Helper()
	origProfile, origRaw := profileHost, rawHost
	profileHost, rawHost = profile, raw
	t.Cleanup(func() {
		profileHost, rawHost = origProfile, origRaw
	})
}

func TestVerifyDeployment_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/amirahp", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><article class="markdown-body"><h1>Hi there, I'm Amira</h1></article></body></html>`))
	})
	mux.HandleFunc("/amirahp/amirahp/main/README.md", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# Hi there, I'm Amira"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	withVerifyHosts(t, server.URL, server.URL)

	result, err := VerifyDeployment(context.Background(), "amirahp", nil)
	require.NoError(t, err)
	assert.True(t, result.ProfileVisible)
	assert.Contains(t, result.RawReadme, "Hi there")
}

func TestVerifyDeployment_RawMissing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/amirahp", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><article class="markdown-body">x</article></body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	withVerifyHosts(t, server.URL, server.URL)

	_, err := VerifyDeployment(context.Background(), "amirahp", nil)
	assert.Error(t, err)
}

func TestVerifyDeployment_EmptyUsername(t *testing.T) {
	_, err := VerifyDeployment(context.Background(), "  ", nil)
	assert.Error(t, err)
}
