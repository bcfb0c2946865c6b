package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-forge/internal/github"
)

// fakeGitHubAPI covers the endpoints a deployment touches.
func fakeGitHubAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"login": "amirahp"})
	})
	mux.HandleFunc("GET /repos/amirahp/amirahp", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(github.Repository{
			Name:          "amirahp",
			HTMLURL:       "https://github.com/amirahp/amirahp",
			DefaultBranch: "main",
		})
	})
	mux.HandleFunc("GET /repos/amirahp/amirahp/contents/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
	})
	mux.HandleFunc("PUT /repos/amirahp/amirahp/contents/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /repos/amirahp/amirahp/actions/workflows/{file}/dispatches", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestHandleSessionDeploy(t *testing.T) {
	s := newTestServer(t, &fakeLLM{json: extractionJSON})
	s.githubOpts = &github.Options{BaseURL: fakeGitHubAPI(t).URL}
	handler := s.testHandler()

	created := decodeJSON[CreateSessionResponse](t, postJSON(t, handler, "/sessions", map[string]string{}))
	base := "/sessions/" + created.SessionID

	for _, text := range []string{"Amira Hassan", "amirahp", "skip", "skip", "skip",
		"I'm a backend developer working with Python, Go and Docker."} {
		resp := postJSON(t, handler, base+"/messages", MessageRequest{Text: text})
		require.Equal(t, http.StatusOK, resp.Code)
	}

	w := postJSON(t, handler, base+"/deploy", DeployRequest{Token: "ghp_testtoken"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[DeployResponse](t, w)
	assert.Equal(t, "amirahp", resp.Username)
	assert.Equal(t, "https://github.com/amirahp/amirahp", resp.RepoURL)
	assert.Equal(t, "https://github.com/amirahp", resp.ProfileURL)
	assert.False(t, resp.RepoCreated)
}

func TestHandleSessionDeploy_NoReadme(t *testing.T) {
	s := newTestServer(t, &fakeLLM{})
	handler := s.testHandler()

	created := decodeJSON[CreateSessionResponse](t, postJSON(t, handler, "/sessions", map[string]string{}))

	w := postJSON(t, handler, "/sessions/"+created.SessionID+"/deploy", DeployRequest{Token: "ghp_testtoken"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleSessionDeploy_MissingToken(t *testing.T) {
	s := newTestServer(t, &fakeLLM{})
	handler := s.testHandler()

	created := decodeJSON[CreateSessionResponse](t, postJSON(t, handler, "/sessions", map[string]string{}))

	w := postJSON(t, handler, "/sessions/"+created.SessionID+"/deploy", DeployRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSessionPreview_NoReadme(t *testing.T) {
	s := newTestServer(t, &fakeLLM{})
	handler := s.testHandler()

	created := decodeJSON[CreateSessionResponse](t, postJSON(t, handler, "/sessions", map[string]string{}))

	w := postJSON(t, handler, "/sessions/"+created.SessionID+"/preview", PreviewRequest{Token: "ghp_testtoken"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleSessionPreview_MissingToken(t *testing.T) {
	s := newTestServer(t, &fakeLLM{})
	handler := s.testHandler()

	created := decodeJSON[CreateSessionResponse](t, postJSON(t, handler, "/sessions", map[string]string{}))

	w := postJSON(t, handler, "/sessions/"+created.SessionID+"/preview", PreviewRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSessionPreview_UnknownSession(t *testing.T) {
	s := newTestServer(t, &fakeLLM{})
	handler := s.testHandler()

	w := postJSON(t, handler, "/sessions/nope/preview", PreviewRequest{Token: "ghp_testtoken"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
