// Package github is a minimal GitHub REST API client for publishing
// profile repositories.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for API requests.
const DefaultUserAgent = "profile-forge/1.0"

// APIError represents a non-success response from the GitHub API.
type APIError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api error: %s returned %d: %s", e.URL, e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Options configures the client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client talks to the GitHub REST API with a user-supplied token.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
}

// NewClient creates a client authenticated with token.
func NewClient(token string, opts *Options) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("github token is required")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		baseURL:   baseURL,
		token:     token,
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}, nil
}

// Repository is the subset of repository metadata we use.
type Repository struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	HTMLURL       string `json:"html_url"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
}

// ValidateToken checks the token against the API and returns the login
// of the account it belongs to.
func (c *Client) ValidateToken(ctx context.Context) (string, error) {
	var user struct {
		Login string `json:"login"`
	}
	if err := c.do(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return "", fmt.Errorf("token validation failed: %w", err)
	}
	if user.Login == "" {
		return "", fmt.Errorf("token validation failed: empty login in response")
	}
	return user.Login, nil
}

// GetRepo fetches repository metadata. Returns (nil, nil) when the
// repository does not exist.
func (c *Client) GetRepo(ctx context.Context, owner, repo string) (*Repository, error) {
	var repository Repository
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
	err := c.do(ctx, http.MethodGet, path, nil, &repository)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &repository, nil
}

// CreateRepo creates a repository under the authenticated user.
func (c *Client) CreateRepo(ctx context.Context, name, description string, private bool) (*Repository, error) {
	body := map[string]any{
		"name":        name,
		"description": description,
		"private":     private,
		"auto_init":   true,
	}
	var repository Repository
	if err := c.do(ctx, http.MethodPost, "/user/repos", body, &repository); err != nil {
		return nil, fmt.Errorf("failed to create repository %s: %w", name, err)
	}
	return &repository, nil
}

// PutFile creates or updates a file through the contents API. An
// existing file's blob SHA is fetched first so the update does not
// conflict.
func (c *Client) PutFile(ctx context.Context, owner, repo, path string, content []byte, message string) error {
	contentsPath := fmt.Sprintf("/repos/%s/%s/contents/%s",
		url.PathEscape(owner), url.PathEscape(repo), escapeFilePath(path))

	body := map[string]any{
		"message": message,
		"content": base64.StdEncoding.EncodeToString(content),
	}

	var existing struct {
		SHA string `json:"sha"`
	}
	err := c.do(ctx, http.MethodGet, contentsPath, nil, &existing)
	switch {
	case err == nil && existing.SHA != "":
		body["sha"] = existing.SHA
	case err != nil && !IsNotFound(err):
		return fmt.Errorf("failed to check existing file %s: %w", path, err)
	}

	if err := c.do(ctx, http.MethodPut, contentsPath, body, nil); err != nil {
		return fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return nil
}

// TriggerWorkflow dispatches a workflow run on the given branch.
func (c *Client) TriggerWorkflow(ctx context.Context, owner, repo, workflowFile, ref string) error {
	if ref == "" {
		ref = "main"
	}
	path := fmt.Sprintf("/repos/%s/%s/actions/workflows/%s/dispatches",
		url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(workflowFile))
	body := map[string]any{"ref": ref}
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("failed to dispatch workflow %s: %w", workflowFile, err)
	}
	return nil
}

// RenderMarkdown converts Markdown to HTML through the API's markdown
// endpoint, using GitHub's own renderer so previews match the real
// profile page.
func (c *Client) RenderMarkdown(ctx context.Context, markdown string) (string, error) {
	body := map[string]any{"text": markdown, "mode": "gfm"}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode markdown payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/markdown", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("markdown render request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read markdown response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, URL: req.URL.String(), Message: string(raw)}
	}
	return string(raw), nil
}

// do executes a JSON request and decodes the response into out when
// out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			URL:        req.URL.String(),
			Message:    apiErrorMessage(raw),
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// apiErrorMessage pulls the message field out of a GitHub error body,
// falling back to the raw body.
func apiErrorMessage(raw []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return string(raw)
}

// escapeFilePath escapes each segment of a repo-relative path while
// keeping the separators, as the contents API expects.
func escapeFilePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
