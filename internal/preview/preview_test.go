package preview

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWrapHTML(t *testing.T) {
	page := wrapHTML("<h1>Hi there</h1>")

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `<div class="markdown-body"><h1>Hi there</h1></div>`)
	assert.Contains(t, page, "#0d1117")
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, DefaultTimeout, opts.Timeout)
	assert.Equal(t, DefaultViewportWidth, opts.ViewportWidth)
	assert.Equal(t, 90, opts.Quality)

	custom := Options{Timeout: time.Second, ViewportWidth: 1200, Quality: 70}.withDefaults()
	assert.Equal(t, time.Second, custom.Timeout)
	assert.Equal(t, 1200, custom.ViewportWidth)
	assert.Equal(t, 70, custom.Quality)
}

func TestScreenshot_EmptyHTML(t *testing.T) {
	_, err := Screenshot(context.Background(), "   ", Options{})
	assert.Error(t, err)
}
