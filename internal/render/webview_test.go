package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"minibrowser/internal/html"
)

func TestSerializeWindowRoundTrips(t *testing.T) {
	window := html.NewParser(html.NewTokenizer("<html><head></head><body><p>hi</p></body></html>")).ConstructTree()

	got, err := SerializeWindow(window)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "<html><head></head><body><p>hi</p></body></html>", got)
}

func TestSerializeWindowEscapesText(t *testing.T) {
	window := html.NewParser(html.NewTokenizer("<html><head></head><body><p>a&lt;b</p></body></html>")).ConstructTree()

	got, err := SerializeWindow(window)
	if !assert.NoError(t, err) {
		return
	}
	assert.Contains(t, got, "&amp;lt;")
}
