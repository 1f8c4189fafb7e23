package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitURLDefaultsToPort80(t *testing.T) {
	host, port, path, err := splitURL("http://example.com/index.html")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "example.com", host)
	assert.Equal(t, uint16(80), port)
	assert.Equal(t, "/index.html", path)
}

func TestSplitURLHTTPSDefaultsToPort443(t *testing.T) {
	_, port, _, err := splitURL("https://example.com")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, uint16(443), port)
}

func TestSplitURLExplicitPort(t *testing.T) {
	host, port, path, err := splitURL("http://localhost:8080/a/b")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "localhost", host)
	assert.Equal(t, uint16(8080), port)
	assert.Equal(t, "/a/b", path)
}

func TestSplitURLEmptyPathBecomesSlash(t *testing.T) {
	_, _, path, err := splitURL("http://example.com")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "/", path)
}
