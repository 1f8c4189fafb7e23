// Package httpclient is the network collaborator spec.md §6 places outside
// the browser core: a thin fetcher the fetch/render CLI subcommands use to
// turn a URL into the HTML bytes the html package parses. Adapted from the
// plain net/http usage in toybrowser's cmd/toybrowser/main.go, reshaped
// into the host/port/path call spec.md's Get names.
package httpclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"minibrowser/internal/core"
)

// Response is the subset of an HTTP response this module cares about: the
// status and the body text the HTML pipeline will tokenize.
type Response struct {
	StatusCode int
	Body       string
}

// Client fetches pages over HTTP.
type Client struct {
	http *http.Client
}

// NewClient constructs a Client with a bounded request timeout — the
// collaborator boundary spec.md describes has no retry or redirect policy
// of its own beyond what net/http already does.
func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: 10 * time.Second}}
}

// Get fetches path from host:port and returns its body, or a
// core.Error{Kind: core.Network} describing the failure.
func (c *Client) Get(host string, port uint16, path string) (*Response, error) {
	url := fmt.Sprintf("http://%s:%d%s", host, port, path)

	resp, err := c.http.Get(url)
	if err != nil {
		return nil, core.NewNetworkError("fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.NewNetworkError("reading body from %s: %v", url, err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: string(body)}, nil
}
