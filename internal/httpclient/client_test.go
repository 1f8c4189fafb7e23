package httpclient

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"minibrowser/internal/core"
)

func TestGetSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/index.html", r.URL.Path)
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	host, port := splitTestServerAddr(t, server)

	resp, err := NewClient().Get(host, port, "/index.html")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<html></html>", resp.Body)
}

func TestGetNetworkFailure(t *testing.T) {
	_, err := NewClient().Get("127.0.0.1", 1, "/")
	if !assert.Error(t, err) {
		return
	}
	coreErr, ok := err.(*core.Error)
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, core.Network, coreErr.Kind)
}

func splitTestServerAddr(t *testing.T, server *httptest.Server) (string, uint16) {
	t.Helper()
	addr := server.Listener.Addr().(*net.TCPAddr)
	return addr.IP.String(), uint16(addr.Port)
}
