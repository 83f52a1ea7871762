package clients

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "abc", r.Header.Get("X-Trace"))
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`slow down`))
	}))
	defer server.Close()

	client := NewHTTPClient(0)
	headers := http.Header{}
	headers.Set("X-Trace", "abc")

	status, body, respHeaders, err := client.Get(server.URL+"/api/documents/1", headers)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "slow down", string(body))
	assert.Equal(t, "7", respHeaders.Get("Retry-After"))
	assert.Empty(t, headers.Get("Accept"), "caller headers are not modified")
}

func TestHTTPClient_GetUnreachable(t *testing.T) {
	client := NewHTTPClient(DefaultTimeout)
	_, _, _, err := client.Get("http://127.0.0.1:1/none", nil)
	assert.Error(t, err)
}
