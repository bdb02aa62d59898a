package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	var gotMethod, gotBody, gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Test")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	headers := http.Header{}
	headers.Set("X-Test", "yes")

	resp, err := NewBackendClient().Forward(context.Background(), http.MethodPost, srv.URL, headers, strings.NewReader("ping"))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "short and stout", string(body))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "yes", gotHeader)
	assert.Equal(t, "ping", gotBody)
}

func TestForwardBadURL(t *testing.T) {
	_, err := NewBackendClient().Forward(context.Background(), http.MethodPost, "://nope", nil, nil)
	assert.Error(t, err)
}

func TestForwardCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBackendClientWith(srv.Client()).Forward(ctx, http.MethodPost, srv.URL, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
