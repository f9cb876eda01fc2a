package modeladapter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aislehq/aisle/pkg/modeladapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, time.Duration(0), modeladapter.ParseRetryAfter(""))
	assert.Equal(t, 30*time.Second, modeladapter.ParseRetryAfter("30"))
	assert.Equal(t, time.Duration(0), modeladapter.ParseRetryAfter("not-a-value"))

	future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
	d := modeladapter.ParseRetryAfter(future)
	assert.Greater(t, d, 80*time.Second)

	past := time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat)
	assert.Equal(t, time.Duration(0), modeladapter.ParseRetryAfter(past))
}

func TestNewRequestAppliesAuth(t *testing.T) {
	a := modeladapter.New("http://example.test", modeladapter.Auth{Key: "k"}, nil)

	req, err := a.NewRequest(context.Background(), http.MethodGet, "/api/tags", nil)
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/api/tags", req.URL.String())
	assert.Equal(t, "Bearer k", req.Header.Get("Authorization"))
}

func TestNewRequestCustomAuthHeader(t *testing.T) {
	a := modeladapter.New("http://example.test", modeladapter.Auth{Key: "k", Header: "X-Api-Key"}, nil)
	a.Headers = map[string]string{"X-Client": "aisle"}

	req, err := a.NewRequest(context.Background(), http.MethodPost, "/api/chat", nil)
	require.NoError(t, err)

	assert.Equal(t, "k", req.Header.Get("X-Api-Key"))
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Equal(t, "aisle", req.Header.Get("X-Client"))
}

func TestNewRequestNoAuthWhenKeyEmpty(t *testing.T) {
	a := modeladapter.New("http://example.test", modeladapter.Auth{}, nil)

	req, err := a.NewRequest(context.Background(), http.MethodGet, "/", nil)
	require.NoError(t, err)

	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestPostJSONRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"echo":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	a := modeladapter.New(srv.URL, modeladapter.Auth{}, srv.Client())

	var out struct {
		Echo string `json:"echo"`
	}
	err := a.PostJSON(context.Background(), "/api/chat", map[string]string{"q": "hi"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Echo)
}

func TestGetJSONUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	a := modeladapter.New(srv.URL, modeladapter.Auth{}, srv.Client())

	err := a.GetJSON(context.Background(), "/api/tags", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
	assert.Contains(t, err.Error(), "boom")
}

func TestRateLimitError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	t.Cleanup(srv.Close)

	a := modeladapter.New(srv.URL, modeladapter.Auth{}, srv.Client())

	err := a.PostJSON(context.Background(), "/api/chat", map[string]string{}, nil)
	require.Error(t, err)

	var rle *modeladapter.RateLimitError
	require.True(t, errors.As(err, &rle))
	assert.Equal(t, 7*time.Second, rle.RetryAfter)
	assert.Equal(t, "slow down", rle.Body)
}

func TestCompleteStub(t *testing.T) {
	a := modeladapter.New("http://example.test", modeladapter.Auth{}, nil)

	_, err := a.Complete(context.Background(), nil, modeladapter.Options{})
	assert.Error(t, err)
}
