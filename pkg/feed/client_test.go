package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	client := NewClient(ClientConfig{BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond})

	header := http.Header{}
	header.Set("User-Agent", "test-agent")
	resp, err := client.Get(context.Background(), ts.URL, "test", header)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
}

func TestClient_Get_RetriesOn429(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewClient(ClientConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond})

	_, err := client.Get(context.Background(), ts.URL, "test", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retries exhausted")
	assert.Contains(t, err.Error(), "429")
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls), "initial attempt plus 3 retries")
}

func TestClient_Get_RecoversAfterTransientFailure(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("recovered"))
	}))
	defer ts.Close()

	client := NewClient(ClientConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond})

	resp, err := client.Get(context.Background(), ts.URL, "test", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "recovered", string(resp.Body))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_Get_NoRetryOn404(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient(ClientConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond})

	resp, err := client.Get(context.Background(), ts.URL, "test", nil)
	require.NoError(t, err, "non-retryable status is returned to the caller, not an error")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "404 must not be retried")
}

func TestClient_Get_TimeoutRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(ClientConfig{
		Timeout:    time.Second, // constructor floor is enforced by config validation, not here
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
	})
	client.timeout = 50 * time.Millisecond // tighten for the test

	_, err := client.Get(context.Background(), ts.URL, "test", nil)
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "timeouts are retryable")
}

func TestClient_Get_ContextCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewClient(ClientConfig{MaxRetries: 3, BaseDelay: time.Hour, MaxDelay: 2 * time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Get(ctx, ts.URL, "test", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_BackoffDelay_Bounds(t *testing.T) {
	client := NewClient(ClientConfig{BaseDelay: time.Second, MaxDelay: 10 * time.Second, MaxRetries: 3})

	for n := 1; n <= 3; n++ {
		for i := 0; i < 100; i++ {
			delay := client.backoffDelay(n)
			minDelay := time.Second * (1 << n)
			if minDelay > 10*time.Second {
				minDelay = 10 * time.Second
			}
			assert.GreaterOrEqual(t, delay, minDelay, "attempt %d", n)
			assert.LessOrEqual(t, delay, 10*time.Second, "attempt %d", n)
		}
	}
}

func TestClient_BackoffDelay_Capped(t *testing.T) {
	client := NewClient(ClientConfig{BaseDelay: time.Second, MaxDelay: 10 * time.Second})

	// 1s * 2^5 = 32s, well past the cap
	assert.Equal(t, 10*time.Second, client.backoffDelay(5))
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{})

	assert.Equal(t, 15*time.Second, client.timeout)
	assert.Equal(t, 3, client.maxRetries)
	assert.Equal(t, time.Second, client.baseDelay)
	assert.Equal(t, 10*time.Second, client.maxDelay)
}
