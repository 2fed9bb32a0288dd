package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/tanod_dispatch/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) (*WebhookWorker, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	var delays []time.Duration
	w := &WebhookWorker{
		logger:     logger,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second},
		sleep: func(_ context.Context, d time.Duration) error {
			delays = append(delays, d)
			return nil
		},
	}
	return w, &delays
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := `{"type":"incident.created","incidents":[]}`
	var gotSignature, gotBody, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(SignatureHeader)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker, delays := newTestWorker(&config.Config{WebhookURL: server.URL, WebhookSecret: "s3cret", WebhookMaxRetries: 3})

	err := worker.deliver(context.Background(), payload, worker.logger.WithField("test", true))

	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	assert.Empty(t, *delays)
}

func TestDeliver_NoSecretNoSignature(t *testing.T) {
	var hasSignature bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasSignature = r.Header[SignatureHeader]
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, _ := newTestWorker(&config.Config{WebhookURL: server.URL, WebhookMaxRetries: 1})

	require.NoError(t, worker.deliver(context.Background(), "{}", worker.logger.WithField("test", true)))
	assert.False(t, hasSignature)
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, delays := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  100 * time.Millisecond,
	})

	err := worker.deliver(context.Background(), "{}", worker.logger.WithField("test", true))

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *delays)
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker, _ := newTestWorker(&config.Config{WebhookURL: server.URL, WebhookMaxRetries: 2})

	err := worker.deliver(context.Background(), "{}", worker.logger.WithField("test", true))

	require.Error(t, err)
	assert.ErrorContains(t, err, "giving up after 2 attempts")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDeliver_StopsOnCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	worker, _ := newTestWorker(&config.Config{WebhookURL: server.URL, WebhookMaxRetries: 5, WebhookBaseDelay: time.Hour})
	worker.sleep = sleepContext

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := worker.deliver(ctx, "{}", worker.logger.WithField("test", true))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSleepContext(t *testing.T) {
	require.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
