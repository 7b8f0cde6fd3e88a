package publisher_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/config"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/publisher"
	kafka "github.com/segmentio/kafka-go"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	failures int
	err      error
	written  []kafka.Message
	attempts int
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.attempts++
	if w.attempts <= w.failures {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func retry(attempts int) config.RetryConfig {
	return config.RetryConfig{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func newPublisher(w *fakeWriter, attempts int) *publisher.KafkaPublisher {
	log, _ := logtest.NewNullLogger()
	return publisher.NewWithWriters(map[string]publisher.MessageWriter{models.PaymentsAuthorizedTopic: w}, retry(attempts), log)
}

func TestPublish_KeyedJSON(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, 3)

	err := p.Publish(context.Background(), models.PaymentsAuthorizedTopic, "tx-1", models.AuthorizedEvent{TransactionID: "tx-1", Currency: "USD"})

	require.NoError(t, err)
	require.Len(t, w.written, 1)
	assert.Equal(t, "tx-1", string(w.written[0].Key))

	var event models.AuthorizedEvent
	require.NoError(t, json.Unmarshal(w.written[0].Value, &event))
	assert.Equal(t, "tx-1", event.TransactionID)
}

func TestPublish_UnknownTopic(t *testing.T) {
	p := newPublisher(&fakeWriter{}, 3)

	err := p.Publish(context.Background(), "payments.unknown", "k", struct{}{})

	assert.EqualError(t, err, "error no writer configured for topic payments.unknown")
}

func TestPublish_RetriesTransientFailures(t *testing.T) {
	w := &fakeWriter{failures: 2, err: errors.New("leader not available")}
	p := newPublisher(w, 3)

	err := p.Publish(context.Background(), models.PaymentsAuthorizedTopic, "tx-2", map[string]string{"a": "b"})

	require.NoError(t, err)
	assert.Equal(t, 3, w.attempts)
	assert.Len(t, w.written, 1)
}

func TestPublish_GivesUpAfterMaxAttempts(t *testing.T) {
	w := &fakeWriter{failures: 10, err: errors.New("leader not available")}
	p := newPublisher(w, 3)

	err := p.Publish(context.Background(), models.PaymentsAuthorizedTopic, "tx-3", "x")

	assert.ErrorContains(t, err, "after 3 attempts")
	assert.ErrorContains(t, err, "leader not available")
	assert.Equal(t, 3, w.attempts)
}

func TestPublish_StopsOnContextCancel(t *testing.T) {
	w := &fakeWriter{failures: 10, err: errors.New("leader not available")}
	log, _ := logtest.NewNullLogger()
	p := publisher.NewWithWriters(map[string]publisher.MessageWriter{"t": w},
		config.RetryConfig{MaxAttempts: 10, BaseDelay: time.Second, MaxDelay: time.Second}, log)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Publish(ctx, "t", "k", "x")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, w.attempts)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, 1)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
