package subscriber

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/config"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/backoff"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrUnprocessable marks a message that can never be handled. Such messages
// are parked on the dead letter topic and committed.
var ErrUnprocessable = errors.New("unprocessable message")

type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type DLQPublisher interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

type HandlerFunc func(ctx context.Context, msg kafka.Message) error

type KafkaConsumer struct {
	NewReader     func() Reader
	Workers       int
	Handler       HandlerFunc
	DLQPublisher  DLQPublisher
	DLQTopic      string
	RetryConfig   config.RetryConfig
	CommitTimeout time.Duration
	Log           logrus.FieldLogger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan error
}

// NewGroupConsumer builds a consumer whose workers each join groupID with
// their own reader. Offsets are committed explicitly, never on a timer.
func NewGroupConsumer(
	brokers []string,
	topic string,
	groupID string,
	workers int,
	handler HandlerFunc,
	dlq DLQPublisher,
	dlqTopic string,
	retryConfig config.RetryConfig,
	commitTimeout time.Duration,
	log logrus.FieldLogger,
) *KafkaConsumer {
	newReader := func() Reader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:        brokers,
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       10e6,
			StartOffset:    kafka.FirstOffset,
			CommitInterval: 0,
		})
	}
	if commitTimeout <= 0 {
		commitTimeout = 5 * time.Second
	}
	return &KafkaConsumer{
		NewReader:     newReader,
		Workers:       workers,
		Handler:       handler,
		DLQPublisher:  dlq,
		DLQTopic:      dlqTopic,
		RetryConfig:   backoff.WithDefaults(retryConfig),
		CommitTimeout: commitTimeout,
		Log:           log,
	}
}

func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return nil
	}

	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	g, gctx := errgroup.WithContext(runCtx)
	for i := 0; i < workers; i++ {
		id := i
		g.Go(func() error {
			return c.work(gctx, id)
		})
	}

	c.cancel = cancel
	c.done = make(chan error, 1)
	go func() {
		c.done <- g.Wait()
	}()
	c.Log.WithField("workers", workers).Info("kafka consumer started")
	return nil
}

// Stop cancels the workers and waits for them to leave the group. A message
// being handled when Stop is called is not committed and will be redelivered.
func (c *KafkaConsumer) Stop(ctx context.Context) error {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case err := <-done:
		c.Log.Info("kafka consumer stopped")
		return err
	case <-ctx.Done():
		return fmt.Errorf("kafka consumer stop: %w", ctx.Err())
	}
}

func (c *KafkaConsumer) work(ctx context.Context, id int) error {
	log := c.Log.WithField("worker", id)
	reader := c.NewReader()
	defer func() {
		if err := reader.Close(); err != nil {
			log.Warnf("error closing reader: %v", err)
		}
	}()

	failures := 0
	for {
		msg, err := reader.FetchMessage(ctx)
		if err == nil {
			err = c.processMessage(ctx, reader, msg)
			if err == nil {
				failures = 0
				continue
			}
			log.WithFields(logrus.Fields{
				"partition": msg.Partition,
				"offset":    msg.Offset,
				"key":       string(msg.Key),
			}).Errorf("message not committed: %v", err)
		}
		if ctx.Err() != nil {
			return nil
		}
		if !errors.Is(err, context.Canceled) {
			log.Warnf("rejoining group after failure: %v", err)
		}

		// Reopening resumes from the last committed offset of each partition.
		if cerr := reader.Close(); cerr != nil {
			log.Warnf("error closing reader: %v", cerr)
		}
		delay := backoff.Delay(c.RetryConfig, failures)
		failures++
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			reader = nopReader{}
			return nil
		case <-timer.C:
		}
		reader = c.NewReader()
	}
}

func (c *KafkaConsumer) processMessage(ctx context.Context, reader Reader, msg kafka.Message) error {
	err := c.Handler(ctx, msg)
	if errors.Is(err, ErrUnprocessable) {
		if dlqErr := c.sendToDLQ(ctx, msg, err); dlqErr != nil {
			return fmt.Errorf("error sending message to DLQ: %w", dlqErr)
		}
		err = nil
	}
	if err != nil {
		return err
	}

	commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.CommitTimeout)
	defer cancel()
	if err := reader.CommitMessages(commitCtx, msg); err != nil {
		return fmt.Errorf("error committing offset %d: %w", msg.Offset, err)
	}
	return nil
}

func (c *KafkaConsumer) sendToDLQ(ctx context.Context, msg kafka.Message, cause error) error {
	if c.DLQPublisher == nil {
		c.Log.Warnf("no DLQ configured, dropping message: topic=%s, key=%s", msg.Topic, string(msg.Key))
		return nil
	}
	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Partition:     msg.Partition,
		Offset:        msg.Offset,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Error:         cause.Error(),
		Timestamp:     time.Now().UTC(),
	}
	if err := c.DLQPublisher.Publish(ctx, c.DLQTopic, string(msg.Key), dlqMessage); err != nil {
		return err
	}
	c.Log.Warnf("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
	return nil
}

type nopReader struct{}

func (nopReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	return kafka.Message{}, ctx.Err()
}
func (nopReader) CommitMessages(context.Context, ...kafka.Message) error { return nil }
func (nopReader) Close() error                                           { return nil }
