package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/config"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/backoff"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	Writers     map[string]MessageWriter
	RetryConfig config.RetryConfig
	Log         logrus.FieldLogger
}

// NewKafkaPublisher creates one writer per topic. Messages are partitioned by
// key hash and acknowledged by all in-sync replicas.
func NewKafkaPublisher(brokers []string, topics []string, retryConfig config.RetryConfig, log logrus.FieldLogger) *KafkaPublisher {
	writers := make(map[string]MessageWriter, len(topics))
	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  t,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		}
	}
	return NewWithWriters(writers, retryConfig, log)
}

func NewWithWriters(writers map[string]MessageWriter, retryConfig config.RetryConfig, log logrus.FieldLogger) *KafkaPublisher {
	return &KafkaPublisher{
		Writers:     writers,
		RetryConfig: backoff.WithDefaults(retryConfig),
		Log:         log,
	}
}

// Publish writes message as JSON under key. Transient write failures are
// retried with backoff until the attempts run out or ctx is done.
func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, message interface{}) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	return p.publishWithRetry(ctx, writer, msg, topic)
}

func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer MessageWriter, msg kafka.Message, topic string) error {
	var lastErr error
	log := p.Log.WithFields(logrus.Fields{"topic": topic, "key": string(msg.Key)})

	for attempt := 0; attempt < p.RetryConfig.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				log.Infof("message published after %d attempts", attempt+1)
			}
			return nil
		}

		lastErr = err
		if ctx.Err() != nil {
			return fmt.Errorf("context cancelled during publish: %w", errors.Join(ctx.Err(), err))
		}

		if attempt == p.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := backoff.Delay(p.RetryConfig, attempt)
		log.Warnf("retry %d/%d after %v: %v", attempt+1, p.RetryConfig.MaxAttempts, delay, err)

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
			continue
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

func (p *KafkaPublisher) Close() error {
	var errs []error
	for topic, w := range p.Writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing writer for %s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}
