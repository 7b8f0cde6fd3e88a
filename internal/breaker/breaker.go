package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/config"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

type Settings struct {
	Name string
	// FailureRate is the percentage of failed calls, in [0,100], that trips the breaker.
	FailureRate   float64
	MinimumCalls  uint32
	Window        time.Duration
	OpenWait      time.Duration
	HalfOpenCalls uint32
}

func SettingsFrom(name string, r config.Resilience) Settings {
	return Settings{
		Name:          name,
		FailureRate:   r.FailureRate,
		MinimumCalls:  r.MinimumCalls,
		Window:        r.Window,
		OpenWait:      r.OpenWait,
		HalfOpenCalls: r.HalfOpenCalls,
	}
}

// Fallback produces a result when the guarded call fails or is short-circuited.
// cause wraps models.ErrCircuitOpen when the breaker rejected the call.
type Fallback[In, Out any] func(ctx context.Context, in In, cause error) (Out, error)

// Breaker guards a call with a circuit breaker and routes failures to a fallback.
type Breaker[In, Out any] struct {
	cb       *gobreaker.CircuitBreaker[Out]
	call     func(ctx context.Context, in In) (Out, error)
	fallback Fallback[In, Out]
	onState  func(name string, from, to gobreaker.State)
}

type Option[In, Out any] func(*Breaker[In, Out])

// OnStateChange registers an observer called after the logging hook.
func OnStateChange[In, Out any](fn func(name string, from, to gobreaker.State)) Option[In, Out] {
	return func(b *Breaker[In, Out]) { b.onState = fn }
}

func New[In, Out any](
	s Settings,
	call func(ctx context.Context, in In) (Out, error),
	fallback Fallback[In, Out],
	log logrus.FieldLogger,
	opts ...Option[In, Out],
) *Breaker[In, Out] {
	b := &Breaker[In, Out]{call: call, fallback: fallback}
	for _, opt := range opts {
		opt(b)
	}

	b.cb = gobreaker.NewCircuitBreaker[Out](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.HalfOpenCalls,
		Interval:    s.Window,
		Timeout:     s.OpenWait,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinimumCalls || counts.Requests == 0 {
				return false
			}
			rate := float64(counts.TotalFailures) * 100 / float64(counts.Requests)
			return rate >= s.FailureRate
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
			if b.onState != nil {
				b.onState(name, from, to)
			}
		},
	})
	return b
}

// Execute runs the guarded call. Any failure, including an open circuit,
// is handed to the fallback together with its cause.
func (b *Breaker[In, Out]) Execute(ctx context.Context, in In) (Out, error) {
	out, err := b.cb.Execute(func() (Out, error) {
		return b.call(ctx, in)
	})
	if err == nil {
		return out, nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %s", models.ErrCircuitOpen, err.Error())
	}
	if b.fallback == nil {
		var zero Out
		return zero, err
	}
	return b.fallback(ctx, in, err)
}

func (b *Breaker[In, Out]) State() gobreaker.State {
	return b.cb.State()
}

func (b *Breaker[In, Out]) Name() string {
	return b.cb.Name()
}
