package breaker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/breaker"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("responder down")

func settings() breaker.Settings {
	return breaker.Settings{
		Name:          "fraudCheck",
		FailureRate:   50,
		MinimumCalls:  5,
		Window:        time.Minute,
		OpenWait:      50 * time.Millisecond,
		HalfOpenCalls: 3,
	}
}

type harness struct {
	calls     atomic.Int32
	fail      atomic.Bool
	causes    []error
	breaker   *breaker.Breaker[int, string]
	lastState atomic.Value
}

func newHarness() *harness {
	h := &harness{}
	log, _ := logtest.NewNullLogger()
	h.breaker = breaker.New[int, string](settings(),
		func(ctx context.Context, in int) (string, error) {
			h.calls.Add(1)
			if h.fail.Load() {
				return "", errDown
			}
			return "ok", nil
		},
		func(ctx context.Context, in int, cause error) (string, error) {
			h.causes = append(h.causes, cause)
			return "fallback", nil
		},
		log,
		breaker.OnStateChange[int, string](func(name string, from, to gobreaker.State) {
			h.lastState.Store(to)
		}),
	)
	return h
}

func TestExecute_Success(t *testing.T) {
	h := newHarness()

	out, err := h.breaker.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Empty(t, h.causes)
}

func TestExecute_FailureUsesFallbackWithCause(t *testing.T) {
	h := newHarness()
	h.fail.Store(true)

	out, err := h.breaker.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "fallback", out)
	require.Len(t, h.causes, 1)
	assert.ErrorIs(t, h.causes[0], errDown)
	assert.Equal(t, gobreaker.StateClosed, h.breaker.State())
}

func TestExecute_TripsAfterMinimumCalls(t *testing.T) {
	h := newHarness()
	h.fail.Store(true)

	for i := 0; i < 4; i++ {
		_, _ = h.breaker.Execute(context.Background(), i)
		assert.Equal(t, gobreaker.StateClosed, h.breaker.State())
	}
	_, _ = h.breaker.Execute(context.Background(), 4)
	assert.Equal(t, gobreaker.StateOpen, h.breaker.State())
	assert.Equal(t, gobreaker.StateOpen, h.lastState.Load())

	out, err := h.breaker.Execute(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "fallback", out)
	assert.Equal(t, int32(5), h.calls.Load())
	assert.ErrorIs(t, h.causes[len(h.causes)-1], models.ErrCircuitOpen)
}

func TestExecute_StaysClosedBelowFailureRate(t *testing.T) {
	h := newHarness()

	for i := 0; i < 6; i++ {
		_, _ = h.breaker.Execute(context.Background(), i)
	}
	h.fail.Store(true)
	for i := 0; i < 5; i++ {
		_, _ = h.breaker.Execute(context.Background(), i)
	}

	assert.Equal(t, gobreaker.StateClosed, h.breaker.State())
}

func TestExecute_HalfOpenRecovers(t *testing.T) {
	h := newHarness()
	h.fail.Store(true)
	for i := 0; i < 5; i++ {
		_, _ = h.breaker.Execute(context.Background(), i)
	}
	require.Equal(t, gobreaker.StateOpen, h.breaker.State())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, h.breaker.State())

	h.fail.Store(false)
	for i := 0; i < 3; i++ {
		out, err := h.breaker.Execute(context.Background(), i)
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
	}
	assert.Equal(t, gobreaker.StateClosed, h.breaker.State())
}

func TestExecute_HalfOpenFailureReopens(t *testing.T) {
	h := newHarness()
	h.fail.Store(true)
	for i := 0; i < 5; i++ {
		_, _ = h.breaker.Execute(context.Background(), i)
	}
	time.Sleep(80 * time.Millisecond)

	_, _ = h.breaker.Execute(context.Background(), 0)

	assert.Equal(t, gobreaker.StateOpen, h.breaker.State())
}

func TestExecute_NoFallbackReturnsError(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	b := breaker.New[int, string](settings(), func(ctx context.Context, in int) (string, error) {
		return "", errDown
	}, nil, log)

	_, err := b.Execute(context.Background(), 1)

	assert.ErrorIs(t, err, errDown)
}
