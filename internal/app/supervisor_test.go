package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trace struct {
	mu     sync.Mutex
	events []string
}

func (tr *trace) add(e string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.events = append(tr.events, e)
}

func (tr *trace) list() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]string(nil), tr.events...)
}

func traced(tr *trace, name string, startErr, stopErr error) Component {
	return Component{
		Name: name,
		Start: func(context.Context) error {
			tr.add("start " + name)
			return startErr
		},
		Stop: func(context.Context) error {
			tr.add("stop " + name)
			return stopErr
		},
	}
}

func newTestSupervisor() *Supervisor {
	log, _ := logtest.NewNullLogger()
	return NewSupervisor(time.Second, log)
}

func TestSupervisor_StopsInReverseOrderOnCancel(t *testing.T) {
	tr := &trace{}
	s := newTestSupervisor()
	s.Add(traced(tr, "db", nil, nil), traced(tr, "consumer", nil, nil), traced(tr, "http", nil, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return len(tr.list()) == 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not return")
	}
	assert.Equal(t, []string{
		"start db", "start consumer", "start http",
		"stop http", "stop consumer", "stop db",
	}, tr.list())
}

func TestSupervisor_StartFailureStopsStartedComponents(t *testing.T) {
	tr := &trace{}
	s := newTestSupervisor()
	s.Add(
		traced(tr, "db", nil, nil),
		traced(tr, "consumer", nil, nil),
		traced(tr, "http", errors.New("address in use"), nil),
		traced(tr, "never", nil, nil),
	)

	err := s.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error starting http")
	assert.Equal(t, []string{
		"start db", "start consumer", "start http",
		"stop consumer", "stop db",
	}, tr.list())
}

func TestSupervisor_ComponentFaultShutsDown(t *testing.T) {
	tr := &trace{}
	faults := make(chan error, 1)
	worker := traced(tr, "worker", nil, nil)
	worker.Done = faults

	s := newTestSupervisor()
	s.Add(traced(tr, "db", nil, nil), worker)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()
	require.Eventually(t, func() bool { return len(tr.list()) == 2 }, time.Second, 5*time.Millisecond)
	faults <- errors.New("broker gone")

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "worker failed: broker gone")
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not return")
	}
	assert.Equal(t, []string{"start db", "start worker", "stop worker", "stop db"}, tr.list())
}

func TestSupervisor_JoinsStopErrors(t *testing.T) {
	tr := &trace{}
	s := newTestSupervisor()
	s.Add(
		traced(tr, "db", nil, errors.New("db close")),
		traced(tr, "http", nil, errors.New("shutdown timeout")),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error stopping http: shutdown timeout")
	assert.Contains(t, err.Error(), "error stopping db: db close")
	assert.Equal(t, []string{"start db", "start http", "stop http", "stop db"}, tr.list())
}
