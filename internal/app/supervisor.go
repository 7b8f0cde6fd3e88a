package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Component is a long-lived part of a service. Start must return once the
// component is running; Stop must release everything Start acquired.
type Component struct {
	Name  string
	Start func(ctx context.Context) error
	Stop  func(ctx context.Context) error
	// Done, when set, delivers an error if the component dies after starting.
	Done <-chan error
}

// Supervisor starts components in order and stops the started ones in
// reverse order, whatever the reason Run returns.
type Supervisor struct {
	StopTimeout time.Duration
	Log         logrus.FieldLogger

	components []Component
}

func NewSupervisor(stopTimeout time.Duration, log logrus.FieldLogger) *Supervisor {
	return &Supervisor{StopTimeout: stopTimeout, Log: log}
}

func (s *Supervisor) Add(c ...Component) {
	s.components = append(s.components, c...)
}

// Run blocks until ctx is cancelled or a component fails.
func (s *Supervisor) Run(ctx context.Context) (err error) {
	started := make([]Component, 0, len(s.components))
	defer func() {
		if stopErr := s.stop(ctx, started); stopErr != nil {
			err = errors.Join(err, stopErr)
		}
	}()

	faults := make(chan error, len(s.components))
	for _, c := range s.components {
		if c.Start != nil {
			if err := c.Start(ctx); err != nil {
				return fmt.Errorf("error starting %s: %w", c.Name, err)
			}
		}
		started = append(started, c)
		s.Log.WithField("component", c.Name).Info("component started")

		if c.Done != nil {
			go func(name string, done <-chan error) {
				if err, ok := <-done; ok && err != nil {
					faults <- fmt.Errorf("%s failed: %w", name, err)
				}
			}(c.Name, c.Done)
		}
	}

	select {
	case <-ctx.Done():
		s.Log.Info("shutdown requested")
		return nil
	case err := <-faults:
		s.Log.WithError(err).Error("component failed, shutting down")
		return err
	}
}

func (s *Supervisor) stop(ctx context.Context, started []Component) error {
	timeout := s.StopTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var errs []error
	for i := len(started) - 1; i >= 0; i-- {
		c := started[i]
		if c.Stop == nil {
			continue
		}
		if err := c.Stop(stopCtx); err != nil {
			s.Log.WithField("component", c.Name).Errorf("Error stopping component %s", err.Error())
			errs = append(errs, fmt.Errorf("error stopping %s: %w", c.Name, err))
			continue
		}
		s.Log.WithField("component", c.Name).Info("component stopped")
	}
	return errors.Join(errs...)
}
