package test

import (
	"context"
	"sync/atomic"

	"go.uber.org/fx"
)

// LifecycleRecorder captures lifecycle hooks so tests can drive them by hand.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// Start runs OnStart hooks in registration order and stops at the first error.
func (l *LifecycleRecorder) Start(ctx context.Context) error {
	for _, h := range l.Hooks {
		if h.OnStart == nil {
			continue
		}
		if err := h.OnStart(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop runs OnStop hooks in reverse order, like fx does.
func (l *LifecycleRecorder) Stop(ctx context.Context) error {
	var firstErr error
	for i := len(l.Hooks) - 1; i >= 0; i-- {
		if l.Hooks[i].OnStop == nil {
			continue
		}
		if err := l.Hooks[i].OnStop(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ShutdownerStub records shutdown requests.
type ShutdownerStub struct {
	Called chan struct{}
	calls  int32
}

// Shutdown notifies tests about graceful termination.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	atomic.AddInt32(&s.calls, 1)
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}

// Calls reports how many times Shutdown was invoked.
func (s *ShutdownerStub) Calls() int {
	return int(atomic.LoadInt32(&s.calls))
}
