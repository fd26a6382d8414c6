package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bnema/wttrbot/internal/ports"
)

// retryDelay is the fixed pause between session attempts. Unconditional
// and unbounded: no attempt cap, no backoff, no jitter. Acceptable for a
// low-traffic agent; a hardened variant would parameterize this behind the
// same interface.
const retryDelay = 5 * time.Second

// SessionState tracks where the supervisor is in its connect cycle.
type SessionState int

const (
	StateDisconnected SessionState = iota
	StateConnecting
	StateActive
)

func (s SessionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateActive:
		return "active"
	}
	return "unknown"
}

// Supervisor owns the lifetime of one relay session at a time. On any
// session termination, clean or not, it waits a fixed delay and starts a
// new session, forever.
type Supervisor struct {
	dialer     ports.RelayDialer
	dispatcher *Dispatcher
	clock      ports.Clock
	log        *zap.Logger
	state      SessionState
}

func NewSupervisor(dialer ports.RelayDialer, dispatcher *Dispatcher, clock ports.Clock, log *zap.Logger) *Supervisor {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Supervisor{
		dialer:     dialer,
		dispatcher: dispatcher,
		clock:      clock,
		log:        log,
	}
}

// Run keeps exactly one session alive at a time. It returns only when ctx
// is canceled; every other outcome is logged and retried after the fixed
// delay.
func (s *Supervisor) Run(ctx context.Context) error {
	for {
		s.runSession(ctx)
		s.setState(StateDisconnected)
		if err := s.clock.Sleep(ctx, retryDelay); err != nil {
			return err
		}
	}
}

// State reports the current cycle position. Not synchronized: meant for
// inspection from the supervisor's own goroutine or after Run returned.
func (s *Supervisor) State() SessionState { return s.state }

func (s *Supervisor) runSession(ctx context.Context) {
	s.setState(StateConnecting)
	session, err := s.dialer.Dial(ctx)
	if err != nil {
		s.log.Error("connect failed", zap.Error(err))
		return
	}
	defer func() { _ = session.Close() }()

	// External shutdown tears the session down so the event stream ends.
	stop := context.AfterFunc(ctx, func() { _ = session.Close() })
	defer stop()

	s.setState(StateActive)
	s.dispatcher.Run(ctx, session)

	if err := session.Err(); err != nil {
		s.log.Error("session ended", zap.Error(err))
		return
	}
	s.log.Info("disconnected, reconnecting after delay")
}

func (s *Supervisor) setState(next SessionState) {
	if next == s.state {
		return
	}
	s.log.Debug("session state",
		zap.Stringer("from", s.state),
		zap.Stringer("to", next))
	s.state = next
}
