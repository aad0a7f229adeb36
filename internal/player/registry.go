package player

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrUnknownSession  = errors.New("unknown player session")
	ErrTooManySessions = errors.New("too many player sessions")
)

// MediaFactory builds the media collaborator for a new session.
type MediaFactory func(sessionID string) Media

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMaxSessions caps the number of open sessions. Zero means no cap.
func WithMaxSessions(n int) RegistryOption {
	return func(r *Registry) { r.maxSessions = n }
}

// WithClock replaces time.Now for idle tracking.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// Registry keeps one sequencer per session and applies messages to a session
// one at a time. Sessions are created only by Open.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*session
	newMedia    MediaFactory
	locator     Locator
	maxSessions int
	now         func() time.Time
}

type session struct {
	mu       sync.Mutex
	seq      *Sequencer
	lastUsed time.Time
	closed   bool
}

// NewRegistry creates an empty registry.
func NewRegistry(locator Locator, newMedia MediaFactory, opts ...RegistryOption) *Registry {
	r := &Registry{
		sessions: make(map[string]*session),
		newMedia: newMedia,
		locator:  locator,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dispatch applies msg to an open session. Unknown or removed sessions yield
// ErrUnknownSession and are not recreated.
func (r *Registry) Dispatch(ctx context.Context, sessionID string, msg Msg) (State, error) {
	sess, ok := r.lookup(sessionID)
	if !ok {
		return State{Status: StatusStopped}, ErrUnknownSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return State{Status: StatusStopped}, ErrUnknownSession
	}
	sess.lastUsed = r.now()
	return sess.seq.Dispatch(ctx, msg)
}

// State returns the session's state. The second value is false for unknown sessions.
func (r *Registry) State(sessionID string) (State, bool) {
	sess, ok := r.lookup(sessionID)
	if !ok {
		return State{Status: StatusStopped}, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return State{Status: StatusStopped}, false
	}
	sess.lastUsed = r.now()
	return sess.seq.State(), true
}

// Open registers a session. Opening an existing session is a no-op.
func (r *Registry) Open(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[sessionID]; ok {
		sess.mu.Lock()
		sess.lastUsed = r.now()
		sess.mu.Unlock()
		return nil
	}
	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		return ErrTooManySessions
	}

	r.sessions[sessionID] = &session{
		seq:      NewSequencer(r.newMedia(sessionID), r.locator),
		lastUsed: r.now(),
	}
	return nil
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Remove closes and forgets a session.
func (r *Registry) Remove(ctx context.Context, sessionID string) {
	r.mu.Lock()
	sess, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	if ok {
		sess.close(ctx)
	}
}

// Sweep removes sessions unused for longer than idle and returns how many went.
func (r *Registry) Sweep(ctx context.Context, idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	var stale []*session
	for id, sess := range r.sessions {
		sess.mu.Lock()
		expired := sess.lastUsed.Before(cutoff)
		sess.mu.Unlock()
		if expired {
			stale = append(stale, sess)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, sess := range stale {
		sess.close(ctx)
	}
	return len(stale)
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
// A non-positive interval or idle timeout disables sweeping.
func (r *Registry) RunJanitor(ctx context.Context, interval, idle time.Duration, logger *zap.Logger) {
	if interval <= 0 || idle <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(ctx, idle); n > 0 {
				logger.Debug("idle player sessions removed", zap.Int("count", n), zap.Int("open", r.Len()))
			}
		}
	}
}

func (r *Registry) lookup(sessionID string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[sessionID]
	return sess, ok
}

func (s *session) close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	_, _ = s.seq.Dispatch(ctx, Close{})
}
