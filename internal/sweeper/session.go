package sweeper

import (
	"errors"

	"github.com/fieldbotics/robowire/internal/statebuf"
)

// ErrNoSnapshot is returned by State when no Refresh has happened yet and
// auto-refresh is off. Reading a never-filled buffer would silently yield
// zeros.
var ErrNoSnapshot = errors.New("sweeper: sensor buffer has never been refreshed")

// Session owns the sensor state buffer for one logical connection to the
// robot. The contract is two-phase: Refresh fetches a new snapshot over
// the channel; State returns a pure accessor view of the last snapshot.
// The optional auto-refresh mode re-fetches the full buffer before every
// State call for callers that want read-through behaviour.
//
// A Session is not safe for concurrent use; the channel carries one
// exchange at a time and callers must serialize access.
type Session struct {
	codec       *Codec
	buf         *statebuf.Buffer
	autoRefresh bool
	refreshed   bool
}

// NewSession creates a session over the codec with a zeroed state buffer.
func NewSession(codec *Codec) *Session {
	return &Session{
		codec: codec,
		buf:   statebuf.NewBuffer(StateSize),
	}
}

// SetAutoRefresh switches read-through mode: when on, State refreshes the
// full buffer before returning its view.
func (s *Session) SetAutoRefresh(on bool) { s.autoRefresh = on }

// Codec exposes the underlying codec for command use.
func (s *Session) Codec() *Codec { return s.codec }

// Refresh performs one sensor request/response cycle for the selector,
// overwriting only the selector's subrange of the buffer.
func (s *Session) Refresh(sel Selector) error {
	if err := s.codec.RequestSensors(sel, s.buf); err != nil {
		return err
	}
	s.refreshed = true
	return nil
}

// State returns an accessor view over a copy of the current buffer. In
// auto-refresh mode it fetches the full buffer first; otherwise at least
// one Refresh must have happened, since reading a never-filled buffer
// would silently yield zeros.
func (s *Session) State() (State, error) {
	if s.autoRefresh {
		if err := s.Refresh(SelectAll); err != nil {
			return State{}, err
		}
	} else if !s.refreshed {
		return State{}, ErrNoSnapshot
	}
	return NewState(s.buf.Snapshot()), nil
}
