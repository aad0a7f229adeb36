// Package player sequences Quran audio playback by verse or by chapter.
package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

// ErrStaleEvent is returned for media events whose token is not the active source.
// The event has been ignored; callers may log it and move on.
var ErrStaleEvent = errors.New("stale media event")

const msgPlaybackFailed = "Audio could not be played. Check your connection and start it again."

// Status is the playback status.
type Status string

const (
	StatusStopped Status = "stopped"
	StatusPlaying Status = "playing"
	StatusPaused  Status = "paused"
)

// State is a snapshot of the sequencer.
type State struct {
	Status   Status                     `json:"status"`
	Position *entities.PlaybackPosition `json:"position,omitempty"`
	Source   *Source                    `json:"source,omitempty"`
	Error    string                     `json:"error,omitempty"`
}

// Sequencer is the playback state machine. It is not safe for concurrent use;
// Registry serializes access per session.
type Sequencer struct {
	media   Media
	locator Locator

	status    Status
	pos       entities.PlaybackPosition
	src       *Source
	lastToken uint64
	errMsg    string
}

// NewSequencer creates a stopped sequencer.
func NewSequencer(media Media, locator Locator) *Sequencer {
	return &Sequencer{
		media:   media,
		locator: locator,
		status:  StatusStopped,
	}
}

// State returns the current snapshot.
func (s *Sequencer) State() State {
	st := State{Status: s.status, Error: s.errMsg}
	if s.status != StatusStopped {
		pos := s.pos
		st.Position = &pos
	}
	if s.src != nil {
		src := *s.src
		st.Source = &src
	}
	return st
}

// Dispatch applies one message and returns the resulting state.
func (s *Sequencer) Dispatch(ctx context.Context, msg Msg) (State, error) {
	err := s.apply(ctx, msg)
	return s.State(), err
}

func (s *Sequencer) apply(ctx context.Context, msg Msg) error {
	switch m := msg.(type) {
	case SelectChapter:
		return s.transition(ctx, entities.SurahPosition(m.Chapter))

	case SelectVerse:
		return s.transition(ctx, entities.AyahPosition(m.Chapter, m.Verse, m.Total, m.GlobalVerse))

	case Toggle:
		return s.toggle(ctx)

	case Advance:
		return s.advance(ctx)

	case Retreat:
		return s.retreat(ctx)

	case Close:
		s.stop(ctx)
		s.errMsg = ""
		return nil

	case MediaEnded:
		if !s.isActive(m.Token) {
			return ErrStaleEvent
		}
		return s.advance(ctx)

	case MediaFailed:
		if !s.isActive(m.Token) {
			return ErrStaleEvent
		}
		reason := m.Reason
		if reason == "" {
			reason = "media error"
		}
		return s.fail(ctx, errors.New(reason))

	default:
		return fmt.Errorf("unknown message %T", msg)
	}
}

func (s *Sequencer) isActive(token uint64) bool {
	return s.src != nil && s.src.Token == token
}

// transition moves to pos and loads its source unless it is already loaded.
func (s *Sequencer) transition(ctx context.Context, pos entities.PlaybackPosition) error {
	if err := pos.Validate(); err != nil {
		return err
	}

	if s.status != StatusStopped && s.pos.SameSource(pos) {
		s.pos = pos
		if s.status == StatusPaused {
			return s.toggle(ctx)
		}
		return nil
	}

	s.lastToken++
	src := Source{
		Token:    s.lastToken,
		Locator:  s.locator.Locate(pos),
		Position: pos,
	}

	s.pos = pos
	s.src = &src
	s.status = StatusPlaying
	s.errMsg = ""

	if err := s.media.Load(ctx, src); err != nil {
		return s.fail(ctx, err)
	}
	return nil
}

func (s *Sequencer) toggle(ctx context.Context) error {
	switch s.status {
	case StatusPlaying:
		if err := s.media.Pause(ctx, *s.src); err != nil {
			return s.fail(ctx, err)
		}
		s.status = StatusPaused
	case StatusPaused:
		if err := s.media.Resume(ctx, *s.src); err != nil {
			return s.fail(ctx, err)
		}
		s.status = StatusPlaying
	}
	return nil
}

func (s *Sequencer) advance(ctx context.Context) error {
	if s.status == StatusStopped {
		return nil
	}

	pos := s.pos
	switch pos.Unit {
	case entities.UnitAyah:
		if pos.Verse >= pos.Total {
			s.stop(ctx)
			return nil
		}
		pos.Verse++
		pos.GlobalVerse++
	case entities.UnitSurah:
		if pos.Chapter >= entities.LastSurah {
			s.stop(ctx)
			return nil
		}
		pos.Chapter++
	}

	return s.transition(ctx, pos)
}

func (s *Sequencer) retreat(ctx context.Context) error {
	if s.status == StatusStopped {
		return nil
	}

	pos := s.pos
	switch pos.Unit {
	case entities.UnitAyah:
		if pos.Verse <= 1 {
			return nil
		}
		pos.Verse--
		pos.GlobalVerse--
	case entities.UnitSurah:
		if pos.Chapter <= entities.FirstSurah {
			return nil
		}
		pos.Chapter--
	}

	return s.transition(ctx, pos)
}

func (s *Sequencer) stop(ctx context.Context) {
	s.status = StatusStopped
	s.pos = entities.PlaybackPosition{}
	s.src = nil
	s.media.Detach(ctx)
}

func (s *Sequencer) fail(ctx context.Context, cause error) error {
	s.stop(ctx)
	s.errMsg = msgPlaybackFailed
	return fmt.Errorf("%w: %v", entities.ErrPlaybackFailure, cause)
}
