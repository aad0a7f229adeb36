package entities

import (
	"errors"
	"fmt"
)

var ErrInvalidPosition = errors.New("invalid playback position")

// PlaybackUnit selects whether a whole chapter or a single verse is played.
type PlaybackUnit string

const (
	UnitSurah PlaybackUnit = "SURAH"
	UnitAyah  PlaybackUnit = "AYAH"
)

const (
	FirstSurah = 1
	LastSurah  = 114
)

// PlaybackPosition describes what is selected for audio, independent of whether
// audio is actually playing. Verse, Total and GlobalVerse are only set for UnitAyah.
type PlaybackPosition struct {
	Unit        PlaybackUnit `json:"unit"`
	Chapter     int          `json:"chapter"`
	Verse       int          `json:"verse,omitempty"`        // number within the chapter
	Total       int          `json:"total,omitempty"`        // verses in the chapter
	GlobalVerse int          `json:"global_verse,omitempty"` // verse id across the whole Quran
}

// SurahPosition returns a chapter-level position.
func SurahPosition(chapter int) PlaybackPosition {
	return PlaybackPosition{Unit: UnitSurah, Chapter: chapter}
}

// AyahPosition returns a verse-level position.
func AyahPosition(chapter, verse, total, globalVerse int) PlaybackPosition {
	return PlaybackPosition{
		Unit:        UnitAyah,
		Chapter:     chapter,
		Verse:       verse,
		Total:       total,
		GlobalVerse: globalVerse,
	}
}

// Validate enforces the position invariants.
func (p PlaybackPosition) Validate() error {
	if p.Chapter < FirstSurah || p.Chapter > LastSurah {
		return fmt.Errorf("%w: chapter %d", ErrInvalidPosition, p.Chapter)
	}

	switch p.Unit {
	case UnitSurah:
		return nil
	case UnitAyah:
		if p.Total < 1 || p.Verse < 1 || p.Verse > p.Total {
			return fmt.Errorf("%w: verse %d of %d", ErrInvalidPosition, p.Verse, p.Total)
		}
		if p.GlobalVerse < 1 {
			return fmt.Errorf("%w: global verse %d", ErrInvalidPosition, p.GlobalVerse)
		}
		return nil
	default:
		return fmt.Errorf("%w: unit %q", ErrInvalidPosition, p.Unit)
	}
}

// SameSource reports whether two positions resolve to the same audio source.
func (p PlaybackPosition) SameSource(o PlaybackPosition) bool {
	return p.Unit == o.Unit && p.Chapter == o.Chapter && p.Verse == o.Verse
}
