package player

import (
	"context"
	"strconv"
	"strings"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

// Default stream templates. {chapter} is the surah number, {ayah} the global verse id.
const (
	DefaultSurahTemplate = "https://cdn.islamic.network/quran/audio-surah/128/ar.alafasy/{chapter}.mp3"
	DefaultAyahTemplate  = "https://cdn.islamic.network/quran/audio/128/ar.alafasy/{ayah}.mp3"
)

// Source is an audio stream loaded into the media collaborator. Token identifies the
// load; every event the collaborator reports back must carry it.
type Source struct {
	Token    uint64                    `json:"token"`
	Locator  string                    `json:"locator"`
	Position entities.PlaybackPosition `json:"position"`
}

// Media plays sources. Implementations report completion and failure back to the
// sequencer as MediaEnded and MediaFailed messages tagged with the source token.
type Media interface {
	Load(ctx context.Context, src Source) error
	Pause(ctx context.Context, src Source) error
	Resume(ctx context.Context, src Source) error
	// Detach hides the player and drops anything still pending for earlier sources.
	Detach(ctx context.Context)
}

// Locator derives stream URLs from playback positions.
type Locator struct {
	SurahTemplate string
	AyahTemplate  string
}

// DefaultLocator uses the public Islamic Network CDN.
func DefaultLocator() Locator {
	return Locator{SurahTemplate: DefaultSurahTemplate, AyahTemplate: DefaultAyahTemplate}
}

// Locate returns the stream URL for a position.
func (l Locator) Locate(pos entities.PlaybackPosition) string {
	if pos.Unit == entities.UnitAyah {
		return strings.ReplaceAll(l.AyahTemplate, "{ayah}", strconv.Itoa(pos.GlobalVerse))
	}
	return strings.ReplaceAll(l.SurahTemplate, "{chapter}", strconv.Itoa(pos.Chapter))
}
