package entities

import "errors"

// Error kinds shared by services and delivery layers. None of them is fatal:
// each is recovered where it is detected and turned into a user-visible notice.
var (
	// ErrCapabilityUnavailable means a device capability (location, compass) is missing.
	// Callers degrade to defaults.
	ErrCapabilityUnavailable = errors.New("capability unavailable")

	// ErrProviderFailure means an external provider (prayer times, Quran text, hadith) failed.
	// Callers keep the last known good data if any.
	ErrProviderFailure = errors.New("provider failure")

	// ErrPlaybackFailure means an audio source failed to load or play.
	// Playback stops and must be restarted explicitly.
	ErrPlaybackFailure = errors.New("playback failure")
)
