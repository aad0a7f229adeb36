package player

// Msg is an input to the sequencer: a user command or a media event.
type Msg interface {
	isMsg()
}

// SelectChapter starts playing a whole surah.
type SelectChapter struct {
	Chapter int
}

// SelectVerse starts playing a single ayah.
type SelectVerse struct {
	Chapter     int
	Verse       int
	Total       int
	GlobalVerse int
}

// Toggle pauses or resumes without changing the position.
type Toggle struct{}

// Advance moves to the next verse or chapter.
type Advance struct{}

// Retreat moves to the previous verse or chapter.
type Retreat struct{}

// Close stops playback and forgets the position.
type Close struct{}

// MediaEnded reports that the source with Token finished playing.
type MediaEnded struct {
	Token uint64
}

// MediaFailed reports that the source with Token could not be loaded or played.
type MediaFailed struct {
	Token  uint64
	Reason string
}

func (SelectChapter) isMsg() {}
func (SelectVerse) isMsg()   {}
func (Toggle) isMsg()        {}
func (Advance) isMsg()       {}
func (Retreat) isMsg()       {}
func (Close) isMsg()         {}
func (MediaEnded) isMsg()    {}
func (MediaFailed) isMsg()   {}
