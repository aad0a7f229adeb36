package player

import "context"

// PassiveMedia is used when the client owns the audio element: the client reads the
// active Source from the session state and reports events back itself.
type PassiveMedia struct{}

func (PassiveMedia) Load(context.Context, Source) error   { return nil }
func (PassiveMedia) Pause(context.Context, Source) error  { return nil }
func (PassiveMedia) Resume(context.Context, Source) error { return nil }
func (PassiveMedia) Detach(context.Context)               {}
