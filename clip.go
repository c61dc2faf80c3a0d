package engine

// ClipID identifies a clip within a TimelineTrack.
type ClipID uint64

// ClipTiming places a clip on the timeline in absolute frames relative to
// its owning track's origin.
type ClipTiming struct {
	StartFrame     uint64
	DurationFrames uint64
}

// EndFrame returns the frame one past the clip's last active frame.
func (t ClipTiming) EndFrame() uint64 {
	return t.StartFrame + t.DurationFrames
}

// AudioClipKind is a clip that plays back a region of a SampleSource.
type AudioClipKind struct {
	Source      SampleSource
	StartOffset uint64
	Looping     bool
	Gain        float32
	Pan         float32
}

// Clip is a single scheduled region on a TimelineTrack: a time placement
// plus a fade envelope plus the thing it plays back.
type Clip struct {
	ID      ClipID
	Timing  ClipTiming
	Audio   AudioClipKind
	FadeIn  Fade
	FadeOut Fade
}

// NewAudioClip builds a clip backed by source, clamping its fade lengths so
// fadeIn and fadeOut never overlap past the clip's own duration, and
// clamping gain to [0,4] and pan to [-1,1].
func NewAudioClip(id ClipID, timing ClipTiming, audio AudioClipKind, fadeIn, fadeOut Fade) Clip {
	fadeIn, fadeOut = clampFades(fadeIn, fadeOut, timing.DurationFrames)
	audio.Gain = clampF32(audio.Gain, 0, 4)
	audio.Pan = clampF32(audio.Pan, -1, 1)
	return Clip{
		ID:      id,
		Timing:  timing,
		Audio:   audio,
		FadeIn:  fadeIn,
		FadeOut: fadeOut,
	}
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// panGains returns the linear-pan-law left/right multipliers for pan in
// [-1, 1] (-1 fully left, 0 center, 1 fully right).
func panGains(pan float32) (left, right float32) {
	if pan < 0 {
		return 1, 1 + pan
	}
	return 1 - pan, 1
}

// IsActiveAt reports whether frame falls within the clip's [start, end)
// window.
func (c Clip) IsActiveAt(frame uint64) bool {
	return frame >= c.Timing.StartFrame && frame < c.Timing.EndFrame()
}

// EndsAt reports whether frame is exactly one past the clip's last active
// frame, i.e. the clip has just finished.
func (c Clip) EndsAt(frame uint64) bool {
	return frame == c.Timing.EndFrame()
}

// gainAt returns the combined fade and static gain for the clip at the
// given position local to the clip's own timeline (0 == clip start), not
// including pan.
func (c Clip) gainAt(local uint64) float32 {
	return fadeGain(local, c.Timing.DurationFrames, c.FadeIn, c.FadeOut) * c.Audio.Gain
}

// panLR returns the clip's left/right pan multipliers.
func (c Clip) panLR() (left, right float32) {
	return panGains(c.Audio.Pan)
}
