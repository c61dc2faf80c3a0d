package engine

import "sort"

// TimelineTrack holds an ordered set of clips and renders the sum of
// every clip active in a given time window. Clips may overlap freely;
// overlapping contributions are summed, which is what makes crossfades
// between adjacent clips work when their fades are matched.
type TimelineTrack struct {
	id           TrackID
	name         string
	clips        []Clip
	currentFrame uint64
}

// NewTimelineTrack builds an empty timeline track. Clips are added with
// AddClip and kept sorted by start frame.
func NewTimelineTrack(id TrackID, name string) *TimelineTrack {
	return &TimelineTrack{id: id, name: name}
}

func (t *TimelineTrack) ID() TrackID     { return t.id }
func (t *TimelineTrack) Name() string    { return t.name }
func (t *TimelineTrack) Kind() TrackKind { return TrackAudio }

// AddClip inserts clip in start-frame order. Returns ErrInvalidClip,
// without modifying the track, if clip has zero duration.
func (t *TimelineTrack) AddClip(clip Clip) error {
	if clip.Timing.DurationFrames == 0 {
		return ErrInvalidClip
	}
	i := sort.Search(len(t.clips), func(i int) bool {
		return t.clips[i].Timing.StartFrame > clip.Timing.StartFrame
	})
	t.clips = append(t.clips, Clip{})
	copy(t.clips[i+1:], t.clips[i:])
	t.clips[i] = clip
	return nil
}

// RemoveClip deletes the clip with the given id, if present.
func (t *TimelineTrack) RemoveClip(id ClipID) {
	for i, c := range t.clips {
		if c.ID == id {
			t.clips = append(t.clips[:i], t.clips[i+1:]...)
			return
		}
	}
}

// FillNext renders len(buf) frames starting at the track's current
// internal playhead, then advances the playhead by that many frames.
func (t *TimelineTrack) FillNext(buf []Frame) {
	clearFrames(buf)
	t.render(t.currentFrame, buf)
	t.currentFrame += uint64(len(buf))
}

// render sums every clip active within [startFrame, startFrame+len(out))
// into out. Clips are ordered by start frame, so once a clip's own start
// is past the window's end there is nothing further to contribute and
// the scan can stop early.
func (t *TimelineTrack) render(startFrame uint64, out []Frame) {
	frameCount := uint64(len(out))
	windowEnd := startFrame + frameCount

	for _, clip := range t.clips {
		clipStart := clip.Timing.StartFrame
		if clipStart >= windowEnd {
			break
		}

		duration := clip.Timing.DurationFrames
		clipEnd := clipStart + duration
		looping := clip.Audio.Looping
		left, right := clip.panLR()

		for i := uint64(0); i < frameCount; i++ {
			g := startFrame + i
			if g < clipStart {
				continue
			}
			if !looping && g >= clipEnd {
				continue
			}

			clipRel := g - clipStart
			var local uint64
			if looping {
				if duration == 0 {
					local = 0
				} else {
					local = clipRel % duration
				}
			} else {
				local = clipRel
			}

			sourceFrame := clip.Audio.StartOffset + local
			frames := clip.Audio.Source.Read(sourceFrame, 1)
			gain := clip.gainAt(local)

			out[i].L += frames[0].L * gain * left
			out[i].R += frames[0].R * gain * right
		}
	}
}

// ApplyParamChange matches by track id and mutates the clips' gain or
// pan. TimelineTrack clips don't carry their own addressable id scheme in
// this surface, so the change applies to all clips. A GainPan wrapper
// around a TimelineTrack is the idiomatic way to give the whole track one
// addressable gain/pan.
func (t *TimelineTrack) ApplyParamChange(id TrackID, change ParamChange) {
	if id != t.id {
		return
	}
	for i := range t.clips {
		switch change.Kind {
		case ParamSetGain:
			t.clips[i].Audio.Gain = clampF32(change.Value, 0, 4)
		case ParamSetPan:
			t.clips[i].Audio.Pan = clampF32(change.Value, -1, 1)
		}
	}
}

// Reset rewinds the playhead to frame 0. See the open question on
// RestartTrack semantics: this implementation resets the internal frame
// counter only, leaving clip placements untouched.
func (t *TimelineTrack) Reset() {
	t.currentFrame = 0
}
