package engine

import "errors"

// Device setup errors. These surface only to the caller that sets up the
// audio device; the realtime path never observes them.
var (
	ErrDeviceNotFound    = errors.New("engine: audio device not found")
	ErrStreamBuildFailed = errors.New("engine: failed to build audio stream")
	ErrStreamStartFailed = errors.New("engine: failed to start audio stream")
)

// ErrInvalidClip is returned by TimelineTrack.AddClip for a clip with zero
// duration; such a clip is never admitted into the track.
var ErrInvalidClip = errors.New("engine: invalid clip")
