package engine

// LoopPoint is a 1-based bar/beat/tick musical coordinate, as used to
// express loop region endpoints in SetLoop.
type LoopPoint struct {
	Bar  uint64
	Beat uint64
	Tick uint64
}

// Command is the closed set of control messages the scheduler accepts
// from the command queue. Each variant is a concrete struct; Command
// itself is a marker interface so the queue can carry any of them
// through a single channel.
type Command interface {
	isCommand()
}

// ScheduleTrackCmd schedules track to become active once the scheduler's
// current_frame reaches startFrame.
type ScheduleTrackCmd struct {
	Track      Track
	StartFrame uint64
}

// ScheduleClipCmd adds clip to the active TimelineTrack identified by
// TrackID. Ignored if the target isn't an active TimelineTrack.
type ScheduleClipCmd struct {
	TrackID TrackID
	Clip    Clip
}

// ParamChangeCmd forwards a parameter change to every active track; each
// applies it only if TargetID matches its own id.
type ParamChangeCmd struct {
	TargetID TrackID
	Change   ParamChange
}

// StopTrackCmd removes the matching track from the active list. A
// pending track with the same id is unaffected (see the documented edge
// in the scheduler design).
type StopTrackCmd struct {
	TargetID TrackID
}

// RestartTrackCmd resets the matching active track's internal playhead.
type RestartTrackCmd struct {
	TargetID TrackID
}

// SetTempoCmd rebuilds the tempo clock at the given tempo and tick
// resolution, preserving current_frame but resetting tick_counter to the
// new grid.
type SetTempoCmd struct {
	BPM        float64
	Resolution TickResolution
}

// SetLoopCmd enables or disables loop wrapping. When Enabled, Start and
// End are converted to frame positions via the scheduler's tempo clock at
// the moment the command is applied.
type SetLoopCmd struct {
	Enabled bool
	Start   LoopPoint
	End     LoopPoint
}

// PlayCmd transitions the transport to Playing and starts the tempo
// clock.
type PlayCmd struct{}

// PauseCmd transitions the transport to Paused. Position is preserved.
type PauseCmd struct{}

// StopCmd transitions the transport to Stopped, zeroing current_frame,
// resetting the tempo clock, and clearing both the pending heap and the
// active list.
type StopCmd struct{}

func (ScheduleTrackCmd) isCommand() {}
func (ScheduleClipCmd) isCommand()  {}
func (ParamChangeCmd) isCommand()   {}
func (StopTrackCmd) isCommand()     {}
func (RestartTrackCmd) isCommand()  {}
func (SetTempoCmd) isCommand()      {}
func (SetLoopCmd) isCommand()       {}
func (PlayCmd) isCommand()          {}
func (PauseCmd) isCommand()         {}
func (StopCmd) isCommand()          {}
