package engine

import "container/heap"

// TransportState is the play/pause/stop state of the timeline.
type TransportState int

const (
	TransportStopped TransportState = iota
	TransportPaused
	TransportPlaying
)

// LoopRegion is a frame-expressed loop window. Derived from BBT endpoints
// via the tempo clock at the moment a SetLoop command is applied.
type LoopRegion struct {
	Enabled    bool
	StartFrame uint64
	EndFrame   uint64
}

// Scheduler owns every piece of realtime mutable state: the pending-track
// heap, the active-track list, the tempo clock, the transport state, the
// loop region, and the command queue's consumer side. Its Fill method is
// the sole entry point the audio device callback drives; every other
// method here either is called from Fill or exists for single-threaded
// test/tooling convenience.
type Scheduler struct {
	sampleRate float64
	maxFrames  int

	pending pendingHeap
	active  []Track

	clock         *TempoClock
	tickRes       TickResolution
	timeSig       TimeSignature
	transport     TransportState
	loop          LoopRegion
	currentFrame  uint64

	queue *CommandQueue

	mixBuf     []Frame
	scratchBuf []Frame
}

// NewScheduler builds a scheduler at the given sample rate, starting
// tempo/resolution/time signature, and command queue. maxFrames bounds
// the largest buffer Fill will ever be asked to render; the mix and
// scratch buffers are pre-sized to it so Fill allocates no buffers of its
// own.
func NewScheduler(sampleRate float64, bpm float64, resolution TickResolution, ts TimeSignature, maxFrames int, queue *CommandQueue) *Scheduler {
	return &Scheduler{
		sampleRate: sampleRate,
		maxFrames:  maxFrames,
		clock:      NewTempoClock(bpm, sampleRate, resolution, ts),
		tickRes:    resolution,
		timeSig:    ts,
		transport:  TransportStopped,
		queue:      queue,
		mixBuf:     make([]Frame, maxFrames),
		scratchBuf: make([]Frame, maxFrames),
	}
}

// State returns the current transport state.
func (s *Scheduler) State() TransportState { return s.transport }

// CurrentFrame returns the scheduler's absolute frame position.
func (s *Scheduler) CurrentFrame() uint64 { return s.currentFrame }

// Position snapshots transport position for a UI to poll.
func (s *Scheduler) Position() TimelinePosition {
	bar, beat, tick := s.clock.BarBeatTick()
	tickWithinBeat := (tick - 1) % uint64(s.clock.TicksPerBeat()) + 1
	return TimelinePosition{
		CurrentFrame:   s.currentFrame,
		Bar:            bar,
		Beat:           beat,
		Tick:           tick,
		TickWithinBeat: tickWithinBeat,
	}
}

// Schedule pushes track onto the pending heap to activate at startFrame.
// Permitted while Playing or Paused as well as Stopped.
func (s *Scheduler) Schedule(track Track, startFrame uint64) {
	heap.Push(&s.pending, ScheduledTrack{Track: track, StartFrame: startFrame})
}

// StopTrack removes the matching track from the active list by id. A
// pending track sharing the id is untouched and will still activate
// later — this is the documented edge policy, not a bug.
func (s *Scheduler) StopTrack(id TrackID) {
	for i, t := range s.active {
		if t.ID() == id {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

// Fill renders frameCount frames into buf, which must have length
// exactly frameCount. This is the realtime entry point: it drains queued
// commands, advances the transport, mixes active tracks, and handles
// loop wraparound using only the pre-sized mix and scratch buffers. Tracks
// that read a SampleSource (TimelineTrack, RawTrack) still allocate, since
// SampleSource.Read returns a new slice on every call.
func (s *Scheduler) Fill(buf []Frame, frameCount int) {
	s.drainCommands()

	if s.transport != TransportPlaying {
		clearFrames(buf[:frameCount])
		return
	}

	s.promotePending()

	mix := s.mixBuf[:frameCount]
	clearFrames(mix)

	scratch := s.scratchBuf[:frameCount]
	for _, track := range s.active {
		clearFrames(scratch)
		track.FillNext(scratch)
		mixInto(mix, scratch)
	}

	s.clock.AdvanceBy(uint64(frameCount))
	s.currentFrame += uint64(frameCount)

	if s.loop.Enabled && s.currentFrame >= s.loop.EndFrame {
		s.currentFrame = s.loop.StartFrame
		s.clock.Reset()
		s.clock.AdvanceBy(s.loop.StartFrame)
	}

	copy(buf[:frameCount], mix)
}

// promotePending moves every pending track whose start frame has arrived
// onto the active list.
func (s *Scheduler) promotePending() {
	for s.pending.Len() > 0 && s.pending[0].StartFrame <= s.currentFrame {
		st := heap.Pop(&s.pending).(ScheduledTrack)
		s.active = append(s.active, st.Track)
	}
}

// drainCommands empties the command queue, applying every command before
// any frame of the current buffer is produced.
func (s *Scheduler) drainCommands() {
	for {
		cmd, ok := s.queue.Pop()
		if !ok {
			return
		}
		s.processCommand(cmd)
	}
}

func (s *Scheduler) processCommand(cmd Command) {
	switch c := cmd.(type) {
	case ScheduleTrackCmd:
		s.Schedule(c.Track, c.StartFrame)

	case ScheduleClipCmd:
		if tt := s.findTimelineTrack(c.TrackID); tt != nil {
			tt.AddClip(c.Clip)
		}

	case ParamChangeCmd:
		for _, t := range s.active {
			t.ApplyParamChange(c.TargetID, c.Change)
		}

	case StopTrackCmd:
		s.StopTrack(c.TargetID)

	case RestartTrackCmd:
		for _, t := range s.active {
			if t.ID() == c.TargetID {
				t.Reset()
			}
		}

	case SetTempoCmd:
		s.clock = NewTempoClock(c.BPM, s.sampleRate, c.Resolution, s.timeSig)
		s.tickRes = c.Resolution
		if s.transport == TransportPlaying {
			s.clock.Start()
		}

	case SetLoopCmd:
		if !c.Enabled {
			s.loop = LoopRegion{}
			return
		}
		ticksPerBar := uint64(s.clock.TicksPerBar())
		ticksPerBeat := uint64(s.clock.TicksPerBeat())
		startFrame := bbtToFrames(c.Start, ticksPerBar, ticksPerBeat, s.clock.SamplesPerTick())
		endFrame := bbtToFrames(c.End, ticksPerBar, ticksPerBeat, s.clock.SamplesPerTick())
		s.loop = LoopRegion{Enabled: true, StartFrame: startFrame, EndFrame: endFrame}

	case PlayCmd:
		s.transport = TransportPlaying
		s.clock.Start()

	case PauseCmd:
		s.transport = TransportPaused

	case StopCmd:
		s.transport = TransportStopped
		s.currentFrame = 0
		s.clock.Reset()
		s.active = nil
		s.pending = nil
	}
}

func (s *Scheduler) findTimelineTrack(id TrackID) *TimelineTrack {
	for _, t := range s.active {
		if tt, ok := t.(*TimelineTrack); ok && tt.ID() == id {
			return tt
		}
	}
	return nil
}

// bbtToFrames converts a 1-based {bar, beat, tick} point to an absolute
// frame position: total_ticks = (bar-1)*ticks_per_bar + (beat-1)*ticks_per_beat + (tick-1),
// frames = round(total_ticks * samples_per_tick).
func bbtToFrames(p LoopPoint, ticksPerBar, ticksPerBeat uint64, samplesPerTick float64) uint64 {
	totalTicks := (p.Bar-1)*ticksPerBar + (p.Beat-1)*ticksPerBeat + (p.Tick - 1)
	return uint64(roundHalfAwayFromZero(float64(totalTicks) * samplesPerTick))
}
