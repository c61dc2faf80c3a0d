package engine

import "testing"

func newTestScheduler(maxFrames int) (*Scheduler, *CommandQueue) {
	queue := NewCommandQueue(DefaultCommandQueueCapacity)
	sched := NewScheduler(44100, 120, ResolutionSixteenth, DefaultTimeSignature, maxFrames, queue)
	return sched, queue
}

func TestFillWhileStoppedIsSilent(t *testing.T) {
	sched, _ := newTestScheduler(16)
	buf := make([]Frame, 4)
	sched.Fill(buf, 4)
	for _, f := range buf {
		if f != (Frame{}) {
			t.Errorf("expected silence while stopped, got %+v", f)
		}
	}
	if sched.CurrentFrame() != 0 {
		t.Error("current frame should not advance while stopped")
	}
}

func TestScheduleAtZeroActivatesImmediately(t *testing.T) {
	sched, queue := newTestScheduler(16)
	queue.Push(PlayCmd{})
	sched.Schedule(NewConstantTrack(1, "c", 0.1, 0.1), 0)

	buf := make([]Frame, 4)
	sched.Fill(buf, 4)

	for i, f := range buf {
		if f.L != 0.1 || f.R != 0.1 {
			t.Errorf("frame %d = %+v, want (0.1,0.1)", i, f)
		}
	}
}

func TestFutureScheduleSilencesThenActivates(t *testing.T) {
	sched, queue := newTestScheduler(100)
	queue.Push(PlayCmd{})
	sched.Schedule(NewConstantTrack(1, "c", 1, 1), 100)

	buf := make([]Frame, 10)
	sched.Fill(buf, 10)
	for _, f := range buf {
		if f != (Frame{}) {
			t.Errorf("expected silence before activation frame, got %+v", f)
		}
	}

	// This fill covers frames 10..99; activation frame 100 isn't reached
	// until the next fill, so the whole buffer is still silent.
	buf90 := make([]Frame, 90)
	sched.Fill(buf90, 90)
	for i, f := range buf90 {
		if f != (Frame{}) {
			t.Errorf("frame %d should still be silent, got %+v", i, f)
		}
	}

	buf1 := make([]Frame, 1)
	sched.Fill(buf1, 1)
	if buf1[0].L != 1 || buf1[0].R != 1 {
		t.Errorf("frame at activation should be (1,1), got %+v", buf1[0])
	}
}

func TestStopResetsTransportAndFrame(t *testing.T) {
	sched, queue := newTestScheduler(512)
	queue.Push(PlayCmd{})
	sched.Schedule(NewConstantTrack(1, "c", 1, 1), 0)

	buf := make([]Frame, 512)
	sched.Fill(buf, 512)
	if sched.CurrentFrame() == 0 {
		t.Fatal("expected current frame to advance after playing")
	}

	queue.Push(StopCmd{})
	sched.Fill(buf, 512)

	if sched.CurrentFrame() != 0 {
		t.Errorf("CurrentFrame() after Stop = %d, want 0", sched.CurrentFrame())
	}
	for _, f := range buf {
		if f != (Frame{}) {
			t.Errorf("expected silence on the Stop buffer, got %+v", f)
		}
	}
}

func TestPauseDoesNotAdvanceFrame(t *testing.T) {
	sched, queue := newTestScheduler(512)
	queue.Push(PlayCmd{})
	sched.Schedule(NewConstantTrack(1, "c", 1, 1), 0)

	buf := make([]Frame, 100)
	sched.Fill(buf, 100)
	frameAfterPlay := sched.CurrentFrame()

	queue.Push(PauseCmd{})
	sched.Fill(buf, 100)

	if sched.CurrentFrame() != frameAfterPlay {
		t.Errorf("CurrentFrame() changed during Pause: before=%d after=%d", frameAfterPlay, sched.CurrentFrame())
	}
	for _, f := range buf {
		if f != (Frame{}) {
			t.Errorf("expected silence while paused, got %+v", f)
		}
	}
}

func TestLoopWrapsFrame(t *testing.T) {
	sched, queue := newTestScheduler(22051)
	queue.Push(SetLoopCmd{
		Enabled: true,
		Start:   LoopPoint{Bar: 1, Beat: 1, Tick: 1},
		End:     LoopPoint{Bar: 1, Beat: 2, Tick: 1},
	})
	queue.Push(PlayCmd{})

	buf := make([]Frame, 22051)
	sched.Fill(buf, 22051)

	if sched.CurrentFrame() != 0 {
		t.Errorf("CurrentFrame() after loop wrap = %d, want 0", sched.CurrentFrame())
	}
}

func TestStopTrackLeavesPendingUntouched(t *testing.T) {
	sched, queue := newTestScheduler(16)
	queue.Push(PlayCmd{})
	sched.Schedule(NewConstantTrack(5, "c", 1, 1), 1000)
	queue.Push(StopTrackCmd{TargetID: 5})

	buf := make([]Frame, 4)
	sched.Fill(buf, 4) // drains the StopTrack command; track is still pending

	if sched.pending.Len() != 1 {
		t.Errorf("pending heap should still hold the track, len=%d", sched.pending.Len())
	}
}

func TestParamChangeForwardsToMatchingTrack(t *testing.T) {
	sched, queue := newTestScheduler(16)
	queue.Push(PlayCmd{})
	sched.Schedule(NewConstantTrack(7, "c", 1, 1), 0)

	buf := make([]Frame, 4)
	sched.Fill(buf, 4) // activate the track

	queue.Push(ParamChangeCmd{TargetID: 7, Change: ParamChange{Kind: ParamSetGain, Value: 0.5}})
	sched.Fill(buf, 4)

	for _, f := range buf {
		if f.L != 0.5 {
			t.Errorf("expected gain change to take effect, got L=%v", f.L)
		}
	}
}
