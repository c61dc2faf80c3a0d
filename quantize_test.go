package engine

import "testing"

func TestQuantizeTickRoundsToNearestGrid(t *testing.T) {
	ticksPerBeat := uint64(120) // Sixteenth resolution

	// Sixteenth grid unit is ticksPerBeat/4 = 30.
	if got := QuantizeTick(40, QuantizeSixteenth, ticksPerBeat); got != 30 {
		t.Errorf("QuantizeTick(40) = %d, want 30", got)
	}
	if got := QuantizeTick(50, QuantizeSixteenth, ticksPerBeat); got != 60 {
		t.Errorf("QuantizeTick(50) = %d, want 60", got)
	}
}

func TestQuantizeTickForwardNeverMovesBackward(t *testing.T) {
	ticksPerBeat := uint64(120)

	if got := QuantizeTickForward(31, QuantizeSixteenth, ticksPerBeat); got != 60 {
		t.Errorf("QuantizeTickForward(31) = %d, want 60", got)
	}
	if got := QuantizeTickForward(30, QuantizeSixteenth, ticksPerBeat); got != 30 {
		t.Errorf("QuantizeTickForward(30) (already on grid) = %d, want 30", got)
	}
}

func TestQuantizeBarUsesFourBeats(t *testing.T) {
	ticksPerBeat := uint64(120)
	if got := QuantizeTickForward(1, QuantizeBar, ticksPerBeat); got != 480 {
		t.Errorf("QuantizeTickForward(1, Bar) = %d, want 480", got)
	}
}
