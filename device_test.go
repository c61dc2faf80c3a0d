package engine

import "testing"

func TestWriteInterleavedFloat32(t *testing.T) {
	frames := []Frame{{L: 0.5, R: -0.5}, {L: 1, R: -1}}
	out := make([]float32, 4)
	WriteInterleaved(frames, SampleFormatFloat32, out)

	want := []float32{0.5, -0.5, 1, -1}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestWriteInterleavedInt16Saturates(t *testing.T) {
	frames := []Frame{{L: 2.0, R: -2.0}} // out of [-1,1], must clamp before scaling
	out := make([]int16, 2)
	WriteInterleaved(frames, SampleFormatInt16, out)

	if out[0] != 32767 {
		t.Errorf("out[0] = %d, want 32767 (clamped)", out[0])
	}
	if out[1] != -32767 {
		t.Errorf("out[1] = %d, want -32767 (clamped)", out[1])
	}
}

func TestWriteInterleavedUint16Centered(t *testing.T) {
	frames := []Frame{{L: 0, R: 1}}
	out := make([]uint16, 2)
	WriteInterleaved(frames, SampleFormatUint16, out)

	if out[0] < 32000 || out[0] > 33000 {
		t.Errorf("out[0] (center) = %d, want ~32767", out[0])
	}
	if out[1] != 65535 {
		t.Errorf("out[1] (full scale) = %d, want 65535", out[1])
	}
}
