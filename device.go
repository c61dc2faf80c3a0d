package engine

// SampleFormat names a device's native sample encoding, mirroring the
// reference surface's f32/i16/u16 trio.
type SampleFormat int

const (
	SampleFormatFloat32 SampleFormat = iota
	SampleFormatInt16
	SampleFormatUint16
)

// WriteInterleaved converts frames to native format and writes them
// interleaved (L, R, L, R, ...) into out, which must have length
// len(frames)*2. This is the boundary between the scheduler's float
// stereo output and whatever the device driver expects; it performs
// standard saturating conversions and never allocates.
func WriteInterleaved(frames []Frame, format SampleFormat, out interface{}) {
	switch format {
	case SampleFormatFloat32:
		dst := out.([]float32)
		for i, f := range frames {
			dst[i*2] = f.L
			dst[i*2+1] = f.R
		}
	case SampleFormatInt16:
		dst := out.([]int16)
		for i, f := range frames {
			dst[i*2] = floatToInt16(f.L)
			dst[i*2+1] = floatToInt16(f.R)
		}
	case SampleFormatUint16:
		dst := out.([]uint16)
		for i, f := range frames {
			dst[i*2] = floatToUint16(f.L)
			dst[i*2+1] = floatToUint16(f.R)
		}
	}
}

func floatToInt16(v float32) int16 {
	v = clampF32(v, -1, 1)
	scaled := v * 32767.0
	return int16(scaled)
}

func floatToUint16(v float32) uint16 {
	v = clampF32(v, -1, 1)
	scaled := (v + 1) * 0.5 * 65535.0
	return uint16(scaled)
}
