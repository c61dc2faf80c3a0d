package engine

// Frame is one stereo sample pair at the project sample rate. It is the
// atomic unit of time throughout the engine.
type Frame struct {
	L, R float32
}

// clearFrames zeroes buf in place. Used on the realtime path instead of
// reallocating a silence buffer every callback.
func clearFrames(buf []Frame) {
	for i := range buf {
		buf[i] = Frame{}
	}
}

func mixInto(dst []Frame, src []Frame) {
	mixAccumulate(dst, src)
}
