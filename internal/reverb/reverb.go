// Package reverb implements a small Schroeder-style reverberator (parallel
// comb filters feeding a series of allpass filters) as a stereo send effect
// for the playback engine's command-line tools, applied to the scheduler's
// mixed output before it reaches the device.
package reverb

import "github.com/wavetable/engine"

// Reverber is the streaming capability cmd/play consumes: push
// dry frames in, pull wet frames out, at whatever pace the caller has them.
type Reverber interface {
	InputSamples(in []engine.Frame) int
	GetAudio(out []engine.Frame) int
}

// combDelayLengthsMs are tuned the way freeverb-style designs pick theirs:
// mutually prime-ish lengths so the parallel combs don't reinforce the same
// frequencies.
var combDelayLengthsMs = []float32{29.7, 37.1, 41.1, 43.7}

// allpassDelayLengthsMs are shorter and in series, diffusing the comb output
// into a denser, less metallic tail.
var allpassDelayLengthsMs = []float32{5.0, 1.7}

const allpassFeedback = 0.5

type allpass struct {
	buf []float32
	pos int
}

func newAllpass(delay int) *allpass {
	if delay < 1 {
		delay = 1
	}
	return &allpass{buf: make([]float32, delay)}
}

// process runs one sample through the allpass section: y = -x + buf[pos];
// buf[pos] = x + feedback*buf[pos] (the value read before the write), the
// freeverb form of the Schroeder allpass used for diffusion without
// coloring the spectrum.
func (a *allpass) process(x float32) float32 {
	bufOut := a.buf[a.pos]
	y := -x + bufOut
	a.buf[a.pos] = x + allpassFeedback*bufOut
	a.pos++
	if a.pos >= len(a.buf) {
		a.pos = 0
	}
	return y
}

type combFilter struct {
	buf         []float32
	pos         int
	decay       float32
	damping     float32
	filterState float32
}

func newCombFilter(delay int, decay, damping float32) *combFilter {
	if delay < 1 {
		delay = 1
	}
	return &combFilter{buf: make([]float32, delay), decay: decay, damping: damping}
}

// process implements a damped feedback comb: a one-pole lowpass in the
// feedback path rolls off high frequencies on each round trip, the way a
// real room's air absorption does.
func (c *combFilter) process(x float32) float32 {
	out := c.buf[c.pos]
	c.filterState = out*(1-c.damping) + c.filterState*c.damping
	c.buf[c.pos] = x + c.filterState*c.decay
	c.pos++
	if c.pos >= len(c.buf) {
		c.pos = 0
	}
	return out
}

// channelReverb is one L or R signal chain: N parallel combs summed, then
// fed through a short series of allpasses.
type channelReverb struct {
	combs    []*combFilter
	allpasss []*allpass
}

func newChannelReverb(decay, damping float32, sampleRate int) *channelReverb {
	cr := &channelReverb{}
	for _, ms := range combDelayLengthsMs {
		cr.combs = append(cr.combs, newCombFilter(msToSamples(ms, sampleRate), decay, damping))
	}
	for _, ms := range allpassDelayLengthsMs {
		cr.allpasss = append(cr.allpasss, newAllpass(msToSamples(ms, sampleRate)))
	}
	return cr
}

func (cr *channelReverb) process(x float32) float32 {
	var sum float32
	for _, c := range cr.combs {
		sum += c.process(x)
	}
	sum /= float32(len(cr.combs))
	for _, a := range cr.allpasss {
		sum = a.process(sum)
	}
	return sum
}

func msToSamples(ms float32, sampleRate int) int {
	return int(ms * float32(sampleRate) / 1000.0)
}

// StereoReverb is a bounded-memory, streaming Reverber: a circular buffer
// holds wet output until GetAudio drains it, so InputSamples never grows
// memory without bound even if the caller falls behind.
type StereoReverb struct {
	left, right *channelReverb
	mix         float32

	buf               []engine.Frame
	readPos, writePos int
	n                 int
}

// NewStereoReverb builds a reverb with a bufferSize-frame internal ring
// buffer, decay and damping in [0,1) shaping the comb filters, mix in
// [0,1] blending dry/wet (0 = fully dry, 1 = fully wet), at sampleRate.
func NewStereoReverb(bufferSize int, decay, damping, mix float32, sampleRate int) *StereoReverb {
	return &StereoReverb{
		left:    newChannelReverb(decay, damping, sampleRate),
		right:   newChannelReverb(decay, damping, sampleRate),
		mix:     mix,
		buf:     make([]engine.Frame, bufferSize),
	}
}

// InputSamples processes as much of in as fits in the ring buffer and
// returns the number of frames consumed. Callers should drain with
// GetAudio and retry any unconsumed remainder.
func (r *StereoReverb) InputSamples(in []engine.Frame) int {
	free := len(r.buf) - r.n
	n := len(in)
	if n > free {
		n = free
	}
	if n == 0 {
		return 0
	}

	for i := 0; i < n; i++ {
		wetL := r.left.process(in[i].L)
		wetR := r.right.process(in[i].R)
		out := engine.Frame{
			L: in[i].L*(1-r.mix) + wetL*r.mix,
			R: in[i].R*(1-r.mix) + wetR*r.mix,
		}
		r.buf[r.writePos] = out
		r.writePos++
		if r.writePos >= len(r.buf) {
			r.writePos = 0
		}
	}
	r.n += n
	return n
}

// GetAudio copies up to len(out) processed frames into out, returning the
// count actually copied.
func (r *StereoReverb) GetAudio(out []engine.Frame) int {
	n := len(out)
	if n > r.n {
		n = r.n
	}
	if n == 0 {
		return 0
	}

	if r.readPos+n > len(r.buf) {
		n1 := len(r.buf) - r.readPos
		n2 := n - n1
		copy(out[:n1], r.buf[r.readPos:])
		copy(out[n1:n], r.buf[:n2])
		r.readPos = n2
	} else {
		copy(out[:n], r.buf[r.readPos:r.readPos+n])
		r.readPos += n
	}
	r.n -= n
	return n
}

// PassThrough is a Reverber that leaves audio untouched, for callers that
// want the same streaming interface with the effect disabled.
type PassThrough struct {
	buf               []engine.Frame
	readPos, writePos int
	n                 int
}

// NewPassThrough builds a no-op Reverber with a bufferSize-frame ring
// buffer.
func NewPassThrough(bufferSize int) *PassThrough {
	return &PassThrough{buf: make([]engine.Frame, bufferSize)}
}

func (p *PassThrough) InputSamples(in []engine.Frame) int {
	free := len(p.buf) - p.n
	n := len(in)
	if n > free {
		n = free
	}
	if n == 0 {
		return 0
	}

	if p.writePos+n > len(p.buf) {
		n1 := len(p.buf) - p.writePos
		n2 := n - n1
		copy(p.buf[p.writePos:], in[:n1])
		copy(p.buf[:n2], in[n1:n1+n2])
		p.writePos = n2
	} else {
		copy(p.buf[p.writePos:p.writePos+n], in[:n])
		p.writePos += n
	}
	p.n += n
	return n
}

func (p *PassThrough) GetAudio(out []engine.Frame) int {
	n := len(out)
	if n > p.n {
		n = p.n
	}
	if n == 0 {
		return 0
	}

	if p.readPos+n > len(p.buf) {
		n1 := len(p.buf) - p.readPos
		n2 := n - n1
		copy(out[:n1], p.buf[p.readPos:])
		copy(out[n1:n], p.buf[:n2])
		p.readPos = n2
	} else {
		copy(out[:n], p.buf[p.readPos:p.readPos+n])
		p.readPos += n
	}
	p.n -= n
	return n
}

var _ Reverber = (*StereoReverb)(nil)
var _ Reverber = (*PassThrough)(nil)
