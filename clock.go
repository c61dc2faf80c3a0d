package engine

// TempoClock converts between frame time and musical tick time under a
// given tempo and time signature. It keeps an integer tick counter plus a
// fractional sample position so that ticks never drift across arbitrary
// buffer sizes, no matter how odd the buffer-size/tempo ratio is.
type TempoClock struct {
	bpm            float64
	sampleRate     float64
	ticksPerBeat   int
	timeSignature  TimeSignature
	samplesPerTick float64
	samplePosition float64
	tickCounter    uint64
	running        bool
}

// NewTempoClock builds a clock for the given tempo, sample rate and tick
// resolution. The clock starts stopped; call Start to run it.
func NewTempoClock(bpm float64, sampleRate float64, resolution TickResolution, ts TimeSignature) *TempoClock {
	ticksPerBeat := resolution.TicksPerBeat()
	return &TempoClock{
		bpm:            bpm,
		sampleRate:     sampleRate,
		ticksPerBeat:   ticksPerBeat,
		timeSignature:  ts,
		samplesPerTick: samplesPerTick(bpm, sampleRate, ticksPerBeat),
	}
}

func samplesPerTick(bpm, sampleRate float64, ticksPerBeat int) float64 {
	beatsPerSecond := bpm / 60.0
	secondsPerBeat := 1.0 / beatsPerSecond
	secondsPerTick := secondsPerBeat / float64(ticksPerBeat)
	return sampleRate * secondsPerTick
}

// SamplesPerTick returns the number of frames that make up one tick at the
// clock's current tempo and resolution.
func (c *TempoClock) SamplesPerTick() float64 { return c.samplesPerTick }

func (c *TempoClock) TicksPerBeat() int { return c.ticksPerBeat }

func (c *TempoClock) TicksPerBar() int { return c.timeSignature.ticksPerBar(c.ticksPerBeat) }

// AdvanceBy moves the clock forward by n frames. It is a no-op returning
// false when the clock isn't running. Otherwise it returns true iff at
// least one tick boundary was crossed.
func (c *TempoClock) AdvanceBy(n uint64) bool {
	if !c.running {
		return false
	}

	c.samplePosition += float64(n)
	emitted := false
	for c.samplePosition >= c.samplesPerTick {
		c.samplePosition -= c.samplesPerTick
		c.tickCounter++
		emitted = true
	}
	return emitted
}

// CurrentTick returns the monotonic tick counter.
func (c *TempoClock) CurrentTick() uint64 { return c.tickCounter }

// TickPhase returns the fractional progress into the current tick, in
// [0, 1).
func (c *TempoClock) TickPhase() float64 {
	return c.samplePosition / c.samplesPerTick
}

// BarBeatTick returns the 1-based bar/beat/tick triple for the clock's
// current tick counter.
func (c *TempoClock) BarBeatTick() (bar, beat, tick uint64) {
	ticksPerBar := uint64(c.TicksPerBar())
	ticksPerBeat := uint64(c.ticksPerBeat)

	bar = c.tickCounter/ticksPerBar + 1
	ticksIntoBar := c.tickCounter % ticksPerBar
	beat = ticksIntoBar/ticksPerBeat + 1
	tick = ticksIntoBar%ticksPerBeat + 1
	return
}

func (c *TempoClock) Start() { c.running = true }
func (c *TempoClock) Stop()  { c.running = false }

// Reset zeroes both the fractional sample position and the tick counter.
// It does not change the running flag.
func (c *TempoClock) Reset() {
	c.samplePosition = 0
	c.tickCounter = 0
}

func (c *TempoClock) Running() bool { return c.running }

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}
