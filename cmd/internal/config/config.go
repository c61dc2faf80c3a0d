// Package config builds command-line options for the cmd tools: reverb
// send presets layered on top of the engine's reverb package. cmd/play
// imports it; cmd/bounce does not.
package config

import (
	"fmt"

	"github.com/wavetable/engine/internal/reverb"
)

type reverbPreset struct {
	decay, damping, mix float32
}

var reverbPresets = map[string]reverbPreset{
	"none":   {0, 0, 0},
	"light":  {0.5, 0.5, 0.2},
	"medium": {0.6, 0.4, 0.35},
	"silly":  {0.85, 0.1, 0.7},
}

// ReverbBufferFrames sizes the internal ring buffer used by the streaming
// reverb effect.
const ReverbBufferFrames = 10 * 1024

// ReverbFromFlag builds a reverb.Reverber from a command-line preset name
// and the engine's sample rate.
func ReverbFromFlag(preset string, sampleRate int) (reverb.Reverber, error) {
	p, ok := reverbPresets[preset]
	if !ok {
		return nil, fmt.Errorf("unrecognized reverb setting %q", preset)
	}
	if p.mix == 0 {
		return reverb.NewPassThrough(ReverbBufferFrames), nil
	}
	return reverb.NewStereoReverb(ReverbBufferFrames, p.decay, p.damping, p.mix, sampleRate), nil
}
