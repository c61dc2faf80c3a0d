// bounce renders a WAV-backed timeline to another WAV file offline,
// running the scheduler's Fill loop without an audio device in the loop.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/wavetable/engine"
	"github.com/wavetable/engine/wav"
)

const bufferSize = 2048

var (
	flagHz     = flag.Int("hz", 44100, "output sample rate")
	flagBPM    = flag.Float64("bpm", 120, "tempo in beats per minute")
	flagFrames = flag.Uint64("frames", 44100*10, "total frames to render")
	flagOut    = flag.String("wav", "", "output WAV path (required)")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bounce: ")
	flag.Parse()

	if len(flag.Args()) == 0 {
		log.Fatal("missing WAV filename")
	}
	if *flagOut == "" {
		log.Fatal("missing -wav output path")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	source, err := engine.DecodeWAV(data)
	if err != nil {
		log.Fatal(err)
	}

	queue := engine.NewCommandQueue(engine.DefaultCommandQueueCapacity)
	sched := engine.NewScheduler(float64(*flagHz), *flagBPM, engine.ResolutionSixteenth, engine.DefaultTimeSignature, bufferSize, queue)

	timeline := engine.NewTimelineTrack(1, flag.Arg(0))
	clip := engine.NewAudioClip(
		1,
		engine.ClipTiming{StartFrame: 0, DurationFrames: uint64(source.Len())},
		engine.AudioClipKind{Source: source, Looping: false, Gain: 1.0, Pan: 0.0},
		engine.Fade{LengthFrames: 0},
		engine.Fade{LengthFrames: 0},
	)
	if err := timeline.AddClip(clip); err != nil {
		log.Fatal(err)
	}
	sched.Schedule(timeline, 0)
	queue.Push(engine.PlayCmd{})

	outF, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer outF.Close()

	wavW, err := wav.NewWriter(outF, *flagHz)
	if err != nil {
		log.Fatal(err)
	}
	defer wavW.Finish()

	scratch := make([]engine.Frame, bufferSize)
	pcm := make([]int16, bufferSize*2)

	var rendered uint64
	for rendered < *flagFrames {
		n := bufferSize
		if remaining := *flagFrames - rendered; uint64(n) > remaining {
			n = int(remaining)
		}

		sched.Fill(scratch[:n], n)
		engine.WriteInterleaved(scratch[:n], engine.SampleFormatInt16, pcm[:n*2])
		if err := wavW.WriteFrame(pcm[:n*2]); err != nil {
			log.Fatal(err)
		}

		rendered += uint64(n)
	}
}
