// play is an interactive command-line player for the scheduler: it loads
// a WAV file onto a timeline track, opens a PortAudio stream, and exposes
// transport control from the keyboard while rendering a one-line status
// display.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/fatih/color"
	"github.com/gordonklaus/portaudio"

	"github.com/wavetable/engine"
	"github.com/wavetable/engine/cmd/internal/config"
)

const (
	escape     = "\x1b["
	hideCursor = escape + "?25l"
	showCursor = escape + "?25h"
	bufferSize = 512
)

var (
	flagHz     = flag.Int("hz", 44100, "output sample rate")
	flagBPM    = flag.Float64("bpm", 120, "tempo in beats per minute")
	flagReverb = flag.String("reverb", "none", "reverb send: none, light, medium, silly")
	flagGain   = flag.Float64("gain", 1.0, "initial track gain, 0-4")
	flagPan    = flag.Float64("pan", 0.0, "initial track pan, -1 (left) to 1 (right)")
)

var (
	white  = color.New(color.FgWhite).SprintfFunc()
	cyan   = color.New(color.FgCyan).SprintfFunc()
	green  = color.New(color.FgGreen).SprintfFunc()
	yellow = color.New(color.FgYellow).SprintfFunc()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("play: ")
	flag.Parse()

	if len(flag.Args()) == 0 {
		log.Fatal("missing WAV filename")
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

	const trackID engine.TrackID = 1
	timeline := engine.NewTimelineTrack(trackID, flag.Arg(0))
	clip := engine.NewAudioClip(
		1,
		engine.ClipTiming{StartFrame: 0, DurationFrames: uint64(source.Len())},
		engine.AudioClipKind{Source: source, Looping: true, Gain: float32(*flagGain), Pan: float32(*flagPan)},
		engine.Fade{LengthFrames: 0},
		engine.Fade{LengthFrames: 0},
	)
	if err := timeline.AddClip(clip); err != nil {
		log.Fatal(err)
	}
	sched.Schedule(timeline, 0)

	reverb, err := config.ReverbFromFlag(*flagReverb, *flagHz)
	if err != nil {
		log.Fatal(err)
	}

	if err := portaudio.Initialize(); err != nil {
		log.Fatal(fmt.Errorf("%w: %v", engine.ErrDeviceNotFound, err))
	}
	defer portaudio.Terminate()

	mixScratch := make([]engine.Frame, bufferSize)
	wetScratch := make([]engine.Frame, bufferSize)

	streamCB := func(out []int16) {
		n := len(out) / 2
		sched.Fill(mixScratch[:n], n)

		reverb.InputSamples(mixScratch[:n])
		got := reverb.GetAudio(wetScratch[:n])
		for i := got; i < n; i++ {
			wetScratch[i] = engine.Frame{}
		}

		engine.WriteInterleaved(wetScratch[:n], engine.SampleFormatInt16, out)
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, float64(*flagHz), bufferSize, streamCB)
	if err != nil {
		log.Fatal(fmt.Errorf("%w: %v", engine.ErrStreamBuildFailed, err))
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		log.Fatal(fmt.Errorf("%w: %v", engine.ErrStreamStartFailed, err))
	}
	defer stream.Stop()

	queue.Push(engine.PlayCmd{})

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT)
	go func() {
		<-sigch
		queue.Push(engine.StopCmd{})
		stream.Stop()
		fmt.Print(showCursor)
		os.Exit(0)
	}()

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor)

	done := make(chan struct{})
	go func() {
		keyboard.Listen(func(key keys.Key) (bool, error) {
			switch key.Code {
			case keys.CtrlC, keys.Escape:
				queue.Push(engine.StopCmd{})
				return true, nil
			case keys.Space:
				togglePlayPause(queue, sched)
			case keys.RuneKey:
				if len(key.Runes) > 0 && key.Runes[0] == 'r' {
					queue.Push(engine.RestartTrackCmd{TargetID: trackID})
				}
			}
			return false, nil
		})
		close(done)
	}()

	renderLoop(sched, done)
}

func togglePlayPause(queue *engine.CommandQueue, sched *engine.Scheduler) {
	if sched.State() == engine.TransportPlaying {
		queue.Push(engine.PauseCmd{})
	} else {
		queue.Push(engine.PlayCmd{})
	}
}

func renderLoop(sched *engine.Scheduler, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}

		pos := sched.Position()
		state := stateLabel(sched.State())
		fmt.Printf("\r%s %s %s %02d:%02d:%03d %s",
			white("frame"), cyan("%d", pos.CurrentFrame),
			green(state),
			pos.Bar, pos.Beat, pos.Tick,
			yellow(""))

		time.Sleep(50 * time.Millisecond)
	}
}

func stateLabel(s engine.TransportState) string {
	switch s {
	case engine.TransportPlaying:
		return "playing"
	case engine.TransportPaused:
		return "paused"
	default:
		return "stopped"
	}
}
