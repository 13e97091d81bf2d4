package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	fmod "github.com/soniccore/fmod-go"
)

func main() {
	var (
		libPath     = flag.String("lib", "libfmod.so", "Path to the FMOD library")
		soundFile   = flag.String("sound", "", "Sound file to play")
		stream      = flag.Bool("stream", false, "Stream instead of loading fully")
		loop        = flag.Bool("loop", false, "Loop playback")
		volume      = flag.Float64("volume", 1.0, "Playback volume (0..1)")
		verbose     = flag.Bool("v", false, "Verbose wrapper logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *soundFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: fmod-play -sound <file> [-lib path] [-stream] [-loop]")
		fmt.Fprintln(os.Stderr, "       fmod-play -sound <file> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
		fmod.SetLogger(log)
	}

	if err := fmod.Load(*libPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: load %s: %v\n", *libPath, err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*soundFile, *stream); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := play(*soundFile, *stream, *loop, float32(*volume)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(soundFile string, stream, loop bool, volume float32) error {
	sysHandle, err := fmod.NewSystem()
	if err != nil {
		return fmt.Errorf("create system: %w", err)
	}
	defer sysHandle.Close()
	sys := sysHandle.Resource()

	if err := sys.Init(64, fmod.InitNormal); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer sys.Close()

	version, err := sys.Version()
	if err != nil {
		return err
	}
	fmt.Printf("Engine: %s (built against %s)\n", version, fmod.HeaderVersion)

	mode := fmod.ModeDefault
	if loop {
		mode |= fmod.ModeLoopNormal
	}
	var sndHandle *fmod.Handle[*fmod.Sound]
	if stream {
		sndHandle, err = sys.CreateStream(soundFile, mode, nil)
	} else {
		sndHandle, err = sys.CreateSound(soundFile, mode, nil)
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", soundFile, err)
	}
	defer sndHandle.Close()
	snd := sndHandle.Resource()

	name, _ := snd.Name()
	length, err := snd.Length(fmod.TimeUnitMS)
	if err != nil {
		return err
	}
	fmt.Printf("Playing %s (%s)\n", name, (time.Duration(length) * time.Millisecond).Round(time.Second))

	ch, err := sys.PlaySound(snd, nil, false)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	if err := ch.SetVolume(volume); err != nil {
		return err
	}

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		if err := sys.Update(); err != nil {
			return err
		}
		playing, err := ch.IsPlaying()
		if err != nil {
			// The voice went away between the check and the call;
			// playback is over.
			if fmod.IsStale(err) {
				return nil
			}
			return err
		}
		if !playing {
			return nil
		}
	}
	return nil
}
