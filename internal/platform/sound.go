package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupported indicates a capability is not available on this system.
var ErrUnsupported = errors.New("unsupported on this platform")

const (
	speakerBuffer   = 100 * time.Millisecond
	resampleQuality = 4
	cueName         = "cue.wav"
)

// The speaker can only be initialised once per process; its sample rate is
// fixed by the first sound played.
var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// SoundPlayer plays the session-complete cue.
type SoundPlayer interface {
	Play(ctx context.Context) error
}

// NewSoundPlayer returns a player for soundFile, or for the WAV bytes in cue
// when soundFile is empty. WAV and MP3 files are supported.
func NewSoundPlayer(cue []byte, soundFile string) SoundPlayer {
	return &beepSoundPlayer{cue: cue, soundFile: strings.TrimSpace(soundFile)}
}

type beepSoundPlayer struct {
	cue       []byte
	soundFile string
}

// Play blocks until the sound finished or ctx is done.
func (player *beepSoundPlayer) Play(ctx context.Context) error {
	streamer, format, err := player.open()
	if err != nil {
		return err
	}
	defer streamer.Close()

	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		return err
	}

	var source beep.Streamer = streamer
	if format.SampleRate != rate {
		source = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}
	done := make(chan struct{})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(source, beep.Callback(func() {
		close(done)
	}))}
	speaker.Play(ctrl)

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()
		return fmt.Errorf("play sound: %w", ctx.Err())
	}
}

func (player *beepSoundPlayer) open() (beep.StreamSeekCloser, beep.Format, error) {
	if player.soundFile == "" {
		if len(player.cue) == 0 {
			return nil, beep.Format{}, ErrUnsupported
		}
		return decodeSound(cueName, nopSeekCloser{bytes.NewReader(player.cue)})
	}

	file, err := os.Open(player.soundFile)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open sound: %w", err)
	}
	streamer, format, err := decodeSound(player.soundFile, file)
	if err != nil {
		_ = file.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

func decodeSound(name string, source io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		streamer, format, err = wav.Decode(source)
	case ".mp3":
		streamer, format, err = mp3.Decode(source)
	default:
		return nil, beep.Format{}, fmt.Errorf("decode sound %s: unsupported format", name)
	}
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("decode sound %s: %w", name, err)
	}
	return streamer, format, nil
}

// initSpeaker opens the audio device. A machine without one reports
// ErrUnsupported so the failure is logged quietly.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerRate = rate
		if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
			speakerErr = fmt.Errorf("%w: init speaker: %v", ErrUnsupported, err)
		}
	})
	return speakerRate, speakerErr
}

type nopSeekCloser struct {
	*bytes.Reader
}

func (nopSeekCloser) Close() error {
	return nil
}
