// Package alarm plays a bounded alert clip when a countdown expires.
package alarm

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// Defaults mirror the alarm config keys.
const (
	DefaultSampleRate  = beep.SampleRate(48000)
	DefaultMaxDuration = 3 * time.Second
	DefaultFrequencyHz = 880.0

	resampleQuality = 4
)

var errNoDuration = errors.New("alarm max duration must be positive")

// Options configures an Alarm.
type Options struct {
	SampleRate  beep.SampleRate
	MaxDuration time.Duration
	FrequencyHz float64
	// Volume is relative to unity on a base-2 scale: -1 halves, 1 doubles.
	Volume float64
	// SoundFile is an optional WAV clip used instead of the generated tone.
	SoundFile string
	// Locker guards the mixer against the audio goroutine (speaker.Lock).
	Locker sync.Locker
}

// Alarm is a timer.AlarmSink feeding a beep mixer. Each expiration restarts
// the clip from the beginning, cut off after MaxDuration.
type Alarm struct {
	mu      sync.Mutex
	lock    sync.Locker
	mixer   *beep.Mixer
	current *beep.Ctrl

	rate        beep.SampleRate
	maxDuration time.Duration
	volume      float64
	clip        func() beep.Streamer
	plays       int
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// New builds an alarm. A SoundFile that cannot be decoded is an error.
func New(opts Options) (*Alarm, error) {
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.MaxDuration == 0 {
		opts.MaxDuration = DefaultMaxDuration
	}
	if opts.MaxDuration < 0 {
		return nil, errNoDuration
	}
	if opts.FrequencyHz <= 0 {
		opts.FrequencyHz = DefaultFrequencyHz
	}
	if opts.Locker == nil {
		opts.Locker = noopLocker{}
	}

	a := &Alarm{
		lock:        opts.Locker,
		mixer:       &beep.Mixer{},
		rate:        opts.SampleRate,
		maxDuration: opts.MaxDuration,
		volume:      opts.Volume,
	}

	if opts.SoundFile == "" {
		freq := opts.FrequencyHz
		a.clip = func() beep.Streamer { return newPulseTone(a.rate, freq) }
		return a, nil
	}

	buf, err := loadWAV(opts.SoundFile)
	if err != nil {
		return nil, err
	}
	a.clip = func() beep.Streamer {
		s := beep.Streamer(buf.Streamer(0, buf.Len()))
		if buf.Format().SampleRate != a.rate {
			s = beep.Resample(resampleQuality, buf.Format().SampleRate, a.rate, s)
		}
		return s
	}
	return a, nil
}

// loadWAV decodes a whole WAV file into memory.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alarm sound %q: %w", path, err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode alarm sound %q: %w", path, err)
	}
	defer func() { _ = streamer.Close() }()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	return buf, nil
}

// Expired restarts the clip.
func (a *Alarm) Expired() {
	a.mu.Lock()
	defer a.mu.Unlock()

	bounded := beep.Take(a.rate.N(a.maxDuration), a.clip())
	var s beep.Streamer = bounded
	if a.volume != 0 {
		s = &effects.Volume{Streamer: bounded, Base: 2, Volume: a.volume}
	}
	ctrl := &beep.Ctrl{Streamer: s}

	a.lock.Lock()
	a.stopLocked()
	a.mixer.Add(ctrl)
	a.lock.Unlock()

	a.current = ctrl
	a.plays++
}

// Stop silences a clip in progress.
func (a *Alarm) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.lock.Lock()
	a.stopLocked()
	a.lock.Unlock()
}

// stopLocked detaches the current clip; a Ctrl with no streamer reports
// done and the mixer drops it. Caller holds both locks.
func (a *Alarm) stopLocked() {
	if a.current != nil {
		a.current.Streamer = nil
		a.current = nil
	}
}

// Streamer is the mixer output to hand to the speaker.
func (a *Alarm) Streamer() beep.Streamer {
	return a.mixer
}

// SampleRate is the mixer rate.
func (a *Alarm) SampleRate() beep.SampleRate {
	return a.rate
}

// Plays counts expirations handled.
func (a *Alarm) Plays() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.plays
}
