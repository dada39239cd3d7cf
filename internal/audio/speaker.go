// Package audio connects the alarm mixer to the system speaker.
package audio

import (
	"time"

	"timeboard/internal/alarm"

	"github.com/gopxl/beep/speaker"
)

const bufferDuration = 100 * time.Millisecond

// Lock guards mixers played by the speaker; hand it to alarm.Options.Locker.
type Lock struct{}

func (Lock) Lock()   { speaker.Lock() }
func (Lock) Unlock() { speaker.Unlock() }

// Start opens the speaker at the alarm's rate and plays its mixer. The
// returned func closes the device.
func Start(a *alarm.Alarm) (func(), error) {
	sr := a.SampleRate()
	if err := speaker.Init(sr, sr.N(bufferDuration)); err != nil {
		return func() {}, err
	}
	speaker.Play(a.Streamer())
	return speaker.Close, nil
}
