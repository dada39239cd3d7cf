package alarm

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	pulseOn     = 250 * time.Millisecond
	pulsePeriod = 500 * time.Millisecond
	pulseFade   = 5 * time.Millisecond
	amplitude   = 0.4
)

// pulseTone generates a repeating beep-beep: a sine burst for pulseOn out of
// every pulsePeriod. It never ends on its own; callers bound it with Take.
type pulseTone struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	period int
	on     int
	fade   int
}

func newPulseTone(sr beep.SampleRate, freq float64) *pulseTone {
	return &pulseTone{
		sr:     sr,
		freq:   freq,
		period: sr.N(pulsePeriod),
		on:     sr.N(pulseOn),
		fade:   max(sr.N(pulseFade), 1),
	}
}

func (g *pulseTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		phase := g.pos % g.period

		sample := 0.0
		if phase < g.on {
			t := float64(g.pos) / float64(g.sr)
			// Linear ramps at both edges of the burst avoid clicks.
			env := math.Min(1, math.Min(float64(phase)/float64(g.fade), float64(g.on-phase)/float64(g.fade)))
			sample = amplitude * env * math.Sin(2*math.Pi*g.freq*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *pulseTone) Err() error {
	return nil
}
