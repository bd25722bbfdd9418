package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a fixed-duration sine streamer with a linear fade-out so short
// cues end without a click.
type tone struct {
	freq     float64
	phase    float64
	total    int
	position int
	rate     beep.SampleRate
}

// NewTone creates a sine tone streamer at the given frequency and duration.
func NewTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(d),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, false
		}

		fade := 1.0 - float64(t.position)/float64(t.total)
		val := math.Sin(2*math.Pi*t.phase) * fade

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
