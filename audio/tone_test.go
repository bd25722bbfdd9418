package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) int {
	var buf [512][2]float64
	total := 0
	for {
		n, ok := s.Stream(buf[:])
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][1] < -1 || buf[i][1] > 1 {
				return -1
			}
		}
		if !ok {
			return total
		}
	}
}

func TestToneDuration(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name string
		d    time.Duration
	}{
		{"Catch length", 50 * time.Millisecond},
		{"Miss length", 120 * time.Millisecond},
		{"One second", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTone(440, tt.d, rate)
			got := drain(s)
			if got == -1 {
				t.Fatal("Expected every sample within [-1,1]")
			}
			if want := rate.N(tt.d); got != want {
				t.Errorf("Expected %d samples, got %d", want, got)
			}
		})
	}
}

func TestToneDrainedStaysDrained(t *testing.T) {
	s := NewTone(880, 10*time.Millisecond, beep.SampleRate(44100))
	drain(s)

	var buf [64][2]float64
	n, ok := s.Stream(buf[:])
	if n != 0 || ok {
		t.Errorf("Expected a drained tone to stream nothing, got n=%d ok=%v", n, ok)
	}
}

func TestToneStereoSymmetry(t *testing.T) {
	s := NewTone(440, 5*time.Millisecond, beep.SampleRate(44100))
	var buf [128][2]float64
	n, _ := s.Stream(buf[:])
	if n == 0 {
		t.Fatal("Expected samples from a fresh tone")
	}
	for i := 0; i < n; i++ {
		if buf[i][0] != buf[i][1] {
			t.Fatalf("Sample %d: expected identical channels, got %v and %v", i, buf[i][0], buf[i][1])
		}
	}
}
