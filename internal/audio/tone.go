package audio

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveTriangle Wave = iota
	WaveSquare
	WaveSine
)

// release is the fade at the end of every note, to avoid clicks.
const release = 15 * time.Millisecond

// tone streams a single note. A zero frequency is a rest.
type tone struct {
	freq    float64
	wave    Wave
	rate    beep.SampleRate
	pos     int
	total   int
	release int
}

// NewTone creates a streamer playing freq for d.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		total:   rate.N(d),
		release: min(rate.N(release), rate.N(d)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}

	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var sample float64
		if t.freq > 0 {
			phase := math.Mod(t.freq*float64(t.pos)/float64(t.rate), 1)
			sample = shape(t.wave, phase)

			if left := t.total - t.pos; left < t.release {
				sample *= float64(left) / float64(t.release)
			}
		}

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}

func shape(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	default:
		// Triangle: -1 -> 1 -> -1 over one period.
		return 4*math.Abs(phase-0.5) - 1
	}
}

var semitones = map[byte]int{'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11}

// NoteFreq returns the equal-tempered frequency of a note name such as
// "c3", "g#2" or "eb4" (A4 = 440 Hz). "r" is a rest and returns 0.
func NoteFreq(name string) (float64, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "r" {
		return 0, nil
	}
	if len(name) < 2 {
		return 0, fmt.Errorf("audio: bad note %q", name)
	}

	semi, ok := semitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("audio: bad note %q", name)
	}
	rest := name[1:]
	switch rest[0] {
	case '#':
		semi++
		rest = rest[1:]
	case 'b':
		semi--
		rest = rest[1:]
	}
	if len(rest) != 1 || rest[0] < '0' || rest[0] > '9' {
		return 0, fmt.Errorf("audio: bad octave in note %q", name)
	}

	midi := 12*(int(rest[0]-'0')+1) + semi
	return 440 * math.Pow(2, float64(midi-69)/12), nil
}

// Melody plays space-separated notes back to back, each lasting step.
func Melody(notes string, step time.Duration, wave Wave, rate beep.SampleRate) (beep.Streamer, error) {
	fields := strings.Fields(notes)
	if len(fields) == 0 {
		return nil, fmt.Errorf("audio: empty melody")
	}

	parts := make([]beep.Streamer, 0, len(fields))
	for _, f := range fields {
		freq, err := NoteFreq(f)
		if err != nil {
			return nil, err
		}
		parts = append(parts, NewTone(freq, step, wave, rate))
	}
	return beep.Seq(parts...), nil
}

// newVolume scales s linearly; zero or less is silence.
// math.Log2(0) is -Inf, so silence is a flag rather than a gain.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Clear jingle: rising C major arpeggio on a triangle wave.
const (
	clearNotes = "c3 e3 g3 c4"
	clearStep  = 100 * time.Millisecond
)

// Maze theme: three slow voices in a dark minor mood.
const (
	themeStep   = 150 * time.Millisecond
	themeLead   = "c2 d2 e2 g2 e2 d2 c2 d2"
	themeBass   = "c1 c1 g1 g1 c1 c1 g1 g1"
	themeAccent = "r r g2 r r g2 r r"
)

// ClearJingle builds the sound played when a maze is cleared.
func ClearJingle(rate beep.SampleRate, vol float64) beep.Streamer {
	s, err := Melody(clearNotes, clearStep, WaveTriangle, rate)
	if err != nil {
		panic(err) // constant melody
	}
	return newVolume(s, vol)
}

// MazeTheme builds one pass of the background loop.
func MazeTheme(rate beep.SampleRate, vol float64) beep.Streamer {
	voices := []struct {
		notes string
		wave  Wave
		gain  float64
	}{
		{themeLead, WaveSquare, 0.18},
		{themeBass, WaveTriangle, 0.35},
		{themeAccent, WaveSine, 0.15},
	}

	mixed := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		s, err := Melody(v.notes, themeStep, v.wave, rate)
		if err != nil {
			panic(err) // constant melody
		}
		mixed = append(mixed, newVolume(s, v.gain))
	}
	return newVolume(beep.Mix(mixed...), vol)
}
