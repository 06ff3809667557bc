package audio

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestStretchOutputLength(t *testing.T) {
	cases := []struct {
		name string
		n    int
		rate float64
	}{
		{"identity", 16000, 1.0},
		{"slow down", 16000, 0.8},
		{"speed up", 16000, 1.25},
		{"extreme slow", 8000, 0.25},
		{"extreme fast", 8000, 4.0},
		{"short input", 100, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := sineWave(440, 16000, tc.n)

			out, err := Stretch(input, tc.rate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want := int(math.Round(float64(tc.n) / tc.rate))
			if len(out) != want {
				t.Fatalf("len=%d, want %d", len(out), want)
			}

			for i, v := range out {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("index %d: non-finite value %v", i, v)
				}
			}
		})
	}
}

func TestStretchIdentityPreservesSignal(t *testing.T) {
	input := sineWave(440, 16000, 4096)

	out, err := Stretch(input, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range input {
		if math.Abs(out[i]-input[i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, out[i], input[i])
		}
	}
}

func TestStretchPreservesEnergyScale(t *testing.T) {
	input := sineWave(440, 16000, 16000)

	out, err := Stretch(input, 0.8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Interior samples of a stretched steady sine should keep roughly the
	// input RMS; window edges are excluded.
	interior := out[4096 : len(out)-4096]

	sum := 0.0
	for _, v := range interior {
		sum += v * v
	}

	got := math.Sqrt(sum / float64(len(interior)))

	want := 1 / math.Sqrt2
	if math.Abs(got-want) > 0.1 {
		t.Fatalf("interior RMS=%v, want about %v", got, want)
	}
}

func TestStretchErrors(t *testing.T) {
	if _, err := Stretch(nil, 1.0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}

	for _, rate := range []float64{0, 0.1, 5, math.NaN()} {
		if _, err := Stretch([]float64{1, 2}, rate); err == nil {
			t.Fatalf("rate %v: expected error", rate)
		}
	}
}

func TestTimeStretchTrimKeepsLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	input := sineWave(220, 16000, 12000)

	for range 10 {
		out, err := TimeStretch(rng, input, 0.8, 1.2, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out) != len(input) {
			t.Fatalf("len=%d, want %d", len(out), len(input))
		}
	}
}

func TestTimeStretchFixedRate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	input := sineWave(220, 16000, 8000)

	out, err := TimeStretch(rng, input, 0.5, 0.5, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 16000 {
		t.Fatalf("len=%d, want 16000", len(out))
	}
}

func TestTimeStretchReproducible(t *testing.T) {
	input := sineWave(330, 16000, 8000)

	a, err := TimeStretch(rand.New(rand.NewSource(42)), input, 0.8, 1.2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := TimeStretch(rand.New(rand.NewSource(42)), input, 0.8, 1.2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestTimeStretchErrors(t *testing.T) {
	if _, err := TimeStretch(nil, nil, 0.8, 1.2, true); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}

	if _, err := TimeStretch(nil, []float64{1}, 1.2, 0.8, true); err == nil {
		t.Fatal("inverted bounds: expected error")
	}
}

func sineWave(freqHz, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}

	return out
}
