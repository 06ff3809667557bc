package augment

import "testing"

func TestKindStringRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		name := k.String()

		parsed, err := ParseKind(name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}

		if parsed != k {
			t.Fatalf("%s: parsed to %v, want %v", name, parsed, k)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	if got := Kind(99).String(); got != "augment.Kind(99)" {
		t.Fatalf("got %q", got)
	}
}

func TestParseKindUnknown(t *testing.T) {
	if _, err := ParseKind("reverb"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestKindDomain(t *testing.T) {
	cases := []struct {
		kind Kind
		want Domain
	}{
		{TimeStretch, DomainWaveform},
		{PitchShift, DomainWaveform},
		{BandPass, DomainWaveform},
		{ColorNoise, DomainWaveform},
		{TimeInversion, DomainWaveform},
		{FreqMask, DomainFeature},
		{TimeMask, DomainFeature},
		{RandomErase, DomainFeature},
		{RandomPixels, DomainFeature},
	}

	for _, tc := range cases {
		if got := tc.kind.Domain(); got != tc.want {
			t.Fatalf("%s: domain=%v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestSetContains(t *testing.T) {
	s := NewSet(TimeStretch, FreqMask)

	if !s.Contains(TimeStretch) || !s.Contains(FreqMask) {
		t.Fatal("selected kinds must be contained")
	}

	if s.Contains(PitchShift) {
		t.Fatal("unselected kind must not be contained")
	}

	if NewSet().Contains(TimeStretch) {
		t.Fatal("empty set contains nothing")
	}
}
