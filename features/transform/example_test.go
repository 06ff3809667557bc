package transform_test

import (
	"fmt"
	"math"

	"github.com/ir2718/lumen-audio/audio"
	"github.com/ir2718/lumen-audio/features/transform"
)

func toneWaveform(seconds, rate int) audio.Waveform {
	samples := make([]float64, seconds*rate)
	step := 2 * math.Pi * 440 / float64(rate)

	for i := range samples {
		samples[i] = 0.5 * math.Sin(step*float64(i))
	}

	return audio.Waveform{Samples: samples, Rate: rate, Channels: 1}
}

func ExampleNew() {
	p, err := transform.New(transform.MelFixedRepeat,
		transform.WithMaxLen(20),
		transform.WithDims(128, 128),
		transform.WithRepeat(3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := p.Process(toneWaveform(5, 16000))
	if err != nil {
		fmt.Println(err)
		return
	}

	out := res.Single()
	fmt.Printf("%s: %dx%dx%d\n", p.Variant(), out.Channels(), out.Rows(), out.Cols())
	// Output:
	// mel_fixed_repeat: 3x128x128
}

func ExampleNew_chunked() {
	p, err := transform.New(transform.MFCCFixedRepeat, transform.WithMaxLen(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := p.Process(toneWaveform(5, 16000))
	if err != nil {
		fmt.Println(err)
		return
	}

	out := res.Single()
	fmt.Printf("%s: chunked=%v, chunks of %dx%dx%d\n",
		p.Variant(), res.IsChunked(), out.Channels(), out.Rows(), out.Cols())
	// Output:
	// mfcc_fixed_repeat: chunked=true, chunks of 3x128x128
}

func ExampleParseVariant() {
	v, err := transform.ParseVariant("sequence_raw")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(v)
	// Output:
	// sequence_raw
}
