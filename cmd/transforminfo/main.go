// Command transforminfo prints the audio transform pipeline catalog.
//
// Usage:
//
//	transforminfo [flags] [variant-name ...]
//
// Without arguments it prints the composition table for all variants.
//
// Examples:
//
//	transforminfo mel_fixed_repeat
//	transforminfo -probe -rate 22050 -maxlen 10 mel_fixed_repeat
//	transforminfo -probe mfcc_fixed_repeat
//	transforminfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ir2718/lumen-audio/features/transform"
)

type variantEntry struct {
	variant    transform.Variant
	extractor  string
	waveAug    string
	featureAug string
	normalizer string
	repeat     string
}

var catalog = []variantEntry{
	{transform.LearnedSpectrogram, "learned spectrogram frontend",
		"stretch", "freq/time mask, erase, pixel noise", "none (fixed frontend output)", "no"},
	{transform.LearnedSpectrogramFullAug, "learned spectrogram frontend",
		"stretch, pitch, band-pass, noise, inversion", "freq/time mask, erase, pixel noise",
		"none (fixed frontend output)", "no"},
	{transform.MelResizeRepeat, "mel spectrogram", "stretch", "none", "resize", "x3"},
	{transform.MelFixedRepeat, "mel spectrogram", "stretch", "none",
		"fixed pad + resize (or chunked)", "x3"},
	{transform.MFCCFixedRepeat, "mfcc", "none", "none", "chunked pad", "x3"},
	{transform.SequenceRaw, "learned raw frontend", "stretch + trim", "none",
		"fixed 3 s truncate/pad", "no"},
}

func main() {
	var (
		list   = flag.Bool("list", false, "list variant names only")
		probe  = flag.Bool("probe", false, "probe and print reference shapes")
		rate   = flag.Int("rate", transform.DefaultSampleRate, "working sample rate in Hz")
		maxLen = flag.Int("maxlen", transform.DefaultMaxLenSeconds, "reference duration in seconds")
		height = flag.Int("height", transform.DefaultHeight, "target height")
		width  = flag.Int("width", transform.DefaultWidth, "target width")
	)

	flag.Parse()

	if *list {
		for _, e := range catalog {
			fmt.Println(e.variant)
		}

		return
	}

	selected, err := selectEntries(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "variant\textractor\twaveform aug\tfeature aug\tnormalizer\trepeat")

	for _, e := range selected {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.variant, e.extractor, e.waveAug, e.featureAug, e.normalizer, e.repeat)
	}

	if !*probe {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "variant\treference shape\toutput")

	for _, e := range selected {
		ref, out, err := probeVariant(e.variant, *rate, *maxLen, *height, *width)
		if err != nil {
			fmt.Fprintf(w, "%s\t-\t%v\n", e.variant, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", e.variant, ref, out)
	}
}

func selectEntries(names []string) ([]variantEntry, error) {
	if len(names) == 0 {
		return catalog, nil
	}

	out := make([]variantEntry, 0, len(names))

	for _, name := range names {
		v, err := transform.ParseVariant(name)
		if err != nil {
			return nil, err
		}

		for _, e := range catalog {
			if e.variant == v {
				out = append(out, e)
				break
			}
		}
	}

	return out, nil
}

// probeVariant constructs the pipeline and reports its reference shape
// where one exists, plus the per-input output shape.
func probeVariant(v transform.Variant, rate, maxLen, height, width int) (string, string, error) {
	p, err := transform.New(v,
		transform.WithSampleRate(rate),
		transform.WithMaxLen(maxLen),
		transform.WithDims(height, width),
	)
	if err != nil {
		return "", "", err
	}

	type referenced interface {
		Reference() transform.ReferenceShape
	}

	ref := "-"
	if rp, ok := p.(referenced); ok {
		shape := rp.Reference()
		ref = fmt.Sprintf("%dx%d", shape.Rows, shape.Cols)
	}

	type fixedLength interface {
		FixedLen() int
	}

	out := fmt.Sprintf("%dx%dx%d", p.Config().Repeat, height, width)
	switch v {
	case transform.LearnedSpectrogram, transform.LearnedSpectrogramFullAug:
		out = "1x128x1024"
	case transform.SequenceRaw:
		if fp, ok := p.(fixedLength); ok {
			out = fmt.Sprintf("1x1x%d", fp.FixedLen())
		}
	case transform.MFCCFixedRepeat:
		out = fmt.Sprintf("Nx%dx%dx%d", p.Config().Repeat, height, width)
	}

	return ref, out, nil
}
