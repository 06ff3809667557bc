package extract

import (
	"fmt"
	"math"

	"github.com/ir2718/lumen-audio/features/tensor"
)

// Default MFCC parameters.
const (
	DefaultMFCCCount = 20
	DefaultDCTType   = 2
)

// mfccTopDB is the dynamic range used when converting the mel spectrogram
// to decibels before the cosine transform.
const mfccTopDB = 80

// MFCCParams configures cepstral-coefficient extraction on top of the mel
// parameters.
type MFCCParams struct {
	Mel          MelParams
	Coefficients int
	DCTType      int
}

// DefaultMFCCParams returns the default MFCC parameters.
func DefaultMFCCParams() MFCCParams {
	return MFCCParams{
		Mel:          DefaultMelParams(),
		Coefficients: DefaultMFCCCount,
		DCTType:      DefaultDCTType,
	}
}

// MFCC extracts mel-frequency cepstral coefficients from mono samples.
//
// The mel spectrogram is converted to decibels and transformed with an
// orthonormal DCT along the mel axis. DCT types 2 and 3 are supported.
// The output matrix has Coefficients rows and data-dependent time frame
// columns.
func MFCC(samples []float64, rate int, p MFCCParams) (tensor.Matrix, error) {
	if p.Coefficients <= 0 {
		p.Coefficients = DefaultMFCCCount
	}

	if p.DCTType == 0 {
		p.DCTType = DefaultDCTType
	}

	if p.DCTType != 2 && p.DCTType != 3 {
		return tensor.Matrix{}, fmt.Errorf("mfcc dct type must be 2 or 3: %d", p.DCTType)
	}

	mel, err := MelSpectrogram(samples, rate, p.Mel)
	if err != nil {
		return tensor.Matrix{}, fmt.Errorf("mfcc: %w", err)
	}

	db := PowerToDB(mel, mfccTopDB)

	nMel := db.Rows

	coeffs := min(p.Coefficients, nMel)
	out := tensor.NewMatrix(p.Coefficients, db.Cols)

	col := make([]float64, nMel)
	res := make([]float64, coeffs)

	for t := range db.Cols {
		for m := range nMel {
			col[m] = db.At(m, t)
		}

		switch p.DCTType {
		case 2:
			dct2Ortho(res, col)
		case 3:
			dct3Ortho(res, col)
		}

		for k := range coeffs {
			out.Set(k, t, res[k])
		}
	}

	return out, nil
}

// dct2Ortho computes the first len(dst) coefficients of the orthonormal
// DCT-II of src.
func dct2Ortho(dst, src []float64) {
	n := float64(len(src))

	for k := range dst {
		sum := 0.0
		for i, v := range src {
			sum += v * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*n))
		}

		scale := math.Sqrt(2 / n)
		if k == 0 {
			scale = math.Sqrt(1 / n)
		}

		dst[k] = sum * scale
	}
}

// dct3Ortho computes the first len(dst) coefficients of the orthonormal
// DCT-III of src.
func dct3Ortho(dst, src []float64) {
	n := float64(len(src))

	for k := range dst {
		sum := src[0] / math.Sqrt(n)
		for i := 1; i < len(src); i++ {
			sum += math.Sqrt(2/n) * src[i] *
				math.Cos(math.Pi*float64(i)*(2*float64(k)+1)/(2*n))
		}

		dst[k] = sum
	}
}
