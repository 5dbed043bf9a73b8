package signal

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Bandpass holds the transfer-function coefficients of a digital Butterworth
// bandpass filter.
type Bandpass struct {
	b []float64 // Numerator
	a []float64 // Denominator, a[0] == 1
}

// NewBandpass designs an order-n Butterworth bandpass filter with corner
// frequencies low and high (Hz) for the given sample rate. The design is the
// classic analog prototype, lowpass-to-bandpass transform, and bilinear
// transform.
func NewBandpass(low, high, rate float64, order int) (*Bandpass, error) {
	if order < 1 {
		return nil, fmt.Errorf("filter order must be >= 1, got %d", order)
	}
	nyquist := rate / 2
	if low <= 0 || high <= low {
		return nil, fmt.Errorf("invalid corner frequencies (%g, %g)", low, high)
	}
	if high >= nyquist {
		return nil, fmt.Errorf("high corner %g Hz is at or above the Nyquist frequency %g Hz", high, nyquist)
	}

	// Pre-warp the normalized corners for the bilinear transform (fs = 2).
	const fs = 2.0
	warpLow := 2 * fs * math.Tan(math.Pi*(low/nyquist)/fs)
	warpHigh := 2 * fs * math.Tan(math.Pi*(high/nyquist)/fs)
	bw := warpHigh - warpLow
	w0 := math.Sqrt(warpLow * warpHigh)

	// Analog Butterworth prototype: poles on the left unit semicircle.
	poles := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		theta := math.Pi * float64(m) / float64(2*order)
		poles = append(poles, -cmplx.Exp(complex(0, theta)))
	}

	// Lowpass prototype to bandpass: each pole splits into a pair.
	bpPoles := make([]complex128, 0, 2*order)
	for _, p := range poles {
		scaled := p * complex(bw/2, 0)
		root := cmplx.Sqrt(scaled*scaled - complex(w0*w0, 0))
		bpPoles = append(bpPoles, scaled+root, scaled-root)
	}
	// order zeros at s = 0, gain bw^order.
	bpZeros := make([]complex128, order)
	gain := math.Pow(bw, float64(order))

	// Bilinear transform to the digital plane.
	const fs2 = 2 * fs
	zZeros := make([]complex128, 0, 2*order)
	zPoles := make([]complex128, 0, 2*order)
	num := complex(1, 0)
	den := complex(1, 0)
	for _, z := range bpZeros {
		zZeros = append(zZeros, (complex(fs2, 0)+z)/(complex(fs2, 0)-z))
		num *= complex(fs2, 0) - z
	}
	for _, p := range bpPoles {
		zPoles = append(zPoles, (complex(fs2, 0)+p)/(complex(fs2, 0)-p))
		den *= complex(fs2, 0) - p
	}
	// Degree deficit maps zeros at infinity to z = -1.
	for len(zZeros) < len(zPoles) {
		zZeros = append(zZeros, complex(-1, 0))
	}
	digitalGain := gain * real(num/den)

	b := realPoly(zZeros)
	a := realPoly(zPoles)
	for i := range b {
		b[i] *= digitalGain
	}

	return &Bandpass{b: b, a: a}, nil
}

// realPoly expands a set of roots into real polynomial coefficients,
// highest order first.
func realPoly(roots []complex128) []float64 {
	coeffs := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= c * r
		}
		coeffs = next
	}

	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = real(c)
	}
	return out
}

// Apply runs the filter over data in a single forward pass, returning a new
// slice. Direct form II transposed.
func (f *Bandpass) Apply(data []float64) []float64 {
	n := len(f.a)
	state := make([]float64, n-1)
	out := make([]float64, len(data))

	for i, x := range data {
		y := f.b[0]*x + state[0]
		for j := 1; j < n-1; j++ {
			state[j-1] = f.b[j]*x + state[j] - f.a[j]*y
		}
		state[n-2] = f.b[n-1]*x - f.a[n-1]*y
		out[i] = y
	}
	return out
}

// ApplyZeroPhase filters forward, then backward, cancelling the phase shift
// at the cost of squaring the amplitude response.
func (f *Bandpass) ApplyZeroPhase(data []float64) []float64 {
	forward := f.Apply(data)
	reverse(forward)
	backward := f.Apply(forward)
	reverse(backward)
	return backward
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
