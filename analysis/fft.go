package analysis

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// hannWindow returns a periodic Hann window of the given length,
// matching the reference's 0.5*(1-cos(2*pi*i/n)) shape (denominator is
// the frame size, not frame size - 1) used by the spectral and chroma
// passes before transforming to the frequency domain (the band pass
// transforms un-windowed frames).
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	if n <= 1 {
		if n == 1 {
			w[0] = 1
		}
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}

// nextPowerOfTwo returns the smallest power of two >= n (n >= 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// fftPlan caches one gonum real-FFT plan per transform length so
// repeated frames of the same size (the common case: every pass in this
// package uses one fixed frame size) don't reallocate a plan per call.
type fftPlan struct {
	size int
	fft  *fourier.FFT
}

func newFFTPlan(size int) *fftPlan {
	return &fftPlan{size: size, fft: fourier.NewFFT(size)}
}

// magnitudes computes the magnitude spectrum of a real-valued frame,
// zero-padding to the next power of two first. The result has length
// size/2 (the lower half of the spectrum, below Nyquist), matching the
// reference radix-2 FFT's output shape.
func (p *fftPlan) magnitudes(frame []float64) []float64 {
	size := nextPowerOfTwo(len(frame))
	if size != p.size {
		p = newFFTPlan(size)
	}

	padded := frame
	if len(frame) != size {
		padded = make([]float64, size)
		copy(padded, frame)
	}

	coeffs := p.fft.Coefficients(nil, padded)

	half := size / 2
	mag := make([]float64, half)
	for i := 0; i < half; i++ {
		re := real(coeffs[i])
		im := imag(coeffs[i])
		mag[i] = math.Sqrt(re*re + im*im)
	}
	return mag
}

// magnitudeSpectrum is a convenience one-shot helper for callers that
// don't need to reuse a plan across many frames of the same size.
func magnitudeSpectrum(frame []float64) []float64 {
	size := nextPowerOfTwo(len(frame))
	return newFFTPlan(size).magnitudes(frame)
}
