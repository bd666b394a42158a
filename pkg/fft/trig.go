/*****************************************************************************************************************/

//	@package	optics/fft

/*****************************************************************************************************************/

package fft

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// trigOversample is the oversampling factor for the sin/cos lookup table: its
// length is trigOversample * maxSize.
const trigOversample = 4

/*****************************************************************************************************************/

// trig holds the oversampled sin/cos tabulation on [0,2*pi) that backs FastSin and
// FastCos. It trades accuracy for throughput in the complex-pupil construction
// only; it must never be used inside the FFT butterfly, which addresses the
// twiddle table directly to retain FFT-grade precision.
type trig struct {
	sin  []float64
	cos  []float64
	size int
}

/*****************************************************************************************************************/

// EnsureTrigTable grows the trig lookup table so that it comfortably tabulates
// angles for a domain of the given maxSize (the source oversamples by 4x).
func (e *Engine) EnsureTrigTable(maxSize int) {
	size := maxSize * trigOversample
	if e.trig.sin != nil && e.trig.size >= size {
		return
	}

	sin := make([]float64, size)
	cos := make([]float64, size)

	for i := 0; i < size; i++ {
		angle := 2 * math.Pi * float64(i) / float64(size)
		sin[i] = math.Sin(angle)
		cos[i] = math.Cos(angle)
	}

	e.trig = trig{sin: sin, cos: cos, size: size}
}

/*****************************************************************************************************************/

// FastSin is a table-backed sin, reducing x into [0,2*pi) first. Non-finite input
// yields 0; if the table hasn't been initialized it falls back to math.Sin.
func (e *Engine) FastSin(x float64) float64 {
	if !isFinite(x) {
		return 0
	}
	if e.trig.sin == nil {
		return math.Sin(x)
	}

	idx := trigIndex(x, e.trig.size)
	return e.trig.sin[idx]
}

/*****************************************************************************************************************/

// FastCos mirrors FastSin. Non-finite input yields 1.
func (e *Engine) FastCos(x float64) float64 {
	if !isFinite(x) {
		return 1
	}
	if e.trig.cos == nil {
		return math.Cos(x)
	}

	idx := trigIndex(x, e.trig.size)
	return e.trig.cos[idx]
}

/*****************************************************************************************************************/

func trigIndex(x float64, size int) int {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}

	idx := int((x / (2 * math.Pi)) * float64(size))
	if idx >= size {
		idx = size - 1
	}
	return idx
}

/*****************************************************************************************************************/

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

/*****************************************************************************************************************/
