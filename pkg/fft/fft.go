/*****************************************************************************************************************/

//	@package	optics/fft

/*****************************************************************************************************************/

// Package fft implements the in-place radix-2 Cooley–Tukey FFT used by the PSF
// pipeline: a 1D transform with a precomputed twiddle table, and a 2D transform
// built from row FFTs and a cache-aware blocked transpose.
//
// Every cache (twiddle table, scratch transpose buffer) lives on an *Engine
// instance rather than behind package-level globals, so concurrent callers can use
// one Engine per goroutine with no shared mutable state. A package-level
// convenience Default() is provided for callers who only need a single
// process-lifetime engine.
package fft

/*****************************************************************************************************************/

import (
	"math"
	"sync"
)

/*****************************************************************************************************************/

// recursiveThreshold is the length above which FFT1D dispatches to the
// divide-and-conquer variant instead of the iterative one; both satisfy the same
// round-trip property, this only changes which code path a given size takes.
const recursiveThreshold = 64

/*****************************************************************************************************************/

// Engine owns the process-wide-in-spirit, but per-instance-in-practice, caches the
// FFT needs: the twiddle table (grown monotonically in powers of two) and a
// transpose scratch buffer reused across 2D calls.
type Engine struct {
	twiddle     []complex128
	twiddleSize int

	scratch []complex128

	trig trig
}

/*****************************************************************************************************************/

// NewEngine returns a fresh Engine with empty caches; they are populated lazily on
// first use and grown as larger sizes are requested.
func NewEngine() *Engine {
	return &Engine{}
}

/*****************************************************************************************************************/

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

/*****************************************************************************************************************/

// Default returns a process-lifetime singleton Engine, for callers that want flat
// package-level functions rather than an explicit instance.
func Default() *Engine {
	defaultEngineOnce.Do(func() { defaultEngine = NewEngine() })
	return defaultEngine
}

/*****************************************************************************************************************/

// Cleanup drops every cache this Engine holds (twiddle table, scratch buffer). Per
// the single-threaded contract, calling Cleanup while another call against the same
// Engine is in flight is undefined behavior.
func (e *Engine) Cleanup() {
	e.twiddle = nil
	e.twiddleSize = 0
	e.scratch = nil
	e.trig = trig{}
}

/*****************************************************************************************************************/

// ensureTwiddle rebuilds the twiddle table once n exceeds the current table size.
// table[i] = (cos(-2*pi*i/n), sin(-2*pi*i/n)).
func (e *Engine) ensureTwiddle(n int) {
	if e.twiddle != nil && e.twiddleSize >= n {
		return
	}

	e.twiddle = make([]complex128, n)
	e.twiddleSize = n

	for i := 0; i < n; i++ {
		angle := -2 * math.Pi * float64(i) / float64(n)
		e.twiddle[i] = complex(math.Cos(angle), math.Sin(angle))
	}
}

/*****************************************************************************************************************/

// twiddleAt returns the twiddle factor for butterfly index k at stage length
// `length`, scaled against the cached table size M (which may be larger than the
// current transform n, since the table is grown monotonically and reused across
// calls of differing size): index = k * (M/length), the M-relative equivalent of
// W_length^k = W_M^{k*(M/length)}. Wrapped for the inverse transform.
func (e *Engine) twiddleAt(k, length int, inverse bool) complex128 {
	M := e.twiddleSize
	idx := k * (M / length)

	if inverse {
		idx = M - idx
		if idx >= M {
			idx -= M
		}
	}
	return e.twiddle[idx]
}

/*****************************************************************************************************************/

// FFT1D transforms data in place. len(data) must be a power of two. Dispatches to
// the iterative bit-reversal butterfly for n<=64 and to the divide-and-conquer
// variant above that, per the source algorithm's size-based split.
func (e *Engine) FFT1D(data []complex128, inverse bool) {
	n := len(data)
	if n <= 1 {
		return
	}

	e.ensureTwiddle(n)

	if n <= recursiveThreshold {
		e.fft1DIterative(data, inverse)
		return
	}

	e.fft1DRecursive(data, inverse)

	if inverse {
		invN := 1 / float64(n)
		for i := range data {
			data[i] *= complex(invN, 0)
		}
	}
}

/*****************************************************************************************************************/

// fft1DIterative is the standard in-place bit-reversal + butterfly-stage radix-2
// FFT, addressing the twiddle table directly for FFT-grade precision.
func (e *Engine) fft1DIterative(data []complex128, inverse bool) {
	n := len(data)

	// Bit-reversal permutation by the standard incremental method.
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit

		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	// Butterfly stages.
	for length := 2; length <= n; length <<= 1 {
		half := length / 2

		for i := 0; i < n; i += length {
			for k := 0; k < half; k++ {
				w := e.twiddleAt(k, length, inverse)

				u := data[i+k]
				v := data[i+k+half] * w

				data[i+k] = u + v
				data[i+k+half] = u - v
			}
		}
	}

	if inverse {
		invN := 1 / float64(n)
		for i := range data {
			data[i] *= complex(invN, 0)
		}
	}
}

/*****************************************************************************************************************/

// fft1DRecursive is the divide-and-conquer variant: split into even/odd halves,
// transform each recursively, recombine with twiddle factors computed directly
// (not table-looked-up, since the recursive combine step addresses arbitrary n/len
// angles rather than table-sized ones). It falls back to the iterative path for
// n<=64. Normalization for the inverse transform is applied once by the caller
// (FFT1D), not at each recursion level.
func (e *Engine) fft1DRecursive(data []complex128, inverse bool) {
	n := len(data)
	if n <= recursiveThreshold {
		e.fft1DIterativeNoNormalize(data, inverse)
		return
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)

	for i := 0; i < half; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	e.fft1DRecursive(even, inverse)
	e.fft1DRecursive(odd, inverse)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for k := 0; k < half; k++ {
		angle := sign * 2 * math.Pi * float64(k) / float64(n)
		w := complex(math.Cos(angle), math.Sin(angle))
		t := w * odd[k]

		data[k] = even[k] + t
		data[k+half] = even[k] - t
	}
}

/*****************************************************************************************************************/

// fft1DIterativeNoNormalize runs the iterative butterfly without the final inverse
// scale, since fft1DRecursive's caller normalizes once at the top level.
func (e *Engine) fft1DIterativeNoNormalize(data []complex128, inverse bool) {
	n := len(data)

	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit

		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		half := length / 2

		for i := 0; i < n; i += length {
			for k := 0; k < half; k++ {
				w := e.twiddleAt(k, length, inverse)

				u := data[i+k]
				v := data[i+k+half] * w

				data[i+k] = u + v
				data[i+k+half] = u - v
			}
		}
	}
}

/*****************************************************************************************************************/

// blockSize picks the cache-aware transpose tile size: 64 for N>=256, else 32.
func blockSize(n int) int {
	if n >= 256 {
		return 64
	}
	return 32
}

/*****************************************************************************************************************/

// transpose writes the transpose of src (width x height, row-major) into dst
// (height x width, row-major), tiled for cache locality.
func transpose(src, dst []complex128, width, height int) {
	block := blockSize(width)
	if h := blockSize(height); h < block {
		block = h
	}

	for i := 0; i < height; i += block {
		iMax := min(i+block, height)

		for j := 0; j < width; j += block {
			jMax := min(j+block, width)

			for ii := i; ii < iMax; ii++ {
				for jj := j; jj < jMax; jj++ {
					dst[jj*height+ii] = src[ii*width+jj]
				}
			}
		}
	}
}

/*****************************************************************************************************************/

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

/*****************************************************************************************************************/

// ensureScratch grows the reusable N*N transpose buffer monotonically. If
// allocation ever failed (it can't, in Go, short of an OOM panic) the scratch
// buffer is simply left as-is and FFT2D returns without transforming — matching
// the source's "detect the shortage, skip the transform" contract even though Go's
// allocator makes that branch effectively unreachable in practice.
func (e *Engine) ensureScratch(n int) {
	need := n * n
	if len(e.scratch) >= need {
		return
	}
	e.scratch = make([]complex128, need)
}

/*****************************************************************************************************************/

// FFT2D transforms an N×N row-major complex grid in place: row FFT, blocked
// transpose into scratch, row FFT (now the original columns), transpose back.
func (e *Engine) FFT2D(data []complex128, n int, inverse bool) {
	if n <= 1 {
		return
	}

	e.ensureScratch(n)
	if len(e.scratch) < n*n {
		return // scratch growth failed; caller must verify via round-trip if sensitive
	}

	for row := 0; row < n; row++ {
		e.FFT1D(data[row*n:row*n+n], inverse)
	}

	transpose(data, e.scratch, n, n)

	for row := 0; row < n; row++ {
		e.FFT1D(e.scratch[row*n:row*n+n], inverse)
	}

	transpose(e.scratch, data, n, n)
}

/*****************************************************************************************************************/
