// Package kernel implements the single-coordinate kernel omega(x) that
// drives a coordinate-uniform figure of merit (spec.md §4.1). Seven concrete
// kernels are provided: P_alpha and R for ordinary (integer) lattices,
// P_alpha-PLR and R-PLR for polynomial lattices and digital nets, and
// IA_alpha / IB / IC_alpha for interlaced digital nets.
//
// Exact mathematical derivations for the PLR/interlaced family follow the
// Walsh-kernel smoothness weighting mu_alpha(k) = 2^(-alpha*(floor(log2 k)+1))
// standard in digital-net QMC theory (Dick & Pillichshammer, "Digital Nets
// and Sequences"); R / R-PLR fix alpha=1 as their smoothness order, an
// interpretation recorded in DESIGN.md since spec.md leaves the "R" figure's
// exact kernel unspecified.
package kernel

import "math"

// Kernel computes omega(x) for a chosen figure and declares the compression
// and CUPower the outer coordinate-uniform accumulation should use.
type Kernel interface {
	// Name identifies the figure, e.g. "P2", "R", "CU:P2", "IA3".
	Name() string
	// Eval returns omega(x) for x = i/n (ordinary lattices) given the raw
	// index i and modulus n.
	Eval(i int, n uint64) float64
	// EvalBits returns omega(x) for a digital-net/polynomial-lattice point
	// whose m leading binary digits are given by bits (MSB first, bits[0]
	// is x_1). Used by PLR and interlaced kernels.
	EvalBits(bitsMSBFirst []uint8) float64
	// SuggestedCompression advises Storage on the compression this kernel
	// tolerates (symmetric kernels support folding).
	SuggestedCompression() Compression
	// CUPower is the exponent the outer accumulation norm should apply to
	// this kernel's contribution (see ProjectionTree step 3, spec.md §4.6).
	CUPower() float64
}

// Compression mirrors storage.Compression without importing it, to avoid a
// kernel->storage package cycle (storage already depends on nothing kernel
// specific; kernel is consumed by storage's callers, not storage itself).
type Compression int

const (
	None Compression = iota
	Symmetric
)

// bernoulli returns B_0..B_n, the Bernoulli numbers (B_1 = -1/2 convention),
// via the standard triangular recurrence sum_{k=0}^{m} C(m+1,k) B_k = 0 for
// m>=1.
func bernoulli(n int) []float64 {
	B := make([]float64, n+1)
	B[0] = 1
	binom := make([][]float64, n+2)
	for i := range binom {
		binom[i] = make([]float64, n+2)
		binom[i][0] = 1
		for j := 1; j <= i; j++ {
			binom[i][j] = binom[i-1][j-1] + binom[i-1][j]
		}
	}
	for m := 1; m <= n; m++ {
		var sum float64
		for k := 0; k < m; k++ {
			sum += binom[m+1][k] * B[k]
		}
		B[m] = -sum / binom[m+1][m]
	}
	return B
}

// bernoulliPoly evaluates B_n(x) given the Bernoulli numbers B_0..B_n.
func bernoulliPoly(n int, x float64, B []float64) float64 {
	binom := make([]float64, n+1)
	binom[0] = 1
	for k := 1; k <= n; k++ {
		binom[k] = binom[k-1] * float64(n-k+1) / float64(k)
	}
	var sum float64
	xp := 1.0
	// iterate k from n downto 0 accumulating x^(n-k); build powers forward
	// instead for clarity.
	pow := make([]float64, n+1)
	pow[0] = 1
	for i := 1; i <= n; i++ {
		pow[i] = pow[i-1] * x
	}
	_ = xp
	for k := 0; k <= n; k++ {
		sum += binom[k] * B[k] * pow[n-k]
	}
	return sum
}

// PAlpha is the classical integration-lattice kernel for even smoothness
// order alpha:
//
//	omega_alpha(x) = (-1)^(alpha/2+1) * (2*pi)^alpha / alpha! * B_alpha({x})
type PAlpha struct {
	Alpha int // must be even, >= 2
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func (k PAlpha) factor() float64 {
	sign := 1.0
	if (k.Alpha/2+1)%2 == 1 {
		sign = -1.0
	}
	return sign * math.Pow(2*math.Pi, float64(k.Alpha)) / factorial(k.Alpha)
}

// Name implements Kernel.
func (k PAlpha) Name() string { return "P" + itoa(k.Alpha) }

// Eval implements Kernel.
func (k PAlpha) Eval(i int, n uint64) float64 {
	x := float64(i) / float64(n)
	B := bernoulli(k.Alpha)
	return k.factor() * bernoulliPoly(k.Alpha, x, B)
}

// EvalBits is not defined for ordinary-lattice kernels; it panics.
func (k PAlpha) EvalBits(bits []uint8) float64 { panic("kernel: P_alpha has no digital-net evaluation") }

// SuggestedCompression implements Kernel: P_alpha is symmetric since
// B_alpha(1-x) = B_alpha(x) for even alpha.
func (k PAlpha) SuggestedCompression() Compression { return Symmetric }

// CUPower implements Kernel.
func (k PAlpha) CUPower() float64 { return 1.0 }

// R is a simpler ordinary-lattice kernel, omega(x) = x(1-x), symmetric and
// commonly used for an unweighted "R" resolution-style quality criterion.
type R struct{}

// Name implements Kernel.
func (R) Name() string { return "R" }

// Eval implements Kernel.
func (R) Eval(i int, n uint64) float64 {
	x := float64(i) / float64(n)
	return x * (1 - x)
}

// EvalBits panics: R has no digital-net evaluation (see RPLR).
func (R) EvalBits(bits []uint8) float64 { panic("kernel: R has no digital-net evaluation") }

// SuggestedCompression implements Kernel.
func (R) SuggestedCompression() Compression { return Symmetric }

// CUPower implements Kernel.
func (R) CUPower() float64 { return 1.0 }

// walshMu returns mu_alpha(k) = 2^(-alpha*(floor(log2 k)+1)) for k >= 1.
func walshMu(k int, alpha float64) float64 {
	level := 0
	for v := k; v > 1; v >>= 1 {
		level++
	}
	return math.Pow(2, -alpha*float64(level+1))
}

// walshKernel evaluates the digital-net Walsh kernel at smoothness order
// alpha, given the point's leading binary digits (MSB first); only those
// digits are summed, so digits beyond len(bitsMSBFirst) contribute nothing.
func walshKernel(bitsMSBFirst []uint8, alpha float64) float64 {
	var sum float64
	for idx, b := range bitsMSBFirst {
		k := idx + 1
		sign := 1.0
		if b == 1 {
			sign = -1.0
		}
		sum += walshMu(k, alpha) * sign
	}
	return sum
}

// PAlphaPLR is the polynomial-lattice-rule analogue of PAlpha, defined via
// the Walsh-kernel smoothness weighting.
type PAlphaPLR struct {
	Alpha float64
}

// Name implements Kernel.
func (k PAlphaPLR) Name() string { return "P" + ftoa(k.Alpha) + "-PLR" }

// Eval is not defined for digital-net kernels; it panics.
func (k PAlphaPLR) Eval(i int, n uint64) float64 {
	panic("kernel: P_alpha-PLR evaluates via EvalBits, not Eval")
}

// EvalBits implements Kernel.
func (k PAlphaPLR) EvalBits(bits []uint8) float64 { return walshKernel(bits, k.Alpha) }

// SuggestedCompression implements Kernel.
func (k PAlphaPLR) SuggestedCompression() Compression { return None }

// CUPower implements Kernel.
func (k PAlphaPLR) CUPower() float64 { return 1.0 }

// RPLR is the polynomial-lattice-rule analogue of R, fixing alpha=1.
type RPLR struct{}

// Name implements Kernel.
func (RPLR) Name() string { return "R-PLR" }

// Eval panics; see EvalBits.
func (RPLR) Eval(i int, n uint64) float64 { panic("kernel: R-PLR evaluates via EvalBits, not Eval") }

// EvalBits implements Kernel.
func (RPLR) EvalBits(bits []uint8) float64 { return walshKernel(bits, 1.0) }

// SuggestedCompression implements Kernel.
func (RPLR) SuggestedCompression() Compression { return None }

// CUPower implements Kernel.
func (RPLR) CUPower() float64 { return 1.0 }

// IAAlpha is the interlaced digital-net kernel IA_alpha: the same
// Walsh-kernel weighting as PAlphaPLR, but declaring CUPower=2.
type IAAlpha struct {
	Alpha float64
}

// Name implements Kernel.
func (k IAAlpha) Name() string { return "IA" + ftoa(k.Alpha) }

// Eval panics; see EvalBits.
func (k IAAlpha) Eval(i int, n uint64) float64 { panic("kernel: IA_alpha evaluates via EvalBits") }

// EvalBits implements Kernel.
func (k IAAlpha) EvalBits(bits []uint8) float64 { return walshKernel(bits, k.Alpha) }

// SuggestedCompression implements Kernel.
func (k IAAlpha) SuggestedCompression() Compression { return None }

// CUPower implements Kernel.
func (k IAAlpha) CUPower() float64 { return 2.0 }

// IB is the interlaced digital-net kernel IB (fixed smoothness order 1,
// matching the "G15" bound family referenced in spec.md §4.7's normaliser
// list).
type IB struct{}

// Name implements Kernel.
func (IB) Name() string { return "IB" }

// Eval panics; see EvalBits.
func (IB) Eval(i int, n uint64) float64 { panic("kernel: IB evaluates via EvalBits") }

// EvalBits implements Kernel.
func (IB) EvalBits(bits []uint8) float64 { return walshKernel(bits, 1.0) }

// SuggestedCompression implements Kernel.
func (IB) SuggestedCompression() Compression { return None }

// CUPower implements Kernel.
func (IB) CUPower() float64 { return 2.0 }

// ICAlpha is the interlaced digital-net kernel IC_alpha.
type ICAlpha struct {
	Alpha float64
}

// Name implements Kernel.
func (k ICAlpha) Name() string { return "IC" + ftoa(k.Alpha) }

// Eval panics; see EvalBits.
func (k ICAlpha) Eval(i int, n uint64) float64 { panic("kernel: IC_alpha evaluates via EvalBits") }

// EvalBits implements Kernel.
func (k ICAlpha) EvalBits(bits []uint8) float64 { return walshKernel(bits, k.Alpha) }

// SuggestedCompression implements Kernel.
func (k ICAlpha) SuggestedCompression() Compression { return None }

// CUPower implements Kernel.
func (k ICAlpha) CUPower() float64 { return 2.0 }

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	s := string(buf[i:])
	if neg {
		return "-" + s
	}
	return s
}

func ftoa(f float64) string {
	if f == math.Trunc(f) {
		return itoa(int(f))
	}
	// Minimal-dependency float formatting for kernel names (e.g. "1.5");
	// scenarios only ever use integral or half-integral alpha.
	neg := f < 0
	if neg {
		f = -f
	}
	whole := int(f)
	frac := int((f-float64(whole))*10 + 0.5)
	s := itoa(whole) + "." + itoa(frac)
	if neg {
		return "-" + s
	}
	return s
}
