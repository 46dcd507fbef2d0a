// Package filter implements the Filter pipeline of spec.md §4.7: a
// Normaliser (dividing a raw merit by a theoretical worst-case bound),
// a LowPass filter (pruning candidates whose merit already exceeds a
// threshold before spending further search budget on them), and a
// LevelCombiner (folding a multilevel MeritValue's per-level entries into a
// single scalar for ranking).
package filter

import (
	"math"

	"latbuilder-go/storage"
)

// Filter transforms a MeritValue, e.g. normalising it or combining levels.
type Filter interface {
	Apply(m storage.MeritValue) storage.MeritValue
}

// Chain applies a list of Filters in order.
type Chain []Filter

// Apply implements Filter.
func (c Chain) Apply(m storage.MeritValue) storage.MeritValue {
	for _, f := range c {
		m = f.Apply(m)
	}
	return m
}

// zeta approximates the Riemann zeta function for s>1 by direct summation
// with an Euler-Maclaurin tail correction, sufficient for the normalising
// bounds below (which only ever need zeta as a slowly-varying multiplier,
// not high-precision output).
func zeta(s float64) float64 {
	const terms = 2000
	var sum float64
	for k := 1; k <= terms; k++ {
		sum += math.Pow(float64(k), -s)
	}
	// tail: integral_{terms+1}^inf x^-s dx = (terms+1)^(1-s) / (s-1)
	tail := math.Pow(float64(terms+1), 1-s) / (s - 1)
	return sum + tail
}

// brentMinimize finds a local minimum of f on [a,b] via Brent's method
// (golden-section bracketing with parabolic interpolation), matching
// spec.md §4.7's normaliser minimisation. tol is the relative precision
// target (18 mantissa bits -> 2^-18, the default NormalizerTolerance);
// maxIter caps iteration count at 1000 as a safety backstop.
const (
	NormalizerTolerance = 1.0 / (1 << 18)
	NormalizerMaxIter   = 1000
)

func brentMinimize(f func(float64) float64, a, b float64) (x, fx float64) {
	const gold = 0.3819660112501051 // (3-sqrt(5))/2
	x = a + gold*(b-a)
	w, v := x, x
	fw := f(x)
	fx = fw
	fv := fw
	d, e := 0.0, 0.0
	for iter := 0; iter < NormalizerMaxIter; iter++ {
		m := 0.5 * (a + b)
		tol1 := NormalizerTolerance*math.Abs(x) + 1e-12
		tol2 := 2 * tol1
		if math.Abs(x-m) <= tol2-0.5*(b-a) {
			break
		}
		var useParabolic bool
		var p, q, r float64
		if math.Abs(e) > tol1 {
			r = (x - w) * (fx - fv)
			q = (x - v) * (fx - fw)
			p = (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etemp := e
			e = d
			if math.Abs(p) < math.Abs(0.5*q*etemp) && p > q*(a-x) && p < q*(b-x) {
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = tol1
					if m < x {
						d = -tol1
					}
				}
				useParabolic = true
			}
		}
		if !useParabolic {
			if x < m {
				e = b - x
			} else {
				e = a - x
			}
			d = gold * e
		}
		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else if d > 0 {
			u = x + tol1
		} else {
			u = x - tol1
		}
		fu := f(u)
		if fu <= fx {
			if u < x {
				b = x
			} else {
				a = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, fv = w, fw
				w, fw = u, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}
	return x, fx
}

// NormalizerPAlphaDPW08 implements the Dick-Pillichshammer-Waterhouse-style
// worst-case bound for P_alpha figures: for product weights gamma_j and a
// point count n with kappa distinct prime (or irreducible, for polynomial
// moduli) factors,
//
//	B = inf_{1/alpha < lambda <= 1} [ prod_j (1 + 2 gamma_j zeta(alpha*lambda)) ]^(1/lambda) * kappa^((1-lambda)/lambda) / n^lambda
//
// minimised via Brent's method over lambda (spec.md §4.7; the sizeparam
// "distinct prime factor count" open question this depends on is resolved
// in sizeparam.DistinctPrimeFactorCount).
type NormalizerPAlphaDPW08 struct {
	Alpha  int
	Gamma  []float64
	N      uint64
	Kappa  int
}

// Bound evaluates B via Brent-minimised search over lambda.
func (nrm NormalizerPAlphaDPW08) Bound() float64 {
	lo := 1.0/float64(nrm.Alpha) + 1e-6
	hi := 1.0
	if lo >= hi {
		lo = hi - 1e-6
	}
	f := func(lambda float64) float64 {
		prod := 1.0
		for _, g := range nrm.Gamma {
			prod *= 1 + 2*g*zeta(float64(nrm.Alpha)*lambda)
		}
		kappaf := 1.0
		if nrm.Kappa > 1 {
			kappaf = math.Pow(float64(nrm.Kappa), (1-lambda)/lambda)
		}
		return math.Pow(prod, 1/lambda) * kappaf / math.Pow(float64(nrm.N), lambda)
	}
	_, fx := brentMinimize(f, lo, hi)
	return fx
}

// Normaliser divides a MeritValue by a per-level bound (all levels share the
// same Bound for a unilevel figure; embedded figures re-derive the bound
// per level via BoundAtLevel).
type Normaliser struct {
	BoundAtLevel func(level int) float64
}

// Apply implements Filter.
func (n Normaliser) Apply(m storage.MeritValue) storage.MeritValue {
	out := make([]float64, len(m.Levels))
	for l, v := range m.Levels {
		b := n.BoundAtLevel(l)
		if b == 0 {
			out[l] = v
			continue
		}
		out[l] = v / b
	}
	return storage.MeritValue{Levels: out}
}

// LowPass discards (maps to +Inf) any MeritValue whose ranking scalar
// exceeds Threshold, so that a CBC search can skip scoring further
// candidates once the current best already fails the cutoff (spec.md §4.7
// "low-pass"; exercised by search's pruning tests).
type LowPass struct {
	Threshold float64
	ScalarOf  func(storage.MeritValue) float64
}

// Apply implements Filter.
func (lp LowPass) Apply(m storage.MeritValue) storage.MeritValue {
	if lp.ScalarOf(m) > lp.Threshold {
		return storage.MeritValue{Levels: []float64{math.Inf(1)}}
	}
	return m
}

// LevelCombiner folds a multilevel MeritValue into a single scalar
// (spec.md §4.7 "combiner"), e.g. the max over levels (the default,
// matching a worst-level acceptance criterion) or a weighted sum.
type LevelCombiner struct {
	Combine func(levels []float64) float64
}

// MaxCombiner returns a LevelCombiner taking the maximum level value.
func MaxCombiner() LevelCombiner {
	return LevelCombiner{Combine: func(levels []float64) float64 {
		m := levels[0]
		for _, v := range levels[1:] {
			if v > m {
				m = v
			}
		}
		return m
	}}
}

// SumCombiner returns a LevelCombiner summing level values with weights
// (weights default to 1 if nil or too short).
func SumCombiner(weights []float64) LevelCombiner {
	return LevelCombiner{Combine: func(levels []float64) float64 {
		var sum float64
		for i, v := range levels {
			w := 1.0
			if i < len(weights) {
				w = weights[i]
			}
			sum += w * v
		}
		return sum
	}}
}

// Apply implements Filter: it returns a unilevel MeritValue wrapping the
// combined scalar.
func (lc LevelCombiner) Apply(m storage.MeritValue) storage.MeritValue {
	return storage.Scalar(lc.Combine(m.Levels))
}
