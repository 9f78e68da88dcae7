// Package mathx provides the small set of numeric primitives shared by the
// generator, forecaster and analytics packages: sample moments, linearly
// interpolated quantiles and ordinary least-squares regression.
package mathx

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Std returns the sample standard deviation (n-1 denominator).
// Fewer than two observations yield 0.
func Std(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// Min returns the smallest value, or 0 for an empty slice.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Max returns the largest value, or 0 for an empty slice.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Sum returns the sum of all values.
func Sum(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum
}

// Quantile returns the q-th quantile (0 <= q <= 1) using linear
// interpolation between order statistics, matching the pandas default.
func Quantile(xs []float64, q float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}

	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	frac := pos - float64(lo)
	if hi >= n {
		return sorted[n-1]
	}
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Median returns the 0.5 quantile.
func Median(xs []float64) float64 {
	return Quantile(xs, 0.5)
}

// LinregressResult holds the output of an ordinary least-squares fit.
type LinregressResult struct {
	Slope     float64
	Intercept float64
	RValue    float64
	PValue    float64
	StdErr    float64
}

// Linregress fits y = slope*x + intercept by ordinary least squares and
// reports the correlation coefficient and the two-sided p-value of the
// slope (Wald test against zero, Student-t distributed with n-2 degrees
// of freedom). Behaviour mirrors scipy.stats.linregress.
func Linregress(x, y []float64) LinregressResult {
	n := len(x)
	if n != len(y) || n < 2 {
		return LinregressResult{PValue: 1}
	}

	xm := Mean(x)
	ym := Mean(y)

	var ssxm, ssym, ssxym float64
	for i := 0; i < n; i++ {
		dx := x[i] - xm
		dy := y[i] - ym
		ssxm += dx * dx
		ssym += dy * dy
		ssxym += dx * dy
	}

	if ssxm == 0 {
		// Degenerate x axis; no fit possible
		return LinregressResult{Intercept: ym, PValue: 1}
	}

	slope := ssxym / ssxm
	intercept := ym - slope*xm

	var r float64
	if ssym > 0 {
		r = ssxym / math.Sqrt(ssxm*ssym)
		// Guard against floating point drift outside [-1, 1]
		if r > 1 {
			r = 1
		} else if r < -1 {
			r = -1
		}
	}

	df := float64(n - 2)
	result := LinregressResult{
		Slope:     slope,
		Intercept: intercept,
		RValue:    r,
		PValue:    1,
	}

	if df <= 0 {
		return result
	}

	if math.Abs(r) == 1 {
		result.PValue = 0
		return result
	}

	result.StdErr = math.Sqrt((1 - r*r) * ssym / ssxm / df)
	t := r * math.Sqrt(df/(1-r*r))
	result.PValue = tTestPValue(t, df)

	return result
}

// tTestPValue returns the two-sided p-value for a t statistic with the
// given degrees of freedom: I_{df/(df+t^2)}(df/2, 1/2).
func tTestPValue(t, df float64) float64 {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	x := df / (df + t*t)
	return regularizedIncompleteBeta(df/2, 0.5, x)
}

// regularizedIncompleteBeta computes I_x(a, b) via the continued fraction
// expansion (Numerical Recipes betai/betacf).
func regularizedIncompleteBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	lnBeta := lgamma(a+b) - lgamma(a) - lgamma(b)
	front := math.Exp(lnBeta + a*math.Log(x) + b*math.Log(1-x))

	if x < (a+1)/(a+b+2) {
		return front * betaContinuedFraction(a, b, x) / a
	}
	return 1 - front*betaContinuedFraction(b, a, 1-x)/b
}

// betaContinuedFraction evaluates the continued fraction for the
// incomplete beta function by the modified Lentz method.
func betaContinuedFraction(a, b, x float64) float64 {
	const (
		maxIter = 200
		eps     = 3e-14
		fpmin   = 1e-300
	)

	qab := a + b
	qap := a + 1
	qam := a - 1

	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < fpmin {
		d = fpmin
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIter; m++ {
		m2 := float64(2 * m)
		fm := float64(m)

		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		h *= d * c

		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		del := d * c
		h *= del

		if math.Abs(del-1) < eps {
			break
		}
	}

	return h
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
