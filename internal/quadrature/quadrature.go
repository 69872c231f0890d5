// Package quadrature provides latitude quadrature rules for spherical-harmonic
// analysis.
//
// Nodes are returned in colatitude order (north pole first), which is the order
// the transform in sphere/sht works in. Weights integrate over x = cos(theta)
// on [-1, 1] and therefore sum to 2.
package quadrature

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate/quad"
)

// ErrInvalidSize is returned for a non-positive node count.
var ErrInvalidSize = errors.New("quadrature: node count must be > 0")

// Rule holds the nodes and weights of a latitude quadrature.
//
// CosTheta and SinTheta describe the nodes; Weights are the integration
// weights with respect to cos(theta).
type Rule struct {
	CosTheta []float64
	SinTheta []float64
	Weights  []float64
}

// Len returns the number of nodes.
func (r Rule) Len() int { return len(r.Weights) }

// GaussLegendre returns the n-point Gauss-Legendre rule. It integrates
// polynomials in cos(theta) of degree up to 2n-1 exactly.
func GaussLegendre(n int) (Rule, error) {
	if n <= 0 {
		return Rule{}, ErrInvalidSize
	}

	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return x[order[a]] > x[order[b]] })

	// Fold the two hemispheres onto each other so the rule is exactly
	// symmetric about the equator.
	r := newRule(n)
	for i := 0; i < n/2; i++ {
		a, b := order[i], order[n-1-i]
		z := (x[a] - x[b]) / 2
		s := math.Sqrt((1 - z) * (1 + z))
		wt := (w[a] + w[b]) / 2

		r.CosTheta[i], r.SinTheta[i], r.Weights[i] = z, s, wt
		r.CosTheta[n-1-i], r.SinTheta[n-1-i], r.Weights[n-1-i] = -z, s, wt
	}

	if n%2 == 1 {
		r.Weights[n/2] = w[order[n/2]]
		r.CosTheta[n/2] = 0
		r.SinTheta[n/2] = 1
	}

	return r, nil
}

// Fejer1 returns Fejér's first rule on the equiangular colatitudes
// theta_j = (j + 1/2) * pi / n, which excludes both poles. It integrates
// polynomials in cos(theta) of degree up to n-1 exactly.
func Fejer1(n int) (Rule, error) {
	if n <= 0 {
		return Rule{}, ErrInvalidSize
	}

	r := newRule(n)
	half := n / 2

	for j := 0; j < n; j++ {
		theta := (float64(j) + 0.5) * math.Pi / float64(n)

		sum := 0.0
		for k := 1; k <= half; k++ {
			fk := float64(k)
			sum += math.Cos(2*fk*theta) / (4*fk*fk - 1)
		}

		r.CosTheta[j] = math.Cos(theta)
		r.SinTheta[j] = math.Sin(theta)
		r.Weights[j] = 2 / float64(n) * (1 - 2*sum)
	}

	// Pin the exact symmetry so an odd grid has a node exactly on the equator.
	if n%2 == 1 {
		r.CosTheta[n/2] = 0
		r.SinTheta[n/2] = 1
	}

	return r, nil
}

func newRule(n int) Rule {
	return Rule{
		CosTheta: make([]float64, n),
		SinTheta: make([]float64, n),
		Weights:  make([]float64, n),
	}
}
