package quadrature

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monomialIntegral(k int) float64 {
	if k%2 == 1 {
		return 0
	}
	return 2 / float64(k+1)
}

func integrate(r Rule, k int) float64 {
	sum := 0.0
	for i := range r.Weights {
		sum += r.Weights[i] * math.Pow(r.CosTheta[i], float64(k))
	}
	return sum
}

func TestGaussLegendreExactness(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 33, 64} {
		r, err := GaussLegendre(n)
		require.NoError(t, err)
		require.Equal(t, n, r.Len())

		for k := 0; k <= 2*n-1; k++ {
			assert.InDelta(t, monomialIntegral(k), integrate(r, k), 1e-12, "n=%d k=%d", n, k)
		}
	}
}

func TestGaussLegendreKnownNodes(t *testing.T) {
	r, err := GaussLegendre(3)
	require.NoError(t, err)

	want := []float64{math.Sqrt(0.6), 0, -math.Sqrt(0.6)}
	if diff := cmp.Diff(want, r.CosTheta, cmpopts.EquateApprox(0, 1e-14)); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}

	wantW := []float64{5.0 / 9, 8.0 / 9, 5.0 / 9}
	if diff := cmp.Diff(wantW, r.Weights, cmpopts.EquateApprox(0, 1e-14)); diff != "" {
		t.Fatalf("weights mismatch (-want +got):\n%s", diff)
	}
}

func TestGaussLegendreFourPoint(t *testing.T) {
	r, err := GaussLegendre(4)
	require.NoError(t, err)

	inner := math.Sqrt(3.0/7 - 2.0/7*math.Sqrt(6.0/5))
	outer := math.Sqrt(3.0/7 + 2.0/7*math.Sqrt(6.0/5))
	wantX := []float64{outer, inner, -inner, -outer}
	wantW := []float64{
		(18 - math.Sqrt(30)) / 36,
		(18 + math.Sqrt(30)) / 36,
		(18 + math.Sqrt(30)) / 36,
		(18 - math.Sqrt(30)) / 36,
	}

	opt := cmpopts.EquateApprox(0, 1e-14)
	if diff := cmp.Diff(wantX, r.CosTheta, opt); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantW, r.Weights, opt); diff != "" {
		t.Fatalf("weights mismatch (-want +got):\n%s", diff)
	}
}

func TestGaussLegendreLargeGrid(t *testing.T) {
	r, err := GaussLegendre(180)
	require.NoError(t, err)

	sum := 0.0
	for i, w := range r.Weights {
		assert.Positive(t, w)
		sum += w
		if i > 0 {
			assert.Less(t, r.CosTheta[i], r.CosTheta[i-1])
		}
	}
	assert.InDelta(t, 2.0, sum, 1e-13)
	assert.Equal(t, r.CosTheta[0], -r.CosTheta[179])
	assert.Equal(t, r.Weights[0], r.Weights[179])
}

func TestFejer1Exactness(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 17, 64} {
		r, err := Fejer1(n)
		require.NoError(t, err)

		for k := 0; k <= n-1; k++ {
			assert.InDelta(t, monomialIntegral(k), integrate(r, k), 1e-12, "n=%d k=%d", n, k)
		}
	}
}

func TestFejer1NodesExcludePoles(t *testing.T) {
	r, err := Fejer1(180)
	require.NoError(t, err)

	first := math.Acos(r.CosTheta[0]) * 180 / math.Pi
	last := math.Acos(r.CosTheta[179]) * 180 / math.Pi
	assert.InDelta(t, 0.5, first, 1e-12)
	assert.InDelta(t, 179.5, last, 1e-12)
}

func TestNodesAreNorthFirstAndSymmetric(t *testing.T) {
	for name, build := range map[string]func(int) (Rule, error){
		"gauss": GaussLegendre,
		"fejer": Fejer1,
	} {
		t.Run(name, func(t *testing.T) {
			r, err := build(12)
			require.NoError(t, err)

			for i := 1; i < r.Len(); i++ {
				assert.Less(t, r.CosTheta[i], r.CosTheta[i-1])
			}
			for i := 0; i < r.Len(); i++ {
				j := r.Len() - 1 - i
				assert.InDelta(t, -r.CosTheta[i], r.CosTheta[j], 1e-14)
				assert.InDelta(t, r.Weights[i], r.Weights[j], 1e-14)
				assert.InDelta(t, 1.0, r.CosTheta[i]*r.CosTheta[i]+r.SinTheta[i]*r.SinTheta[i], 1e-14)
			}
		})
	}
}

func TestInvalidSize(t *testing.T) {
	_, err := GaussLegendre(0)
	assert.True(t, errors.Is(err, ErrInvalidSize))

	_, err = Fejer1(-3)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}
