package testutil

import (
	"math"
	"testing"
)

func TestWorstDiff(t *testing.T) {
	i, d := WorstDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if i != 2 || d != 1 {
		t.Fatalf("WorstDiff = (%d, %v), want (2, 1)", i, d)
	}

	if i, d := WorstDiff([]float64{1, math.NaN(), 5}, []float64{1, 2, 3}); i != 1 || !math.IsNaN(d) {
		t.Fatalf("WorstDiff with NaN = (%d, %v), want (1, NaN)", i, d)
	}

	if i, d := WorstDiff([]float64{1}, []float64{1, 2}); i != -1 || !math.IsInf(d, 1) {
		t.Fatalf("WorstDiff length mismatch = (%d, %v), want (-1, +Inf)", i, d)
	}

	if i, d := WorstDiff(nil, nil); i != -1 || d != 0 {
		t.Fatalf("WorstDiff empty = (%d, %v), want (-1, 0)", i, d)
	}
}

func TestRotationsMovePoints(t *testing.T) {
	pole := Vec3{0, 0, 1}

	got := RotY(math.Pi / 2).Apply(pole)
	want := Vec3{1, 0, 0}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Fatalf("RotY(pi/2) pole = %v, want %v", got, want)
		}
	}

	lat, lon := LatLon(RotZ(math.Pi / 2).Apply(Vec3{1, 0, 0}))
	if math.Abs(lat) > 1e-12 || math.Abs(lon-90) > 1e-12 {
		t.Fatalf("RotZ(pi/2) x = (%v, %v), want (0, 90)", lat, lon)
	}

	r := EulerZYZ(0.3, 1.1, -0.7)
	id := r.Mul(r.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(id[i][j]-want) > 1e-14 {
				t.Fatalf("R*R^T[%d][%d] = %v", i, j, id[i][j])
			}
		}
	}
}

func TestLatLonRoundTrip(t *testing.T) {
	for _, p := range [][2]float64{{30, 200}, {-45, 10}, {0, 180}, {89, 359}} {
		lat, lon := LatLon(UnitVector(p[0], p[1]))
		if math.Abs(lat-p[0]) > 1e-10 || math.Abs(lon-p[1]) > 1e-10 {
			t.Fatalf("round trip %v -> (%v, %v)", p, lat, lon)
		}
	}
}

func TestBumpPeak(t *testing.T) {
	c := UnitVector(30, 200)
	if v := Bump(c, c, 10); math.Abs(v-1) > 1e-12 {
		t.Fatalf("Bump at center = %v, want 1", v)
	}
	if v := Bump(UnitVector(40, 200), c, 10); math.Abs(v-math.Exp(-0.5)) > 1e-9 {
		t.Fatalf("Bump one sigma away = %v, want %v", v, math.Exp(-0.5))
	}
}
