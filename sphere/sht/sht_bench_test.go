package sht

import (
	"testing"

	"github.com/cwbudde/algo-sphere/internal/testutil"
	"github.com/cwbudde/algo-sphere/sphere/grid"
)

func BenchmarkAnalyzeT85(b *testing.B) {
	tr, err := NewTransform(85, grid.Regular, 180, 360)
	if err != nil {
		b.Fatal(err)
	}
	data := testutil.Sample(tr.Latitudes(), grid.Longitudes(360), testutil.Cubic)
	c := NewCoeffs(85)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tr.AnalyzeInto(c, data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSynthesizeT85(b *testing.B) {
	tr, err := NewTransform(85, grid.Regular, 180, 360)
	if err != nil {
		b.Fatal(err)
	}
	data := testutil.Sample(tr.Latitudes(), grid.Longitudes(360), testutil.Cubic)
	c, err := tr.Analyze(data)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tr.Synthesize(data, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRotationT85(b *testing.B) {
	rot, err := NewRotation(85)
	if err != nil {
		b.Fatal(err)
	}
	c := NewCoeffs(85)
	c.Set(10, 3, complex(1, 0.5))
	out := NewCoeffs(85)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Alternate like a centering call does: both betas stay cached.
		rot.SetAnglesZYZ(0.2, 1.1, 0.3)
		if err := rot.ApplyRealInto(out, c); err != nil {
			b.Fatal(err)
		}
		rot.SetAnglesZYZ(0, -1.5707963267948966, 0)
		if err := rot.ApplyRealInto(out, out); err != nil {
			b.Fatal(err)
		}
	}
}
