package casf_test

import (
	"testing"

	"github.com/katalvlaran/morphtree/attribute"
	"github.com/katalvlaran/morphtree/casf"
)

// BenchmarkFilter_Incremental measures the adjustment engine over a CASF
// schedule; BenchmarkFilter_Naive is the rebuild pipeline on the same input.
// The two produce bit-identical images; the gap is the engine's reason to
// exist.
func BenchmarkFilter_Incremental(b *testing.B) {
	im := randomImage(64, 64, 5)
	thresholds := []float64{4, 16, 64}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := casf.NewSession(im.Clone(), casf.DefaultOptions())
		if err != nil {
			b.Fatal(err)
		}
		if _, err = s.Filter(attribute.Area, thresholds); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilter_Naive(b *testing.B) {
	im := randomImage(64, 64, 5)
	thresholds := []float64{4, 16, 64}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := casf.NaiveFilter(im, attribute.Area, thresholds, 1.5); err != nil {
			b.Fatal(err)
		}
	}
}
