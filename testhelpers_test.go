package spectral

import (
	"math/rand"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func randomData(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	a := make([]float64, n)
	for i := range a {
		a[i] = 2*r.Float64() - 1
	}
	return a
}

// approx tolerates the rounding gap between the fast engines and the
// direct-sum oracles, which grows with the number of accumulated terms.
func approx(terms int) cmp.Option {
	return cmpopts.EquateApprox(1e-8, 1e-8*float64(terms+1))
}
