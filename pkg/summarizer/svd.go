package summarizer

import (
	"github.com/lintang-b-s/text-summarizer/pkg"

	"gonum.org/v1/gonum/mat"
)

type svdResult struct {
	u     mat.Dense // itemsets x k, left singular vectors
	v     mat.Dense // transactions x k, right singular vectors
	sigma []float64 // singular values, descending
}

// truncatedSVD factorizes the incidence matrix. Non-convergence is surfaced
// to the caller unchanged, no fallback.
func truncatedSVD(a mat.Matrix) (*svdResult, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, pkg.WrapErrorf(nil, pkg.ErrSVDNotConverged,
			"svd factorization of the incidence matrix did not converge")
	}

	res := &svdResult{
		sigma: svd.Values(nil),
	}
	svd.UTo(&res.u)
	svd.VTo(&res.v)

	return res, nil
}

// relevantSingularValueBound walks the singular values while they stay at or
// above half the largest one. The returned index is an inclusive upper bound
// for the scoring summation: it covers one index past the values that cleared
// the threshold (capped at k-1), which is what the scoring was tuned against.
func relevantSingularValueBound(sigma []float64) int {
	if len(sigma) == 0 {
		return 0
	}
	threshold := sigma[0] / 2

	index := 0
	for index < len(sigma)-1 && sigma[index] >= threshold {
		index++
	}
	return index
}
