package summarizer

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// rowScores computes, for every row of the singular-vector matrix m,
// sqrt(sum over i of m[row,i]^2 * sigma[i]^2) with i running through the
// inclusive upper bound.
func rowScores(m mat.Matrix, sigma []float64, upperBound int) []float64 {
	rows, cols := m.Dims()
	scores := make([]float64, rows)
	for row := 0; row < rows; row++ {
		sum := 0.0
		for i := 0; i <= upperBound && i < cols && i < len(sigma); i++ {
			component := m.At(row, i) * sigma[i]
			sum += component * component
		}
		scores[row] = math.Sqrt(sum)
	}
	return scores
}

// normalizeByMax scales the scores so the largest becomes exactly 1.0. An
// all-zero vector stays zero.
func normalizeByMax(scores []float64) {
	maxScore := 0.0
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore == 0 {
		return
	}
	for i := range scores {
		scores[i] /= maxScore
	}
}
