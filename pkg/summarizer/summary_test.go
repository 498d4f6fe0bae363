package summarizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords(t *testing.T) {
	t.Run("keyword shared by two itemsets", func(t *testing.T) {
		itemsets := []ScoredItemset{
			{Text: "x y", Score: 0.8},
			{Text: "x z, w", Score: 0.4},
		}

		keywords := extractKeywords(itemsets)
		require.Len(t, keywords, 4)

		byKeyword := map[string]float64{}
		for _, keyword := range keywords {
			byKeyword[keyword.Keyword] = keyword.Score
		}

		// x appeared in both: (mean(0.8, 0.4))^(1/2)
		assert.InDelta(t, math.Pow(0.6, 0.5), byKeyword["x"], 1e-12)
		assert.InDelta(t, 0.8, byKeyword["y"], 1e-12)
		assert.InDelta(t, 0.4, byKeyword["z"], 1e-12)
		assert.InDelta(t, 0.4, byKeyword["w"], 1e-12)
	})

	t.Run("sorted by score descending, ties by keyword", func(t *testing.T) {
		itemsets := []ScoredItemset{
			{Text: "b a", Score: 0.5},
			{Text: "c", Score: 0.9},
		}

		keywords := extractKeywords(itemsets)
		require.Len(t, keywords, 3)
		assert.Equal(t, "c", keywords[0].Keyword)
		assert.Equal(t, "a", keywords[1].Keyword)
		assert.Equal(t, "b", keywords[2].Keyword)
	})

	t.Run("empty itemset list", func(t *testing.T) {
		assert.Empty(t, extractKeywords(nil))
	})
}

func TestSalienceDistribution(t *testing.T) {
	summary := &Summary{SalienceScores: []float64{0.0, 0.05, 0.5, 1.0}}

	t.Run("bucket index is max(0, ceil(s*b)-1)", func(t *testing.T) {
		histogram := summary.SalienceDistribution(10)
		require.Len(t, histogram, 10)

		assert.InDelta(t, 0.5, histogram[0], 1e-12) // 0.0 and 0.05
		assert.InDelta(t, 0.25, histogram[4], 1e-12)
		assert.InDelta(t, 0.25, histogram[9], 1e-12)

		total := 0.0
		for _, fraction := range histogram {
			total += fraction
		}
		assert.InDelta(t, 1.0, total, 1e-12)
	})

	t.Run("non-positive bucket count falls back to the default", func(t *testing.T) {
		histogram := summary.SalienceDistribution(0)
		assert.Len(t, histogram, DEFAULT_SALIENCE_BUCKETS)
	})

	t.Run("empty salience vector", func(t *testing.T) {
		empty := &Summary{SalienceScores: []float64{}}
		histogram := empty.SalienceDistribution(5)
		assert.Equal(t, []float64{0, 0, 0, 0, 0}, histogram)
	})
}

func TestSelectSentenceIndices(t *testing.T) {
	summary := &Summary{SalienceScores: []float64{0.2, 0.9, 0.5, 1.0}}

	assert.Equal(t, []int{1, 2, 3}, summary.SelectSentenceIndices(0.5))
	assert.Equal(t, []int{0, 1, 2, 3}, summary.SelectSentenceIndices(0.0))
	assert.Equal(t, []int{3}, summary.SelectSentenceIndices(1.0))
}
