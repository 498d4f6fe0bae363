package summarizer

import (
	"math"
	"sort"
	"strings"
)

type ScoredItemset struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

type ScoredKeyword struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
}

// Summary is the self-contained result of one summarizer run. SalienceScores
// is aligned with the input sentence list; sentences that produced an empty
// transaction score 0.0.
type Summary struct {
	SalienceScores   []float64       `json:"salience_scores"`
	RelevantItemsets []ScoredItemset `json:"relevant_itemsets"`
	RelevantKeywords []ScoredKeyword `json:"relevant_keywords"`
}

func newEmptySummary(sentenceCount int) *Summary {
	return &Summary{
		SalienceScores:   make([]float64, sentenceCount),
		RelevantItemsets: []ScoredItemset{},
		RelevantKeywords: []ScoredKeyword{},
	}
}

// SelectSentenceIndices returns, in input order, the indices of sentences
// whose salience reaches the given summary strength.
func (s *Summary) SelectSentenceIndices(strength float64) []int {
	selected := make([]int, 0, len(s.SalienceScores))
	for i, salience := range s.SalienceScores {
		if salience >= strength {
			selected = append(selected, i)
		}
	}
	return selected
}

// SalienceDistribution buckets the salience vector into equal-width buckets
// over [0, 1] and returns per-bucket sentence fractions. A score s lands in
// bucket max(0, ceil(s*buckets)-1).
func (s *Summary) SalienceDistribution(buckets int) []float64 {
	if buckets <= 0 {
		buckets = DEFAULT_SALIENCE_BUCKETS
	}

	counts := make([]float64, buckets)
	for _, salience := range s.SalienceScores {
		bucket := int(math.Ceil(salience*float64(buckets))) - 1
		if bucket < 0 {
			bucket = 0
		}
		if bucket > buckets-1 {
			bucket = buckets - 1
		}
		counts[bucket]++
	}

	total := float64(len(s.SalienceScores))
	if total == 0 {
		return counts
	}
	for i := range counts {
		counts[i] /= total
	}
	return counts
}

// extractKeywords splits each rendered itemset into whitespace keywords and
// aggregates, per keyword, the scores of the itemsets it appeared in. The
// keyword score is mean(scores)^(1/n); output is sorted by score descending,
// ties by keyword ascending.
func extractKeywords(itemsets []ScoredItemset) []ScoredKeyword {
	scoresByKeyword := make(map[string][]float64)
	for _, itemset := range itemsets {
		text := strings.ReplaceAll(itemset.Text, ",", " ")
		for _, keyword := range strings.Fields(text) {
			scoresByKeyword[keyword] = append(scoresByKeyword[keyword], itemset.Score)
		}
	}

	keywords := make([]ScoredKeyword, 0, len(scoresByKeyword))
	for keyword, scores := range scoresByKeyword {
		sum := 0.0
		for _, score := range scores {
			sum += score
		}
		mean := sum / float64(len(scores))
		keywords = append(keywords, ScoredKeyword{
			Keyword: keyword,
			Score:   math.Pow(mean, 1/float64(len(scores))),
		})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Keyword < keywords[j].Keyword
	})

	return keywords
}
