package summarizer

import (
	"sort"
	"strings"

	"github.com/lintang-b-s/text-summarizer/pkg"
)

// itemIndexer turns per-sentence lemma lists into transactions: the sorted,
// deduplicated set of n-gram ids occurring in the sentence. Both dictionaries
// are freshly allocated per summarizer run and shared across its sentences.
type itemIndexer struct {
	termIDMap    *pkg.IDMap
	ngramIDMap   *pkg.SequenceIDMap
	minNgramSize int
	maxNgramSize int
}

func newItemIndexer(minNgramSize, maxNgramSize int) *itemIndexer {
	return &itemIndexer{
		termIDMap:    pkg.NewIDMap(),
		ngramIDMap:   pkg.NewSequenceIDMap(),
		minNgramSize: minNgramSize,
		maxNgramSize: maxNgramSize,
	}
}

// indexSentence maps the lemmas to term ids, enumerates every contiguous
// n-gram window inside the configured size range, and emits the sentence's
// transaction. A window of width l starting at position s is emitted iff
// s + l < len(termIDs), so the window touching the last term is skipped.
func (ix *itemIndexer) indexSentence(lemmas []string) []int {
	termIDs := make([]int, len(lemmas))
	for i, lemma := range lemmas {
		termIDs[i] = ix.termIDMap.GetID(lemma)
	}

	if len(termIDs) < ix.minNgramSize {
		return []int{}
	}

	itemSet := make(map[int]struct{})
	for width := ix.minNgramSize; width <= ix.maxNgramSize; width++ {
		for start := 0; start+width < len(termIDs); start++ {
			itemID := ix.ngramIDMap.GetID(termIDs[start : start+width])
			itemSet[itemID] = struct{}{}
		}
	}

	transaction := make([]int, 0, len(itemSet))
	for itemID := range itemSet {
		transaction = append(transaction, itemID)
	}
	sort.Ints(transaction)

	return transaction
}

// ngramText renders one n-gram item back to its lemma sequence, space joined.
func (ix *itemIndexer) ngramText(itemID int) string {
	termIDs := ix.ngramIDMap.GetSeq(itemID)
	lemmas := make([]string, len(termIDs))
	for i, termID := range termIDs {
		lemmas[i] = ix.termIDMap.GetStr(termID)
	}
	return strings.Join(lemmas, " ")
}
