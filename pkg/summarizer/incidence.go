package summarizer

import (
	"runtime"
	"sort"

	"github.com/lintang-b-s/text-summarizer/pkg/lcm"

	"github.com/james-bowman/sparse"
	"golang.org/x/sync/errgroup"
)

// transactionContainsItemset checks the itemset against the transaction at
// the first occurrence of its leading item: the itemset must equal the
// transaction slice starting there, element-wise. Both arrays are sorted
// ascending, so this is a prefix-aligned subrun match, not subset inclusion.
func transactionContainsItemset(transaction, items []int) bool {
	if len(items) == 0 || len(transaction) == 0 {
		return false
	}

	startIndex := sort.SearchInts(transaction, items[0])
	if startIndex == len(transaction) || transaction[startIndex] != items[0] {
		return false
	}

	endIndex := startIndex + len(items) - 1
	if endIndex > len(transaction)-1 {
		endIndex = len(transaction) - 1
	}

	window := transaction[startIndex : endIndex+1]
	if len(window) != len(items) {
		return false
	}
	for i := range items {
		if window[i] != items[i] {
			return false
		}
	}
	return true
}

// buildIncidenceMatrix builds the 0/1 itemset x transaction matrix. Rows are
// filled concurrently, one itemset each, then merged in row order so the
// result is deterministic.
func buildIncidenceMatrix(itemsets []lcm.Itemset, transactions [][]int) *sparse.CSR {
	rows, cols := len(itemsets), len(transactions)
	containedCols := make([][]int, rows)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range itemsets {
		g.Go(func() error {
			for j, transaction := range transactions {
				if transactionContainsItemset(transaction, itemsets[i].Items) {
					containedCols[i] = append(containedCols[i], j)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	incidence := sparse.NewDOK(rows, cols)
	for i, colIDs := range containedCols {
		for _, j := range colIDs {
			incidence.Set(i, j, 1.0)
		}
	}

	return incidence.ToCSR()
}
