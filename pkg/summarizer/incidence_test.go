package summarizer

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/lintang-b-s/text-summarizer/pkg/lcm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionContainsItemset(t *testing.T) {
	t.Run("singleton anywhere in the transaction", func(t *testing.T) {
		assert.True(t, transactionContainsItemset([]int{1, 5}, []int{5}))
		assert.True(t, transactionContainsItemset([]int{5}, []int{5}))
		assert.False(t, transactionContainsItemset([]int{1, 2}, []int{3}))
	})

	t.Run("itemset must be a contiguous run from its first item", func(t *testing.T) {
		assert.True(t, transactionContainsItemset([]int{1, 2, 3}, []int{1, 2, 3}))
		assert.True(t, transactionContainsItemset([]int{0, 2, 3, 9}, []int{2, 3}))
		// subset but not contiguous from the first occurrence
		assert.False(t, transactionContainsItemset([]int{1, 3, 5}, []int{1, 5}))
		assert.False(t, transactionContainsItemset([]int{1, 2, 4, 5}, []int{2, 5}))
	})

	t.Run("itemset longer than the tail is clipped and rejected", func(t *testing.T) {
		assert.False(t, transactionContainsItemset([]int{3, 4}, []int{4, 5}))
		assert.False(t, transactionContainsItemset([]int{3, 4}, []int{3, 4, 5}))
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.False(t, transactionContainsItemset(nil, []int{1}))
		assert.False(t, transactionContainsItemset([]int{1}, nil))
	})
}

// referenceContains is a straight transliteration of the containment rule:
// locate the first item, clip the window to the transaction tail, compare
// element-wise.
func referenceContains(transaction, items []int) bool {
	if len(items) == 0 || len(transaction) == 0 {
		return false
	}
	startIndex := -1
	for i, v := range transaction {
		if v == items[0] {
			startIndex = i
			break
		}
	}
	if startIndex == -1 {
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
	for i := range window {
		if window[i] != items[i] {
			return false
		}
	}
	return true
}

func TestTransactionContainsItemsetProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	randomSortedSet := func(maxLen, maxVal int) []int {
		seen := map[int]struct{}{}
		for i := 0; i < rng.Intn(maxLen)+1; i++ {
			seen[rng.Intn(maxVal)] = struct{}{}
		}
		out := make([]int, 0, len(seen))
		for v := range seen {
			out = append(out, v)
		}
		sort.Ints(out)
		return out
	}

	for i := 0; i < 10000; i++ {
		transaction := randomSortedSet(12, 20)
		items := randomSortedSet(5, 20)
		assert.Equal(t, referenceContains(transaction, items),
			transactionContainsItemset(transaction, items),
			"transaction=%v items=%v", transaction, items)
	}
}

func TestBuildIncidenceMatrix(t *testing.T) {
	transactions := [][]int{
		{0, 1, 2},
		{0, 1, 2},
		{3},
		{0},
	}
	itemsets := []lcm.Itemset{
		lcm.NewItemset([]int{0}, 3),
		lcm.NewItemset([]int{3}, 1),
		lcm.NewItemset([]int{0, 1, 2}, 2),
	}

	incidence := buildIncidenceMatrix(itemsets, transactions)

	rows, cols := incidence.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)

	expected := [][]float64{
		{1, 1, 0, 1},
		{0, 0, 1, 0},
		{1, 1, 0, 0},
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, expected[i][j], incidence.At(i, j), "row %d col %d", i, j)
		}
	}
}
