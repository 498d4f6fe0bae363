package lcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMineClosedItemsets(t *testing.T) {
	transactions := [][]int{
		{1, 2, 3},
		{1, 2},
		{2, 3},
		{1, 2, 3},
	}

	t.Run("enumerates exactly the closed frequent itemsets", func(t *testing.T) {
		miner := NewMiner(transactions, 2)
		itemsets := miner.Mine()

		require.Len(t, itemsets, 4)
		assert.Equal(t, NewItemset([]int{2}, 4), itemsets[0])
		assert.Equal(t, NewItemset([]int{1, 2}, 3), itemsets[1])
		assert.Equal(t, NewItemset([]int{2, 3}, 3), itemsets[2])
		assert.Equal(t, NewItemset([]int{1, 2, 3}, 2), itemsets[3])
	})

	t.Run("non-closed itemsets are absent", func(t *testing.T) {
		miner := NewMiner(transactions, 2)
		for _, itemset := range miner.Mine() {
			// {1} and {3} have the same support as their closures {1,2} and {2,3}
			assert.NotEqual(t, []int{1}, itemset.Items)
			assert.NotEqual(t, []int{3}, itemset.Items)
		}
	})

	t.Run("minimum support prunes", func(t *testing.T) {
		miner := NewMiner(transactions, 4)
		itemsets := miner.Mine()

		require.Len(t, itemsets, 1)
		assert.Equal(t, NewItemset([]int{2}, 4), itemsets[0])
	})

	t.Run("grouped by level ascending", func(t *testing.T) {
		grouped := NewMiner(transactions, 2).MineGrouped()

		assert.Len(t, grouped[1], 1)
		assert.Len(t, grouped[2], 2)
		assert.Len(t, grouped[3], 1)
	})
}

func TestMineEdgeCases(t *testing.T) {
	t.Run("empty transaction list", func(t *testing.T) {
		itemsets := NewMiner([][]int{}, 1).Mine()
		assert.Empty(t, itemsets)
	})

	t.Run("support below one is clamped", func(t *testing.T) {
		itemsets := NewMiner([][]int{{0}}, 0).Mine()
		require.Len(t, itemsets, 1)
		assert.Equal(t, NewItemset([]int{0}, 1), itemsets[0])
	})

	t.Run("single transaction yields its own closure", func(t *testing.T) {
		itemsets := NewMiner([][]int{{0, 1, 2}}, 1).Mine()
		require.Len(t, itemsets, 1)
		assert.Equal(t, NewItemset([]int{0, 1, 2}, 1), itemsets[0])
	})

	t.Run("disjoint transactions", func(t *testing.T) {
		itemsets := NewMiner([][]int{{0, 1}, {2, 3}}, 1).Mine()

		require.Len(t, itemsets, 2)
		assert.Equal(t, NewItemset([]int{0, 1}, 1), itemsets[0])
		assert.Equal(t, NewItemset([]int{2, 3}, 1), itemsets[1])
	})
}

func TestMineDeterminism(t *testing.T) {
	transactions := [][]int{
		{0, 2, 5, 7},
		{0, 2, 7},
		{2, 5, 7},
		{0, 5},
		{0, 2, 5, 7},
	}

	first := NewMiner(transactions, 2).Mine()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, NewMiner(transactions, 2).Mine())
	}
}

// every mined itemset must occur in at least minSupport transactions, and no
// proper superset in the result may have the same support over the same
// transaction set
func TestClosedProperty(t *testing.T) {
	transactions := [][]int{
		{0, 1, 2, 3},
		{0, 1, 3},
		{1, 2, 3},
		{0, 2},
		{1, 3},
	}
	itemsets := NewMiner(transactions, 2).Mine()
	require.NotEmpty(t, itemsets)

	support := func(items []int) int {
		count := 0
		for _, transaction := range transactions {
			if len(intersectSorted(transaction, items)) == len(items) {
				count++
			}
		}
		return count
	}

	for _, itemset := range itemsets {
		assert.Equal(t, support(itemset.Items), itemset.Support)
		assert.GreaterOrEqual(t, itemset.Support, 2)

		for _, other := range itemsets {
			if len(other.Items) <= len(itemset.Items) {
				continue
			}
			if len(intersectSorted(other.Items, itemset.Items)) == len(itemset.Items) {
				assert.Less(t, other.Support, itemset.Support,
					"superset with equal support means the smaller set is not closed")
			}
		}
	}
}
