package lcm

import (
	"sort"
)

// Closed frequent itemset mining with prefix-preserving closure extension.
// https://research.nii.ac.jp/~uno/papers/lcm2.pdf (Uno, Kiyomi, Arimura. LCM ver.2)
//
// Transactions are sorted ascending int arrays without duplicates. An itemset
// is closed iff no proper superset occurs in exactly the same transactions.

type Itemset struct {
	Items   []int
	Support int
}

func NewItemset(items []int, support int) Itemset {
	return Itemset{
		Items:   items,
		Support: support,
	}
}

type Miner struct {
	transactions [][]int
	minSupport   int
	tidLists     map[int][]int // itemID -> ascending ids of transactions containing it
	freqItems    []int
	patternLevel map[int][]Itemset // itemset size -> closed itemsets of that size
}

// NewMiner builds a miner over the given transactions with an absolute
// minimum support count. Supports below 1 are clamped to 1.
func NewMiner(transactions [][]int, minSupport int) *Miner {
	if minSupport < 1 {
		minSupport = 1
	}
	return &Miner{
		transactions: transactions,
		minSupport:   minSupport,
		tidLists:     make(map[int][]int),
		patternLevel: make(map[int][]Itemset),
	}
}

// MineGrouped enumerates every closed frequent itemset, grouped by itemset
// size. Each group is sorted lexicographically by item ids.
func (m *Miner) MineGrouped() map[int][]Itemset {
	if len(m.transactions) == 0 {
		return m.patternLevel
	}

	m.buildTidLists()

	allTids := make([]int, len(m.transactions))
	for i := range m.transactions {
		allTids[i] = i
	}

	root := m.closure(allTids)
	if len(root) > 0 && len(allTids) >= m.minSupport {
		m.emit(root, len(allTids))
	}
	m.expand(root, allTids, -1)

	for level := range m.patternLevel {
		group := m.patternLevel[level]
		sort.Slice(group, func(i, j int) bool {
			return lessItems(group[i].Items, group[j].Items)
		})
	}

	return m.patternLevel
}

// Mine flattens the grouped result in ascending itemset-size order.
func (m *Miner) Mine() []Itemset {
	grouped := m.MineGrouped()

	levels := make([]int, 0, len(grouped))
	for level := range grouped {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	flat := make([]Itemset, 0)
	for _, level := range levels {
		flat = append(flat, grouped[level]...)
	}
	return flat
}

func (m *Miner) buildTidLists() {
	for tid, transaction := range m.transactions {
		for _, item := range transaction {
			m.tidLists[item] = append(m.tidLists[item], tid)
		}
	}

	m.freqItems = make([]int, 0, len(m.tidLists))
	for item, tids := range m.tidLists {
		if len(tids) >= m.minSupport {
			m.freqItems = append(m.freqItems, item)
		}
	}
	sort.Ints(m.freqItems)
}

// expand walks the prefix-preserving-closure tree rooted at the closed
// itemset p (occurring in exactly the transactions tids). Every ppc child is
// emitted then expanded; the theorem in the LCM paper guarantees each closed
// itemset is visited exactly once.
func (m *Miner) expand(p []int, tids []int, coreItem int) {
	for _, e := range m.freqItems {
		if e <= coreItem || containsItem(p, e) {
			continue
		}

		subTids := intersectSorted(tids, m.tidLists[e])
		if len(subTids) < m.minSupport {
			continue
		}

		q := m.closure(subTids)
		if !prefixPreserved(q, p, e) {
			continue
		}

		m.emit(q, len(subTids))
		m.expand(q, subTids, e)
	}
}

// closure returns the items present in every one of the given transactions.
func (m *Miner) closure(tids []int) []int {
	if len(tids) == 0 {
		return nil
	}
	closed := append([]int{}, m.transactions[tids[0]]...)
	for _, tid := range tids[1:] {
		closed = intersectSorted(closed, m.transactions[tid])
		if len(closed) == 0 {
			break
		}
	}
	return closed
}

func (m *Miner) emit(items []int, support int) {
	m.patternLevel[len(items)] = append(m.patternLevel[len(items)],
		NewItemset(append([]int{}, items...), support))
}

// prefixPreserved reports whether every item of q below e already occurs in
// p. Since p is always a subset of q, this is the ppc test q∩[0,e) == p∩[0,e).
func prefixPreserved(q, p []int, e int) bool {
	pi := 0
	for _, item := range q {
		if item >= e {
			break
		}
		for pi < len(p) && p[pi] < item {
			pi++
		}
		if pi == len(p) || p[pi] != item {
			return false
		}
		pi++
	}
	return true
}

func intersectSorted(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func containsItem(sorted []int, item int) bool {
	idx := sort.SearchInts(sorted, item)
	return idx < len(sorted) && sorted[idx] == item
}

func lessItems(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
