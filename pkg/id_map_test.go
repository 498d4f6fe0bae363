package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDMap(t *testing.T) {
	idMap := NewIDMap()

	assert.Equal(t, 0, idMap.GetID("harga"))
	assert.Equal(t, 1, idMap.GetID("naik"))
	assert.Equal(t, 0, idMap.GetID("harga"), "insertion is idempotent")

	assert.Equal(t, "harga", idMap.GetStr(0))
	assert.Equal(t, "", idMap.GetStr(99))
	assert.Equal(t, 2, idMap.Len())
}

func TestSequenceIDMap(t *testing.T) {
	seqMap := NewSequenceIDMap()

	assert.Equal(t, 0, seqMap.GetID([]int{1, 2}))
	assert.Equal(t, 1, seqMap.GetID([]int{2, 1}), "order matters")
	assert.Equal(t, 0, seqMap.GetID([]int{1, 2}))

	// no key collision between [1,22] and [12,2]
	a := seqMap.GetID([]int{1, 22})
	b := seqMap.GetID([]int{12, 2})
	assert.NotEqual(t, a, b)

	assert.Equal(t, []int{1, 2}, seqMap.GetSeq(0))
	assert.Nil(t, seqMap.GetSeq(99))

	// stored sequence is a copy, mutating the argument later is safe
	window := []int{7, 8}
	id := seqMap.GetID(window)
	window[0] = 9
	assert.Equal(t, []int{7, 8}, seqMap.GetSeq(id))
}
