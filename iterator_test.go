package hamt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_Empty(t *testing.T) {
	trie := New[uint64](Mix64Hasher{})
	defer trie.Release()

	it := trie.Iterator()
	assert.False(t, it.Next())
	assert.False(t, it.Next())
}

func TestIterator_SingleValue(t *testing.T) {
	trie := New[uint64](Mix64Hasher{})
	defer trie.Release()

	require.True(t, trie.Add(42))

	it := trie.Iterator()
	require.True(t, it.Next())
	assert.Equal(t, uint64(42), it.Value())
	assert.False(t, it.Next())
}

func TestIterator_YieldsEveryValue(t *testing.T) {
	const total = 1000

	trie := New[uint64](Mix64Hasher{})
	defer trie.Release()

	for v := uint64(0); v < total; v++ {
		require.True(t, trie.Add(v))
	}
	require.Equal(t, uint64(total), trie.Len())

	collected := map[uint64]int{}
	for it := trie.Iterator(); it.Next(); {
		collected[it.Value()]++
	}

	require.Len(t, collected, total)
	for v := uint64(0); v < total; v++ {
		assert.Equal(t, 1, collected[v], "value %d", v)
	}
}

func TestIterator_DrainsCollisionBuckets(t *testing.T) {
	trie := New[uint64](bucketHasher{})
	defer trie.Release()

	for v := uint64(0); v < 5; v++ {
		require.True(t, trie.Add(v))
	}

	// a single leaf bucket holds all five; every one must come out
	collected := map[uint64]bool{}
	for it := trie.Iterator(); it.Next(); {
		collected[it.Value()] = true
	}

	assert.Len(t, collected, 5)
}

func TestIterator_Deterministic(t *testing.T) {
	trie := New[uint64](Mix64Hasher{})
	defer trie.Release()

	for v := uint64(0); v < 100; v++ {
		trie.Add(v)
	}

	var first, second []uint64
	for it := trie.Iterator(); it.Next(); {
		first = append(first, it.Value())
	}
	for it := trie.Iterator(); it.Next(); {
		second = append(second, it.Value())
	}

	assert.Equal(t, first, second)
}

func TestIter_Callback(t *testing.T) {
	trie := New[uint64](Mix64Hasher{})
	defer trie.Release()

	for v := uint64(0); v < 10; v++ {
		trie.Add(v)
	}

	var all []uint64
	trie.Iter(func(v uint64) bool {
		all = append(all, v)
		return true
	})
	assert.Len(t, all, 10)

	// an early false stops the walk
	var count int
	trie.Iter(func(uint64) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}
