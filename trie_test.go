package hamt

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	trie := New[uint64](Mix64Hasher{})
	defer trie.Release()

	assert.Equal(t, uint64(0), trie.Len())
	assert.True(t, trie.Empty())
	assert.False(t, trie.Has(0))
}

func TestHashTrie_AddHas(t *testing.T) {
	trie := New[string](StringHasher{})
	defer trie.Release()

	require.True(t, trie.Add("a"))
	require.True(t, trie.Add("b"))
	require.False(t, trie.Add("a"))

	assert.Equal(t, uint64(2), trie.Len())
	assert.False(t, trie.Empty())
	assert.True(t, trie.Has("a"))
	assert.True(t, trie.Has("b"))
	assert.False(t, trie.Has("c"))
}

func TestHashTrie_CloneIsolation(t *testing.T) {
	trie := New[uint64](Mix64Hasher{})
	defer trie.Release()

	trie.Add(1)
	trie.Add(2)

	snap := trie.Clone()
	defer snap.Release()

	// mutating the original is invisible through the clone
	trie.Add(3)

	assert.Equal(t, uint64(3), trie.Len())
	assert.Equal(t, uint64(2), snap.Len())
	assert.True(t, trie.Has(3))
	assert.False(t, snap.Has(3))
	assert.True(t, snap.Has(1))
}

func TestHashTrie_FakeData(t *testing.T) {
	const (
		total = 20_000
		seed  = 1234567890
	)

	var (
		trie  = New[string](StringHasher{})
		state = map[string]bool{}
		fake  = gofakeit.New(seed)
	)
	defer trie.Release()

	for i := 0; i < total; i++ {
		word := fake.HipsterSentence(3)
		trie.Add(word)
		state[word] = true
	}

	require.Equal(t, uint64(len(state)), trie.Len())

	// every inserted value is a member
	for word := range state {
		require.True(t, trie.Has(word), "missing %q", word)
	}

	// values never inserted are not
	for i := 0; i < 1000; i++ {
		word := fake.HackerPhrase()
		if !state[word] {
			require.False(t, trie.Has(word), "phantom %q", word)
		}
	}

	// iteration yields exactly the inserted set
	collected := map[string]int{}
	trie.Iter(func(s string) bool {
		collected[s]++
		return true
	})
	require.Len(t, collected, len(state))
	for word := range collected {
		require.Equal(t, 1, collected[word])
		require.True(t, state[word])
	}
}

func TestHashTrie_BranchInvariants(t *testing.T) {
	const total = 5000

	trie := New[uint64](Mix64Hasher{})
	defer trie.Release()

	for v := uint64(0); v < total; v++ {
		trie.Add(v)
	}

	var walk func(br *branchNode[uint64])
	walk = func(br *branchNode[uint64]) {
		// width panics when the bitmap disagrees with the child count
		width := br.width()
		for i := 0; i < width; i++ {
			child := br.childAt(compactIndex(i))
			if child.isLeaf() {
				leaf := child.asLeaf()
				require.GreaterOrEqual(t, leaf.size(), 1)
				hasher := Mix64Hasher{}
				for j := 0; j < leaf.size(); j++ {
					require.Equal(t, leaf.hash, hasher.Hash(leaf.valueAt(j)))
				}
			} else {
				walk(child.asBranch())
			}
		}
	}
	walk(trie.root)
}

func TestHashTrie_RefsReturnToBaseline(t *testing.T) {
	before := liveRefs.Load()

	trie := New[uint64](Mix64Hasher{})
	for v := uint64(0); v < 1000; v++ {
		trie.Add(v)
	}

	snap := trie.Clone()
	trie.Add(1000)

	it := snap.Iterator()
	for it.Next() {
	}

	snap.Release()
	trie.Release()

	assert.Equal(t, before, liveRefs.Load())
}
