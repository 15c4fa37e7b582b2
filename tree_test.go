package merkletree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blocks(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestEmptyTree(t *testing.T) {
	tr := New(nil)
	assert.Equal(t, 0, tr.Size())
	assert.Equal(t, 1, tr.Height())
	assert.Equal(t, nodeHash(leafHash(nil), leafHash(nil)), tr.RootDigest())
}

func TestOneItemTree(t *testing.T) {
	tr := New(blocks("a"))
	assert.Equal(t, 1, tr.Size())
	assert.Equal(t, 0, tr.Height())
	assert.Equal(t, leafHash([]byte("a")), tr.RootDigest())
}

func TestNewHeightAndSize(t *testing.T) {
	cases := []struct {
		n          int
		wantHeight int
		wantSize   int
	}{
		{1, 0, 1},
		{2, 1, 2},
		{3, 2, 3},
		{4, 2, 4},
		{7, 3, 7},
		{8, 3, 8},
		{9, 4, 9},
	}
	for _, c := range cases {
		bs := make([]string, c.n)
		for i := range bs {
			bs[i] = string(rune('a' + i))
		}
		tr := New(blocks(bs...))
		assert.Equalf(t, c.wantHeight, tr.Height(), "n=%d", c.n)
		assert.Equalf(t, c.wantSize, tr.Size(), "n=%d", c.n)
	}
}

func TestPath(t *testing.T) {
	assert.Equal(t, []int{0, 0, 0}, computePath(3, 0))
	assert.Equal(t, []int{0, 0, 1}, computePath(3, 1))
	assert.Equal(t, []int{1, 1, 1}, computePath(3, 7))
}

func TestDefaultDigestRecurrence(t *testing.T) {
	assert.Equal(t, leafHash(nil), defaultDigest(0))
	for k := 1; k < 5; k++ {
		want := nodeHash(defaultDigest(k-1), defaultDigest(k-1))
		assert.Equal(t, want, defaultDigest(k))
	}
}

func TestAddSizeAndHeightInvariant(t *testing.T) {
	tr := New(nil)
	for i := 0; i < 20; i++ {
		prevHeight := tr.Height()
		prevSize := tr.Size()
		full := prevSize == 1<<uint(prevHeight)

		next, err := tr.Add([]byte{byte(i)})
		require.NoError(t, err)

		assert.Equal(t, prevSize+1, next.Size())
		if full {
			assert.Equal(t, prevHeight+1, next.Height())
		} else {
			assert.Equal(t, prevHeight, next.Height())
		}
		tr = next
	}
}

func TestAddRefusesToOverwriteRealLeaf(t *testing.T) {
	tr := New(blocks("a"))
	// tr.root is a real leaf ("a"); an empty path targets it directly.
	_, err := addAt(tr.root, []int{}, []byte("b"))
	require.Error(t, err)
	var treeErr *TreeError
	require.ErrorAs(t, err, &treeErr)
	assert.Equal(t, KindInvariantViolation, treeErr.Kind)
}

func TestAddIsomorphicToConstruction(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g"}

	built := New(blocks(words...))

	incremental := New(nil)
	for _, w := range words {
		var err error
		incremental, err = incremental.Add([]byte(w))
		require.NoError(t, err)
	}

	assert.Equal(t, built.Height(), incremental.Height())
	assert.Equal(t, built.Size(), incremental.Size())
	assert.Equal(t, built.RootDigest(), incremental.RootDigest())
	assertNodesEqual(t, built.root, incremental.root)
}

func assertNodesEqual(t *testing.T, a, b *node) {
	t.Helper()
	require.Equal(t, a.digest, b.digest)
	require.Equal(t, a.isLeaf(), b.isLeaf())
	if a.isLeaf() {
		return
	}
	assertNodesEqual(t, a.left, b.left)
	assertNodesEqual(t, a.right, b.right)
}

func TestFullTreeAppendPromotesHeight(t *testing.T) {
	tr := New(blocks("a", "b")) // size 2, height 1, full
	next, err := tr.Add([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, 2, next.Height())
	assert.Equal(t, 3, next.Size())
}
