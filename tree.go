package merkletree

// Tree is the root node of a history-authenticating Merkle tree together
// with its height and size. Trees are values: New and Add never mutate an
// existing Tree or the nodes it owns, so a Tree may be freely shared for
// read-only use while Add produces a new Tree that structurally shares
// every subtree it didn't have to touch.
type Tree struct {
	root   *node
	height int
	size   int
}

// New builds a Tree from an ordered list of data blocks. An empty list
// yields the canonical empty tree: height 1, size 0, both leaves default.
// Otherwise height is ceil(log2(len(blocks))) and the block list is padded
// on the right with empty-string default leaves up to the next power of
// two.
func New(blocks [][]byte) *Tree {
	n := len(blocks)
	if n == 0 {
		return &Tree{root: defaultSubtree(1), height: 1, size: 0}
	}
	h := ceilLog2(n)
	padded := make([][]byte, 1<<uint(h))
	copy(padded, blocks)
	return &Tree{root: buildNode(padded, h), height: h, size: n}
}

// buildNode recursively halves blocks, forming a leaf once a single block
// remains and an inner node (caching its digest) otherwise.
func buildNode(blocks [][]byte, depth int) *node {
	if depth == 0 {
		return newLeaf(leafHash(blocks[0]))
	}
	mid := len(blocks) / 2
	left := buildNode(blocks[:mid], depth-1)
	right := buildNode(blocks[mid:], depth-1)
	return newInner(left, right)
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	h := 0
	for (1 << uint(h)) < n {
		h++
	}
	return h
}

// Size returns the number of real leaves inserted so far.
func (t *Tree) Size() int {
	return t.size
}

// Height returns the tree's depth from root to any leaf.
func (t *Tree) Height() int {
	return t.height
}

// RootDigest returns the digest at the root of the tree.
func (t *Tree) RootDigest() Digest {
	return t.root.digest
}

// computePath returns the h-bit big-endian binary expansion of i: bit 0
// means "go left", bit 1 means "go right", most-significant bit first.
func computePath(h, i int) []int {
	p := make([]int, h)
	for b := 0; b < h; b++ {
		shift := h - 1 - b
		p[b] = (i >> uint(shift)) & 1
	}
	return p
}

// Add appends a single real block as the size-th leaf (0-indexed),
// returning a new Tree. If the tree is structurally full of real leaves
// (size == 2^height), its capacity is first doubled (height grows by one)
// by pairing the existing root with an entirely-default sibling subtree of
// the same shape before the new leaf is placed. Add refuses to overwrite a leaf that isn't the
// default leaf, returning an InvariantViolation error; inputs are left
// untouched on error.
func (t *Tree) Add(block []byte) (*Tree, error) {
	if t.size == 1<<uint(t.height) {
		sibling := defaultSubtree(t.height)
		doubled := &Tree{
			root:   newInner(t.root, sibling),
			height: t.height + 1,
			size:   t.size,
		}
		return doubled.Add(block)
	}

	path := computePath(t.height, t.size)
	newRoot, err := addAt(t.root, path, block)
	if err != nil {
		return nil, err
	}
	return &Tree{root: newRoot, height: t.height, size: t.size + 1}, nil
}

// addAt descends n along path, replacing the default leaf at its end with
// a real leaf built from block, rebuilding the spine on the way back up
// while reusing every untouched sibling by pointer.
func addAt(n *node, path []int, block []byte) (*node, error) {
	if len(path) == 0 {
		if !isDefaultLeaf(n) {
			return nil, errInvariantViolation("add: destination leaf is not the default leaf")
		}
		return newLeaf(leafHash(block)), nil
	}
	if path[0] == 0 {
		left, err := addAt(n.left, path[1:], block)
		if err != nil {
			return nil, err
		}
		return newInner(left, n.right), nil
	}
	right, err := addAt(n.right, path[1:], block)
	if err != nil {
		return nil, err
	}
	return newInner(n.left, right), nil
}
