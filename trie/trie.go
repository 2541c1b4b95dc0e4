package trie

// Trie is a Merkle-Patricia trie mapping byte keys to
// byte values. It is the sole owner of its current root;
// Put builds a new root (unchanged subtrees are shared,
// not copied) and stores it in the Trie, so callers
// sharing one Trie across goroutines must serialize
// writes themselves. Reads (Get,
// GenerateProof, RootHash) never need synchronization
// while no write is in flight.
type Trie struct {
	root Node
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: EmptyNode}
}

// RootHash returns the Keccak-256 hash of the current
// root node's canonical encoding.
func (t *Trie) RootHash() Hash {
	return t.root.Hash()
}

// Root returns the current root node.
func (t *Trie) Root() Node {
	return t.root
}

// Put inserts or replaces the value for key.
func (t *Trie) Put(key, value []byte) {
	t.root = put(t.root, NewPath(key), value)
}

// Get retrieves the value for key, or nil if key is
// absent. Absence is not an error: per this trie's
// contract, a present key mapped to an explicitly empty
// value is indistinguishable from an absent key.
func (t *Trie) Get(key []byte) []byte {
	return get(t.root, NewPath(key))
}

func put(node Node, key Path, value []byte) Node {
	switch n := node.(type) {
	case emptyNode:
		return NewLeafNode(key, value)

	case *LeafNode:
		return putIntoLeaf(n, key, value)

	case *ExtensionNode:
		return putIntoExtension(n, key, value)

	case *BranchNode:
		return putIntoBranch(n, key, value)

	default:
		panic("trie: put encountered an undecoded node; Trie.Put only operates on in-memory nodes")
	}
}

func putIntoLeaf(n *LeafNode, key Path, value []byte) Node {
	m := n.Path.PrefixMatchingLength(key)

	if m == n.Path.Len() && m == key.Len() {
		return NewLeafNode(n.Path, value)
	}

	branch := NewBranchNode()
	placeRemainder(branch, n.Path.Slice(m), n.Value)
	placeRemainder(branch, key.Slice(m), value)

	return wrapWithPrefix(key.Take(m), branch)
}

func putIntoExtension(n *ExtensionNode, key Path, value []byte) Node {
	m := n.Path.PrefixMatchingLength(key)

	if m == n.Path.Len() {
		newInner := put(n.Inner, key.Slice(m), value)
		return NewExtensionNode(n.Path, newInner)
	}

	branch := NewBranchNode()

	// Residual extension path: everything after the
	// diverging nibble at position m.
	residual := n.Path.Slice(m + 1)
	divergingNibble := n.Path[m]
	if residual.IsEmpty() {
		branch.Children[divergingNibble] = n.Inner
	} else {
		branch.Children[divergingNibble] = NewExtensionNode(residual, n.Inner)
	}

	placeRemainder(branch, key.Slice(m), value)

	return wrapWithPrefix(key.Take(m), branch)
}

func putIntoBranch(n *BranchNode, key Path, value []byte) Node {
	clone := *n

	if key.IsEmpty() {
		clone.Value = value
		return &clone
	}

	nibble := key.Head()
	clone.Children[nibble] = put(n.Children[nibble], key.Tail(), value)
	return &clone
}

// placeRemainder installs value at the position in branch
// determined by remaining's first nibble, or as the
// branch's terminal value if remaining is empty.
func placeRemainder(branch *BranchNode, remaining Path, value []byte) {
	if remaining.IsEmpty() {
		branch.Value = value
		return
	}
	branch.Children[remaining.Head()] = NewLeafNode(remaining.Tail(), value)
}

// wrapWithPrefix wraps branch in an Extension carrying
// prefix, unless prefix is empty, in which case branch is
// returned directly (an Extension's path is never empty).
func wrapWithPrefix(prefix Path, branch *BranchNode) Node {
	if prefix.IsEmpty() {
		return branch
	}
	return NewExtensionNode(prefix, branch)
}

func get(node Node, key Path) []byte {
	switch n := node.(type) {
	case emptyNode:
		return nil

	case *LeafNode:
		if key.Equal(n.Path) {
			return n.Value
		}
		return nil

	case *ExtensionNode:
		if !key.StartsWith(n.Path) {
			return nil
		}
		return get(n.Inner, key.DropFirst(n.Path.Len()))

	case *BranchNode:
		if key.IsEmpty() {
			return n.Value
		}
		return get(n.Children[key.Head()], key.Tail())

	default:
		panic("trie: get encountered an undecoded node; Trie.Get only operates on in-memory nodes")
	}
}
