package trie

import "bytes"

// GenerateProof walks the root-to-target path for key
// exactly as Get would, depositing every visited node's
// encoding into a ProofStore keyed by its hash. It fails
// with ErrKeyNotFound if key is absent — this trie only
// supports positive proofs of inclusion.
func (t *Trie) GenerateProof(key []byte) (*ProofStore, error) {
	store := NewProofStore()

	found, err := collectProof(t.root, NewPath(key), store)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrKeyNotFound
	}

	return store, nil
}

func collectProof(node Node, key Path, store *ProofStore) (bool, error) {
	switch n := node.(type) {
	case emptyNode:
		return false, nil

	case *LeafNode:
		if !key.Equal(n.Path) {
			return false, nil
		}
		store.Put(n.Hash(), n.Encoded())
		return true, nil

	case *ExtensionNode:
		if !key.StartsWith(n.Path) {
			return false, nil
		}
		found, err := collectProof(n.Inner, key.DropFirst(n.Path.Len()), store)
		if err != nil || !found {
			return found, err
		}
		store.Put(n.Hash(), n.Encoded())
		return true, nil

	case *BranchNode:
		if key.IsEmpty() {
			if n.Value == nil {
				return false, nil
			}
			store.Put(n.Hash(), n.Encoded())
			return true, nil
		}
		found, err := collectProof(n.Children[key.Head()], key.Tail(), store)
		if err != nil || !found {
			return found, err
		}
		store.Put(n.Hash(), n.Encoded())
		return true, nil

	default:
		panic("trie: collectProof encountered an undecoded node")
	}
}

// VerifyProof verifies that key maps to expectedValue in
// the trie whose root hash is root, using only the nodes
// supplied in store. It returns false (not an error) when
// the proof is well-formed but the value does not match;
// it returns an error when the proof itself cannot be
// walked: a referenced node is missing from store, a node
// fails to decode, or the path diverges from the key.
func VerifyProof(root Hash, key, expectedValue []byte, store *ProofStore) (bool, error) {
	encoded, ok := store.Get(root)
	if !ok {
		return false, ErrInvalidProof
	}

	node, err := DecodeNode(encoded)
	if err != nil {
		return false, err
	}

	return verifyStep(node, NewPath(key), expectedValue, store)
}

func verifyStep(node Node, remaining Path, expected []byte, store *ProofStore) (bool, error) {
	switch n := node.(type) {
	case *LeafNode:
		if !remaining.Equal(n.Path) {
			return false, ErrInvalidProof
		}
		return bytes.Equal(n.Value, expected), nil

	case *BranchNode:
		if remaining.IsEmpty() {
			return bytes.Equal(n.Value, expected), nil
		}

		child, err := resolveChild(n.Children[remaining.Head()], store)
		if err != nil {
			return false, err
		}
		if child == nil {
			return false, ErrInvalidProof
		}
		return verifyStep(child, remaining.Tail(), expected, store)

	case *ExtensionNode:
		if !remaining.StartsWith(n.Path) {
			return false, ErrInvalidProof
		}

		child, err := resolveChild(n.Inner, store)
		if err != nil {
			return false, err
		}
		if child == nil {
			return false, ErrInvalidProof
		}
		return verifyStep(child, remaining.DropFirst(n.Path.Len()), expected, store)

	default:
		return false, ErrInvalidProof
	}
}

// resolveChild turns a child reference into a concrete
// node to continue the walk on. An inlined child is
// already a concrete node and is returned as-is, without
// touching the proof store. A hashed child is looked up
// in store and decoded. An empty child signals the walk
// has diverged from any real key.
func resolveChild(child Node, store *ProofStore) (Node, error) {
	if IsEmpty(child) {
		return nil, nil
	}

	ref, isHashRef := child.(*hashRefNode)
	if !isHashRef {
		return child, nil
	}

	encoded, ok := store.Get(ref.ref)
	if !ok {
		return nil, ErrInvalidProof
	}
	return DecodeNode(encoded)
}
