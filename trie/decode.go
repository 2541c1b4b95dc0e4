package trie

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

const (
	// shortNodeLength is the RLP list arity of a leaf or
	// extension node: [hexPrefixedPath, data].
	shortNodeLength = 2

	// fullNodeLength is the RLP list arity of a branch
	// node: 16 child refs plus a terminal value.
	fullNodeLength = 17
)

// hashRefNode is a placeholder produced when decoding a
// node whose child is referenced by hash rather than
// inlined. Its only meaningful field is the referenced
// hash; resolving it to the actual node requires a
// ProofStore lookup.
type hashRefNode struct {
	ref Hash
}

func (h *hashRefNode) Encoded() []byte { return h.ref.Bytes() }
func (h *hashRefNode) Hash() Hash      { return h.ref }
func (h *hashRefNode) String() string  { return fmt.Sprintf("HashRef{%x}", h.ref) }

// DecodeNode reconstructs a Node from its RLP encoding.
// Dispatch is on list arity: 2 elements (hex-prefix's
// leaf bit distinguishes Leaf from Extension) or 17
// (Branch). A child reference that is inlined (shorter
// than a hash) is decoded eagerly into a concrete Node; a
// hashed reference becomes a hashRefNode placeholder that
// must be resolved against a ProofStore.
func DecodeNode(encoded []byte) (Node, error) {
	var slots []interface{}
	if err := rlp.DecodeBytes(encoded, &slots); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRLP, err)
	}

	return nodeFromSlots(slots)
}

func nodeFromSlots(slots []interface{}) (Node, error) {
	switch len(slots) {
	case shortNodeLength:
		return decodeShortNode(slots)
	case fullNodeLength:
		return decodeFullNode(slots)
	default:
		return nil, fmt.Errorf("%w: list of length %d", ErrInvalidNode, len(slots))
	}
}

func decodeShortNode(slots []interface{}) (Node, error) {
	compact, ok := slots[0].([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: short node path is not a byte string", ErrInvalidNode)
	}

	path, isLeaf, err := decodeHexPrefix(compact)
	if err != nil {
		return nil, err
	}

	if isLeaf {
		value, ok := slots[1].([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: leaf value is not a byte string", ErrInvalidNode)
		}
		return NewLeafNode(path, value), nil
	}

	inner, err := decodeChildRef(slots[1])
	if err != nil {
		return nil, err
	}
	return NewExtensionNode(path, inner), nil
}

func decodeFullNode(slots []interface{}) (Node, error) {
	branch := NewBranchNode()

	for i := 0; i < fullNodeLength-1; i++ {
		child, err := decodeChildRef(slots[i])
		if err != nil {
			return nil, err
		}
		branch.Children[i] = child
	}

	value, ok := slots[fullNodeLength-1].([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: branch value is not a byte string", ErrInvalidNode)
	}
	if len(value) == 0 {
		branch.Value = nil
	} else {
		branch.Value = value
	}

	return branch, nil
}

// decodeChildRef interprets a single child slot of a
// short or full node: an empty byte string means no
// child, a 32-byte string is a hash reference, and a
// nested list is an inlined child decoded eagerly.
func decodeChildRef(raw interface{}) (Node, error) {
	switch v := raw.(type) {
	case []byte:
		switch len(v) {
		case 0:
			return EmptyNode, nil
		case HashLength:
			return &hashRefNode{ref: BytesToHash(v)}, nil
		default:
			return nil, fmt.Errorf("%w: child ref has invalid length %d", ErrInvalidNode, len(v))
		}
	case []interface{}:
		if len(v) == 0 {
			return EmptyNode, nil
		}
		return nodeFromSlots(v)
	default:
		return nil, fmt.Errorf("%w: child ref has unexpected shape", ErrInvalidNode)
	}
}
