package trie

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// Node is the tagged-variant interface implemented by
// every shape a Merkle-Patricia trie node can take:
// Empty, Leaf, Extension, and Branch. Each variant knows
// how to produce its own canonical RLP encoding and, from
// that, its Keccak-256 hash.
type Node interface {
	// Encoded returns the canonical RLP encoding of the node.
	Encoded() []byte

	// Hash returns Keccak256(Encoded()).
	Hash() Hash

	// String returns a debug representation of the node.
	String() string
}

// emptyNode is the canonical empty tree. It is a
// singleton: every empty subtree is represented by the
// same value, EmptyNode.
type emptyNode struct{}

// EmptyNode is the canonical Empty node.
var EmptyNode Node = emptyNode{}

// EmptyNodeHash is Keccak256(RLP("")), the root hash of
// an empty trie.
var EmptyNodeHash = keccak256(emptyEncoded)

var emptyEncoded = mustEncode([]byte{})

func (emptyNode) Encoded() []byte { return emptyEncoded }
func (emptyNode) Hash() Hash      { return EmptyNodeHash }
func (emptyNode) String() string  { return "Empty" }

// LeafNode is a terminal node: Path is the remainder of
// the key from this point in the trie, and Value is the
// associated value.
type LeafNode struct {
	Path  Path
	Value []byte
}

// NewLeafNode creates a leaf node for the given remaining
// path and value.
func NewLeafNode(path Path, value []byte) *LeafNode {
	return &LeafNode{Path: path, Value: value}
}

func (l *LeafNode) raw() []interface{} {
	return []interface{}{hexPrefix(l.Path, true), l.Value}
}

func (l *LeafNode) Encoded() []byte {
	return mustEncode(l.raw())
}

func (l *LeafNode) Hash() Hash {
	return keccak256(l.Encoded())
}

func (l *LeafNode) String() string {
	return fmt.Sprintf("Leaf{path: %v, value: %x}", []byte(l.Path.Bytes()), l.Value)
}

// ExtensionNode shares a nibble prefix among the
// branches of its single child, which must always be a
// Branch node.
type ExtensionNode struct {
	Path  Path
	Inner Node
}

// NewExtensionNode creates an extension node pointing at inner.
func NewExtensionNode(path Path, inner Node) *ExtensionNode {
	return &ExtensionNode{Path: path, Inner: inner}
}

func (e *ExtensionNode) raw() []interface{} {
	return []interface{}{hexPrefix(e.Path, false), refItem(e.Inner)}
}

func (e *ExtensionNode) Encoded() []byte {
	return mustEncode(e.raw())
}

func (e *ExtensionNode) Hash() Hash {
	return keccak256(e.Encoded())
}

func (e *ExtensionNode) String() string {
	return fmt.Sprintf("Extension{path: %v, inner: %s}", []byte(e.Path.Bytes()), e.Inner)
}

// BranchNode has 16 child slots, one per nibble value,
// plus an optional terminal value for a key that ends
// exactly at this branch.
type BranchNode struct {
	Children [16]Node
	Value    []byte
}

// NewBranchNode creates an empty branch node (all
// children Empty, no value).
func NewBranchNode() *BranchNode {
	b := &BranchNode{}
	for i := range b.Children {
		b.Children[i] = EmptyNode
	}
	return b
}

// NonEmptyChildren returns the nibble indices of every
// non-empty child slot.
func (b *BranchNode) NonEmptyChildren() []int {
	var idx []int
	for i, c := range b.Children {
		if !IsEmpty(c) {
			idx = append(idx, i)
		}
	}
	return idx
}

// HasValue reports whether the branch terminates a key.
func (b *BranchNode) HasValue() bool {
	return b.Value != nil
}

func (b *BranchNode) raw() []interface{} {
	out := make([]interface{}, 17)
	for i, c := range b.Children {
		out[i] = refItem(c)
	}
	if b.Value != nil {
		out[16] = b.Value
	} else {
		out[16] = []byte{}
	}
	return out
}

func (b *BranchNode) Encoded() []byte {
	return mustEncode(b.raw())
}

func (b *BranchNode) Hash() Hash {
	return keccak256(b.Encoded())
}

func (b *BranchNode) String() string {
	return fmt.Sprintf("Branch{children: %v, value: %x}", b.NonEmptyChildren(), b.Value)
}

// IsEmpty reports whether n is the canonical Empty node.
func IsEmpty(n Node) bool {
	_, ok := n.(emptyNode)
	return ok || n == nil
}

// ref returns the bytes used to place n inside a parent
// node's RLP list: the raw encoding if it is shorter than
// a hash (inlined), otherwise the 32-byte hash.
func ref(n Node) []byte {
	if IsEmpty(n) {
		return []byte{}
	}
	enc := n.Encoded()
	if len(enc) < HashLength {
		return enc
	}
	h := n.Hash()
	return h.Bytes()
}

// refItem is ref(n) in the form placed into a parent's RLP
// list: an inlined encoding is embedded as raw RLP (a nested
// list), while a hash or the empty reference is a byte string.
func refItem(n Node) interface{} {
	r := ref(n)
	if len(r) > 0 && len(r) < HashLength {
		return rlp.RawValue(r)
	}
	return r
}

// hexPrefix implements Ethereum's compact nibble-path
// encoding: one prefix nibble carrying the leaf flag and
// the parity of the path length, followed by the path
// nibbles packed two per byte, with a zero padding nibble
// inserted after the prefix when needed to keep the total
// nibble count even.
func hexPrefix(path Path, isLeaf bool) []byte {
	flag := byte(0)
	if isLeaf {
		flag = 2
	}

	odd := len(path)%2 == 1
	var nibbles []Nibble
	if odd {
		flag |= 1
		nibbles = append([]Nibble{Nibble(flag)}, path...)
	} else {
		nibbles = append([]Nibble{Nibble(flag), 0}, path...)
	}

	out := make([]byte, len(nibbles)/2)
	for i := 0; i < len(nibbles); i += 2 {
		out[i/2] = byte(nibbles[i])<<4 | byte(nibbles[i+1])
	}
	return out
}

// decodeHexPrefix inverts hexPrefix, returning the
// original path and leaf flag.
func decodeHexPrefix(encoded []byte) (path Path, isLeaf bool, err error) {
	if len(encoded) == 0 {
		return nil, false, fmt.Errorf("%w: empty hex-prefix", ErrInvalidNode)
	}

	flag := encoded[0] >> 4
	isLeaf = flag&2 != 0
	odd := flag&1 != 0

	nibbles := make(Path, 0, len(encoded)*2)
	if odd {
		nibbles = append(nibbles, Nibble(encoded[0]&0x0F))
	}
	for _, b := range encoded[1:] {
		nibbles = append(nibbles, Nibble(b>>4), Nibble(b&0x0F))
	}

	return nibbles, isLeaf, nil
}

func mustEncode(v interface{}) []byte {
	enc, err := rlp.EncodeToBytes(v)
	if err != nil {
		// Encoding a []byte or []interface{} of []byte/[]interface{}
		// cannot fail; a failure here means a node was built with
		// a value RLP cannot represent, which is a programmer error.
		panic(fmt.Sprintf("trie: failed to rlp-encode node: %v", err))
	}
	return enc
}
