package trie

import "github.com/ethereum/go-ethereum/crypto"

// HashLength is the length in bytes of a node hash.
const HashLength = 32

// Hash is a 32-byte Keccak-256 digest.
type Hash [HashLength]byte

// Bytes returns the hash as a byte slice.
func (h Hash) Bytes() []byte {
	return h[:]
}

// BytesToHash truncates (keeping the rightmost 32 bytes)
// or left-pads b into a Hash. Used when a reference is
// known to be a full 32-byte digest.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// keccak256 computes the Ethereum Keccak-256 digest of
// the concatenation of the given byte slices.
func keccak256(data ...[]byte) Hash {
	return BytesToHash(crypto.Keccak256(data...))
}
