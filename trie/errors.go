package trie

import "errors"

// Error kinds surfaced by the trie package. Each is a
// distinct sentinel so callers can branch with errors.Is;
// none are recovered internally.
var (
	// ErrKeyNotFound is returned by GenerateProof when the
	// requested key is absent from the trie. Get never
	// returns this error — an absent key simply yields an
	// empty value.
	ErrKeyNotFound = errors.New("trie: key not part of trie")

	// ErrInvalidProof is returned by VerifyProof when a
	// referenced node is missing from the proof store, an
	// unexpected node shape is encountered mid-walk, or the
	// path diverges from the one in the proof.
	ErrInvalidProof = errors.New("trie: not part of trie")

	// ErrMalformedRLP is returned when RLP input is
	// truncated, over-long, or otherwise not canonical.
	ErrMalformedRLP = errors.New("trie: malformed rlp")

	// ErrInvalidNode is returned when decoded RLP does not
	// conform to any of the four canonical node shapes.
	ErrInvalidNode = errors.New("trie: invalid node encoding")
)
