package trie

// Nibble is a half-byte value in [0, 15].
type Nibble byte

// Path is an immutable sequence of nibbles used to
// address a key inside the trie. A byte key is split
// into nibbles high-nibble first.
type Path []Nibble

// NewPath splits the specified byte key into its
// nibble representation, high nibble first.
func NewPath(key []byte) Path {
	path := make(Path, 0, len(key)*2)
	for _, b := range key {
		path = append(path, Nibble(b>>4), Nibble(b&0x0F))
	}
	return path
}

// IsEmpty reports whether the path has no nibbles left.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Len returns the number of nibbles in the path.
func (p Path) Len() int {
	return len(p)
}

// Head returns the first nibble of the path. It panics
// if the path is empty; callers must check IsEmpty first.
func (p Path) Head() Nibble {
	return p[0]
}

// Tail returns the path without its first nibble.
func (p Path) Tail() Path {
	return p[1:]
}

// DropFirst returns the path without its first n nibbles.
func (p Path) DropFirst(n int) Path {
	return p[n:]
}

// Slice returns the nibbles in [from, len(p)).
func (p Path) Slice(from int) Path {
	return p[from:]
}

// Take returns the first n nibbles of the path.
func (p Path) Take(n int) Path {
	return p[:n]
}

// StartsWith reports whether p begins with the nibbles of other.
func (p Path) StartsWith(other Path) bool {
	if len(other) > len(p) {
		return false
	}
	return p.PrefixMatchingLength(other) == len(other)
}

// PrefixMatchingLength returns the number of leading
// nibbles that p and other have in common.
func (p Path) PrefixMatchingLength(other Path) int {
	max := len(p)
	if len(other) < max {
		max = len(other)
	}

	i := 0
	for i < max && p[i] == other[i] {
		i++
	}
	return i
}

// Concat returns a new path formed by appending other
// after p. Neither operand is modified.
func Concat(paths ...Path) Path {
	total := 0
	for _, p := range paths {
		total += len(p)
	}

	out := make(Path, 0, total)
	for _, p := range paths {
		out = append(out, p...)
	}
	return out
}

// Equal reports whether p and other contain the same
// nibbles in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Bytes packs the path back into bytes, high nibble
// first. If the path has an odd length, the caller must
// use hexPrefix encoding instead; Bytes is only valid
// for even-length paths (used by tests and debugging).
func (p Path) Bytes() []byte {
	out := make([]byte, 0, (len(p)+1)/2)
	for i := 0; i < len(p); i += 2 {
		if i+1 < len(p) {
			out = append(out, byte(p[i])<<4|byte(p[i+1]))
		} else {
			out = append(out, byte(p[i])<<4)
		}
	}
	return out
}
