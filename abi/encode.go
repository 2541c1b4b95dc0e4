package abi

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// WordSize is the width, in bytes, of a single ABI word.
const WordSize = 32

// int256 values are two's-complement over a 256-bit range:
// [-2^255, 2^255-1].
var (
	int256Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	int256Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	twoTo256  = new(big.Int).Lsh(big.NewInt(1), 256)
)

// EncodeWord encodes a single static value into its 32-byte
// ABI word. Dynamic types (string, bytes) are rejected with
// ErrUnsupportedType — use EncodeSequence for those.
func EncodeWord(v Value) ([]byte, error) {
	switch v.Type.Kind {
	case KindBool:
		b, ok := v.Raw.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: bool value is %T", ErrTypeMismatch, v.Raw)
		}
		word := make([]byte, WordSize)
		if b {
			word[WordSize-1] = 1
		}
		return word, nil

	case KindUint8:
		n, ok := v.Raw.(uint8)
		if !ok {
			return nil, fmt.Errorf("%w: uint8 value is %T", ErrTypeMismatch, v.Raw)
		}
		return leftPadUint(uint256.NewInt(uint64(n)))

	case KindUint256:
		n, ok := v.Raw.(*big.Int)
		if !ok || n.Sign() < 0 {
			return nil, fmt.Errorf("%w: uint256 value must be a non-negative *big.Int", ErrTypeMismatch)
		}
		u := new(uint256.Int)
		if overflow := u.SetFromBig(n); overflow {
			return nil, fmt.Errorf("%w: uint256 value overflows 256 bits", ErrTypeMismatch)
		}
		return leftPadUint(u)

	case KindInt256:
		n, ok := v.Raw.(*big.Int)
		if !ok {
			return nil, fmt.Errorf("%w: int256 value is %T", ErrTypeMismatch, v.Raw)
		}
		return encodeInt256(n)

	case KindAddress:
		addr, ok := v.Raw.(common.Address)
		if !ok {
			return nil, fmt.Errorf("%w: address value is %T", ErrTypeMismatch, v.Raw)
		}
		word := make([]byte, WordSize)
		copy(word[WordSize-common.AddressLength:], addr.Bytes())
		return word, nil

	case KindBytesN:
		b, ok := v.Raw.([]byte)
		if !ok || len(b) > v.Type.Size {
			return nil, fmt.Errorf("%w: bytes%d value must be at most %d bytes", ErrTypeMismatch, v.Type.Size, v.Type.Size)
		}
		word := make([]byte, WordSize)
		copy(word, b) // right-padded, left-aligned
		return word, nil

	default:
		return nil, fmt.Errorf("%w: %s is a dynamic type, use EncodeSequence", ErrUnsupportedType, v.Type)
	}
}

func leftPadUint(u *uint256.Int) ([]byte, error) {
	word := u.Bytes32()
	return word[:], nil
}

func encodeInt256(n *big.Int) ([]byte, error) {
	if n.Cmp(int256Min) < 0 || n.Cmp(int256Max) > 0 {
		return nil, fmt.Errorf("%w: int256 value out of range", ErrTypeMismatch)
	}

	// math/big's Mod is Euclidean, always returning a value
	// in [0, twoTo256), which is exactly the two's-complement
	// bit pattern we want for negative n.
	m := new(big.Int).Mod(n, twoTo256)
	b := m.Bytes()

	word := make([]byte, WordSize)
	copy(word[WordSize-len(b):], b)
	return word, nil
}

// EncodeTopic encodes a single indexed event parameter as a
// topic word. Indexed reference types would ordinarily be
// hashed by the EVM, but this encoder restricts indexed
// parameters to value types, so topic encoding is identical
// to a static word.
func EncodeTopic(v Value) ([]byte, error) {
	if v.Type.IsDynamic() {
		return nil, fmt.Errorf("%w: indexed parameter %s must be a value type", ErrUnsupportedType, v.Type)
	}
	return EncodeWord(v)
}

// EncodeSequence ABI-encodes an ordered list of values as a
// single contiguous blob: a head of one word per value
// (the value itself for static types, a byte offset into
// the tail for dynamic types) followed by the tail data for
// every dynamic value, in order.
func EncodeSequence(values []Value) ([]byte, error) {
	heads := make([][]byte, len(values))
	tails := make([][]byte, len(values))

	offset := len(values) * WordSize
	for i, v := range values {
		if v.Type.IsDynamic() {
			tail, err := encodeDynamicTail(v)
			if err != nil {
				return nil, err
			}
			tails[i] = tail

			head, err := leftPadUint(uint256.NewInt(uint64(offset)))
			if err != nil {
				return nil, err
			}
			heads[i] = head
			offset += len(tail)
			continue
		}

		head, err := EncodeWord(v)
		if err != nil {
			return nil, err
		}
		heads[i] = head
	}

	out := make([]byte, 0, offset)
	for _, h := range heads {
		out = append(out, h...)
	}
	for _, t := range tails {
		out = append(out, t...)
	}
	return out, nil
}

func encodeDynamicTail(v Value) ([]byte, error) {
	var data []byte
	switch v.Type.Kind {
	case KindString:
		s, ok := v.Raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: string value is %T", ErrTypeMismatch, v.Raw)
		}
		data = []byte(s)
	case KindBytes:
		b, ok := v.Raw.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: bytes value is %T", ErrTypeMismatch, v.Raw)
		}
		data = b
	default:
		return nil, fmt.Errorf("%w: %s is not a dynamic type", ErrUnsupportedType, v.Type)
	}

	lengthWord, err := leftPadUint(uint256.NewInt(uint64(len(data))))
	if err != nil {
		return nil, err
	}

	padded := rightPadToWord(data)
	return append(lengthWord, padded...), nil
}

func rightPadToWord(data []byte) []byte {
	rem := len(data) % WordSize
	if rem == 0 {
		return data
	}
	return append(data, make([]byte, WordSize-rem)...)
}
