package abi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Value pairs a parsed Type with the native Go
// representation of its data, ready for encoding.
type Value struct {
	Type Type
	Raw  interface{}
}

// Uint8 builds a uint8-typed value.
func Uint8(v uint8) Value {
	return Value{Type: Type{Kind: KindUint8}, Raw: v}
}

// Uint256 builds a uint256-typed value from a non-negative big.Int.
func Uint256(v *big.Int) Value {
	return Value{Type: Type{Kind: KindUint256}, Raw: v}
}

// Int256 builds an int256-typed value from a signed big.Int.
func Int256(v *big.Int) Value {
	return Value{Type: Type{Kind: KindInt256}, Raw: v}
}

// Address builds an address-typed value.
func Address(a common.Address) Value {
	return Value{Type: Type{Kind: KindAddress}, Raw: a}
}

// Bool builds a bool-typed value.
func Bool(b bool) Value {
	return Value{Type: Type{Kind: KindBool}, Raw: b}
}

// FixedBytes builds a bytesN-typed value. size is N; data
// must not exceed size bytes.
func FixedBytes(size int, data []byte) Value {
	return Value{Type: Type{Kind: KindBytesN, Size: size}, Raw: data}
}

// String builds a dynamic string-typed value.
func String(s string) Value {
	return Value{Type: Type{Kind: KindString}, Raw: s}
}

// Bytes builds a dynamic bytes-typed value.
func Bytes(b []byte) Value {
	return Value{Type: Type{Kind: KindBytes}, Raw: b}
}
