package abi

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies one of the Solidity value types this
// encoder supports.
type Kind int

const (
	KindUint8 Kind = iota
	KindUint256
	KindInt256
	KindAddress
	KindBool
	KindBytesN
	KindString
	KindBytes
)

// Type is a parsed ABI type name. Size is only meaningful
// for KindBytesN, holding N in bytes (1..32).
type Type struct {
	Kind Kind
	Size int
}

// IsDynamic reports whether values of t are encoded with a
// head offset and a separate tail, rather than inline as a
// single word.
func (t Type) IsDynamic() bool {
	return t.Kind == KindString || t.Kind == KindBytes
}

func (t Type) String() string {
	switch t.Kind {
	case KindUint8:
		return "uint8"
	case KindUint256:
		return "uint256"
	case KindInt256:
		return "int256"
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindBytesN:
		return fmt.Sprintf("bytes%d", t.Size)
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// ParseType resolves a single Solidity type name. Supported
// names are string, uint256, uint8, int256, address, bool,
// bytes, and fixed bytesN for N in [1,32]. Anything else is
// ErrUnsupportedType.
func ParseType(name string) (Type, error) {
	switch name {
	case "uint8":
		return Type{Kind: KindUint8}, nil
	case "uint256":
		return Type{Kind: KindUint256}, nil
	case "int256":
		return Type{Kind: KindInt256}, nil
	case "address":
		return Type{Kind: KindAddress}, nil
	case "bool":
		return Type{Kind: KindBool}, nil
	case "string":
		return Type{Kind: KindString}, nil
	case "bytes":
		return Type{Kind: KindBytes}, nil
	}

	if n, ok := strings.CutPrefix(name, "bytes"); ok {
		size, err := strconv.Atoi(n)
		if err == nil && size >= 1 && size <= 32 {
			return Type{Kind: KindBytesN, Size: size}, nil
		}
	}

	return Type{}, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
}

// ParseSignatureTypes extracts the comma-separated parameter
// types from a Solidity-style event signature, e.g.
// "Transfer(address,address,uint256)" yields
// [address, address, uint256]. Whitespace around each type
// is trimmed; an empty parameter list yields an empty slice.
func ParseSignatureTypes(signature string) ([]Type, error) {
	open := strings.IndexByte(signature, '(')
	close := strings.LastIndexByte(signature, ')')
	if open < 0 || close < open {
		return nil, fmt.Errorf("%w: malformed signature %q", ErrUnsupportedType, signature)
	}

	inner := strings.TrimSpace(signature[open+1 : close])
	if inner == "" {
		return nil, nil
	}

	parts := strings.Split(inner, ",")
	types := make([]Type, len(parts))
	for i, p := range parts {
		t, err := ParseType(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}
