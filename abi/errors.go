package abi

import "errors"

// ErrUnsupportedType is returned when a type name falls
// outside the fixed set this encoder understands.
var ErrUnsupportedType = errors.New("abi: unsupported type")

// ErrTypeMismatch is returned when a value's Go shape does
// not match its declared ABI type.
var ErrTypeMismatch = errors.New("abi: type mismatch")
