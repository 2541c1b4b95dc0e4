package event

import "chainproof/abi"

// ErrUnsupportedType and ErrTypeMismatch are re-exported
// from abi: an event signature and its parameter values go
// through the same type system as the ABI encoder, so they
// fail the same way.
var (
	ErrUnsupportedType = abi.ErrUnsupportedType
	ErrTypeMismatch    = abi.ErrTypeMismatch
)
