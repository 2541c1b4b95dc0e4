package config

import (
	"fmt"

	"chainproof/abi"
	"chainproof/event"

	"github.com/ethereum/go-ethereum/common"
)

// ParamSpec describes one parameter of a watched event: its
// Solidity type name and whether the EVM carries it as an
// indexed topic or as part of the log data.
type ParamSpec struct {
	Type    string
	Indexed bool
}

// WatchConfig describes the single event this instance of
// the core is watching for: the contract that emits it, its
// signature, and its parameter shape. Parameter values
// themselves arrive later, out of the matched receipt or a
// caller-supplied fixture — this config only fixes the
// shape the event encoder needs to build a fingerprint.
type WatchConfig struct {
	ContractAddress common.Address
	EventSignature  string
	Params          []ParamSpec
}

// Types parses every parameter's Solidity type name,
// failing on the first unsupported one.
func (w WatchConfig) Types() ([]abi.Type, error) {
	types := make([]abi.Type, len(w.Params))
	for i, p := range w.Params {
		t, err := abi.ParseType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		types[i] = t
	}
	return types, nil
}

// BuildEvent pairs w's parameter shape with concrete values
// in declaration order and delegates to event.EncodeEvent.
// len(values) must equal len(w.Params).
func (w WatchConfig) BuildEvent(values []abi.Value) (*event.EncodedEvent, error) {
	if len(values) != len(w.Params) {
		return nil, fmt.Errorf("%w: watch config declares %d parameters, got %d values", event.ErrTypeMismatch, len(w.Params), len(values))
	}

	params := make([]event.Param, len(values))
	for i, v := range values {
		if w.Params[i].Indexed {
			params[i] = event.Indexed(v)
		} else {
			params[i] = event.NonIndexed(v)
		}
	}

	return event.EncodeEvent(w.ContractAddress.Hex(), w.EventSignature, params...)
}
