package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"chainproof/abi"
	"chainproof/event"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// fixture is the demo's stand-in for whatever a live RPC
// transport would otherwise have supplied: a decoded
// transaction receipt, the concrete values the watched
// event was expected to carry, and (optionally) a Merkle
// inclusion proof to replay against a receipts root.
type fixture struct {
	Receipt      event.TransactionReceipt `json:"receipt"`
	Values       []rawValue               `json:"values"`
	ReceiptsRoot string                   `json:"receiptsRoot,omitempty"`
	ProofKey     string                   `json:"proofKey,omitempty"`
	ProofValue   string                   `json:"proofValue,omitempty"`
	ProofNodes   []string                 `json:"proofNodes,omitempty"`
}

// hasProof reports whether the fixture carries enough
// information to attempt a Merkle proof replay.
func (f *fixture) hasProof() bool {
	return f.ReceiptsRoot != "" && len(f.ProofNodes) > 0
}

// rawValue is the JSON shape of a single expected event
// parameter value: its Solidity type name and a string
// rendering of the value appropriate for that type.
type rawValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// loadFixture reads and parses the JSON fixture at path.
func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt fixture: %w", err)
	}

	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse receipt fixture: %w", err)
	}

	return &f, nil
}

// parsedValues parses the fixture's raw values into abi.Value,
// in declaration order.
func (f *fixture) parsedValues() ([]abi.Value, error) {
	out := make([]abi.Value, len(f.Values))
	for i, rv := range f.Values {
		t, err := abi.ParseType(rv.Type)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}

		v, err := parseValue(t, rv.Value)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseValue converts a string rendering of t into the
// matching abi.Value constructor.
func parseValue(t abi.Type, raw string) (abi.Value, error) {
	switch t.Kind {
	case abi.KindBool:
		return abi.Bool(raw == "true"), nil
	case abi.KindUint8:
		n, ok := new(big.Int).SetString(raw, 0)
		if !ok {
			return abi.Value{}, fmt.Errorf("invalid uint8 literal: %s", raw)
		}
		return abi.Uint8(uint8(n.Uint64())), nil
	case abi.KindUint256:
		n, ok := new(big.Int).SetString(raw, 0)
		if !ok {
			return abi.Value{}, fmt.Errorf("invalid uint256 literal: %s", raw)
		}
		return abi.Uint256(n), nil
	case abi.KindInt256:
		n, ok := new(big.Int).SetString(raw, 0)
		if !ok {
			return abi.Value{}, fmt.Errorf("invalid int256 literal: %s", raw)
		}
		return abi.Int256(n), nil
	case abi.KindAddress:
		if !common.IsHexAddress(raw) {
			return abi.Value{}, fmt.Errorf("invalid address literal: %s", raw)
		}
		return abi.Address(common.HexToAddress(raw)), nil
	case abi.KindBytesN:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return abi.Value{}, fmt.Errorf("invalid bytes literal: %w", err)
		}
		return abi.FixedBytes(t.Size, b), nil
	case abi.KindString:
		return abi.String(raw), nil
	case abi.KindBytes:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return abi.Value{}, fmt.Errorf("invalid bytes literal: %w", err)
		}
		return abi.Bytes(b), nil
	default:
		return abi.Value{}, fmt.Errorf("%w: %s", abi.ErrUnsupportedType, t)
	}
}
