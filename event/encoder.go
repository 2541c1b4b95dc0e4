package event

import (
	"fmt"
	"strings"
	"unicode"

	"chainproof/abi"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// EncodedEvent is the canonical fingerprint of an Ethereum
// log: the signature hash followed by the indexed
// parameters as topics, and the ABI-encoded non-indexed
// parameters as data. All hex fields are lowercase and
// 0x-prefixed.
type EncodedEvent struct {
	Address string
	Topics  []string
	Data    string
}

// Param is one event parameter: its ABI value and whether
// it is an indexed (topic) or non-indexed (data) parameter.
type Param struct {
	Value   abi.Value
	Indexed bool
}

// Indexed wraps v as an indexed parameter.
func Indexed(v abi.Value) Param {
	return Param{Value: v, Indexed: true}
}

// NonIndexed wraps v as a non-indexed parameter.
func NonIndexed(v abi.Value) Param {
	return Param{Value: v, Indexed: false}
}

// EncodeEvent builds the EncodedEvent fingerprint for a log
// emitted by contractAddress under eventSignature (e.g.
// "Transfer(address,address,uint256)"), given params in
// declaration order. It rejects a param count that doesn't
// match the signature's parameter list, or a param whose
// type disagrees with its position in the signature.
func EncodeEvent(contractAddress string, eventSignature string, params ...Param) (*EncodedEvent, error) {
	signature := stripWhitespace(eventSignature)
	topic0 := crypto.Keccak256([]byte(signature))

	types, err := abi.ParseSignatureTypes(signature)
	if err != nil {
		return nil, err
	}
	if len(types) != len(params) {
		return nil, fmt.Errorf("%w: signature declares %d parameters, got %d values", ErrTypeMismatch, len(types), len(params))
	}
	for i, p := range params {
		if p.Value.Type != types[i] {
			return nil, fmt.Errorf("%w: parameter %d is %s in the signature but %s was supplied", ErrTypeMismatch, i, types[i], p.Value.Type)
		}
	}

	topics := []string{hexutil.Encode(topic0)}
	var nonIndexed []abi.Value
	for _, p := range params {
		if p.Indexed {
			word, err := abi.EncodeTopic(p.Value)
			if err != nil {
				return nil, err
			}
			topics = append(topics, hexutil.Encode(word))
			continue
		}
		nonIndexed = append(nonIndexed, p.Value)
	}

	data, err := abi.EncodeSequence(nonIndexed)
	if err != nil {
		return nil, err
	}

	return &EncodedEvent{
		Address: strings.ToLower(common.HexToAddress(contractAddress).Hex()),
		Topics:  topics,
		Data:    hexutil.Encode(data),
	}, nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
