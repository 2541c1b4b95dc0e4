package config

import (
	"github.com/ethereum/go-ethereum/common"
)

// Validator identifies one member of the notary set that
// attests to events on the foreign chain. PubKey is carried
// as opaque bytes: this core accepts the validator set and
// signature threshold as inputs and does not itself verify
// or aggregate signatures.
type Validator struct {
	Address common.Address
	PubKey  []byte
}

// ValidatorSet is the opaque validator/threshold input the
// spec describes as accepted, not decided, by this core.
type ValidatorSet struct {
	Validators []Validator
	Threshold  int
}

// HasQuorum reports whether signatureCount signatures meet
// the configured threshold.
func (vs ValidatorSet) HasQuorum(signatureCount int) bool {
	return signatureCount >= vs.Threshold
}
