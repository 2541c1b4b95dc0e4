package config

import (
	"fmt"

	"chainproof/abi"
	"chainproof/internal/log"

	"github.com/ethereum/go-ethereum/common"
)

// validator validates a raw config before it is turned
// into typed domain values.
type validator struct {
	log log.Logger
}

// newValidator creates a validator with the given logger.
func newValidator(logger log.Logger) *validator {
	return &validator{
		log: logger.With("component", "config-validator"),
	}
}

// validate validates the raw config as a whole.
func (v *validator) validate(raw *rawConfig) error {
	if err := v.validateValidators(raw.Validators, raw.Threshold); err != nil {
		return err
	}
	return v.validateWatch(raw.Watch)
}

func (v *validator) validateValidators(validators []rawValidator, threshold int) error {
	v.log.Debug("validate validator set", "count", len(validators), "threshold", threshold)

	if len(validators) == 0 {
		return fmt.Errorf("validators list is empty")
	}
	if threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %d", threshold)
	}
	if threshold > len(validators) {
		return fmt.Errorf("threshold %d exceeds validator count %d", threshold, len(validators))
	}

	seen := make(map[string]bool, len(validators))
	for idx, rv := range validators {
		if rv.Address == "" {
			return fmt.Errorf("validator %d: address is empty", idx)
		}
		if !common.IsHexAddress(rv.Address) {
			return fmt.Errorf("validator %d: invalid address: %s", idx, rv.Address)
		}
		if seen[rv.Address] {
			return fmt.Errorf("validator %d: duplicate address: %s", idx, rv.Address)
		}
		seen[rv.Address] = true
	}

	return nil
}

func (v *validator) validateWatch(watch rawWatch) error {
	v.log.Debug("validate watch config", "contract", watch.ContractAddress, "signature", watch.EventSignature)

	if watch.ContractAddress == "" {
		return fmt.Errorf("watch: contract_address is required")
	}
	if !common.IsHexAddress(watch.ContractAddress) {
		return fmt.Errorf("watch: invalid contract_address: %s", watch.ContractAddress)
	}
	if watch.EventSignature == "" {
		return fmt.Errorf("watch: event_signature is required")
	}

	types, err := abi.ParseSignatureTypes(watch.EventSignature)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if len(types) != len(watch.Params) {
		return fmt.Errorf("watch: event_signature declares %d parameters, but %d are listed under params", len(types), len(watch.Params))
	}

	for idx, p := range watch.Params {
		t, err := abi.ParseType(p.Type)
		if err != nil {
			return fmt.Errorf("watch: param %d: %w", idx, err)
		}
		if t != types[idx] {
			return fmt.Errorf("watch: param %d is %s in params but %s in event_signature", idx, t, types[idx])
		}
	}

	return nil
}
