package config

import (
	"fmt"
	"os"

	"chainproof/internal/log"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/params"
	"gopkg.in/yaml.v3"
)

// AppConfig is the fully parsed, validated configuration
// for a single run of the demo: which network's chain
// parameters apply, who the notary validators are and how
// many signatures satisfy quorum, and which event this
// instance is watching for.
type AppConfig struct {
	Network     string
	ChainConfig *params.ChainConfig
	Validators  ValidatorSet
	Watch       WatchConfig
}

// rawConfig mirrors the YAML file on disk.
type rawConfig struct {
	Network    string         `yaml:"network"`
	Validators []rawValidator `yaml:"validators"`
	Threshold  int            `yaml:"threshold"`
	Watch      rawWatch       `yaml:"watch"`
}

type rawValidator struct {
	Address string `yaml:"address"`
	PubKey  string `yaml:"pubkey"`
}

type rawWatch struct {
	ContractAddress string     `yaml:"contract_address"`
	EventSignature  string     `yaml:"event_signature"`
	Params          []rawParam `yaml:"params"`
}

type rawParam struct {
	Type    string `yaml:"type"`
	Indexed bool   `yaml:"indexed"`
}

// Loader reads and validates the main config file.
type Loader struct {
	log log.Logger
}

// NewLoader creates a Loader with the given logging
// context attached.
func NewLoader(logger log.Logger) *Loader {
	return &Loader{
		log: logger.With("component", "config-loader"),
	}
}

// Load reads, validates, and parses the config file at path.
func (l *Loader) Load(path string) (*AppConfig, error) {
	l.log.Info("load config", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := newValidator(l.log).validate(&raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	chainCfg, err := resolveChainConfig(raw.Network)
	if err != nil {
		return nil, err
	}

	validators := make([]Validator, len(raw.Validators))
	for i, rv := range raw.Validators {
		var pubKey []byte
		if rv.PubKey != "" {
			pubKey, err = hexutil.Decode(rv.PubKey)
			if err != nil {
				return nil, fmt.Errorf("validator %d: invalid pubkey: %w", i, err)
			}
		}
		validators[i] = Validator{
			Address: common.HexToAddress(rv.Address),
			PubKey:  pubKey,
		}
	}

	watchParams := make([]ParamSpec, len(raw.Watch.Params))
	for i, rp := range raw.Watch.Params {
		watchParams[i] = ParamSpec{Type: rp.Type, Indexed: rp.Indexed}
	}

	cfg := &AppConfig{
		Network:     raw.Network,
		ChainConfig: chainCfg,
		Validators: ValidatorSet{
			Validators: validators,
			Threshold:  raw.Threshold,
		},
		Watch: WatchConfig{
			ContractAddress: common.HexToAddress(raw.Watch.ContractAddress),
			EventSignature:  raw.Watch.EventSignature,
			Params:          watchParams,
		},
	}

	l.log.Debug("config loaded", "network", cfg.Network, "validators", len(validators), "threshold", raw.Threshold)

	return cfg, nil
}

func resolveChainConfig(network string) (*params.ChainConfig, error) {
	switch network {
	case "", "anvil":
		return AnvilChainConfig, nil
	case "mainnet":
		return MainnetChainConfig, nil
	case "sepolia":
		return SepoliaChainConfig, nil
	default:
		return nil, fmt.Errorf("unknown network: %q", network)
	}
}
