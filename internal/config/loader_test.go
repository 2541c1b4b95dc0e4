package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
network: anvil
threshold: 2
validators:
  - address: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
    pubkey: "0x1234"
  - address: "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
    pubkey: "0x5678"
watch:
  contract_address: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  event_signature: "Transfer(address,address,uint256)"
  params:
    - type: address
      indexed: true
    - type: address
      indexed: true
    - type: uint256
      indexed: false
`

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Run("should load a well-formed config", func(t *testing.T) {
		path := writeTestConfig(t, sampleYAML)

		cfg, err := NewLoader(newTestLogger()).Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if cfg.ChainConfig != AnvilChainConfig {
			t.Errorf("expected anvil chain config, got %v", cfg.ChainConfig)
		}
		if len(cfg.Validators.Validators) != 2 {
			t.Errorf("expected 2 validators, got %d", len(cfg.Validators.Validators))
		}
		if cfg.Validators.Threshold != 2 {
			t.Errorf("expected threshold 2, got %d", cfg.Validators.Threshold)
		}
		if len(cfg.Watch.Params) != 3 {
			t.Errorf("expected 3 watch params, got %d", len(cfg.Watch.Params))
		}
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		if _, err := NewLoader(newTestLogger()).Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Errorf("expected error, got nil")
		}
	})

	t.Run("should fail on malformed yaml", func(t *testing.T) {
		path := writeTestConfig(t, "not: [valid: yaml")

		if _, err := NewLoader(newTestLogger()).Load(path); err == nil {
			t.Errorf("expected error, got nil")
		}
	})

	t.Run("should fail validation for an invalid config", func(t *testing.T) {
		path := writeTestConfig(t, "network: anvil\nthreshold: 0\n")

		if _, err := NewLoader(newTestLogger()).Load(path); err == nil {
			t.Errorf("expected error, got nil")
		}
	})

	t.Run("should fail on unknown network", func(t *testing.T) {
		path := writeTestConfig(t, `
network: moonnet
threshold: 1
validators:
  - address: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
watch:
  contract_address: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  event_signature: "Ping()"
  params: []
`)

		if _, err := NewLoader(newTestLogger()).Load(path); err == nil {
			t.Errorf("expected error, got nil")
		}
	})

	t.Run("should resolve mainnet and sepolia networks", func(t *testing.T) {
		for network, want := range map[string]interface{}{
			"mainnet": MainnetChainConfig,
			"sepolia": SepoliaChainConfig,
		} {
			path := writeTestConfig(t, `
network: `+network+`
threshold: 1
validators:
  - address: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
watch:
  contract_address: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  event_signature: "Ping()"
  params: []
`)

			cfg, err := NewLoader(newTestLogger()).Load(path)
			if err != nil {
				t.Fatalf("expected no error for %s, got %v", network, err)
			}
			if cfg.ChainConfig != want {
				t.Errorf("expected %s chain config to match, got different pointer", network)
			}
		}
	})
}
