package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chainproof/internal/config"
	"chainproof/internal/log"
	"chainproof/receiptcache"
	"chainproof/storage/badger"
	"chainproof/storage/mem"
	"chainproof/trie"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	dbMem    = "mem"
	dbBadger = "badger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	receiptPath := flag.String("receipt", "receipt.json", "Path to receipt fixture file")
	abiPath := flag.String("abi", "", "Path to a contract ABI JSON file (optional, overrides the event shape in -config)")
	eventName := flag.String("event-name", "", "Event name to resolve from -abi (required if -abi is set)")
	dbKind := flag.String("db", dbMem, "Receipt cache backend: mem or badger")
	dbPath := flag.String("db-path", "/chainproof/.db", "Path to database (only used when -db=badger)")

	if v := os.Getenv("CONFIG_PATH"); v != "" {
		flag.Set("config", v)
	}
	if v := os.Getenv("RECEIPT_PATH"); v != "" {
		flag.Set("receipt", v)
	}
	if v := os.Getenv("ABI_PATH"); v != "" {
		flag.Set("abi", v)
	}
	if v := os.Getenv("EVENT_NAME"); v != "" {
		flag.Set("event-name", v)
	}
	if v := os.Getenv("DB_BACKEND"); v != "" {
		flag.Set("db", v)
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		flag.Set("db-path", v)
	}

	flag.Parse()

	logger := log.New(log.NewTerminalHandler()).With("component", "main")

	logger.Info("using config file", "path", *configPath)
	logger.Info("using receipt fixture", "path", *receiptPath)

	cache, err := openCache(*dbKind, *dbPath)
	if err != nil {
		logger.Error("failed to open receipt cache", "db", *dbKind, "err", err)
		os.Exit(1)
	}
	defer cache.Close()
	logger.Info("receipt cache opened", "db", *dbKind)

	loader := config.NewLoader(logger)
	cfg, err := loader.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "network", cfg.Network, "validators", len(cfg.Validators.Validators), "threshold", cfg.Validators.Threshold)

	if *abiPath != "" {
		if *eventName == "" {
			logger.Error("-event-name is required when -abi is set")
			os.Exit(2)
		}

		contractABI, err := config.LoadABI(*abiPath)
		if err != nil {
			logger.Error("failed to load contract ABI", "err", err)
			os.Exit(1)
		}

		signature, params, err := config.ResolveEvent(contractABI, *eventName)
		if err != nil {
			logger.Error("failed to resolve event from ABI", "err", err)
			os.Exit(1)
		}

		cfg.Watch.EventSignature = signature
		cfg.Watch.Params = params
		logger.Info("resolved event from ABI", "name", *eventName, "signature", signature)
	}

	f, err := loadFixture(*receiptPath)
	if err != nil {
		logger.Error("failed to load receipt fixture", "err", err)
		os.Exit(1)
	}

	values, err := f.parsedValues()
	if err != nil {
		logger.Error("failed to parse fixture values", "err", err)
		os.Exit(1)
	}

	ev, err := cfg.Watch.BuildEvent(values)
	if err != nil {
		logger.Error("failed to build watched event", "err", err)
		os.Exit(1)
	}
	logger.Info("watching for event", "contract", ev.Address, "topic0", ev.Topics[0])

	if !f.Receipt.Succeeded() {
		logger.Warn("receipt did not succeed, no event can match", "status", f.Receipt.Status)
		os.Exit(1)
	}

	found, matched := ev.FindIn(f.Receipt)
	if !found {
		logger.Error("event not found in receipt")
		os.Exit(1)
	}
	logger.Info("event matched", "log_address", matched.Address, "log_data", matched.Data)

	receiptID := filepath.Base(*receiptPath)
	if err := cache.Put(receiptID, f.Receipt); err != nil {
		logger.Error("failed to cache receipt", "id", receiptID, "err", err)
		os.Exit(1)
	}
	cached, err := cache.Get(receiptID)
	if err != nil {
		logger.Error("failed to read back cached receipt", "id", receiptID, "err", err)
		os.Exit(1)
	}
	logger.Info("receipt persisted and read back", "id", receiptID, "status", cached.Status)

	if !f.hasProof() {
		logger.Info("fixture carries no proof data, stopping after match")
		return
	}

	if err := replayProof(logger, f); err != nil {
		logger.Error("proof verification failed", "err", err)
		os.Exit(1)
	}
	logger.Info("proof verified against receipts root", "root", f.ReceiptsRoot)
}

// openCache constructs the selectable receiptcache backend:
// an in-memory store for quick runs, or a badger datastore at
// dbPath for a persistent one.
func openCache(kind, dbPath string) (*receiptcache.Cache, error) {
	switch kind {
	case dbMem:
		return receiptcache.New(mem.New()), nil
	case dbBadger:
		db, err := badger.New(dbPath)
		if err != nil {
			return nil, err
		}
		return receiptcache.New(db), nil
	default:
		return nil, fmt.Errorf("unsupported db backend %q, want %q or %q", kind, dbMem, dbBadger)
	}
}

// replayProof rebuilds a trie.ProofStore from the fixture's
// hex-encoded proof nodes and verifies the fixture's
// proof key/value against the fixture's receipts root.
func replayProof(logger log.Logger, f *fixture) error {
	store := trie.NewProofStore()

	for i, hexNode := range f.ProofNodes {
		encoded, err := hexutil.Decode(hexNode)
		if err != nil {
			return fmt.Errorf("proof node %d: invalid hex: %w", i, err)
		}

		node, err := trie.DecodeNode(encoded)
		if err != nil {
			return fmt.Errorf("proof node %d: %w", i, err)
		}

		store.Put(node.Hash(), encoded)
	}
	logger.Debug("proof store rebuilt", "nodes", store.Len())

	root, err := hexutil.Decode(f.ReceiptsRoot)
	if err != nil {
		return fmt.Errorf("invalid receipts root: %w", err)
	}

	key, err := hexutil.Decode(f.ProofKey)
	if err != nil {
		return fmt.Errorf("invalid proof key: %w", err)
	}

	value, err := hexutil.Decode(f.ProofValue)
	if err != nil {
		return fmt.Errorf("invalid proof value: %w", err)
	}

	ok, err := trie.VerifyProof(trie.BytesToHash(root), key, value, store)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("proof did not verify")
	}

	return nil
}
