package config

import (
	"fmt"
	"os"
	"strings"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// LoadABI reads an Ethereum smart contract ABI
// from the file at the specified path.
func LoadABI(path string) (gethabi.ABI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gethabi.ABI{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	parsed, err := gethabi.JSON(strings.NewReader(string(data)))
	if err != nil {
		return gethabi.ABI{}, fmt.Errorf("failed to parse ABI: %w", err)
	}

	return parsed, nil
}

// ResolveEvent looks up eventName in a loaded contract ABI
// and derives the pieces WatchConfig needs: the canonical
// event signature and, for each parameter in declaration
// order, its type name and whether it is indexed. This lets
// the demo point at a contract's own ABI JSON instead of
// spelling out the event shape by hand in YAML.
func ResolveEvent(contractABI gethabi.ABI, eventName string) (signature string, params []ParamSpec, err error) {
	ev, ok := contractABI.Events[eventName]
	if !ok {
		return "", nil, fmt.Errorf("event %q not found in ABI", eventName)
	}

	params = make([]ParamSpec, len(ev.Inputs))
	for i, arg := range ev.Inputs {
		params[i] = ParamSpec{Type: arg.Type.String(), Indexed: arg.Indexed}
	}

	return ev.Sig, params, nil
}
