package field

import (
	"crypto/elliptic"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// DefaultName is the modulus used when none is configured: 2^256 - 189.
const DefaultName = "prime256"

// ErrUnknownModulus is returned by Get for names that were never registered.
var ErrUnknownModulus = errors.New("unknown modulus")

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Field)
)

// Register makes a prime modulus available by name.
func Register(name string, p *big.Int) error {
	f, err := New(p)
	if err != nil {
		return fmt.Errorf("register %s: %w", name, err)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		return fmt.Errorf("modulus %s already registered", name)
	}
	registry[name] = f
	return nil
}

// Get retrieves a registered field by its name.
func Get(name string) (*Field, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModulus, name)
	}
	return f, nil
}

// Default returns the field registered under DefaultName.
func Default() *Field {
	f, err := Get(DefaultName)
	if err != nil {
		panic(err)
	}
	return f
}

// Names lists the registered moduli in lexical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustRegister(name string, p *big.Int) {
	if err := Register(name, p); err != nil {
		panic(err)
	}
}

func init() {
	p256 := new(big.Int).Lsh(big.NewInt(1), 256)
	p256.Sub(p256, big.NewInt(189))
	mustRegister(DefaultName, p256)

	// Group orders of the usual curves are primes of the same magnitude.
	mustRegister("secp256k1", secp256k1.S256().Params().N)
	for _, c := range []elliptic.Curve{elliptic.P256(), elliptic.P384(), elliptic.P521()} {
		mustRegister(c.Params().Name, c.Params().N)
	}
}
