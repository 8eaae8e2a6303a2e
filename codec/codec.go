// Package codec centralizes the wire encoding used to ship per-partition
// scan records and merged stats between engine workers and the coordinator.
//
// Codec selection is a compatibility boundary: bytes produced by one codec
// only decode with the same codec. Transfers are self-describing: the codec
// name travels with the payload, and the receiving side resolves the codec
// with ByName. Host engines register their own codecs with Register.
package codec

import (
	"fmt"
	"strings"
	"sync"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is configured.
//
// CBOR is compact and self-describing, which suits gather transfers of many
// small scan records.
var Default Codec = CBOR{}

var (
	registryMu sync.RWMutex
	registry   = map[string]Codec{}
)

// Register makes a codec resolvable through ByName. It is the hook a host
// engine uses to plug its own wire format in for scan-record transfer.
// Registering a name twice overwrites the previous codec.
func Register(c Codec) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.Name()] = c
}

// ByName returns a codec by its stable name.
//
// Built-ins resolve without registration: "json", "go-json", "cbor", and any
// of those with a "+s2" or "+lz4" compression suffix (e.g. "cbor+s2").
func ByName(name string) (Codec, bool) {
	registryMu.RLock()
	if c, ok := registry[name]; ok {
		registryMu.RUnlock()
		return c, true
	}
	registryMu.RUnlock()

	if base, suffix, ok := strings.Cut(name, "+"); ok {
		inner, found := ByName(base)
		if !found {
			return nil, false
		}
		switch suffix {
		case "s2":
			return CompressedS2(inner), true
		case "lz4":
			return CompressedLZ4(inner), true
		}
		return nil, false
	}

	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "cbor":
		return CBOR{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
