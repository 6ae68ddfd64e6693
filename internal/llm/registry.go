package llm

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Factory builds a concrete extractor from provider config.
type Factory func(cfg ProviderConfig, log *slog.Logger) (Extractor, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// RegisterProvider makes a backend constructible by name. Called from the
// provider package's init.
func RegisterProvider(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = f
}

// NewExtractor constructs the named provider. Unknown identifiers fail here,
// at construction, rather than at call time.
func NewExtractor(name string, cfg ProviderConfig, log *slog.Logger) (Extractor, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown extraction provider %q (have %v)", name, providerNames())
	}
	return f(cfg, log)
}

func providerNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
