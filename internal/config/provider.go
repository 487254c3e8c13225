package config

import (
	"os"
	"sync"
)

// Provider is a read-only lookup over the configuration surface. Consuming
// code depends on this interface instead of reading the process environment
// directly, so tests can substitute a [MapProvider].
type Provider interface {
	// Get returns the value bound to name and whether it is set at all.
	// An empty string with ok=true means the name is set to the empty value.
	Get(name string) (value string, ok bool)
}

// EnvProvider reads from the ambient process environment.
type EnvProvider struct{}

// Get implements [Provider] via os.LookupEnv.
func (EnvProvider) Get(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapProvider is an in-memory [Provider], safe for concurrent use. It is the
// test double for code that would otherwise read the process environment.
type MapProvider struct {
	mu   sync.RWMutex
	vals map[string]string
}

// NewMapProvider constructs a [MapProvider] seeded with vals. The map is
// copied; later mutation of vals does not affect the provider.
func NewMapProvider(vals map[string]string) *MapProvider {
	p := &MapProvider{vals: make(map[string]string, len(vals))}
	for k, v := range vals {
		p.vals[k] = v
	}
	return p
}

// Get implements [Provider].
func (p *MapProvider) Get(name string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.vals[name]
	return v, ok
}

// Set binds name to value. Last assignment wins.
func (p *MapProvider) Set(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.vals == nil {
		p.vals = make(map[string]string)
	}
	p.vals[name] = value
}

// Unset removes name from the provider.
func (p *MapProvider) Unset(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.vals, name)
}
