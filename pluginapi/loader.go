package pluginapi

import (
	"fmt"
	"plugin"
	"sync"
)

// registry backs in-process plugin registration, the path used by tests
// and by hosts running on platforms where the stdlib plugin package is
// unavailable (it requires cgo and is Linux/macOS/ELF/Mach-O only).
var (
	registryMu sync.RWMutex
	registry   = map[string]*Plugin{}
)

// Register makes a Go-native plugin available under its own ID without
// going through a compiled .so file. Intended for tests and for hosts that
// link plugins directly into the binary.
func Register(p *Plugin) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[p.ID] = p
}

// Lookup returns a previously Register-ed plugin by ID.
func Lookup(id string) (*Plugin, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[id]
	return p, ok
}

// Load opens a compiled plugin (.so) at path and resolves its exported
// "Plugin" symbol, which must be a *pluginapi.Plugin value. This is the
// dynamic counterpart to Register, for plugins shipped as separately
// compiled shared objects built against the same Go toolchain version as
// the host.
func Load(path string) (*Plugin, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pluginapi: opening %s: %w", path, err)
	}
	sym, err := p.Lookup("Plugin")
	if err != nil {
		return nil, fmt.Errorf("pluginapi: %s does not export a Plugin symbol: %w", path, err)
	}
	value, ok := sym.(*Plugin)
	if !ok {
		return nil, fmt.Errorf("pluginapi: %s exports Plugin with the wrong type", path)
	}
	return value, nil
}
