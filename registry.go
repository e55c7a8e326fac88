package scriptframe

import (
	"sort"
	"sync"
)

var (
	registryMu sync.Mutex
	registry   = make(map[string]Script)
)

// Register makes a script runnable by name, typically from an init
// function. An empty or duplicate name panics: both are programmer
// errors best caught at startup.
func Register(s Script) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := s.Name()
	if name == "" {
		panic("scriptframe: Register called with an empty script name")
	}
	if _, dup := registry[name]; dup {
		panic("scriptframe: Register called twice for script " + name)
	}
	registry[name] = s
}

// Lookup returns the registered script with the given name.
func Lookup(name string) (Script, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered script names in sorted order.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
