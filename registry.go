package coerce

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]*recordPlan)
	registryMu sync.RWMutex
)

// planFor returns the cached record plan for T or builds a new one.
func planFor[T any]() (*recordPlan, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[typ]; ok {
		return cached, nil
	}

	plan, err := buildRecordPlan[T]()
	if err != nil {
		return nil, err
	}

	registry[typ] = plan
	return plan, nil
}

// Reset clears the record plan cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]*recordPlan)
}
