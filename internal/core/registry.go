package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]ExportFormat)
	registryMu sync.RWMutex
)

// Register adds an export format to the registry.
// Panics if a format with the same key is already registered.
func Register(format ExportFormat) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[format.Info.Key]; exists {
		panic(fmt.Sprintf("export format already registered: %s", format.Info.Key))
	}
	if format.Map == nil || format.FileName == nil {
		panic(fmt.Sprintf("export format %s: Map and FileName are required", format.Info.Key))
	}

	registry[format.Info.Key] = format
}

// Lookup returns an export format by key.
// Returns false if not found.
func Lookup(key string) (ExportFormat, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	format, ok := registry[key]
	return format, ok
}

// Formats returns display information for all registered formats,
// sorted by key for consistent ordering.
func Formats() []FormatInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]FormatInfo, 0, len(registry))
	for _, format := range registry {
		result = append(result, format.Info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// FormatCount returns the number of registered formats.
func FormatCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered formats.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]ExportFormat)
}
