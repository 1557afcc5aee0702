package host

import (
	"sync"

	"slsbundler.dev/cli/internal/core/ports"
)

// MemoryHost is a host whose state lives in memory, for embedding the
// orchestrator in another Go program
type MemoryHost struct {
	mu          sync.RWMutex
	servicePath string
	custom      map[string]map[string]interface{}
	handler     string
}

// NewMemoryHost creates a host starting at servicePath
func NewMemoryHost(servicePath string) *MemoryHost {
	return &MemoryHost{
		servicePath: servicePath,
		custom:      make(map[string]map[string]interface{}),
	}
}

func (h *MemoryHost) ServicePath() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.servicePath
}

func (h *MemoryHost) SetServicePath(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.servicePath = path
}

func (h *MemoryHost) Custom(section string) map[string]interface{} {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.custom[section]
}

// SetCustom replaces a custom section; nil removes it
func (h *MemoryHost) SetCustom(section string, values map[string]interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if values == nil {
		delete(h.custom, section)
		return
	}
	h.custom[section] = values
}

func (h *MemoryHost) FunctionHandler() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.handler
}

// SetFunctionHandler sets the handler reference of the invoked function
func (h *MemoryHost) SetFunctionHandler(handler string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = handler
}

var _ ports.Host = (*MemoryHost)(nil)
