package domain

import (
	"strings"
)

// DefaultModule is used when the host has no function handler, as on a
// whole-service deploy
const DefaultModule = "index"

// HandlerRef is a value object for a "module/path.function" handler reference
type HandlerRef struct {
	module   string
	function string
}

// ParseHandler splits a handler reference at its last dot. A reference
// without a dot is taken as a bare module path.
func ParseHandler(ref string) HandlerRef {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, "./")
	if ref == "" {
		return HandlerRef{module: DefaultModule}
	}

	i := strings.LastIndex(ref, ".")
	if i < 0 {
		return HandlerRef{module: ref}
	}
	if i == 0 {
		return HandlerRef{module: DefaultModule, function: ref[1:]}
	}
	return HandlerRef{module: ref[:i], function: ref[i+1:]}
}

// Module returns the module path portion, without extension
func (h HandlerRef) Module() string {
	if h.module == "" {
		return DefaultModule
	}
	return h.module
}

// Function returns the exported function name, which may be empty
func (h HandlerRef) Function() string {
	return h.function
}

// ModuleFile returns the module path with a .js extension
func (h HandlerRef) ModuleFile() string {
	return h.Module() + ".js"
}

// String implements the Stringer interface
func (h HandlerRef) String() string {
	if h.function == "" {
		return h.Module()
	}
	return h.Module() + "." + h.function
}
