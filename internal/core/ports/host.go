package ports

// Host is the orchestration framework the plugin runs inside
type Host interface {
	// ServicePath returns the directory the host currently invokes and deploys from
	ServicePath() string

	// SetServicePath replaces the host's service path
	SetServicePath(path string)

	// Custom returns the user's custom.<section> object, or nil when absent
	Custom(section string) map[string]interface{}

	// FunctionHandler returns the "module.function" reference of the
	// function being invoked, or "" when the operation is not per-function
	FunctionHandler() string
}
