package host

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"slsbundler.dev/cli/internal/core/ports"
)

// DefaultManifest is the service manifest looked up in the service directory
const DefaultManifest = "serverless.yml"

// Manifest is the part of serverless.yml the plugin reads
type Manifest struct {
	Service   string                 `yaml:"service"`
	Custom    map[string]interface{} `yaml:"custom"`
	Functions map[string]struct {
		Handler string `yaml:"handler"`
	} `yaml:"functions"`
}

// ServerlessOptions selects the manifest and function for a ServerlessHost
type ServerlessOptions struct {
	// ServiceDir is the service root; defaults to the working directory
	ServiceDir string

	// ManifestPath overrides <ServiceDir>/serverless.yml. An explicit path
	// must exist; the default one may be absent.
	ManifestPath string

	// Function is a function name looked up under functions:
	Function string

	// Handler is a handler reference used as-is, taking precedence over Function
	Handler string

	// ServicePath is the initial service path; defaults to ServiceDir
	ServicePath string
}

// ServerlessHost is a host backed by a serverless.yml manifest. The service
// path it holds is what the CLI reports back to the framework.
type ServerlessHost struct {
	*MemoryHost
	manifest Manifest
	path     string
}

// LoadServerlessHost reads the manifest described by opts
func LoadServerlessHost(opts ServerlessOptions) (*ServerlessHost, error) {
	serviceDir := opts.ServiceDir
	if serviceDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine service directory: %w", err)
		}
		serviceDir = wd
	}

	manifestPath := opts.ManifestPath
	explicit := manifestPath != ""
	if !explicit {
		manifestPath = filepath.Join(serviceDir, DefaultManifest)
	}

	var manifest Manifest
	data, err := os.ReadFile(manifestPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
		}
	case os.IsNotExist(err) && !explicit:
		manifestPath = ""
	default:
		return nil, fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}

	servicePath := opts.ServicePath
	if servicePath == "" {
		servicePath = serviceDir
	}

	h := &ServerlessHost{
		MemoryHost: NewMemoryHost(servicePath),
		manifest:   manifest,
		path:       manifestPath,
	}
	for section, values := range manifest.Custom {
		// Scalar entries such as custom.stage are not plugin sections
		if m, ok := values.(map[string]interface{}); ok {
			h.SetCustom(section, m)
		}
	}

	handler := opts.Handler
	if handler == "" && opts.Function != "" {
		fn, ok := manifest.Functions[opts.Function]
		if !ok {
			return nil, fmt.Errorf("function %q is not defined in %s", opts.Function, h.describePath())
		}
		handler = fn.Handler
	}
	h.SetFunctionHandler(handler)

	return h, nil
}

// Manifest returns the parsed manifest
func (h *ServerlessHost) Manifest() Manifest {
	return h.manifest
}

// ManifestPath returns the file the host was loaded from, or "" if none
func (h *ServerlessHost) ManifestPath() string {
	return h.path
}

func (h *ServerlessHost) describePath() string {
	if h.path == "" {
		return "the service (no " + DefaultManifest + " found)"
	}
	return h.path
}

var _ ports.Host = (*ServerlessHost)(nil)
