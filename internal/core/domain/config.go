package domain

import (
	"path/filepath"
	"strings"
)

// Engine names accepted by PluginConfig.Engine
const (
	EngineESBuild = "esbuild"
	EngineWebpack = "webpack"
)

// DefaultOutputDir is the directory, relative to the working directory, that
// receives the bundle when no output path is configured
const DefaultOutputDir = "dist"

// PluginConfig holds the plugin's own settings, read from custom.bundler
type PluginConfig struct {
	LoggingEnabled bool   `json:"logging_enabled" yaml:"logging_enabled"`
	CleanAfter     bool   `json:"clean_after" yaml:"clean_after"`
	Engine         string `json:"engine" yaml:"engine"`
}

// DefaultPluginConfig returns the plugin defaults. loggingEnabled is the
// value of the debug flag observed by the caller.
func DefaultPluginConfig(loggingEnabled bool) PluginConfig {
	return PluginConfig{
		LoggingEnabled: loggingEnabled,
		CleanAfter:     true,
		Engine:         EngineESBuild,
	}
}

// OutputConfig describes where the bundle is written
type OutputConfig struct {
	Path          string `json:"path" yaml:"path" validate:"required"`
	Filename      string `json:"filename" yaml:"filename" validate:"required"`
	Library       string `json:"library" yaml:"library"`
	LibraryTarget string `json:"library_target" yaml:"library_target" validate:"omitempty,oneof=umd commonjs commonjs2 cjs module esm var iife window"`
}

// BuildConfig describes a single bundler invocation, read from custom.webpack
type BuildConfig struct {
	Entry     string       `json:"entry" yaml:"entry" validate:"required"`
	Target    string       `json:"target" yaml:"target" validate:"required,oneof=node web browser neutral"`
	Output    OutputConfig `json:"output" yaml:"output"`
	Devtool   string       `json:"devtool,omitempty" yaml:"devtool,omitempty"`
	Externals []string     `json:"externals,omitempty" yaml:"externals,omitempty"`
	Minify    bool         `json:"minify,omitempty" yaml:"minify,omitempty"`
}

// DefaultBuildConfig returns the bundler defaults for a handler, with the
// output directory placed under workDir.
func DefaultBuildConfig(handler HandlerRef, workDir string) BuildConfig {
	file := handler.ModuleFile()
	return BuildConfig{
		Entry:  "./" + file,
		Target: "node",
		Output: OutputConfig{
			Path:          filepath.Join(workDir, DefaultOutputDir),
			Filename:      file,
			Library:       "",
			LibraryTarget: "umd",
		},
	}
}

// OutputFile is the path of the bundle the build produces
func (c BuildConfig) OutputFile() string {
	return filepath.Join(c.Output.Path, c.Output.Filename)
}

// SourceMaps reports whether the devtool setting asks for source maps
func (c BuildConfig) SourceMaps() bool {
	return strings.Contains(c.Devtool, "source-map")
}

// PluginOverrides is the user-supplied partial form of PluginConfig.
// Nil fields keep their default.
type PluginOverrides struct {
	Logging *struct {
		Enabled *bool `mapstructure:"enabled"`
	} `mapstructure:"logging"`
	Clean  *bool   `mapstructure:"clean"`
	Engine *string `mapstructure:"engine"`
}

// Apply returns cfg with every set override replacing its default
func (o PluginOverrides) Apply(cfg PluginConfig) PluginConfig {
	if o.Logging != nil && o.Logging.Enabled != nil {
		cfg.LoggingEnabled = *o.Logging.Enabled
	}
	if o.Clean != nil {
		cfg.CleanAfter = *o.Clean
	}
	if o.Engine != nil {
		cfg.Engine = *o.Engine
	}
	return cfg
}

// devtoolValue maps webpack's `devtool: false` to no devtool. Weak decoding
// renders a YAML false as "0".
func devtoolValue(v string) string {
	switch v {
	case "0", "false":
		return ""
	}
	return v
}

// OutputOverrides is the partial form of OutputConfig
type OutputOverrides struct {
	Path          *string `mapstructure:"path"`
	Filename      *string `mapstructure:"filename"`
	Library       *string `mapstructure:"library"`
	LibraryTarget *string `mapstructure:"libraryTarget"`
}

// BuildOverrides is the partial form of BuildConfig. The output section is
// merged key by key, independently of the top-level keys.
type BuildOverrides struct {
	Entry     *string          `mapstructure:"entry"`
	Target    *string          `mapstructure:"target"`
	Output    *OutputOverrides `mapstructure:"output"`
	Devtool   *string          `mapstructure:"devtool"`
	Externals []string         `mapstructure:"externals"`
	Minify    *bool            `mapstructure:"minify"`
}

// Apply returns cfg with every set override replacing its default
func (o BuildOverrides) Apply(cfg BuildConfig) BuildConfig {
	if o.Entry != nil {
		cfg.Entry = *o.Entry
	}
	if o.Target != nil {
		cfg.Target = *o.Target
	}
	if o.Devtool != nil {
		cfg.Devtool = devtoolValue(*o.Devtool)
	}
	if o.Externals != nil {
		cfg.Externals = append([]string(nil), o.Externals...)
	}
	if o.Minify != nil {
		cfg.Minify = *o.Minify
	}
	if out := o.Output; out != nil {
		if out.Path != nil {
			cfg.Output.Path = *out.Path
		}
		if out.Filename != nil {
			cfg.Output.Filename = *out.Filename
		}
		if out.Library != nil {
			cfg.Output.Library = *out.Library
		}
		if out.LibraryTarget != nil {
			cfg.Output.LibraryTarget = *out.LibraryTarget
		}
	}
	return cfg
}
