package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultPluginConfig(t *testing.T) {
	cfg := DefaultPluginConfig(false)
	assert.False(t, cfg.LoggingEnabled)
	assert.True(t, cfg.CleanAfter)
	assert.Equal(t, EngineESBuild, cfg.Engine)

	assert.True(t, DefaultPluginConfig(true).LoggingEnabled)
}

func TestDefaultBuildConfig(t *testing.T) {
	workDir := filepath.Join("/", "srv", "app")
	cfg := DefaultBuildConfig(ParseHandler("src/users.create"), workDir)

	assert.Equal(t, "./src/users.js", cfg.Entry)
	assert.Equal(t, "node", cfg.Target)
	assert.Equal(t, filepath.Join(workDir, "dist"), cfg.Output.Path)
	assert.Equal(t, "src/users.js", cfg.Output.Filename)
	assert.Equal(t, "", cfg.Output.Library)
	assert.Equal(t, "umd", cfg.Output.LibraryTarget)
	assert.Equal(t, filepath.Join(workDir, "dist", "src", "users.js"), cfg.OutputFile())
	assert.False(t, cfg.SourceMaps())
}

func TestBuildConfig_SourceMaps(t *testing.T) {
	tests := []struct {
		devtool string
		want    bool
	}{
		{"", false},
		{"source-map", true},
		{"inline-source-map", true},
		{"eval", false},
	}
	for _, tt := range tests {
		t.Run(tt.devtool, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildConfig{Devtool: tt.devtool}.SourceMaps())
		})
	}
}

func TestBuildOverrides_OutputMergesPerKey(t *testing.T) {
	defaults := DefaultBuildConfig(ParseHandler("handler.hello"), "/work")
	path := "out/"

	merged := BuildOverrides{Output: &OutputOverrides{Path: &path}}.Apply(defaults)

	assert.Equal(t, "out/", merged.Output.Path)
	assert.Equal(t, defaults.Output.Filename, merged.Output.Filename, "unspecified output keys keep defaults")
	assert.Equal(t, defaults.Output.LibraryTarget, merged.Output.LibraryTarget)
	assert.Equal(t, defaults.Entry, merged.Entry, "top-level keys are untouched by an output override")
}

func TestBuildOverrides_ExternalsAreCopied(t *testing.T) {
	externals := []string{"aws-sdk"}
	merged := BuildOverrides{Externals: externals}.Apply(BuildConfig{})
	externals[0] = "changed"
	require.Len(t, merged.Externals, 1)
	assert.Equal(t, "aws-sdk", merged.Externals[0])
}

// TestPluginOverrides_PropertyBased_OverrideWinsDefaultsKept checks that every
// set key equals its override and every unset key equals its default
func TestPluginOverrides_PropertyBased_OverrideWinsDefaultsKept(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		debug := rapid.Bool().Draw(t, "debug")
		defaults := DefaultPluginConfig(debug)

		var o PluginOverrides
		if rapid.Bool().Draw(t, "setLogging") {
			enabled := rapid.Bool().Draw(t, "loggingEnabled")
			o.Logging = &struct {
				Enabled *bool `mapstructure:"enabled"`
			}{Enabled: &enabled}
		}
		if rapid.Bool().Draw(t, "setClean") {
			clean := rapid.Bool().Draw(t, "clean")
			o.Clean = &clean
		}
		if rapid.Bool().Draw(t, "setEngine") {
			engine := rapid.SampledFrom([]string{EngineESBuild, EngineWebpack}).Draw(t, "engine")
			o.Engine = &engine
		}

		got := o.Apply(defaults)

		if o.Logging != nil {
			assert.Equal(t, *o.Logging.Enabled, got.LoggingEnabled)
		} else {
			assert.Equal(t, defaults.LoggingEnabled, got.LoggingEnabled)
		}
		if o.Clean != nil {
			assert.Equal(t, *o.Clean, got.CleanAfter)
		} else {
			assert.Equal(t, defaults.CleanAfter, got.CleanAfter)
		}
		if o.Engine != nil {
			assert.Equal(t, *o.Engine, got.Engine)
		} else {
			assert.Equal(t, defaults.Engine, got.Engine)
		}
	})
}

func TestBuildOverrides_PropertyBased_OverrideWinsDefaultsKept(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		module := rapid.StringMatching(`[a-z]{1,8}(/[a-z]{1,8}){0,2}`).Draw(t, "module")
		defaults := DefaultBuildConfig(ParseHandler(module+".handler"), "/work")
		str := rapid.StringMatching(`[a-z./]{1,12}`)

		optional := func(label string) *string {
			if !rapid.Bool().Draw(t, "set"+label) {
				return nil
			}
			v := str.Draw(t, label)
			return &v
		}

		o := BuildOverrides{
			Entry:  optional("entry"),
			Target: optional("target"),
		}
		if rapid.Bool().Draw(t, "setOutput") {
			o.Output = &OutputOverrides{
				Path:          optional("path"),
				Filename:      optional("filename"),
				LibraryTarget: optional("libraryTarget"),
			}
		}

		got := o.Apply(defaults)

		pick := func(override *string, def string) string {
			if override != nil {
				return *override
			}
			return def
		}
		assert.Equal(t, pick(o.Entry, defaults.Entry), got.Entry)
		assert.Equal(t, pick(o.Target, defaults.Target), got.Target)
		out := o.Output
		if out == nil {
			out = &OutputOverrides{}
		}
		assert.Equal(t, pick(out.Path, defaults.Output.Path), got.Output.Path)
		assert.Equal(t, pick(out.Filename, defaults.Output.Filename), got.Output.Filename)
		assert.Equal(t, pick(out.LibraryTarget, defaults.Output.LibraryTarget), got.Output.LibraryTarget)
		assert.Equal(t, defaults.Output.Library, got.Output.Library)
	})
}

func TestBuildOverrides_DevtoolFalseDisablesSourceMaps(t *testing.T) {
	tests := []struct {
		name    string
		devtool string
		want    string
	}{
		{"WeakFalse", "0", ""},
		{"StringFalse", "false", ""},
		{"Named", "inline-source-map", "inline-source-map"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			devtool := tt.devtool
			got := BuildOverrides{Devtool: &devtool}.Apply(BuildConfig{Devtool: "source-map"})
			assert.Equal(t, tt.want, got.Devtool)
		})
	}
}
