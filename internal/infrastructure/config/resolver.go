package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"

	"slsbundler.dev/cli/internal/core/domain"
	"slsbundler.dev/cli/internal/core/ports"
)

// Custom sections read from the host
const (
	PluginSection = "bundler"
	BuildSection  = "webpack"
)

// Resolver merges defaults with the host's custom sections. It keeps no
// state between calls, since the host configuration may still be filling
// in when the plugin is constructed.
type Resolver struct {
	env     *EnvLoader
	logger  ports.Logger
	workDir string
}

// NewResolverWithWorkDir creates a resolver with an explicit working directory
func NewResolverWithWorkDir(env *EnvLoader, logger ports.Logger, workDir string) *Resolver {
	return &Resolver{env: env, logger: logger, workDir: workDir}
}

// WorkDir returns the directory defaults are derived from
func (r *Resolver) WorkDir() string {
	return r.workDir
}

// Resolve produces fully populated configs from the current host state and
// environment. It never fails: a key that cannot be decoded keeps its
// default and is reported as a warning, while the keys around it still
// apply. As a side effect the logger's verbosity follows the resolved
// LoggingEnabled.
func (r *Resolver) Resolve(host ports.Host) (domain.PluginConfig, domain.BuildConfig) {
	var pluginOverrides domain.PluginOverrides
	problems := decodeSection(PluginSection, host.Custom(PluginSection), &pluginOverrides, "logging")
	plugin := pluginOverrides.Apply(domain.DefaultPluginConfig(r.env.DebugEnabled()))

	var buildOverrides domain.BuildOverrides
	problems = append(problems, decodeSection(BuildSection, host.Custom(BuildSection), &buildOverrides, "output")...)
	handler := domain.ParseHandler(host.FunctionHandler())
	build := buildOverrides.Apply(domain.DefaultBuildConfig(handler, r.workDir))

	// Warnings go out after the level is set so they are not lost to a
	// logger still at its startup level
	r.logger.SetDebug(plugin.LoggingEnabled)
	for _, p := range problems {
		r.logger.Warn("ignoring %s", p)
	}
	return plugin, build
}

// decodeSection decodes section into out one key at a time, so a bad value
// only costs its own key. Keys named in nested are objects whose entries are
// decoded one at a time as well. It returns one message per rejected key.
func decodeSection(name string, section map[string]interface{}, out interface{}, nested ...string) []string {
	var problems []string
	for _, key := range sortedKeys(section) {
		value := section[key]
		if inner, ok := value.(map[string]interface{}); ok && contains(nested, key) {
			for _, sub := range sortedKeys(inner) {
				single := map[string]interface{}{key: map[string]interface{}{sub: inner[sub]}}
				if err := decodeKey(single, out); err != nil {
					problems = append(problems, fmt.Sprintf("custom.%s.%s.%s: %v", name, key, sub, err))
				}
			}
			continue
		}
		if err := decodeKey(map[string]interface{}{key: value}, out); err != nil {
			problems = append(problems, fmt.Sprintf("custom.%s.%s: %v", name, key, err))
		}
	}
	return problems
}

// decodeKey decodes a single-key map into out. The value is first decoded
// into a scratch copy so that a failure leaves out untouched.
func decodeKey(single map[string]interface{}, out interface{}) error {
	scratch := reflect.New(reflect.TypeOf(out).Elem()).Interface()
	if err := decode(single, scratch); err != nil {
		return unwrapDecodeError(err)
	}
	return decode(single, out)
}

func decode(input map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			yamlBoolWords,
			mapKeysToSlice,
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// unwrapDecodeError drops mapstructure's "1 error(s) decoding:" framing
func unwrapDecodeError(err error) error {
	var merr *mapstructure.Error
	if errors.As(err, &merr) && len(merr.Errors) == 1 {
		return errors.New(merr.Errors[0])
	}
	return err
}

// yamlBoolWords accepts the YAML 1.1 boolean words (yes/no, on/off) that
// yaml.v3 leaves as plain strings
func yamlBoolWords(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	switch strings.ToLower(reflect.ValueOf(data).String()) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return data, nil
}

// mapKeysToSlice accepts webpack's object form of externals
// ({"aws-sdk": "aws-sdk"}) where a list of module names is expected
func mapKeysToSlice(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Map || to != reflect.TypeOf([]string(nil)) {
		return data, nil
	}
	v := reflect.ValueOf(data)
	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		if s, ok := k.Interface().(string); ok {
			keys = append(keys, s)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
