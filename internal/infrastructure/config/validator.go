package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"slsbundler.dev/cli/internal/core/domain"
)

// ConfigValidator checks a resolved BuildConfig before it reaches a bundler
type ConfigValidator struct {
	validate *validator.Validate
}

// NewConfigValidator creates a new configuration validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateBuildConfig returns one diagnostic per invalid field, or nil
func (v *ConfigValidator) ValidateBuildConfig(cfg domain.BuildConfig) []string {
	err := v.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	diagnostics := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "BuildConfig.")
		switch fe.Tag() {
		case "required":
			diagnostics = append(diagnostics, fmt.Sprintf("invalid build config: %s is required", field))
		case "oneof":
			diagnostics = append(diagnostics, fmt.Sprintf("invalid build config: %s %q must be one of: %s", field, fe.Value(), fe.Param()))
		default:
			diagnostics = append(diagnostics, fmt.Sprintf("invalid build config: %s failed %s", field, fe.Tag()))
		}
	}
	return diagnostics
}
