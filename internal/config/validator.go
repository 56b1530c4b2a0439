package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the configuration values against their struct tags
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, describe(e))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", e.Namespace(), e.Param(), e.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s, got %v", e.Namespace(), e.Param(), e.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", e.Namespace(), e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s, got %v", e.Namespace(), e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s is invalid", e.Namespace())
	}
}
