package config

import (
	"fmt"
	"strings"
)

type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

type InvalidYAMLError struct {
	Wrapped error
	Path    string
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid unity config: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Wrapped
}

type InvalidOutputError struct {
	Value string
}

func (e *InvalidOutputError) Error() string {
	return fmt.Sprintf("invalid output format '%s': must be one of %s", e.Value,
		strings.Join([]string{string(OutputText), string(OutputJSON)}, ", "))
}

type InvalidNumberError struct {
	Property string
	Value    int
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("config property %s must not be negative, got %d", e.Property, e.Value)
}

type InvalidExtensionError struct {
	Value string
}

func (e *InvalidExtensionError) Error() string {
	if e.Value == "" {
		return "config property extensions must list at least one extension"
	}
	return fmt.Sprintf("invalid extension '%s': extensions must start with '.'", e.Value)
}
