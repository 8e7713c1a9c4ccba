package errs

import (
	"errors"
	"fmt"
)

// Configuration & Environment Errors
var (
	ErrConfigInvalid       = errors.New("configuration invalid")
	ErrEnvironmentVariable = errors.New("environment variable error")
)

func NewConfigError(configName string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrConfigInvalid, configName, cause)
}

func NewEnvironmentVariableError(varName string) error {
	return fmt.Errorf("%w: %s is not set or invalid", ErrEnvironmentVariable, varName)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigInvalid)
}

func IsEnvironmentVariableError(err error) bool {
	return errors.Is(err, ErrEnvironmentVariable)
}
