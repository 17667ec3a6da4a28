package answers

import (
	"errors"
	"fmt"
)

// ConfigurationError reports that a selection the hooks cannot run without
// is empty in the answers file.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: no stack selected for %q", e.Key)
}

// IsConfigurationError reports whether err is or wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
