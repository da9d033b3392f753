package visits

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigurationError reports a setting that prevents the counter store from being reached.
// It is always returned before any store I/O is attempted.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is not set", e.Setting)
	}

	return fmt.Sprintf("%s is invalid: %s", e.Setting, e.Reason)
}

func MissingSetting(setting string) error {
	return errors.WithStack(&ConfigurationError{Setting: setting})
}

func InvalidSetting(setting string, reason string) error {
	return errors.WithStack(&ConfigurationError{Setting: setting, Reason: reason})
}

func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
