package rain

import (
	"errors"
	"fmt"
)

// Configuration errors; each is wrapped in a *ConfigError naming the option
var (
	ErrEmptyCharset    = errors.New("character set is empty")
	ErrInvalidRange    = errors.New("invalid unicode range")
	ErrInvalidDensity  = errors.New("invalid density")
	ErrInvalidSpeed    = errors.New("invalid speed")
	ErrInvalidVariance = errors.New("invalid speed variance")
	ErrInvalidLifespan = errors.New("invalid tail lifespan")
	ErrInvalidNoise    = errors.New("invalid noise interval")
	ErrUnknownPreset   = errors.New("unknown preset")
)

// ConfigError reports one rejected option
type ConfigError struct {
	Option string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rain: %s: %v", e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func optionError(option string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Option: option, Err: err}
}
