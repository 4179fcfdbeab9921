package renamer

import (
	"errors"
	"fmt"
)

type (
	Config struct {
		WorkingDirectory string
		ReplacementDate  string
	}
)

const (
	DefaultWorkingDirectory = "_posts"
	DefaultReplacementDate  = "2022-04-02"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

func DefaultConfig() Config {
	return Config{
		WorkingDirectory: DefaultWorkingDirectory,
		ReplacementDate:  DefaultReplacementDate,
	}
}

// Non-nil returned error wraps [ErrInvalidConfig].
func (c Config) Validate() error {
	if c.WorkingDirectory == "" {
		return fmt.Errorf("%w: working directory must not be empty", ErrInvalidConfig)
	}

	// A replacement that is itself a date keeps the rule idempotent.
	if !IsDate(c.ReplacementDate) {
		return fmt.Errorf("%w: replacement date %q is not of the YYYY-MM-DD format", ErrInvalidConfig, c.ReplacementDate)
	}

	return nil
}

func (c Config) Rule() Rule {
	return DatePrefix(c.ReplacementDate)
}
