package types

import (
	"errors"
	"strings"
)

// Config holds the content-service location and local data directory for
// the pantry engine.
type Config struct {
	APIBase string `json:"api_base" yaml:"api_base"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Config validation errors.
var (
	ErrAPIBaseEmpty   = errors.New("api_base must not be empty")
	ErrAPIBaseInvalid = errors.New("api_base must be an http or https URL")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.APIBase == "" {
		return ErrAPIBaseEmpty
	}
	if !strings.HasPrefix(c.APIBase, "http://") && !strings.HasPrefix(c.APIBase, "https://") {
		return ErrAPIBaseInvalid
	}
	return nil
}
