package settings

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-window/pkg/common/http/validation"
)

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validation.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
