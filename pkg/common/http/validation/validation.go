package validation

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct validates s using its `validate` tags.
func Struct(s any) error {
	return Validator().Struct(s)
}

// IsRequestValid validates req and returns a readable message on failure.
func IsRequestValid(req any) (bool, string) {
	err := Struct(req)
	if err == nil {
		return true, ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" failed on "+fe.Tag())
	}
	return false, strings.Join(msgs, "; ")
}
