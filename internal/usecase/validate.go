package usecase

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateInput(kind string, item any) error {
	if err := validate.Struct(item); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, kind, err)
	}
	return nil
}
