package service

import (
	"errors"
	"strings"

	"aisle-finder/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NormalizeQuery trims surrounding space, including the ideographic space.
// Width differences are left to the repository, which matches both forms.
func NormalizeQuery(q string) string {
	return strings.TrimSpace(q)
}

// validationError maps a validator failure on a query to its domain error.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "required":
			return model.ErrQueryRequired
		case "max":
			return model.ErrQueryTooLong
		}
	}
	return err
}
