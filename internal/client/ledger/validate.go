package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gofinances/internal/client/models"
	"github.com/dmitrijs2005/gofinances/internal/common"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := models.CategoryByKey(fl.Field().String())
		return ok
	})
	return v
}

// validationError turns validator output into an ErrInvalidTransaction
// naming the offending fields.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", common.ErrInvalidTransaction, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gt":
			msgs = append(msgs, field+" must be greater than "+fe.Param())
		case "oneof":
			msgs = append(msgs, field+" must be one of: "+fe.Param())
		case "category":
			msgs = append(msgs, fmt.Sprintf("unknown category %q", fe.Value()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return fmt.Errorf("%w: %s", common.ErrInvalidTransaction, strings.Join(msgs, ", "))
}
