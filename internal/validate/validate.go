// Package validate checks listing payloads before they are sent to a
// marketplace.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/donaldgifford/shopstore/pkg/shopstore"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report JSON field names so messages match the wire payload.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates v against its `validate` tags. Failures are returned
// wrapping shopstore.ErrInvalidPayload with one entry per offending field.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", shopstore.ErrInvalidPayload, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", shopstore.ErrInvalidPayload, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := trimRoot(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt", "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	case "iso4217":
		return field + " must be an ISO 4217 currency code"
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}

// trimRoot drops the struct type name from a namespace such as
// "CreateItemPayload.pictures[0].source".
func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
