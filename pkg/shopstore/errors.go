package shopstore

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed errors below.
var (
	ErrLogin          = errors.New("login failed")
	ErrCreateProduct  = errors.New("create product failed")
	ErrInvalidPayload = errors.New("invalid listing payload")
	ErrUnknownVendor  = errors.New("unknown vendor")
)

// LoginError reports a non-2xx response from a token endpoint.
type LoginError struct {
	Vendor      Vendor
	Status      int
	StatusText  string
	Description string
}

func (e *LoginError) Error() string {
	msg := fmt.Sprintf("%s: error obtaining token: %d - %s", e.Vendor, e.Status, e.StatusText)
	if e.Description != "" {
		msg += ": " + e.Description
	}
	return msg
}

// Is reports whether target is ErrLogin.
func (e *LoginError) Is(target error) bool { return target == ErrLogin }

// DefaultCreateProductMessage is used when neither the marketplace nor
// the transport supplied a message.
const DefaultCreateProductMessage = "failed to create listing"

// CreateProductError reports a failed listing creation. Message is never
// empty: it holds the marketplace's own error message when there is one,
// otherwise the transport error, otherwise a generic fallback.
type CreateProductError struct {
	Vendor  Vendor
	Status  int
	Message string
	Err     error
}

// NewCreateProductError picks the message by priority: upstream message,
// then err's message, then fallback (or DefaultCreateProductMessage).
func NewCreateProductError(vendor Vendor, status int, upstream string, err error, fallback string) *CreateProductError {
	msg := upstream
	if msg == "" && err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = fallback
	}
	if msg == "" {
		msg = DefaultCreateProductMessage
	}
	return &CreateProductError{Vendor: vendor, Status: status, Message: msg, Err: err}
}

func (e *CreateProductError) Error() string {
	return e.Message
}

// Unwrap returns the underlying transport or validation error, if any.
func (e *CreateProductError) Unwrap() error { return e.Err }

// Is reports whether target is ErrCreateProduct.
func (e *CreateProductError) Is(target error) bool { return target == ErrCreateProduct }
