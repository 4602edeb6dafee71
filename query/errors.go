package query

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeInvalidArgument  = "QUERY_INVALID_ARGUMENT"
	textCodeUnknownField     = "QUERY_UNKNOWN_FIELD"
	textCodeStoreUnavailable = "QUERY_STORE_UNAVAILABLE"
)

var (
	ErrUnknownField      = errors.New("query: unknown field")
	ErrFieldNotSortable  = errors.New("query: field is not sort-enabled")
	ErrSlugNotConfigured = errors.New("query: model does not declare a slug field")
)

// InvalidClauseError reports a malformed where key or operand shape.
type InvalidClauseError struct {
	Key    string
	Reason string
}

func (e *InvalidClauseError) Error() string {
	if e == nil {
		return "query: invalid where clause"
	}
	reason := strings.TrimSpace(e.Reason)
	if reason == "" {
		return fmt.Sprintf("query: invalid where clause %q", e.Key)
	}
	return fmt.Sprintf("query: invalid where clause %q: %s", e.Key, reason)
}

// UnknownFieldError identifies a where/sort/selection reference to a field
// the model schema does not declare. The whole request is rejected.
type UnknownFieldError struct {
	Model string
	Field string
}

func (e *UnknownFieldError) Error() string {
	if e == nil {
		return ErrUnknownField.Error()
	}
	return fmt.Sprintf("%s: %s.%s", ErrUnknownField.Error(), e.Model, e.Field)
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}

// WrapInvalidArgument tags a request validation failure with the shared
// category and text code so transports can map it to a structured error.
func WrapInvalidArgument(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	code := textCodeInvalidArgument
	if errors.Is(err, ErrUnknownField) {
		code = textCodeUnknownField
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "query request invalid").
		WithTextCode(code)
}

// WrapStoreError tags a store collaborator failure. The failure is propagated
// as-is, never retried by the engine.
func WrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "entry store unavailable").
		WithTextCode(textCodeStoreUnavailable)
}

// IsInvalidArgument reports whether err was rejected as a malformed request.
func IsInvalidArgument(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}
