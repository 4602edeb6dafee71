package schema

import (
	"errors"
	"fmt"
)

var (
	ErrModelNameRequired     = errors.New("schema: model name is required")
	ErrModelFieldsRequired   = errors.New("schema: model requires at least one field")
	ErrModelDuplicate        = errors.New("schema: model already registered")
	ErrModelUnknown          = errors.New("schema: unknown model")
	ErrFieldNameRequired     = errors.New("schema: field name is required")
	ErrFieldDuplicate        = errors.New("schema: duplicate field name")
	ErrFieldTypeInvalid      = errors.New("schema: field type is invalid")
	ErrSlugFieldUnknown      = errors.New("schema: slug field is not declared on the model")
	ErrSlugFieldNotLocalized = errors.New("schema: slug field must be localized")
	ErrSlugFieldNotString    = errors.New("schema: slug field must be a string field")
	ErrDefaultLocaleRequired = errors.New("schema: default locale is required")
)

// UnknownModelError identifies lookups against a model the registry does not hold.
type UnknownModelError struct {
	Name string
}

func (e *UnknownModelError) Error() string {
	if e == nil || e.Name == "" {
		return ErrModelUnknown.Error()
	}
	return fmt.Sprintf("%s: %s", ErrModelUnknown.Error(), e.Name)
}

func (e *UnknownModelError) Unwrap() error {
	return ErrModelUnknown
}
