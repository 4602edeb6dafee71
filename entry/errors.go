package entry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEntryRequired    = errors.New("entry: entry record is required")
	ErrModelRequired    = errors.New("entry: model name is required")
	ErrNotFound         = errors.New("entry: not found")
	ErrSlugInvalid      = errors.New("entry: slug must be a non-empty string")
	ErrSlugExists       = errors.New("entry: slug already exists for locale")
	ErrStoreUnavailable = errors.New("entry: store unavailable")
)

// NotFoundError identifies a missing record by resource and key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	resource := strings.TrimSpace(e.Resource)
	if resource == "" {
		resource = "entry"
	}
	if key := strings.TrimSpace(e.Key); key != "" {
		return fmt.Sprintf("%s not found: %s", resource, key)
	}
	return fmt.Sprintf("%s not found", resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// SlugExistsError captures locale-scoped slug uniqueness violations.
type SlugExistsError struct {
	Model  string
	Locale string
	Slug   string
}

func (e *SlugExistsError) Error() string {
	if e == nil {
		return ErrSlugExists.Error()
	}
	return fmt.Sprintf("%s: model=%s locale=%s slug=%s", ErrSlugExists.Error(), e.Model, e.Locale, e.Slug)
}

func (e *SlugExistsError) Unwrap() error {
	return ErrSlugExists
}

// StoreError wraps a failure inside a store collaborator. The engine
// propagates these as-is; retry policy belongs to the store or its caller.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e == nil {
		return ErrStoreUnavailable.Error()
	}
	op := strings.TrimSpace(e.Op)
	if op == "" {
		return fmt.Sprintf("%s: %v", ErrStoreUnavailable.Error(), e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrStoreUnavailable.Error(), op, e.Err)
}

func (e *StoreError) Unwrap() error {
	if e == nil || e.Err == nil {
		return ErrStoreUnavailable
	}
	return e.Err
}

// IsNotFound reports whether err represents a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
