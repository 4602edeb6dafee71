package schema

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldType enumerates the scalar types a model field may carry.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
)

// Field describes one field of a content model.
type Field struct {
	Name      string
	Type      FieldType
	Localized bool
	Sortable  bool
}

// Model describes a content model: its field schema, the default locale used
// when a request specifies none, and the optional slug field used for
// locale-scoped lookups. Models are plain values passed explicitly into every
// engine call; there is no process-wide registry.
type Model struct {
	Name          string
	DefaultLocale string
	// SlugField names a localized field whose per-locale values are unique
	// within the model. Empty disables slug lookups for the model.
	SlugField string
	Fields    []Field
	// Payload optionally holds a JSON schema applied to inserted field
	// payloads. Nil skips payload validation.
	Payload map[string]any
}

// Field returns the named field descriptor.
func (m Model) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// HasField reports whether the model declares the named field.
func (m Model) HasField(name string) bool {
	_, ok := m.Field(name)
	return ok
}

// FieldNames returns the declared field names in schema order.
func (m Model) FieldNames() []string {
	names := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Validate ensures the model descriptor is internally consistent.
func (m Model) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = ErrModelNameRequired
	}
	if len(m.Fields) == 0 {
		errs["fields"] = ErrModelFieldsRequired
	}

	seen := make(map[string]struct{}, len(m.Fields))
	for _, field := range m.Fields {
		if strings.TrimSpace(field.Name) == "" {
			errs["fields"] = ErrFieldNameRequired
			continue
		}
		if _, dup := seen[field.Name]; dup {
			errs["fields."+field.Name] = ErrFieldDuplicate
			continue
		}
		seen[field.Name] = struct{}{}

		switch field.Type {
		case TypeString, TypeNumber, TypeBoolean:
		default:
			errs["fields."+field.Name] = ErrFieldTypeInvalid
		}
	}

	if slugField := strings.TrimSpace(m.SlugField); slugField != "" {
		field, ok := m.Field(slugField)
		switch {
		case !ok:
			errs["slug_field"] = ErrSlugFieldUnknown
		case !field.Localized:
			errs["slug_field"] = ErrSlugFieldNotLocalized
		case field.Type != TypeString:
			errs["slug_field"] = ErrSlugFieldNotString
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
