package entry

import (
	"sort"
	"time"

	"github.com/goliatone/go-contentquery/schema"
	"github.com/google/uuid"
)

// LocalizedValue holds one scalar per locale for a single field. Values are
// immutable once constructed; mutation helpers return a new value set.
type LocalizedValue struct {
	values map[string]any
}

// NewLocalizedValue builds a localized value from a locale→scalar map.
// Locale codes are canonicalized; later duplicates win.
func NewLocalizedValue(values map[string]any) LocalizedValue {
	copied := make(map[string]any, len(values))
	for code, value := range values {
		copied[schema.NormalizeLocale(code)] = value
	}
	return LocalizedValue{values: copied}
}

// Resolve returns the value stored for the requested locale. A locale with no
// stored value yields (nil, false); it never substitutes another locale.
func (v LocalizedValue) Resolve(locale string) (any, bool) {
	value, ok := v.values[schema.NormalizeLocale(locale)]
	return value, ok
}

// With returns a copy carrying the supplied locale value.
func (v LocalizedValue) With(locale string, value any) LocalizedValue {
	copied := make(map[string]any, len(v.values)+1)
	for code, existing := range v.values {
		copied[code] = existing
	}
	copied[schema.NormalizeLocale(locale)] = value
	return LocalizedValue{values: copied}
}

// Locales lists the locale codes carrying a value, sorted.
func (v LocalizedValue) Locales() []string {
	codes := make([]string, 0, len(v.values))
	for code := range v.values {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len reports how many locales carry a value.
func (v LocalizedValue) Len() int {
	return len(v.values)
}

// Entry is one materialized record of a content model. Field values are plain
// scalars (string/float64/bool) or LocalizedValue containers.
type Entry struct {
	ID        uuid.UUID
	Model     string
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Localized returns the named field as a LocalizedValue when it is one.
func (e *Entry) Localized(field string) (LocalizedValue, bool) {
	if e == nil {
		return LocalizedValue{}, false
	}
	value, ok := e.Fields[field].(LocalizedValue)
	return value, ok
}

// ResolveField resolves the named field at the given locale. Plain scalars
// resolve regardless of locale; localized fields follow LocalizedValue.Resolve.
// The second return is false when the field is absent at that locale.
func (e *Entry) ResolveField(field, locale string) (any, bool) {
	if e == nil {
		return nil, false
	}
	raw, ok := e.Fields[field]
	if !ok || raw == nil {
		return nil, false
	}
	if localized, isLocalized := raw.(LocalizedValue); isLocalized {
		return localized.Resolve(locale)
	}
	return raw, true
}

// Clone returns a deep copy so store snapshots stay isolated from callers.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	copied := *e
	if e.Fields != nil {
		copied.Fields = make(map[string]any, len(e.Fields))
		for name, value := range e.Fields {
			if localized, ok := value.(LocalizedValue); ok {
				// LocalizedValue copies on write; sharing the map is safe
				// only because mutation always allocates.
				copied.Fields[name] = localized
				continue
			}
			copied.Fields[name] = value
		}
	}
	return &copied
}
