package schema

import (
	"sort"
	"strings"
)

// Registry holds the model descriptors and default-locale table an engine is
// constructed with. It is immutable after construction so concurrent reads
// need no coordination.
type Registry struct {
	defaultLocale string
	models        map[string]Model
}

// NewRegistry builds a registry from the supplied models. The default locale
// applies to models that do not declare their own.
func NewRegistry(defaultLocale string, models ...Model) (*Registry, error) {
	trimmed := strings.TrimSpace(defaultLocale)
	if trimmed == "" {
		return nil, ErrDefaultLocaleRequired
	}

	registry := &Registry{
		defaultLocale: NormalizeLocale(trimmed),
		models:        make(map[string]Model, len(models)),
	}
	for _, model := range models {
		if err := registry.add(model); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (r *Registry) add(model Model) error {
	if err := model.Validate(); err != nil {
		return err
	}
	if _, exists := r.models[model.Name]; exists {
		return ErrModelDuplicate
	}
	if model.DefaultLocale != "" {
		model.DefaultLocale = NormalizeLocale(model.DefaultLocale)
	}
	r.models[model.Name] = model
	return nil
}

// Model returns the named descriptor or an UnknownModelError.
func (r *Registry) Model(name string) (Model, error) {
	model, ok := r.models[name]
	if !ok {
		return Model{}, &UnknownModelError{Name: name}
	}
	return model, nil
}

// DefaultLocale resolves the effective default locale for a model: the
// model's own default when declared, the registry default otherwise.
func (r *Registry) DefaultLocale(model Model) string {
	if model.DefaultLocale != "" {
		return model.DefaultLocale
	}
	return r.defaultLocale
}

// Models lists the registered model names in stable order.
func (r *Registry) Models() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeLocale canonicalizes a locale code for comparisons. Locale codes
// match case-insensitively; field names and slug values do not.
func NormalizeLocale(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
