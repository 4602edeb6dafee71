package engine

import (
	"strings"

	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/query"
	"github.com/goliatone/go-contentquery/schema"
)

// buildRecord resolves the selected entry's fields into an output record.
// Each selection resolves independently at its own locale override when
// present, the effective locale otherwise; a field with no value at that
// locale yields nil, never another locale's value. An empty selection list
// projects every model field under its own name.
func buildRecord(record *entry.Entry, model schema.Model, selections []query.FieldSelection, effectiveLocale string) query.Record {
	out := query.Record{
		ID:     record.ID,
		Model:  record.Model,
		Fields: make(map[string]any, len(selections)),
	}

	if len(selections) == 0 {
		for _, field := range model.Fields {
			value, ok := record.ResolveField(field.Name, effectiveLocale)
			if !ok {
				out.Fields[field.Name] = nil
				continue
			}
			out.Fields[field.Name] = value
		}
		return out
	}

	for _, selection := range selections {
		alias := strings.TrimSpace(selection.Alias)
		if alias == "" {
			alias = selection.Field
		}
		locale := effectiveLocale
		if selection.Locale != "" {
			locale = schema.NormalizeLocale(selection.Locale)
		}
		value, ok := record.ResolveField(selection.Field, locale)
		if !ok {
			out.Fields[alias] = nil
			continue
		}
		out.Fields[alias] = value
	}
	return out
}

// validateAgainstModel rejects references to fields the model does not
// declare, and sort keys on fields that are not sort-enabled. Stage functions
// never silently skip an invalid key; the whole request fails.
func validateAgainstModel(model schema.Model, clauses []query.Clause, keys []query.SortKey, selections []query.FieldSelection) error {
	for _, clause := range clauses {
		if !model.HasField(clause.Field) {
			return &query.UnknownFieldError{Model: model.Name, Field: clause.Field}
		}
	}
	for _, key := range keys {
		field, ok := model.Field(key.Field)
		if !ok {
			return &query.UnknownFieldError{Model: model.Name, Field: key.Field}
		}
		if !field.Sortable {
			return query.ErrFieldNotSortable
		}
	}
	for _, selection := range selections {
		if !model.HasField(selection.Field) {
			return &query.UnknownFieldError{Model: model.Name, Field: selection.Field}
		}
	}
	return nil
}
