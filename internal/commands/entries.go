package commands

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-contentquery/entry"
	payloadvalidation "github.com/goliatone/go-contentquery/internal/validation"
	"github.com/goliatone/go-contentquery/pkg/interfaces"
	"github.com/goliatone/go-contentquery/schema"
	"github.com/google/uuid"
)

const (
	insertEntryMessageType = "contentquery.entry.insert"
	deleteEntryMessageType = "contentquery.entry.delete"
)

// InsertEntryCommand requests creation of one entry. Plain scalar fields go
// in Fields; locale-sensitive fields go in Localized as field→locale→value.
type InsertEntryCommand struct {
	Model     string                    `json:"model"`
	EntryID   uuid.UUID                 `json:"entry_id,omitempty"`
	Fields    map[string]any            `json:"fields,omitempty"`
	Localized map[string]map[string]any `json:"localized,omitempty"`
}

// Type implements command.Message.
func (InsertEntryCommand) Type() string { return insertEntryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m InsertEntryCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Model) == "" {
		errs["model"] = validation.NewError("contentquery.entry.insert.model_required", "model is required")
	}
	if len(m.Fields) == 0 && len(m.Localized) == 0 {
		errs["fields"] = validation.NewError("contentquery.entry.insert.fields_required", "at least one field is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InsertEntryHandler materializes insert commands against the entry store.
type InsertEntryHandler struct {
	inner *Handler[InsertEntryCommand]
}

// NewInsertEntryHandler constructs a handler wired to the provided registry and store.
func NewInsertEntryHandler(registry *schema.Registry, store entry.Store, logger interfaces.Logger, opts ...HandlerOption[InsertEntryCommand]) *InsertEntryHandler {
	exec := func(ctx context.Context, msg InsertEntryCommand) error {
		record, err := buildEntry(registry, msg)
		if err != nil {
			return err
		}
		_, err = store.Insert(ctx, record)
		return err
	}

	handlerOpts := []HandlerOption[InsertEntryCommand]{
		WithLogger[InsertEntryCommand](logger),
		WithOperation[InsertEntryCommand]("entry.insert"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &InsertEntryHandler{
		inner: NewHandler[InsertEntryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[InsertEntryCommand].Execute.
func (h *InsertEntryHandler) Execute(ctx context.Context, msg InsertEntryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// buildEntry assembles the stored record: slug values normalized per locale,
// payloads checked against the model's schema, and a deterministic ID derived
// from the default-locale slug when the caller supplies none.
func buildEntry(registry *schema.Registry, msg InsertEntryCommand) (*entry.Entry, error) {
	model, err := registry.Model(msg.Model)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any, len(msg.Fields)+len(msg.Localized))
	for name, value := range msg.Fields {
		fields[name] = value
	}

	for name, locales := range msg.Localized {
		values := make(map[string]any, len(locales))
		for locale, value := range locales {
			if name == model.SlugField {
				raw, isString := value.(string)
				if !isString {
					return nil, entry.ErrSlugInvalid
				}
				normalized, err := entry.NormalizeSlug(raw)
				if err != nil {
					return nil, err
				}
				values[locale] = normalized
				continue
			}
			values[locale] = value
		}
		fields[name] = entry.NewLocalizedValue(values)
	}

	if err := validatePayloads(model, msg, registry.DefaultLocale(model)); err != nil {
		return nil, err
	}

	record := &entry.Entry{
		ID:     msg.EntryID,
		Model:  model.Name,
		Fields: fields,
	}
	if record.ID == uuid.Nil && model.SlugField != "" {
		if localized, ok := record.Localized(model.SlugField); ok {
			if slugValue, found := localized.Resolve(registry.DefaultLocale(model)); found {
				if text, isString := slugValue.(string); isString && text != "" {
					record.ID = entry.EntryUUID(model.Name, text)
				}
			}
		}
	}
	return record, nil
}

// validatePayloads checks the scalar fields merged with each locale's values
// against the model's optional JSON schema.
func validatePayloads(model schema.Model, msg InsertEntryCommand, defaultLocale string) error {
	if len(model.Payload) == 0 {
		return nil
	}

	locales := map[string]struct{}{defaultLocale: {}}
	for _, values := range msg.Localized {
		for locale := range values {
			locales[schema.NormalizeLocale(locale)] = struct{}{}
		}
	}

	for locale := range locales {
		payload := make(map[string]any, len(msg.Fields)+len(msg.Localized))
		for name, value := range msg.Fields {
			payload[name] = value
		}
		for name, values := range msg.Localized {
			for candidate, value := range values {
				if schema.NormalizeLocale(candidate) == locale {
					payload[name] = value
				}
			}
		}
		if err := payloadvalidation.ValidatePayload(model.Payload, payload); err != nil {
			return err
		}
	}
	return nil
}

// DeleteEntryCommand requests removal of one entry by identifier.
type DeleteEntryCommand struct {
	EntryID uuid.UUID `json:"entry_id"`
}

// Type implements command.Message.
func (DeleteEntryCommand) Type() string { return deleteEntryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteEntryCommand) Validate() error {
	errs := validation.Errors{}
	if m.EntryID == uuid.Nil {
		errs["entry_id"] = validation.NewError("contentquery.entry.delete.entry_id_required", "entry_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteEntryHandler removes entries via the entry store.
type DeleteEntryHandler struct {
	inner *Handler[DeleteEntryCommand]
}

// NewDeleteEntryHandler constructs a handler wired to the provided store.
func NewDeleteEntryHandler(store entry.Store, logger interfaces.Logger, opts ...HandlerOption[DeleteEntryCommand]) *DeleteEntryHandler {
	exec := func(ctx context.Context, msg DeleteEntryCommand) error {
		return store.Delete(ctx, msg.EntryID)
	}

	handlerOpts := []HandlerOption[DeleteEntryCommand]{
		WithLogger[DeleteEntryCommand](logger),
		WithOperation[DeleteEntryCommand]("entry.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteEntryHandler{
		inner: NewHandler[DeleteEntryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteEntryCommand].Execute.
func (h *DeleteEntryHandler) Execute(ctx context.Context, msg DeleteEntryCommand) error {
	return h.inner.Execute(ctx, msg)
}
