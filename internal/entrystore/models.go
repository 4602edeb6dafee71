package entrystore

import (
	"time"

	"github.com/goliatone/go-contentquery/entry"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// EntryRecord is the persisted row shape for entries. Field payloads are
// stored as a JSON document; localized values nest under a reserved key so
// scalars and locale maps round-trip unambiguously.
type EntryRecord struct {
	bun.BaseModel `bun:"table:entries,alias:e"`

	ID        uuid.UUID      `bun:",pk,type:uuid"        json:"id"`
	Model     string         `bun:"model,notnull"        json:"model"`
	Fields    map[string]any `bun:"fields,type:jsonb,notnull" json:"fields"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// localizedKey marks a persisted field payload as a locale→scalar map.
const localizedKey = "$locales"

func toRecord(e *entry.Entry) *EntryRecord {
	if e == nil {
		return nil
	}
	return &EntryRecord{
		ID:        e.ID,
		Model:     e.Model,
		Fields:    encodeFields(e.Fields),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func fromRecord(r *EntryRecord) *entry.Entry {
	if r == nil {
		return nil
	}
	return &entry.Entry{
		ID:        r.ID,
		Model:     r.Model,
		Fields:    decodeFields(r.Fields),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func encodeFields(fields map[string]any) map[string]any {
	encoded := make(map[string]any, len(fields))
	for name, value := range fields {
		if localized, ok := value.(entry.LocalizedValue); ok {
			locales := make(map[string]any, localized.Len())
			for _, code := range localized.Locales() {
				stored, _ := localized.Resolve(code)
				locales[code] = stored
			}
			encoded[name] = map[string]any{localizedKey: locales}
			continue
		}
		encoded[name] = value
	}
	return encoded
}

func decodeFields(raw map[string]any) map[string]any {
	decoded := make(map[string]any, len(raw))
	for name, value := range raw {
		if wrapper, ok := value.(map[string]any); ok {
			if locales, isLocalized := wrapper[localizedKey].(map[string]any); isLocalized {
				decoded[name] = entry.NewLocalizedValue(locales)
				continue
			}
		}
		decoded[name] = value
	}
	return decoded
}
