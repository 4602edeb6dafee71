package entrystore

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewEntryRepository creates the generic bun repository for entry rows.
func NewEntryRepository(db *bun.DB) repository.Repository[*EntryRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*EntryRecord]{
		NewRecord: func() *EntryRecord { return &EntryRecord{} },
		GetID: func(r *EntryRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *EntryRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(r *EntryRecord) string {
			if r == nil {
				return ""
			}
			return r.ID.String()
		},
	})
}
