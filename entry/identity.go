package entry

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// DeterministicUUID derives a stable UUID from a key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/model).
func DeterministicUUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// EntryUUID derives a deterministic identifier for an entry from its model
// and default-locale slug. Entries without a slug fall back to random IDs.
func EntryUUID(model, slug string) uuid.UUID {
	return DeterministicUUID("contentquery:entry:" + strings.TrimSpace(model) + ":" + strings.TrimSpace(slug))
}
