package entrystore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/schema"
	"github.com/google/uuid"
)

// MemoryStore is an in-memory entry.Store for scaffolding and tests. It
// preserves insertion order per model and enforces locale-scoped slug
// uniqueness against the registry's slug field declarations.
type MemoryStore struct {
	mu       sync.RWMutex
	registry *schema.Registry
	entries  map[uuid.UUID]*entry.Entry
	order    map[string][]uuid.UUID
	slugs    map[string]uuid.UUID
	clock    func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMemoryClock overrides the timestamp source, useful in tests.
func WithMemoryClock(clock func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewMemoryStore creates an empty in-memory store bound to a model registry.
func NewMemoryStore(registry *schema.Registry, opts ...MemoryOption) *MemoryStore {
	store := &MemoryStore{
		registry: registry,
		entries:  make(map[uuid.UUID]*entry.Entry),
		order:    make(map[string][]uuid.UUID),
		slugs:    make(map[string]uuid.UUID),
		clock:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	return store
}

// FindAll returns every entry of the model in insertion order.
func (s *MemoryStore) FindAll(_ context.Context, model string) ([]*entry.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.order[model]
	out := make([]*entry.Entry, 0, len(ids))
	for _, id := range ids {
		if rec, ok := s.entries[id]; ok {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

// Count reports how many entries of the model exist.
func (s *MemoryStore) Count(_ context.Context, model string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order[model]), nil
}

// GetByID retrieves an entry by identifier.
func (s *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (*entry.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.entries[id]
	if !ok {
		return nil, &entry.NotFoundError{Resource: "entry", Key: id.String()}
	}
	return rec.Clone(), nil
}

// Insert persists the record, assigning an ID when unset. Slug values are
// checked for uniqueness within their model and locale before the write.
func (s *MemoryStore) Insert(_ context.Context, record *entry.Entry) (*entry.Entry, error) {
	if record == nil {
		return nil, entry.ErrEntryRequired
	}
	if strings.TrimSpace(record.Model) == "" {
		return nil, entry.ErrModelRequired
	}

	model, err := s.registry.Model(record.Model)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := record.Clone()
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	now := s.clock()
	copied.CreatedAt = now
	copied.UpdatedAt = now

	slugKeys, err := s.slugKeys(model, copied)
	if err != nil {
		return nil, err
	}
	for _, key := range slugKeys {
		s.slugs[key] = copied.ID
	}

	s.entries[copied.ID] = copied
	s.order[model.Name] = append(s.order[model.Name], copied.ID)
	return copied.Clone(), nil
}

// Delete removes the entry and its slug index rows.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[id]
	if !ok {
		return &entry.NotFoundError{Resource: "entry", Key: id.String()}
	}

	delete(s.entries, id)
	for key, owner := range s.slugs {
		if owner == id {
			delete(s.slugs, key)
		}
	}

	ids := s.order[rec.Model]
	for i, candidate := range ids {
		if candidate == id {
			s.order[rec.Model] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// slugKeys collects the index keys a record would occupy and rejects
// collisions. Uniqueness is scoped to model+locale; the same slug under
// different locales never conflicts.
func (s *MemoryStore) slugKeys(model schema.Model, record *entry.Entry) ([]string, error) {
	if model.SlugField == "" {
		return nil, nil
	}
	localized, ok := record.Localized(model.SlugField)
	if !ok {
		return nil, nil
	}

	keys := make([]string, 0, localized.Len())
	for _, locale := range localized.Locales() {
		value, _ := localized.Resolve(locale)
		slugValue, isString := value.(string)
		if !isString || slugValue == "" {
			continue
		}
		key := slugIndexKey(model.Name, locale, slugValue)
		if owner, taken := s.slugs[key]; taken && owner != record.ID {
			return nil, &entry.SlugExistsError{Model: model.Name, Locale: locale, Slug: slugValue}
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func slugIndexKey(model, locale, slug string) string {
	return model + "\x00" + schema.NormalizeLocale(locale) + "\x00" + slug
}
