package entrystore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/schema"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunStore persists entries through go-repository-bun, optionally wrapped
// with a read-through cache.
type BunStore struct {
	repo     repository.Repository[*EntryRecord]
	registry *schema.Registry
	clock    func() time.Time
}

// BunOption configures a BunStore.
type BunOption func(*BunStore)

// WithBunClock overrides the timestamp source, useful in tests.
func WithBunClock(clock func() time.Time) BunOption {
	return func(s *BunStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewBunStore constructs a store without caching.
func NewBunStore(db *bun.DB, registry *schema.Registry, opts ...BunOption) *BunStore {
	return NewBunStoreWithCache(db, registry, nil, nil, opts...)
}

// NewBunStoreWithCache constructs a store with optional repository caching.
// Passing a nil cache service or serializer skips the cache wrap.
func NewBunStoreWithCache(db *bun.DB, registry *schema.Registry, cacheService cache.CacheService, keySerializer cache.KeySerializer, opts ...BunOption) *BunStore {
	base := NewEntryRepository(db)
	wrapped := base
	if cacheService != nil && keySerializer != nil {
		wrapped = repositorycache.New(base, cacheService, keySerializer)
	}
	store := &BunStore{
		repo:     wrapped,
		registry: registry,
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
func (s *BunStore) FindAll(ctx context.Context, model string) ([]*entry.Entry, error) {
	records, _, err := s.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("model = ?", model).Order("created_at ASC")
	}))
	if err != nil {
		return nil, &entry.StoreError{Op: "find_all", Err: err}
	}
	entries := make([]*entry.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, fromRecord(record))
	}
	return entries, nil
}

// Count reports how many entries of the model exist.
func (s *BunStore) Count(ctx context.Context, model string) (int, error) {
	_, total, err := s.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("model = ?", model)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return 0, &entry.StoreError{Op: "count", Err: err}
	}
	return total, nil
}

// GetByID retrieves an entry by identifier.
func (s *BunStore) GetByID(ctx context.Context, id uuid.UUID) (*entry.Entry, error) {
	record, err := s.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return fromRecord(record), nil
}

// Insert persists the record, assigning an ID when unset and enforcing
// locale-scoped slug uniqueness before the write.
func (s *BunStore) Insert(ctx context.Context, record *entry.Entry) (*entry.Entry, error) {
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
	if err := s.checkSlugUniqueness(ctx, model, record); err != nil {
		return nil, err
	}

	copied := record.Clone()
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	now := s.clock()
	copied.CreatedAt = now
	copied.UpdatedAt = now

	created, err := s.repo.Create(ctx, toRecord(copied))
	if err != nil {
		return nil, &entry.StoreError{Op: "insert", Err: err}
	}
	return fromRecord(created), nil
}

// Delete removes the entry.
func (s *BunStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id.String()); err != nil {
		return mapRepositoryError(err, id.String())
	}
	if err := s.repo.Delete(ctx, &EntryRecord{ID: id}); err != nil {
		return &entry.StoreError{Op: "delete", Err: err}
	}
	return nil
}

func (s *BunStore) checkSlugUniqueness(ctx context.Context, model schema.Model, record *entry.Entry) error {
	if model.SlugField == "" {
		return nil
	}
	localized, ok := record.Localized(model.SlugField)
	if !ok || localized.Len() == 0 {
		return nil
	}

	existing, err := s.FindAll(ctx, model.Name)
	if err != nil {
		return err
	}
	for _, locale := range localized.Locales() {
		value, _ := localized.Resolve(locale)
		slugValue, isString := value.(string)
		if !isString || slugValue == "" {
			continue
		}
		for _, candidate := range existing {
			if candidate.ID == record.ID {
				continue
			}
			candidateSlug, found := candidate.ResolveField(model.SlugField, locale)
			if found && candidateSlug == slugValue {
				return &entry.SlugExistsError{Model: model.Name, Locale: locale, Slug: slugValue}
			}
		}
	}
	return nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &entry.NotFoundError{
			Resource: "entry",
			Key:      key,
		}
	}
	return fmt.Errorf("entry repository error: %w", err)
}
