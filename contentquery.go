// Package contentquery is a locale-aware content query engine: given a model
// registry and an entry store it answers single-entry lookups (by id or
// locale-qualified slug) and filtered, sorted, paginated list queries,
// resolving each requested field to the correct locale's value.
package contentquery

import (
	"context"
	"strings"

	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/internal/commands"
	"github.com/goliatone/go-contentquery/internal/engine"
	"github.com/goliatone/go-contentquery/internal/entrystore"
	"github.com/goliatone/go-contentquery/internal/logging"
	"github.com/goliatone/go-contentquery/internal/logging/gologger"
	"github.com/goliatone/go-contentquery/pkg/interfaces"
	"github.com/goliatone/go-contentquery/query"
	"github.com/goliatone/go-contentquery/schema"
	cache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Engine exports the query contract for consumers of the module.
type Engine interface {
	GetOne(ctx context.Context, req query.GetRequest) (*query.Record, error)
	List(ctx context.Context, req query.ListRequest) (*query.ListResult, error)
}

// Re-exported request/response types so hosts can depend on the root package alone.
type (
	GetRequest     = query.GetRequest
	ListRequest    = query.ListRequest
	Clause         = query.Clause
	SortKey        = query.SortKey
	FieldSelection = query.FieldSelection
	Record         = query.Record
	ListResult     = query.ListResult
	PageMeta       = query.PageMeta

	Model    = schema.Model
	Field    = schema.Field
	Registry = schema.Registry

	Entry          = entry.Entry
	LocalizedValue = entry.LocalizedValue
	EntryStore     = entry.Store

	InsertEntryCommand = commands.InsertEntryCommand
	DeleteEntryCommand = commands.DeleteEntryCommand
)

// NewRegistry builds the model registry an engine is constructed with.
func NewRegistry(defaultLocale string, models ...schema.Model) (*schema.Registry, error) {
	return schema.NewRegistry(defaultLocale, models...)
}

// Module is the top level runtime façade: the engine plus its write surface.
type Module struct {
	registry *schema.Registry
	store    entry.Store
	engine   *engine.Service
	provider interfaces.LoggerProvider
	db       *bun.DB
	insert   *commands.InsertEntryHandler
	remove   *commands.DeleteEntryHandler
}

// Option overrides module wiring during construction.
type Option func(*Module)

// WithStore injects an externally constructed entry store, bypassing the
// storage provider configured in Config.
func WithStore(store entry.Store) Option {
	return func(m *Module) {
		if store != nil {
			m.store = store
		}
	}
}

// WithLoggerProvider injects a logger provider, bypassing Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// New constructs the module from explicit configuration. The registry carries
// the model descriptors and default-locale table; nothing is read from
// process-wide state.
func New(cfg Config, registry *schema.Registry, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	module := &Module{registry: registry}
	for _, opt := range opts {
		if opt != nil {
			opt(module)
		}
	}

	if module.provider == nil && cfg.Features.Logger {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		module.provider = provider
	}

	if module.store == nil {
		store, db, err := buildStore(cfg, registry)
		if err != nil {
			return nil, err
		}
		module.store = store
		module.db = db
	}

	engineOpts := []engine.Option{
		engine.WithLogger(logging.EngineLogger(module.provider)),
	}
	if cfg.DefaultPerPage > 0 {
		engineOpts = append(engineOpts, engine.WithDefaultPerPage(cfg.DefaultPerPage))
	}
	module.engine = engine.New(registry, module.store, engineOpts...)

	commandLogger := logging.CommandsLogger(module.provider)
	module.insert = commands.NewInsertEntryHandler(registry, module.store, commandLogger)
	module.remove = commands.NewDeleteEntryHandler(module.store, commandLogger)

	return module, nil
}

// Engine returns the configured query engine.
func (m *Module) Engine() Engine {
	return m.engine
}

// Store exposes the underlying entry store for advanced integrations.
func (m *Module) Store() entry.Store {
	return m.store
}

// Registry returns the model registry the module was constructed with.
func (m *Module) Registry() *schema.Registry {
	return m.registry
}

// GetOne answers a single-entry lookup. A missing entry yields (nil, nil).
func (m *Module) GetOne(ctx context.Context, req query.GetRequest) (*query.Record, error) {
	return m.engine.GetOne(ctx, req)
}

// List answers a filtered, sorted, paginated list query.
func (m *Module) List(ctx context.Context, req query.ListRequest) (*query.ListResult, error) {
	return m.engine.List(ctx, req)
}

// Insert executes the insert-entry command.
func (m *Module) Insert(ctx context.Context, msg commands.InsertEntryCommand) error {
	return m.insert.Execute(ctx, msg)
}

// Delete executes the delete-entry command.
func (m *Module) Delete(ctx context.Context, msg commands.DeleteEntryCommand) error {
	return m.remove.Execute(ctx, msg)
}

// Migrate creates storage tables for database-backed stores. Memory stores
// need no migration and return nil.
func (m *Module) Migrate(ctx context.Context) error {
	if m.db == nil {
		return nil
	}
	return entrystore.Migrate(ctx, m.db)
}

// Close releases the database handle owned by the module, when any.
func (m *Module) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case loggingProviderNoop:
		return nil, nil
	default:
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	}
}

func buildStore(cfg Config, registry *schema.Registry) (entry.Store, *bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Provider)) {
	case "", storageProviderMemory:
		return entrystore.NewMemoryStore(registry), nil, nil
	case storageProviderSQLite:
		db, err := entrystore.OpenSQLite(cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Cache.Enabled || cfg.Features.Cache {
			cacheCfg := cache.DefaultConfig()
			if cfg.Cache.DefaultTTL > 0 {
				cacheCfg.TTL = cfg.Cache.DefaultTTL
			}
			cacheService, err := cache.NewCacheService(cacheCfg)
			if err != nil {
				return nil, nil, err
			}
			keySerializer := cache.NewDefaultKeySerializer()
			return entrystore.NewBunStoreWithCache(db, registry, cacheService, keySerializer), db, nil
		}
		return entrystore.NewBunStore(db, registry), db, nil
	default:
		return nil, nil, ErrStorageProviderUnknown
	}
}
