package engine

import (
	"context"

	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/internal/logging"
	"github.com/goliatone/go-contentquery/pkg/interfaces"
	"github.com/goliatone/go-contentquery/query"
	"github.com/goliatone/go-contentquery/schema"
	"github.com/google/uuid"
)

const defaultPerPage = 20

// Service answers single-entry lookups and list queries over an entry store.
// Each request is a one-pass pipeline over a store snapshot: select
// candidates, filter, sort, paginate, resolve fields. No stage mutates the
// store; concurrent calls need no coordination.
type Service struct {
	registry *schema.Registry
	store    entry.Store
	logger   interfaces.Logger
	perPage  int
}

// Option configures the engine service.
type Option func(*Service)

// WithLogger overrides the logger used by the engine.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultPerPage sets the page size applied when a request omits one.
func WithDefaultPerPage(perPage int) Option {
	return func(s *Service) {
		if perPage > 0 {
			s.perPage = perPage
		}
	}
}

// New constructs the query engine over a model registry and an entry store.
func New(registry *schema.Registry, store entry.Store, opts ...Option) *Service {
	service := &Service{
		registry: registry,
		store:    store,
		logger:   logging.NoOp(),
		perPage:  defaultPerPage,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(service)
		}
	}
	return service
}

// GetOne selects a single entry by id or by locale-qualified slug. A missing
// entry is a valid outcome surfaced as (nil, nil), not an error. Slug
// selection is locale-scoped: a slug registered only under another locale
// does not match.
func (s *Service) GetOne(ctx context.Context, req query.GetRequest) (*query.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, query.WrapInvalidArgument(err)
	}
	model, err := s.registry.Model(req.Model)
	if err != nil {
		return nil, query.WrapInvalidArgument(err)
	}
	if err := validateAgainstModel(model, nil, nil, req.Fields); err != nil {
		return nil, query.WrapInvalidArgument(err)
	}

	effectiveLocale := s.effectiveLocale(model, req.Locale)

	var selected *entry.Entry
	if req.ID != uuid.Nil {
		selected, err = s.selectByID(ctx, req.Model, req.ID)
	} else {
		selected, err = s.selectBySlug(ctx, model, req.Slug, effectiveLocale)
	}
	if err != nil {
		return nil, err
	}
	if selected == nil {
		s.logger.Debug("query.get.miss", "model", req.Model, "locale", effectiveLocale)
		return nil, nil
	}

	record := buildRecord(selected, model, req.Fields, effectiveLocale)
	return &record, nil
}

// List retrieves a filtered, sorted page of entries with derived metadata.
func (s *Service) List(ctx context.Context, req query.ListRequest) (*query.ListResult, error) {
	req = req.Normalize(s.perPage)
	if err := req.Validate(); err != nil {
		return nil, query.WrapInvalidArgument(err)
	}
	model, err := s.registry.Model(req.Model)
	if err != nil {
		return nil, query.WrapInvalidArgument(err)
	}
	if err := validateAgainstModel(model, req.Where, req.Sort, req.Fields); err != nil {
		return nil, query.WrapInvalidArgument(err)
	}

	effectiveLocale := s.effectiveLocale(model, req.Locale)

	candidates, err := s.store.FindAll(ctx, req.Model)
	if err != nil {
		return nil, query.WrapStoreError(err)
	}

	filtered := make([]*entry.Entry, 0, len(candidates))
	for _, candidate := range candidates {
		matched, err := matchClauses(candidate, req.Where, effectiveLocale)
		if err != nil {
			return nil, query.WrapInvalidArgument(err)
		}
		if matched {
			filtered = append(filtered, candidate)
		}
	}

	sortEntries(filtered, req.Sort, effectiveLocale)
	pageSlice, meta := paginate(filtered, req.Page, req.PerPage)

	records := make([]query.Record, 0, len(pageSlice))
	for _, selected := range pageSlice {
		records = append(records, buildRecord(selected, model, req.Fields, effectiveLocale))
	}

	s.logger.Debug("query.list",
		"model", req.Model,
		"locale", effectiveLocale,
		"total", meta.TotalCount,
		"page", req.Page,
		"per_page", req.PerPage,
	)
	return &query.ListResult{Data: records, Meta: meta}, nil
}

func (s *Service) effectiveLocale(model schema.Model, requested string) string {
	if trimmed := schema.NormalizeLocale(requested); trimmed != "" {
		return trimmed
	}
	return s.registry.DefaultLocale(model)
}

func (s *Service) selectByID(ctx context.Context, modelName string, id uuid.UUID) (*entry.Entry, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		if entry.IsNotFound(err) {
			return nil, nil
		}
		return nil, query.WrapStoreError(err)
	}
	// An id belonging to another model is a miss, not a leak across models.
	if record.Model != modelName {
		return nil, nil
	}
	return record, nil
}

func (s *Service) selectBySlug(ctx context.Context, model schema.Model, slug, selectionLocale string) (*entry.Entry, error) {
	if model.SlugField == "" {
		return nil, query.WrapInvalidArgument(query.ErrSlugNotConfigured)
	}

	candidates, err := s.store.FindAll(ctx, model.Name)
	if err != nil {
		return nil, query.WrapStoreError(err)
	}
	for _, candidate := range candidates {
		value, ok := candidate.ResolveField(model.SlugField, selectionLocale)
		if !ok {
			continue
		}
		if stored, isString := value.(string); isString && stored == slug {
			return candidate, nil
		}
	}
	return nil, nil
}
