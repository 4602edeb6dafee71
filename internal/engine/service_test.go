package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/internal/engine"
	"github.com/goliatone/go-contentquery/internal/entrystore"
	"github.com/goliatone/go-contentquery/query"
	"github.com/goliatone/go-contentquery/schema"
	"github.com/google/uuid"
)

func categoryModel() schema.Model {
	return schema.Model{
		Name:      "category",
		SlugField: "slug",
		Fields: []schema.Field{
			{Name: "title", Type: schema.TypeString, Localized: true, Sortable: true},
			{Name: "slug", Type: schema.TypeString, Localized: true},
			{Name: "featured", Type: schema.TypeBoolean},
		},
	}
}

func seededService(t *testing.T) (*engine.Service, []*entry.Entry) {
	t.Helper()

	registry, err := schema.NewRegistry("en-us", categoryModel())
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	store := entrystore.NewMemoryStore(registry)

	seed := []*entry.Entry{
		{
			Model: "category",
			Fields: map[string]any{
				"title":    entry.NewLocalizedValue(map[string]any{"en-us": "A Category EN", "de-de": "A Category DE"}),
				"slug":     entry.NewLocalizedValue(map[string]any{"en-us": "a-category-en", "de-de": "a-category-de"}),
				"featured": true,
			},
		},
		{
			Model: "category",
			Fields: map[string]any{
				"title":    entry.NewLocalizedValue(map[string]any{"en-us": "B Category EN"}),
				"slug":     entry.NewLocalizedValue(map[string]any{"en-us": "b-category-en"}),
				"featured": false,
			},
		},
		{
			Model: "category",
			Fields: map[string]any{
				"title":    entry.NewLocalizedValue(map[string]any{"en-us": "Hardware EN", "de-de": "Hardware DE"}),
				"slug":     entry.NewLocalizedValue(map[string]any{"en-us": "hardware-en", "de-de": "hardware-de"}),
				"featured": true,
			},
		},
	}

	stored := make([]*entry.Entry, 0, len(seed))
	for _, record := range seed {
		created, err := store.Insert(context.Background(), record)
		if err != nil {
			t.Fatalf("seed insert: %v", err)
		}
		stored = append(stored, created)
	}
	return engine.New(registry, store), stored
}

func TestListSortedByTitle(t *testing.T) {
	service, _ := seededService(t)

	result, err := service.List(context.Background(), query.ListRequest{
		Model: "category",
		Sort:  []query.SortKey{{Field: "title", Direction: query.Ascending}},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Data) != 3 {
		t.Fatalf("expected 3 records, got %d", len(result.Data))
	}
	want := []string{"A Category EN", "B Category EN", "Hardware EN"}
	for i, record := range result.Data {
		if record.Fields["title"] != want[i] {
			t.Fatalf("position %d: expected %q, got %v", i, want[i], record.Fields["title"])
		}
	}

	descending, err := service.List(context.Background(), query.ListRequest{
		Model: "category",
		Sort:  []query.SortKey{{Field: "title", Direction: query.Descending}},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if descending.Data[0].Fields["title"] != "Hardware EN" || descending.Data[2].Fields["title"] != "A Category EN" {
		t.Fatalf("descending order broken: %v", descending.Data)
	}
}

func TestListPagination(t *testing.T) {
	service, _ := seededService(t)

	result, err := service.List(context.Background(), query.ListRequest{
		Model:   "category",
		Sort:    []query.SortKey{{Field: "title", Direction: query.Ascending}},
		Page:    2,
		PerPage: 1,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Data) != 1 || result.Data[0].Fields["title"] != "B Category EN" {
		t.Fatalf("expected middle page, got %v", result.Data)
	}
	meta := result.Meta
	if meta.TotalCount != 3 || meta.TotalPages != 3 {
		t.Fatalf("expected 3 records across 3 pages, got %+v", meta)
	}
	if meta.NextPage == nil || *meta.NextPage != 3 {
		t.Fatalf("expected next page 3, got %v", meta.NextPage)
	}
	if meta.PreviousPage == nil || *meta.PreviousPage != 1 {
		t.Fatalf("expected previous page 1, got %v", meta.PreviousPage)
	}
}

func TestListContainsFilter(t *testing.T) {
	service, _ := seededService(t)

	result, err := service.List(context.Background(), query.ListRequest{
		Model: "category",
		Where: []query.Clause{{Field: "title", Operator: query.OpContains, Value: "category"}},
		Sort:  []query.SortKey{{Field: "title", Direction: query.Ascending}},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Data) != 2 {
		t.Fatalf("expected 2 category matches, got %d", len(result.Data))
	}
	if result.Data[0].Fields["title"] != "A Category EN" || result.Data[1].Fields["title"] != "B Category EN" {
		t.Fatalf("unexpected matches: %v", result.Data)
	}
}

func TestListLocaleResolution(t *testing.T) {
	service, _ := seededService(t)

	result, err := service.List(context.Background(), query.ListRequest{
		Model:  "category",
		Locale: "de-DE",
		Sort:   []query.SortKey{{Field: "title", Direction: query.Ascending}},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Data) != 3 {
		t.Fatalf("expected all entries regardless of locale, got %d", len(result.Data))
	}
	// The entry with no German title resolves to nil and sorts first ascending.
	if result.Data[0].Fields["title"] != nil {
		t.Fatalf("expected absent title first, got %v", result.Data[0].Fields["title"])
	}
	if result.Data[1].Fields["title"] != "A Category DE" || result.Data[2].Fields["title"] != "Hardware DE" {
		t.Fatalf("unexpected German titles: %v", result.Data)
	}
}

func TestListFieldSelections(t *testing.T) {
	service, _ := seededService(t)

	result, err := service.List(context.Background(), query.ListRequest{
		Model: "category",
		Where: []query.Clause{{Field: "slug", Operator: query.OpEquals, Value: "hardware-en"}},
		Fields: []query.FieldSelection{
			{Alias: "name", Field: "title"},
			{Alias: "name_de", Field: "title", Locale: "de-DE"},
			{Field: "featured"},
		},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Data) != 1 {
		t.Fatalf("expected single match, got %d", len(result.Data))
	}
	fields := result.Data[0].Fields
	if fields["name"] != "Hardware EN" {
		t.Fatalf("expected aliased title, got %v", fields["name"])
	}
	if fields["name_de"] != "Hardware DE" {
		t.Fatalf("expected per-selection locale override, got %v", fields["name_de"])
	}
	if fields["featured"] != true {
		t.Fatalf("alias defaults to field name, got %v", fields)
	}
	if _, leaked := fields["title"]; leaked {
		t.Fatal("explicit selections must not project unrequested keys")
	}
}

func TestListRejectsUnknownField(t *testing.T) {
	service, _ := seededService(t)

	_, err := service.List(context.Background(), query.ListRequest{
		Model: "category",
		Where: []query.Clause{{Field: "color", Operator: query.OpEquals, Value: "red"}},
	})
	if err == nil {
		t.Fatal("expected unknown field rejection")
	}
	if !query.IsInvalidArgument(err) {
		t.Fatalf("expected invalid-argument category, got %v", err)
	}
	if !errors.Is(err, query.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestListRejectsUnknownFieldOnEmptyStore(t *testing.T) {
	registry, err := schema.NewRegistry("en-us", categoryModel())
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	service := engine.New(registry, entrystore.NewMemoryStore(registry))

	// Validation runs against the schema, not the data: an empty store still
	// rejects references to fields the model does not declare.
	_, err = service.List(context.Background(), query.ListRequest{
		Model: "category",
		Where: []query.Clause{{Field: "color", Operator: query.OpEquals, Value: "red"}},
	})
	if !errors.Is(err, query.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField on empty store, got %v", err)
	}
}

func TestListRejectsUnsortableField(t *testing.T) {
	service, _ := seededService(t)

	_, err := service.List(context.Background(), query.ListRequest{
		Model: "category",
		Sort:  []query.SortKey{{Field: "featured", Direction: query.Ascending}},
	})
	if !errors.Is(err, query.ErrFieldNotSortable) {
		t.Fatalf("expected ErrFieldNotSortable, got %v", err)
	}
}

func TestListUnknownModel(t *testing.T) {
	service, _ := seededService(t)

	_, err := service.List(context.Background(), query.ListRequest{Model: "article"})
	if !errors.Is(err, schema.ErrModelUnknown) {
		t.Fatalf("expected ErrModelUnknown, got %v", err)
	}
	if !query.IsInvalidArgument(err) {
		t.Fatalf("expected invalid-argument category, got %v", err)
	}
}

func TestGetOneByID(t *testing.T) {
	service, stored := seededService(t)

	record, err := service.GetOne(context.Background(), query.GetRequest{
		Model: "category",
		ID:    stored[2].ID,
	})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record == nil || record.Fields["title"] != "Hardware EN" {
		t.Fatalf("expected Hardware EN, got %v", record)
	}

	miss, err := service.GetOne(context.Background(), query.GetRequest{
		Model: "category",
		ID:    uuid.New(),
	})
	if err != nil {
		t.Fatalf("missing entry must not error: %v", err)
	}
	if miss != nil {
		t.Fatalf("expected nil record for unknown id, got %v", miss)
	}
}

func TestGetOneBySlugIsLocaleScoped(t *testing.T) {
	service, _ := seededService(t)

	record, err := service.GetOne(context.Background(), query.GetRequest{
		Model:  "category",
		Slug:   "hardware-de",
		Locale: "de-DE",
	})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record == nil || record.Fields["title"] != "Hardware DE" {
		t.Fatalf("expected German entry, got %v", record)
	}

	// The same slug does not exist under the default locale.
	miss, err := service.GetOne(context.Background(), query.GetRequest{
		Model: "category",
		Slug:  "hardware-de",
	})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if miss != nil {
		t.Fatalf("slug lookup must be locale-scoped, got %v", miss)
	}
}

func TestGetOneIDWinsOverSlug(t *testing.T) {
	service, stored := seededService(t)

	record, err := service.GetOne(context.Background(), query.GetRequest{
		Model: "category",
		ID:    stored[0].ID,
		Slug:  "hardware-en",
	})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record == nil || record.ID != stored[0].ID {
		t.Fatalf("id selector must win over slug, got %v", record)
	}
}

func TestGetOneRequiresSelector(t *testing.T) {
	service, _ := seededService(t)

	_, err := service.GetOne(context.Background(), query.GetRequest{Model: "category"})
	if err == nil || !query.IsInvalidArgument(err) {
		t.Fatalf("expected invalid-argument rejection, got %v", err)
	}
}

func TestGetOneSlugWithoutSlugField(t *testing.T) {
	model := schema.Model{
		Name: "note",
		Fields: []schema.Field{
			{Name: "body", Type: schema.TypeString, Localized: true},
		},
	}
	registry, err := schema.NewRegistry("en-us", model)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	service := engine.New(registry, entrystore.NewMemoryStore(registry))

	_, err = service.GetOne(context.Background(), query.GetRequest{Model: "note", Slug: "anything"})
	if !errors.Is(err, query.ErrSlugNotConfigured) {
		t.Fatalf("expected ErrSlugNotConfigured, got %v", err)
	}
}

func TestGetOneCrossModelIDIsAMiss(t *testing.T) {
	article := categoryModel()
	article.Name = "article"

	registry, err := schema.NewRegistry("en-us", categoryModel(), article)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	store := entrystore.NewMemoryStore(registry)
	created, err := store.Insert(context.Background(), &entry.Entry{
		Model: "article",
		Fields: map[string]any{
			"title": entry.NewLocalizedValue(map[string]any{"en-us": "An Article"}),
		},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	service := engine.New(registry, store)
	record, err := service.GetOne(context.Background(), query.GetRequest{
		Model: "category",
		ID:    created.ID,
	})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record != nil {
		t.Fatal("an id belonging to another model must be a miss")
	}
}

func TestListDefaultPerPage(t *testing.T) {
	registry, err := schema.NewRegistry("en-us", categoryModel())
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	store := entrystore.NewMemoryStore(registry)
	for i := 0; i < 4; i++ {
		if _, err := store.Insert(context.Background(), &entry.Entry{
			Model: "category",
			Fields: map[string]any{
				"featured": i%2 == 0,
			},
		}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	service := engine.New(registry, store, engine.WithDefaultPerPage(3))
	result, err := service.List(context.Background(), query.ListRequest{Model: "category"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Data) != 3 || result.Meta.TotalPages != 2 {
		t.Fatalf("expected configured page size, got %d records %+v", len(result.Data), result.Meta)
	}
}
