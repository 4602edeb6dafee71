package engine

import (
	"testing"

	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/query"
	"github.com/google/uuid"
)

func localizedEntry(fields map[string]any) *entry.Entry {
	return &entry.Entry{ID: uuid.New(), Model: "category", Fields: fields}
}

func filterFixture() []*entry.Entry {
	return []*entry.Entry{
		localizedEntry(map[string]any{
			"title":  entry.NewLocalizedValue(map[string]any{"en-us": "A Category EN", "de-de": "A Category DE"}),
			"status": "published",
		}),
		localizedEntry(map[string]any{
			"title":  entry.NewLocalizedValue(map[string]any{"en-us": "B Category EN"}),
			"status": "draft",
		}),
		localizedEntry(map[string]any{
			// No title at all: the absent side of every operator pair.
			"status": "published",
		}),
	}
}

func countMatches(t *testing.T, entries []*entry.Entry, clause query.Clause) int {
	t.Helper()
	matched := 0
	for _, record := range entries {
		ok, err := matchClauses(record, []query.Clause{clause}, "en-us")
		if err != nil {
			t.Fatalf("match: %v", err)
		}
		if ok {
			matched++
		}
	}
	return matched
}

func TestMatchClauseEquality(t *testing.T) {
	entries := filterFixture()
	got := countMatches(t, entries, query.Clause{Field: "status", Operator: query.OpEquals, Value: "published"})
	if got != 2 {
		t.Fatalf("expected 2 published entries, got %d", got)
	}
	// Equality is case-sensitive.
	got = countMatches(t, entries, query.Clause{Field: "status", Operator: query.OpEquals, Value: "Published"})
	if got != 0 {
		t.Fatalf("expected case-sensitive equality, got %d matches", got)
	}
}

func TestMatchClauseContainsComplement(t *testing.T) {
	entries := filterFixture()
	contains := countMatches(t, entries, query.Clause{Field: "title", Operator: query.OpContains, Value: "category"})
	notContains := countMatches(t, entries, query.Clause{Field: "title", Operator: query.OpNotContains, Value: "category"})

	if contains != 2 {
		t.Fatalf("expected 2 contains matches, got %d", contains)
	}
	// The entry with no title fails _contains and passes _not_contains, so the
	// pair partitions the full set.
	if contains+notContains != len(entries) {
		t.Fatalf("operator pair must partition the set: %d + %d != %d", contains, notContains, len(entries))
	}
}

func TestMatchClauseInComplement(t *testing.T) {
	entries := filterFixture()
	clauseIn := query.Clause{Field: "status", Operator: query.OpIn, Values: []any{"draft", "archived"}}
	clauseNotIn := query.Clause{Field: "status", Operator: query.OpNotIn, Values: []any{"draft", "archived"}}

	in := countMatches(t, entries, clauseIn)
	notIn := countMatches(t, entries, clauseNotIn)
	if in != 1 {
		t.Fatalf("expected 1 draft entry, got %d", in)
	}
	if in+notIn != len(entries) {
		t.Fatalf("operator pair must partition the set: %d + %d != %d", in, notIn, len(entries))
	}
}

func TestMatchClauseLocaleOverride(t *testing.T) {
	record := localizedEntry(map[string]any{
		"title": entry.NewLocalizedValue(map[string]any{"de-de": "Hardware DE"}),
	})

	// At the request locale the field is absent.
	ok, err := matchClauses(record, []query.Clause{
		{Field: "title", Operator: query.OpEquals, Value: "Hardware DE"},
	}, "en-us")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if ok {
		t.Fatal("expected miss at request locale")
	}

	ok, err = matchClauses(record, []query.Clause{
		{Field: "title", Operator: query.OpEquals, Value: "Hardware DE", Locale: "DE-de"},
	}, "en-us")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if !ok {
		t.Fatal("expected clause locale override to resolve the value")
	}
}

func TestMatchClausesCombineWithAnd(t *testing.T) {
	entries := filterFixture()
	matched := 0
	for _, record := range entries {
		ok, err := matchClauses(record, []query.Clause{
			{Field: "status", Operator: query.OpEquals, Value: "published"},
			{Field: "title", Operator: query.OpContains, Value: "category"},
		}, "en-us")
		if err != nil {
			t.Fatalf("match: %v", err)
		}
		if ok {
			matched++
		}
	}
	if matched != 1 {
		t.Fatalf("expected conjunction to match 1 entry, got %d", matched)
	}
}

func TestMatchClauseUnknownOperator(t *testing.T) {
	record := filterFixture()[0]
	_, err := matchClauses(record, []query.Clause{
		{Field: "status", Operator: query.Operator("regex"), Value: "x"},
	}, "en-us")
	if err == nil {
		t.Fatal("expected error for unknown operator")
	}
}
