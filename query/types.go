package query

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Operator identifies a where-clause predicate.
type Operator string

const (
	// OpEquals is the default operator: case-sensitive exact match.
	OpEquals Operator = "eq"
	// OpContains is a case-insensitive substring test.
	OpContains Operator = "contains"
	// OpNotContains negates OpContains.
	OpNotContains Operator = "not_contains"
	// OpIn tests list membership with exact matches.
	OpIn Operator = "in"
	// OpNotIn negates OpIn.
	OpNotIn Operator = "not_in"
)

// Known reports whether the operator is part of the supported set.
func (o Operator) Known() bool {
	switch o {
	case OpEquals, OpContains, OpNotContains, OpIn, OpNotIn:
		return true
	}
	return false
}

// Clause compares one resolved field value against an operand. Clauses in a
// request combine with logical AND.
type Clause struct {
	Field    string
	Operator Operator
	// Value is the operand for eq/contains/not_contains.
	Value any
	// Values is the operand list for in/not_in.
	Values []any
	// Locale optionally overrides the locale the field resolves at.
	Locale string
}

// Direction orders a sort key.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// SortKey orders results by one field. The first key is primary; subsequent
// keys break ties in order.
type SortKey struct {
	Field     string
	Direction Direction
}

// FieldSelection projects one output alias from a field, optionally resolved
// at its own locale instead of the request locale. The override affects only
// this alias, never which entry was selected.
type FieldSelection struct {
	Alias  string
	Field  string
	Locale string
}

// GetRequest selects a single entry by id or by locale-qualified slug.
//
// When both selectors are supplied, id wins and the slug is ignored.
type GetRequest struct {
	Model  string
	ID     uuid.UUID
	Slug   string
	Locale string
	Fields []FieldSelection
}

// Validate rejects malformed selectors before any store access.
func (r GetRequest) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.Model) == "" {
		errs["model"] = validation.NewError("query.get.model_required", "model is required")
	}
	if r.ID == uuid.Nil && strings.TrimSpace(r.Slug) == "" {
		errs["selector"] = validation.NewError("query.get.selector_required", "either id or slug is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListRequest retrieves a filtered, sorted, paginated page of entries.
type ListRequest struct {
	Model   string
	Locale  string
	Where   []Clause
	Sort    []SortKey
	Page    int
	PerPage int
	Fields  []FieldSelection
}

// Normalize applies request defaults: page 1 and the supplied per-page size
// when the caller leaves them zero.
func (r ListRequest) Normalize(defaultPerPage int) ListRequest {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.PerPage == 0 {
		r.PerPage = defaultPerPage
	}
	return r
}

// Validate rejects malformed list requests before any store access.
func (r ListRequest) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.Model) == "" {
		errs["model"] = validation.NewError("query.list.model_required", "model is required")
	}
	if r.Page < 1 {
		errs["page"] = validation.NewError("query.list.page_invalid", "page must be greater than zero")
	}
	if r.PerPage < 1 {
		errs["per_page"] = validation.NewError("query.list.per_page_invalid", "per_page must be greater than zero")
	}
	for _, clause := range r.Where {
		if !clause.Operator.Known() {
			errs["where."+clause.Field] = validation.NewError("query.list.operator_unknown", "unknown operator")
		}
	}
	for _, key := range r.Sort {
		if key.Direction != Ascending && key.Direction != Descending {
			errs["sort."+key.Field] = validation.NewError("query.list.direction_invalid", "sort direction must be ASC or DESC")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PageMeta carries pagination metadata derived from the full filtered set.
type PageMeta struct {
	TotalCount   int  `json:"total_count"`
	TotalPages   int  `json:"total_pages"`
	NextPage     *int `json:"next_page"`
	PreviousPage *int `json:"previous_page"`
}

// Record is one resolved entry: requested aliases mapped to the scalar each
// resolved to, nil when absent at the effective locale.
type Record struct {
	ID     uuid.UUID      `json:"id"`
	Model  string         `json:"model"`
	Fields map[string]any `json:"fields"`
}

// ListResult bundles a page of records with its metadata.
type ListResult struct {
	Data []Record `json:"data"`
	Meta PageMeta `json:"meta"`
}
