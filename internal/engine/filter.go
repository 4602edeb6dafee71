package engine

import (
	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/query"
	"github.com/goliatone/go-contentquery/schema"
)

// matchClauses evaluates every clause against the entry's resolved values,
// combining with logical AND. Fields are resolved at the clause's locale
// override when present, the request's effective locale otherwise.
//
// Absent values fail _contains and _in and pass their negations, keeping each
// operator pair an exact complement over the full entry set.
func matchClauses(record *entry.Entry, clauses []query.Clause, effectiveLocale string) (bool, error) {
	for _, clause := range clauses {
		matched, err := matchClause(record, clause, effectiveLocale)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

func matchClause(record *entry.Entry, clause query.Clause, effectiveLocale string) (bool, error) {
	locale := effectiveLocale
	if clause.Locale != "" {
		locale = schema.NormalizeLocale(clause.Locale)
	}
	value, present := record.ResolveField(clause.Field, locale)

	switch clause.Operator {
	case query.OpEquals:
		return present && equalValues(value, clause.Value), nil
	case query.OpContains:
		return present && containsFold(value, clause.Value), nil
	case query.OpNotContains:
		return !(present && containsFold(value, clause.Value)), nil
	case query.OpIn:
		return present && inList(value, clause.Values), nil
	case query.OpNotIn:
		return !(present && inList(value, clause.Values)), nil
	default:
		return false, &query.InvalidClauseError{Key: clause.Field, Reason: "unknown operator"}
	}
}

func inList(value any, operands []any) bool {
	for _, operand := range operands {
		if equalValues(value, operand) {
			return true
		}
	}
	return false
}
