package query

import "strings"

// Operator suffixes recognized on wire-format where keys. A key with no
// suffix is an equality test on the field it names.
const (
	suffixContains    = "_contains"
	suffixNotContains = "_not_contains"
	suffixIn          = "_in"
	suffixNotIn       = "_not_in"
)

// ParseWhere translates a wire-format where object (keys like "title",
// "title_contains", "title_not_in") into clauses. Operand shape is checked
// here; field existence is checked by the engine against the model schema.
func ParseWhere(where map[string]any) ([]Clause, error) {
	if len(where) == 0 {
		return nil, nil
	}

	clauses := make([]Clause, 0, len(where))
	for key, operand := range where {
		clause, err := parseClause(key, operand)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

func parseClause(key string, operand any) (Clause, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return Clause{}, &InvalidClauseError{Key: key, Reason: "empty field name"}
	}

	// Longest suffix first so "_not_contains" is not read as "_contains".
	switch {
	case strings.HasSuffix(trimmed, suffixNotContains):
		return Clause{
			Field:    strings.TrimSuffix(trimmed, suffixNotContains),
			Operator: OpNotContains,
			Value:    operand,
		}, nil
	case strings.HasSuffix(trimmed, suffixContains):
		return Clause{
			Field:    strings.TrimSuffix(trimmed, suffixContains),
			Operator: OpContains,
			Value:    operand,
		}, nil
	case strings.HasSuffix(trimmed, suffixNotIn):
		values, ok := operandList(operand)
		if !ok {
			return Clause{}, &InvalidClauseError{Key: key, Reason: "_not_in operand must be a list"}
		}
		return Clause{
			Field:    strings.TrimSuffix(trimmed, suffixNotIn),
			Operator: OpNotIn,
			Values:   values,
		}, nil
	case strings.HasSuffix(trimmed, suffixIn):
		values, ok := operandList(operand)
		if !ok {
			return Clause{}, &InvalidClauseError{Key: key, Reason: "_in operand must be a list"}
		}
		return Clause{
			Field:    strings.TrimSuffix(trimmed, suffixIn),
			Operator: OpIn,
			Values:   values,
		}, nil
	default:
		return Clause{
			Field:    trimmed,
			Operator: OpEquals,
			Value:    operand,
		}, nil
	}
}

func operandList(operand any) ([]any, bool) {
	switch typed := operand.(type) {
	case []any:
		return typed, true
	case []string:
		values := make([]any, len(typed))
		for i, v := range typed {
			values[i] = v
		}
		return values, true
	default:
		return nil, false
	}
}
