package engine

import (
	"fmt"
	"strings"
)

// numeric widens any Go numeric into a float64 for comparisons. JSON decoding
// and Go literals produce mixed int/float shapes for the same logical value.
func numeric(value any) (float64, bool) {
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int8:
		return float64(typed), true
	case int16:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint:
		return float64(typed), true
	case uint8:
		return float64(typed), true
	case uint16:
		return float64(typed), true
	case uint32:
		return float64(typed), true
	case uint64:
		return float64(typed), true
	case float32:
		return float64(typed), true
	case float64:
		return typed, true
	}
	return 0, false
}

// equalValues is the case-sensitive exact match used by equality and list
// membership. Numeric values compare by magnitude regardless of Go type.
func equalValues(a, b any) bool {
	if aNum, aOK := numeric(a); aOK {
		bNum, bOK := numeric(b)
		return bOK && aNum == bNum
	}
	switch typedA := a.(type) {
	case string:
		typedB, ok := b.(string)
		return ok && typedA == typedB
	case bool:
		typedB, ok := b.(bool)
		return ok && typedA == typedB
	case nil:
		return b == nil
	}
	return false
}

// containsFold is the case-insensitive substring test behind _contains.
func containsFold(value, operand any) bool {
	haystack, ok := asText(value)
	if !ok {
		return false
	}
	needle, ok := asText(operand)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func asText(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case fmt.Stringer:
		return typed.String(), true
	}
	return "", false
}

// compareValues orders two resolved values: numbers by magnitude, strings
// ordinally, booleans false before true. Mixed types order by a fixed type
// rank so sorting stays deterministic.
func compareValues(a, b any) int {
	aRank, bRank := typeRank(a), typeRank(b)
	if aRank != bRank {
		switch {
		case aRank < bRank:
			return -1
		default:
			return 1
		}
	}

	switch aRank {
	case rankBool:
		aBool, bBool := a.(bool), b.(bool)
		switch {
		case aBool == bBool:
			return 0
		case !aBool:
			return -1
		default:
			return 1
		}
	case rankNumber:
		aNum, _ := numeric(a)
		bNum, _ := numeric(b)
		switch {
		case aNum < bNum:
			return -1
		case aNum > bNum:
			return 1
		default:
			return 0
		}
	case rankString:
		return strings.Compare(a.(string), b.(string))
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

const (
	rankBool = iota
	rankNumber
	rankString
	rankOther
)

func typeRank(value any) int {
	if _, ok := value.(bool); ok {
		return rankBool
	}
	if _, ok := numeric(value); ok {
		return rankNumber
	}
	if _, ok := value.(string); ok {
		return rankString
	}
	return rankOther
}
