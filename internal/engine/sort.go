package engine

import (
	"sort"

	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/query"
)

// sortEntries orders entries by the given keys, resolving each field at the
// effective locale. The sort is stable: entries equal on every key keep their
// store order. No keys leaves store order untouched.
//
// Entries missing a value for a key order before entries that have one in
// ascending direction (and after in descending).
func sortEntries(entries []*entry.Entry, keys []query.SortKey, effectiveLocale string) {
	if len(keys) == 0 {
		return
	}

	sort.SliceStable(entries, func(i, j int) bool {
		for _, key := range keys {
			cmp := compareByKey(entries[i], entries[j], key, effectiveLocale)
			if cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
}

func compareByKey(a, b *entry.Entry, key query.SortKey, locale string) int {
	aValue, aPresent := a.ResolveField(key.Field, locale)
	bValue, bPresent := b.ResolveField(key.Field, locale)

	var cmp int
	switch {
	case !aPresent && !bPresent:
		cmp = 0
	case !aPresent:
		cmp = -1
	case !bPresent:
		cmp = 1
	default:
		cmp = compareValues(aValue, bValue)
	}

	if key.Direction == query.Descending {
		return -cmp
	}
	return cmp
}
