package engine

import (
	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/query"
)

// paginate slices the filtered, sorted sequence into the requested page and
// derives its metadata. A page beyond the last yields an empty slice with the
// same metadata, never an error.
func paginate(entries []*entry.Entry, page, perPage int) ([]*entry.Entry, query.PageMeta) {
	totalCount := len(entries)
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + perPage - 1) / perPage
	}

	meta := query.PageMeta{
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
	if page < totalPages {
		next := page + 1
		meta.NextPage = &next
	}
	if page > 1 {
		previous := page - 1
		meta.PreviousPage = &previous
	}

	start := (page - 1) * perPage
	if start >= totalCount {
		return []*entry.Entry{}, meta
	}
	end := start + perPage
	if end > totalCount {
		end = totalCount
	}
	return entries[start:end], meta
}
