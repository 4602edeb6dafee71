package contentquery

import (
	"github.com/goliatone/go-contentquery/entry"
	"github.com/goliatone/go-contentquery/query"
	"github.com/goliatone/go-contentquery/schema"
)

// Commonly inspected sentinels, re-exported for host applications.
var (
	ErrModelUnknown      = schema.ErrModelUnknown
	ErrEntryNotFound     = entry.ErrNotFound
	ErrSlugExists        = entry.ErrSlugExists
	ErrSlugInvalid       = entry.ErrSlugInvalid
	ErrStoreUnavailable  = entry.ErrStoreUnavailable
	ErrUnknownField      = query.ErrUnknownField
	ErrFieldNotSortable  = query.ErrFieldNotSortable
	ErrSlugNotConfigured = query.ErrSlugNotConfigured
)

// IsInvalidArgument reports whether err was rejected as a malformed request.
func IsInvalidArgument(err error) bool {
	return query.IsInvalidArgument(err)
}

// IsNotFound reports whether err represents a missing record surfaced by a
// store adapter. Engine lookups surface absence as nil data, not an error.
func IsNotFound(err error) bool {
	return entry.IsNotFound(err)
}
