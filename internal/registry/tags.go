// Package registry composes the gateway, envelope normalizer and mappers
// into cached, tag-aware query and mutation operations. One generic
// Resource covers every resource type; per-resource wiring lives in
// internal/resource.
package registry

import "strconv"

// Sentinel tag ids. LIST covers general collection queries; MY_LIST covers
// the caller's own resources so invalidating one does not spuriously refetch
// the other.
const (
	ListID   = "LIST"
	MyListID = "MY_LIST"
)

// Tag associates cached query results with the mutations that must
// invalidate them. Tags exist only inside the cache bookkeeping.
type Tag struct {
	Type string
	ID   string
}

func ListTag(resourceType string) Tag {
	return Tag{Type: resourceType, ID: ListID}
}

func MyListTag(resourceType string) Tag {
	return Tag{Type: resourceType, ID: MyListID}
}

func ItemTag(resourceType string, id int64) Tag {
	return Tag{Type: resourceType, ID: strconv.FormatInt(id, 10)}
}
