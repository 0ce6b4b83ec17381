package component

import "github.com/oklog/ulid/v2"

// ID identifies a node, page, window or context. IDs are unique for the
// life of the process and sort in creation order.
type ID ulid.ULID

// NewID mints a fresh identifier.
func NewID() ID {
	return ID(ulid.Make())
}

// IsZero reports whether id was never minted.
func (id ID) IsZero() bool {
	return id == ID{}
}

// Compare orders ids by creation.
func (id ID) Compare(other ID) int {
	return ulid.ULID(id).Compare(ulid.ULID(other))
}

func (id ID) String() string {
	return ulid.ULID(id).String()
}
