package anyval

import "errors"

var (
	// ErrEmpty is reported when an empty Value is read as an element.
	ErrEmpty = errors.New("value is empty")
	// ErrTypeMismatch is reported when a Value is read as a type it does not hold.
	ErrTypeMismatch = errors.New("value holds a different type")
	// ErrNotMeta is reported when the meta tag is read from a non-meta Value.
	ErrNotMeta = errors.New("value is not a meta value")
)
