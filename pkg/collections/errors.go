package collections

import "errors"

// ErrEmpty is returned by the checked accessors of Queue and Stack when
// there is no element to return.
var ErrEmpty = errors.New("collections: container is empty")
