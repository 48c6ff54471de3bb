package engine

import (
	"fmt"
)

// InvalidTopologyError reports a layer width that cannot produce a
// valid network. Layer is the index within the concatenated
// [input, hidden..., output] width list.
type InvalidTopologyError struct {
	Layer int
	Width int
}

func (e *InvalidTopologyError) Error() string {
	return fmt.Sprintf("engine: layer %d has non-positive width %d", e.Layer, e.Width)
}
