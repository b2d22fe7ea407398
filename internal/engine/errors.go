package engine

import "errors"

// ErrTimeExpired is returned up through every alpha-beta frame once the
// deadline has passed (spec.md §4.3/§7). It is routine and expected: the
// iterative deepener recovers it with errors.Is and discards the
// in-progress depth's partial results, never surfacing it to the driver
// as a failure.
var ErrTimeExpired = errors.New("engine: time expired")
