// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ProcessedCallback is the predicate function for processedcallback builders.
type ProcessedCallback func(*sql.Selector)

// Tile is the predicate function for tile builders.
type Tile func(*sql.Selector)

// UpscaleJob is the predicate function for upscalejob builders.
type UpscaleJob func(*sql.Selector)
