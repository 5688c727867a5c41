// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ScanJob is the predicate function for scanjob builders.
type ScanJob func(*sql.Selector)
