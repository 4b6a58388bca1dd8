package queries

import (
	"github.com/jinzhu/copier"
)

// project copies getter results from an entity into a view with matching
// field names. A failure here is a programming error in the view definition.
func project[V any](src any) *V {
	var v V
	if err := copier.Copy(&v, src); err != nil {
		panic("queries: projection failed: " + err.Error())
	}
	return &v
}
