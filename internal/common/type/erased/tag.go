// Released under an MIT license. See LICENSE.

package erased

import (
	"reflect"
)

// Tag identifies a concrete payload type. Tags are comparable.
type Tag struct {
	t reflect.Type
}

// TagOf returns the tag for the type V.
func TagOf[V any]() Tag {
	return Tag{t: reflect.TypeOf((*V)(nil)).Elem()}
}

// String returns the name of the type identified by the tag t.
func (t Tag) String() string {
	if t.t == nil {
		return "<none>"
	}

	return t.t.String()
}
