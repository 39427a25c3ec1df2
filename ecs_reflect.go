package bossfx

import (
	"reflect"
)

// reflectSliceMake returns an empty, growable []elem column.
func reflectSliceMake(elem reflect.Type) reflect.Value {
	return reflect.MakeSlice(reflect.SliceOf(elem), 0, 4)
}

// columnOf returns the typed view of a column. The slice aliases the column storage.
func columnOf[T any](col reflect.Value) []T {
	return col.Interface().([]T)
}
