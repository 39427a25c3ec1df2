package bossfx

import (
	"reflect"
	"testing"
)

func TestEcsReflect_ReflectSliceMake(t *testing.T) {
	type myStruct struct{ A int }

	col := reflectSliceMake(reflect.TypeOf(myStruct{}))
	if col.Kind() != reflect.Slice {
		t.Fatalf("Expected a slice, got %v", col.Kind())
	}
	if col.Type().Elem() != reflect.TypeOf(myStruct{}) {
		t.Errorf("Expected slice of myStruct, got %v", col.Type().Elem())
	}
	if col.Len() != 0 {
		t.Errorf("Expected an empty column, got %d", col.Len())
	}
}

func TestEcsReflect_ColumnAliasesStorage(t *testing.T) {
	type myStruct struct{ A int }

	col := reflect.Append(reflectSliceMake(reflect.TypeOf(myStruct{})), reflect.ValueOf(myStruct{A: 1}))
	columnOf[myStruct](col)[0].A = 42

	if got := col.Index(0).Interface().(myStruct).A; got != 42 {
		t.Errorf("Expected write through typed view, got %d", got)
	}
}
