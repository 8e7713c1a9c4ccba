package models

import (
	"reflect"
	"testing"
)

func TestFindColumnMismatches(t *testing.T) {
	got := findColumnMismatches(
		[]string{"id", "legacy_code", "nombre_empresa", "archived"},
		[]string{"id", "nombre_empresa", "sector"},
	)
	want := []string{"archived", "legacy_code"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("findColumnMismatches = %v, want %v", got, want)
	}
}
