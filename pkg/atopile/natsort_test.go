package atopile

import (
	"reflect"
	"testing"
)

func TestNaturalCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"R2", "R10", -1},
		{"R10", "R2", 1},
		{"R2", "R2", 0},
		{"a", "b", -1},
		{"a1b2", "a1b10", -1},
		{"a01", "a1", -1},
		{"P01", "P1", -1},
		{"P1", "P01", 1},
		{"P10", "P010", 1},
		{"pin1", "pin1a", -1},
		{"", "a", -1},
		{"C1", "R1", -1},
		{"U3.P10", "U3.P9", 1},
	}

	for _, tt := range tests {
		if got := naturalCompare(tt.a, tt.b); got != tt.want {
			t.Errorf("naturalCompare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNaturalSort(t *testing.T) {
	items := []string{"R10", "R2", "C1", "R1", "C10", "C2"}
	naturalSort(items)

	want := []string{"C1", "C2", "C10", "R1", "R2", "R10"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("naturalSort = %v, want %v", items, want)
	}
}

func TestNaturalSortZeroPadding(t *testing.T) {
	// Zero-padded names are distinct from their unpadded value and always
	// land in the same position, padded first.
	items := []string{"P2", "P01", "P1", "P02"}
	naturalSort(items)

	want := []string{"P01", "P02", "P1", "P2"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("naturalSort = %v, want %v", items, want)
	}
}
