package slug_test

import (
	"testing"

	"fieldreport/internal/platform/slug"
)

func TestMakeFoldsAccents(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"João Conceição": "joao-conceicao",
		"  Ana & Zé  ":   "ana-ze",
		"***":            "untitled",
	}
	for in, want := range cases {
		if got := slug.Make(in); got != want {
			t.Fatalf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}
