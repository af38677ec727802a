package pathutil

import (
	"path/filepath"
	"testing"
)

func TestNormalizePathConvertsSeparators(t *testing.T) {
	got := NormalizePath(`home\user\\notes\..\db`)
	want := filepath.Join("home", "user", "db")
	if got != want {
		t.Fatalf("NormalizePath = %q, want %q", got, want)
	}
	if NormalizePath("") != "" {
		t.Fatal("expected empty path to stay empty")
	}
}

func TestExpandHome(t *testing.T) {
	home := filepath.Join("home", "user")

	cases := []struct{ in, want string }{
		{"~", home},
		{"~/notes/fn.db", filepath.Join(home, "notes", "fn.db")},
		{`~\notes\fn.db`, filepath.Join(home, "notes", "fn.db")},
		{"/var/lib/fn.db", "/var/lib/fn.db"},
		{"relative/fn.db", "relative/fn.db"},
		{"~other/fn.db", "~other/fn.db"},
		{"postgres://x/y?z", "postgres://x/y?z"},
	}
	for _, tc := range cases {
		if got := ExpandHome(tc.in, home); got != tc.want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if got := ExpandHome("~/x", ""); got != "~/x" {
		t.Fatalf("expected no expansion without home, got %q", got)
	}
}

func TestIsFileDSN(t *testing.T) {
	cases := []struct {
		dsn  string
		want bool
	}{
		{"/tmp/fn.db", true},
		{"fn.db", true},
		{"file:fn.db?cache=shared", false},
		{":memory:", false},
		{"/tmp/fn.db?_pragma=foreign_keys(1)", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsFileDSN(tc.dsn); got != tc.want {
			t.Fatalf("IsFileDSN(%q) = %v, want %v", tc.dsn, got, tc.want)
		}
	}
}
