package cmd

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/pkg/cmd/cmdtest"
)

func TestResolveNote(t *testing.T) {
	s := cmdtest.NewState(t)
	cmdtest.Seed(t, s, "Alpha", "first", "42", "a note titled with digits")

	c := &cobra.Command{Use: "show"}

	tests := map[string]struct {
		input   string
		want    string
		wantErr bool
	}{
		"by id":               {input: "1", want: "Alpha"},
		"by title":            {input: "Alpha", want: "Alpha"},
		"padded title":        {input: "  Alpha ", want: "Alpha"},
		"numeric title falls": {input: "42", want: "42"},
		"missing":             {input: "Nope", wantErr: true},
		"empty":               {input: " ", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ResolveNote(c, s, tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got.Title)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID(" 7 "); err != nil || id != 7 {
		t.Fatalf("ParseID = %d, %v", id, err)
	}
	for _, bad := range []string{"", "0", "-3", "x"} {
		if _, err := ParseID(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
