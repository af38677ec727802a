package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	exportpkg "github.com/Paintersrp/focusnest/internal/export"
	"github.com/Paintersrp/focusnest/pkg/cmd/cmdtest"
)

func fixedNow(t *testing.T) {
	t.Helper()
	prev := Now
	t.Cleanup(func() { Now = prev })
	Now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }
}

func TestExportToStdout(t *testing.T) {
	fixedNow(t)
	s := cmdtest.NewState(t)
	cmdtest.Seed(t, s, "Beta", "", "Alpha", "[[Beta]]")

	out, err := cmdtest.Run(NewCmdExport(s))
	if err != nil {
		t.Fatalf("export returned error: %v", err)
	}

	var snap exportpkg.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("decode export: %v\n%s", err, out)
	}
	if len(snap.Notes) != 2 || len(snap.Graph.Links) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestExportToDirectory(t *testing.T) {
	fixedNow(t)
	s := cmdtest.NewState(t)
	cmdtest.Seed(t, s, "Alpha", "")
	dir := t.TempDir()

	out, err := cmdtest.Run(NewCmdExport(s), "--out", dir)
	if err != nil {
		t.Fatalf("export returned error: %v", err)
	}

	want := filepath.Join(dir, "focusnest-20240506T070809Z.json")
	if !strings.Contains(out, want) {
		t.Fatalf("expected destination in output, got %q", out)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected export file: %v", err)
	}
}

func TestExportS3NeedsBucket(t *testing.T) {
	s := cmdtest.NewState(t)
	s.Config.Export.Bucket = ""

	_, err := cmdtest.Run(NewCmdExport(s), "--s3")
	if !errors.Is(err, exportpkg.ErrNoBucket) {
		t.Fatalf("expected ErrNoBucket, got %v", err)
	}
}
