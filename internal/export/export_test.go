package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Paintersrp/focusnest/internal/graph"
	"github.com/Paintersrp/focusnest/internal/note"
)

var generated = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func fixtureSnapshot() Snapshot {
	notes := []note.Note{
		{ID: 1, Title: "Alpha"},
		{ID: 2, Title: "Beta"},
	}
	links := []note.Link{{FromNoteID: 1, ToNoteID: 2, Strength: 1}}
	return New(notes, graph.Build(notes, links).Data(), generated)
}

func TestKey(t *testing.T) {
	cases := map[string]string{
		"":         "focusnest-20240506T070809Z.json",
		"backups":  "backups/focusnest-20240506T070809Z.json",
		"/nested/": "nested/focusnest-20240506T070809Z.json",
		"a/b":      "a/b/focusnest-20240506T070809Z.json",
	}
	for prefix, want := range cases {
		if got := Key(prefix, generated); got != want {
			t.Fatalf("Key(%q) = %q, want %q", prefix, got, want)
		}
	}
}

func TestWriteFileIntoDirectory(t *testing.T) {
	dir := t.TempDir()

	dest, err := WriteFile(dir, fixtureSnapshot())
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	if filepath.Base(dest) != "focusnest-20240506T070809Z.json" {
		t.Fatalf("unexpected destination %q", dest)
	}

	raw, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(decoded.Notes) != 2 || len(decoded.Graph.Links) != 1 {
		t.Fatalf("unexpected snapshot contents: %+v", decoded)
	}
	if !decoded.GeneratedAt.Equal(generated) {
		t.Fatalf("expected generated_at %s, got %s", generated, decoded.GeneratedAt)
	}
}

func TestWriteFileExplicitPath(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out", "snap.json")

	got, err := WriteFile(dest, fixtureSnapshot())
	if err != nil || got != dest {
		t.Fatalf("WriteFile returned %q, %v", got, err)
	}
}

type fakeUploader struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, in *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &manager.UploadOutput{}, nil
}

func TestS3TargetPut(t *testing.T) {
	up := &fakeUploader{}
	target := NewS3TargetWithUploader("notes-bucket", "exports", up)

	loc, err := target.Put(context.Background(), fixtureSnapshot())
	if err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	want := "s3://notes-bucket/exports/focusnest-20240506T070809Z.json"
	if loc != want {
		t.Fatalf("expected location %q, got %q", want, loc)
	}
	if aws.ToString(up.input.Bucket) != "notes-bucket" || aws.ToString(up.input.ContentType) != "application/json" {
		t.Fatalf("unexpected upload input: %+v", up.input)
	}
	if !json.Valid(up.body) {
		t.Fatalf("expected uploaded body to be JSON, got %q", up.body)
	}
}

func TestS3TargetErrors(t *testing.T) {
	if _, err := NewS3Target(context.Background(), S3Options{}); !errors.Is(err, ErrNoBucket) {
		t.Fatalf("expected ErrNoBucket, got %v", err)
	}

	boom := errors.New("denied")
	target := NewS3TargetWithUploader("b", "", &fakeUploader{err: boom})
	if _, err := target.Put(context.Background(), fixtureSnapshot()); !errors.Is(err, boom) {
		t.Fatalf("expected upload error, got %v", err)
	}
}
