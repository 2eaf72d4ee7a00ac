package compare_test

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"linediff/internal/domain"
	compare "linediff/internal/services/compare"
	"linediff/internal/store"
)

type captureNotifier struct {
	summaries []string
}

func (n *captureNotifier) Notify(summary string) { n.summaries = append(n.summaries, summary) }

func writeInput(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newService(n domain.Notifier) *compare.Service {
	fs := store.NewFileStore()
	return compare.New(fs, fs, n, zap.NewNop())
}

func TestRun_ExportsBundle(t *testing.T) {
	dir := t.TempDir()
	pathA := writeInput(t, dir, "before.csv", "header\nx\ny\nx\n")
	pathB := writeInput(t, dir, "after.csv", "header\ny\nz\n")
	out := filepath.Join(dir, "out.zip")

	notifier := &captureNotifier{}
	svc := newService(notifier)

	res, err := svc.Run(domain.CompareRequest{PathA: pathA, PathB: pathB, Output: out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(res.OnlyInA) != 2 || len(res.OnlyInB) != 1 || len(res.InBoth) != 1 {
		t.Fatalf("unexpected classification: %+v", res)
	}
	if len(notifier.summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(notifier.summaries))
	}
	want := "only in before.csv: 2 / only in after.csv: 1 / in both: 1 / duplicates in before.csv: 2 / duplicates in after.csv: 0"
	if notifier.summaries[0] != want {
		t.Fatalf("summary:\n got %q\nwant %q", notifier.summaries[0], want)
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 6 {
		t.Fatalf("got %d bundle entries, want 6", len(zr.File))
	}
	if zr.File[0].Name != "only_in_File_A.csv" {
		t.Fatalf("first entry: got %q", zr.File[0].Name)
	}
}

func TestRun_MissingInput(t *testing.T) {
	notifier := &captureNotifier{}
	svc := newService(notifier)

	_, err := svc.Run(domain.CompareRequest{PathA: "", PathB: "b.csv"})
	if !errors.Is(err, domain.ErrMissingInput) {
		t.Fatalf("want ErrMissingInput, got %v", err)
	}
	if len(notifier.summaries) != 0 {
		t.Fatal("no processing should happen before input validation")
	}
}

func TestRun_ReadFailureAborts(t *testing.T) {
	dir := t.TempDir()
	pathB := writeInput(t, dir, "after.csv", "header\na\n")
	out := filepath.Join(dir, "out.zip")

	notifier := &captureNotifier{}
	svc := newService(notifier)

	_, err := svc.Run(domain.CompareRequest{
		PathA:  filepath.Join(dir, "nope.csv"),
		PathB:  pathB,
		Output: out,
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want wrapped os.ErrNotExist, got %v", err)
	}
	if len(notifier.summaries) != 0 {
		t.Fatal("summary must not be sent after a read failure")
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("no bundle should exist after a read failure: %v", err)
	}
}

func TestRun_ArchiveFailureAfterSummary(t *testing.T) {
	dir := t.TempDir()
	pathA := writeInput(t, dir, "before.csv", "header\na\n")
	pathB := writeInput(t, dir, "after.csv", "header\na\n")
	out := filepath.Join(dir, "missing", "out.zip")

	notifier := &captureNotifier{}
	svc := newService(notifier)

	_, err := svc.Run(domain.CompareRequest{PathA: pathA, PathB: pathB, Output: out})
	if err == nil {
		t.Fatal("expected archive failure")
	}
	// Classification finished, so the summary was already surfaced.
	if len(notifier.summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(notifier.summaries))
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("partial bundle left behind: %v", statErr)
	}
}

func TestRun_LabelsFlowIntoEntryNames(t *testing.T) {
	dir := t.TempDir()
	pathA := writeInput(t, dir, "a.csv", "header\na\n")
	pathB := writeInput(t, dir, "b.csv", "header\nb\n")
	out := filepath.Join(dir, "out.zip")

	svc := newService(&captureNotifier{})

	_, err := svc.Run(domain.CompareRequest{
		PathA: pathA, PathB: pathB, Output: out,
		LabelA: "before", LabelB: "after",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	defer zr.Close()
	if zr.File[0].Name != "only_in_before.csv" {
		t.Fatalf("first entry: got %q", zr.File[0].Name)
	}
	if zr.File[4].Name != "duplicates_in_after.csv" {
		t.Fatalf("fifth entry: got %q", zr.File[4].Name)
	}
}
