package sweeper_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"recupsort/internal/failure"
	"recupsort/internal/logging"
	"recupsort/internal/report"
	"recupsort/internal/sweeper"
	"recupsort/internal/testsupport"
)

func TestSweepDeletesStrictlySmallImages(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithScratchDirs("recup_dir.1"))
	root := filepath.Join(testsupport.BaseDir(cfg), "recup_dir.1")

	small := filepath.Join(root, "small.png")
	edge := filepath.Join(root, "edge.png")
	large := filepath.Join(root, "large.jpg")
	testsupport.WritePNG(t, small, 399, 399)
	testsupport.WritePNG(t, edge, 400, 399)
	testsupport.WriteJPEG(t, large, 800, 600, "")

	rec := &report.Recorder{}
	result, err := sweeper.New(logging.NewNop(), rec).Sweep(context.Background(), sweeper.Options{
		Roots:     []string{root},
		Threshold: sweeper.DefaultThreshold,
	})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	testsupport.MustNotExist(t, small)
	testsupport.MustExist(t, edge)
	testsupport.MustExist(t, large)
	if result.Scanned != 3 || result.Deleted != 1 || result.Failed != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
	events := rec.Events()
	var deletes []report.Event
	for _, ev := range events {
		if ev.Kind == report.KindDelete {
			deletes = append(deletes, ev)
		}
	}
	if len(deletes) != 1 || deletes[0].Width != 399 || deletes[0].Height != 399 {
		t.Fatalf("unexpected delete events %+v", deletes)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithScratchDirs("recup_dir.1"))
	root := filepath.Join(testsupport.BaseDir(cfg), "recup_dir.1")
	testsupport.WritePNG(t, filepath.Join(root, "a.png"), 10, 10)
	testsupport.WritePNG(t, filepath.Join(root, "b.png"), 500, 500)

	s := sweeper.New(nil, nil)
	opts := sweeper.Options{Roots: []string{root}, Threshold: sweeper.DefaultThreshold}
	first, err := s.Sweep(context.Background(), opts)
	if err != nil {
		t.Fatalf("first sweep: %v", err)
	}
	if first.Deleted != 1 {
		t.Fatalf("first sweep deleted %d, want 1", first.Deleted)
	}
	second, err := s.Sweep(context.Background(), opts)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if second.Deleted != 0 {
		t.Fatalf("second sweep deleted %d, want 0", second.Deleted)
	}
}

func TestSweepSkipsUndecodableAndNonImages(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithScratchDirs("recup_dir.1"))
	root := filepath.Join(testsupport.BaseDir(cfg), "recup_dir.1")
	corrupt := filepath.Join(root, "corrupt.jpg")
	heic := filepath.Join(root, "photo.heic")
	audio := filepath.Join(root, "tiny.mp3")
	testsupport.WriteFile(t, corrupt, 20)
	testsupport.WriteFile(t, heic, 20)
	testsupport.WriteFile(t, audio, 20)

	result, err := sweeper.New(nil, nil).Sweep(context.Background(), sweeper.Options{
		Roots:     []string{root},
		Threshold: sweeper.DefaultThreshold,
	})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	for _, p := range []string{corrupt, heic, audio} {
		testsupport.MustExist(t, p)
	}
	if result.Undecodable != 2 || result.Deleted != 0 || result.Failed != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestSweepDryRunKeepsFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithScratchDirs("recup_dir.1"))
	root := filepath.Join(testsupport.BaseDir(cfg), "recup_dir.1")
	thumb := filepath.Join(root, "thumb.png")
	testsupport.WritePNG(t, thumb, 16, 16)

	rec := &report.Recorder{}
	result, err := sweeper.New(nil, rec).Sweep(context.Background(), sweeper.Options{
		Roots:     []string{root},
		Threshold: sweeper.DefaultThreshold,
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	testsupport.MustExist(t, thumb)
	if result.Deleted != 1 {
		t.Fatalf("Deleted = %d, want 1", result.Deleted)
	}
	events := rec.Events()
	if len(events) != 2 || !events[1].DryRun {
		t.Fatalf("expected dry-run delete event, got %+v", events)
	}
}

func TestSweepCustomThreshold(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithScratchDirs("recup_dir.1"))
	root := filepath.Join(testsupport.BaseDir(cfg), "recup_dir.1")
	img := filepath.Join(root, "mid.png")
	testsupport.WritePNG(t, img, 500, 300)

	result, err := sweeper.New(nil, nil).Sweep(context.Background(), sweeper.Options{
		Roots:     []string{root},
		Threshold: sweeper.Threshold{MaxWidth: 640, MaxHeight: 480},
	})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	testsupport.MustNotExist(t, img)
	if result.Deleted != 1 {
		t.Fatalf("Deleted = %d", result.Deleted)
	}
}

func TestSweepRejectsInvalidThreshold(t *testing.T) {
	_, err := sweeper.New(nil, nil).Sweep(context.Background(), sweeper.Options{Threshold: sweeper.Threshold{}})
	if !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSweepStopsWhenCancelled(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithScratchDirs("recup_dir.1"))
	root := filepath.Join(testsupport.BaseDir(cfg), "recup_dir.1")
	thumb := filepath.Join(root, "thumb.png")
	testsupport.WritePNG(t, thumb, 8, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sweeper.New(nil, nil).Sweep(ctx, sweeper.Options{Roots: []string{root}, Threshold: sweeper.DefaultThreshold})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	testsupport.MustExist(t, thumb)
}

func TestRootsIncludesExistingDestination(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithScratchDirs("recup_dir.1", "recup_dir.2"))
	base := testsupport.BaseDir(cfg)
	dest := cfg.Destination()

	roots, err := sweeper.Roots(base, dest, true)
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("expected only scratch roots before destination exists, got %v", roots)
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		t.Fatalf("mkdir dest: %v", err)
	}
	roots, err = sweeper.Roots(base, dest, true)
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(roots) != 3 || roots[2] != dest {
		t.Fatalf("expected destination appended, got %v", roots)
	}

	roots, err = sweeper.Roots(base, dest, false)
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("expected destination excluded, got %v", roots)
	}
}

func TestSweepCoversOrganizedDestination(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)
	dest := cfg.Destination()
	thumb := filepath.Join(dest, "images_without_metadata", "t.png")
	testsupport.WritePNG(t, thumb, 50, 50)

	roots, err := sweeper.Roots(base, dest, true)
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	result, err := sweeper.New(nil, nil).Sweep(context.Background(), sweeper.Options{Roots: roots, Threshold: sweeper.DefaultThreshold})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	testsupport.MustNotExist(t, thumb)
	if result.Deleted != 1 {
		t.Fatalf("Deleted = %d", result.Deleted)
	}
}
