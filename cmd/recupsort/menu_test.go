package main

import (
	"path/filepath"
	"strings"
	"testing"

	"recupsort/internal/testsupport"
)

func TestMenuExitsOnZero(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, nil, env.configPath, "0\n")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "PhotoRec Recovery Organizer")
	requireContains(t, out, "3 - Change thumbnail size (current: 400x400)")
	requireContains(t, out, "Goodbye.")
}

func TestMenuEndsOnEOF(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"menu"}, env.configPath, ""); err != nil {
		t.Fatalf("menu: %v", err)
	}
}

func TestMenuChangeThreshold(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, nil, env.configPath, "3\n640\n480\n0\n")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "Thumbnail size updated to 640x480.")
	requireContains(t, out, "(current: 640x480)")
}

func TestMenuInvalidThresholdKeepsPrevious(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithThreshold(300, 200))
	out, _, err := runCLI(t, nil, env.configPath, "3\nabc\n100\n3\n50\n-5\n0\n")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if got := strings.Count(out, "Threshold stays 300x200."); got != 2 {
		t.Fatalf("expected two rejections, got %d in %q", got, out)
	}
	requireNotContains(t, out, "Thumbnail size updated")
}

func TestMenuInvalidOptionAndHelp(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, nil, env.configPath, "9\n5\n0\n")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "Invalid option")
	requireContains(t, out, "========== HELP ==========")
	requireContains(t, out, "Current threshold: 400x400")
}

func TestMenuOrganizeThenSweepWithNewThreshold(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithScratchDirs("recup_dir.1"))
	root := filepath.Join(env.baseDir, "recup_dir.1")
	testsupport.WritePNG(t, filepath.Join(root, "shot.png"), 500, 300)
	testsupport.WriteFile(t, filepath.Join(root, "clip.mp4"), 64)

	input := strings.Join([]string{"1", "y", "3", "640", "480", "2", "y", "0"}, "\n") + "\n"
	out, _, err := runCLI(t, nil, env.configPath, input)
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "Organize operation completed")
	requireContains(t, out, "deleted 1 images")

	dest := env.cfg.Destination()
	testsupport.MustExist(t, filepath.Join(dest, "mp4", "clip.mp4"))
	testsupport.MustNotExist(t, filepath.Join(dest, "images_without_metadata", "shot.png"))
}

func TestMenuCleanDeclined(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithScratchDirs("recup_dir.1"))
	f := filepath.Join(env.baseDir, "recup_dir.1", "keep.bin")
	testsupport.WriteFile(t, f, 4)

	out, _, err := runCLI(t, nil, env.configPath, "4\nn\n0\n")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "Operation cancelled")
	testsupport.MustExist(t, f)
}
