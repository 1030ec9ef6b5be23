package main

import (
	"os"
	"path/filepath"
	"testing"

	"recupsort/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.baseDir)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote configuration to")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, "", ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidateRejectsUnknownKeys(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[paths]\nbogus = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, ""); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestConfigInitWithBaseDirReportsRecoveryLayout(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithScratchDirs("recup_dir.1", "recup_dir.2"))
	target := filepath.Join(t.TempDir(), "recupsort.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target, "--base-dir", env.baseDir}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Base directory: "+env.baseDir)
	requireContains(t, out, "Destination: "+filepath.Join(env.baseDir, "organized"))
	requireContains(t, out, "Thumbnail size: 400x400")
	requireContains(t, out, "Scratch folders found: 2")

	out, _, err = runCLI(t, []string{"config", "validate"}, target, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Base directory: "+env.baseDir)
}

func TestConfigInitWarnsWithoutScratchFolders(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "recupsort.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target, "--base-dir", env.baseDir}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "No recup_dir.* folders found")
}
