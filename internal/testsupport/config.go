package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"recupsort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	rootDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The recovery base directory is created; the destination is left to the
// default "<base>/organized" unless WithDestination is applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	root := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.BaseDir = filepath.Join(root, "recovery")
	cfgVal.Paths.LogDir = filepath.Join(root, "logs")
	cfgVal.Logging.Console = false
	if err := os.MkdirAll(cfgVal.Paths.BaseDir, 0o755); err != nil {
		t.Fatalf("mkdir base dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		rootDir: root,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDestination points the organized output at dir, relative to the test
// root when not absolute.
func WithDestination(dir string) ConfigOption {
	return func(b *configBuilder) {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(b.rootDir, dir)
		}
		b.cfg.Paths.DestinationDir = dir
	}
}

// WithThreshold overrides the default thumbnail threshold.
func WithThreshold(maxWidth, maxHeight int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Thumbnails.MaxWidth = maxWidth
		b.cfg.Thumbnails.MaxHeight = maxHeight
	}
}

// WithScratchDirs creates the named scratch directories under the base dir.
func WithScratchDirs(names ...string) ConfigOption {
	return func(b *configBuilder) {
		for _, name := range names {
			if err := os.MkdirAll(filepath.Join(b.cfg.Paths.BaseDir, name), 0o755); err != nil {
				b.t.Fatalf("mkdir scratch dir %s: %v", name, err)
			}
		}
	}
}

// BaseDir returns the recovery base directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return cfg.Paths.BaseDir
}
