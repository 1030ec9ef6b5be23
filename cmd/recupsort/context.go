package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"recupsort/internal/config"
	"recupsort/internal/failure"
	"recupsort/internal/logging"
	"recupsort/internal/preflight"
	"recupsort/internal/sessionlock"
)

type commandContext struct {
	configFlag *string
	destFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
	sessionID  string
}

func newCommandContext(configFlag, destFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		destFlag:   destFlag,
		sessionID:  uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = failure.Wrap(failure.ErrConfiguration, "config", "load", "Invalid configuration", err)
			return
		}
		if c.destFlag != nil && strings.TrimSpace(*c.destFlag) != "" {
			dest, err := config.ExpandPath(strings.TrimSpace(*c.destFlag))
			if err != nil {
				c.configErr = failure.Wrap(failure.ErrConfiguration, "config", "resolve destination", "Invalid --dest value", err)
				return
			}
			cfg.Paths.DestinationDir = dest
		}
		if filepath.Clean(cfg.Destination()) == filepath.Clean(cfg.Paths.BaseDir) {
			c.configErr = failure.Wrap(failure.ErrConfiguration, "config", "resolve destination", "Destination must differ from the base directory", nil)
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = failure.Wrap(failure.ErrConfiguration, "config", "ensure directories", "Cannot create log directory", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, c.sessionID)
		if err != nil {
			c.loggerErr = failure.Wrap(failure.ErrConfiguration, "logging", "open log", "Cannot open log output", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// runLocked executes fn under the session lock with a fresh run ID attached
// to ctx and the logger.
func (c *commandContext) runLocked(ctx context.Context, operation string, fn func(context.Context, *config.Config, *slog.Logger) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if check := preflight.CheckDirectoryAccess("Base directory", cfg.Paths.BaseDir); !check.Passed {
		return failure.Wrap(failure.ErrConfiguration, operation, "preflight", check.Detail, nil)
	}

	lock, err := sessionlock.Acquire(cfg.LockFile())
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logging.WarnWithContext(logger, "session lock release failed", "lock_release_failed",
				logging.String("lock", lock.Path()),
				logging.Error(err),
				logging.String(logging.FieldImpact, "stale lock file may remain"),
			)
		}
	}()

	ctx = logging.WithRunID(logging.WithOperation(ctx, operation), uuid.NewString())
	return fn(ctx, cfg, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
