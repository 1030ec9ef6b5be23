package preflight

import (
	"recupsort/internal/config"
	"recupsort/internal/recovery"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	base := cfg.Paths.BaseDir
	results := []Result{CheckDirectoryAccess("Base directory", base)}

	roots, err := recovery.SourceRoots(base)
	if err != nil {
		roots = nil
	}
	results = append(results, CheckScratchFolders(roots))
	results = append(results, CheckDestination(base, cfg.Destination(), roots))

	if cfg.Paths.LogDir != "" {
		results = append(results, CheckCreatableDirectory("Log directory", cfg.Paths.LogDir))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
