package organizer

import (
	"fmt"
	"os"
	"strings"

	"log/slog"

	"recupsort/internal/failure"
	"recupsort/internal/logging"
)

// ValidatePlacement verifies that a moved file exists at finalPath with the
// size observed before the move.
func ValidatePlacement(finalPath string, size int64, logger *slog.Logger) error {
	finalPath = strings.TrimSpace(finalPath)
	if finalPath == "" {
		return failure.Wrap(
			failure.ErrValidation,
			"organize",
			"validate placement",
			"final path is required",
			nil,
		)
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		return failure.Wrap(failure.ErrValidation, "organize", "validate placement", fmt.Sprintf("moved file %s is missing", finalPath), err)
	}
	if !info.Mode().IsRegular() || info.Size() != size {
		logging.ErrorWithContext(logger, "placement validation failed", "placement_validation_failed",
			logging.String("final_path", finalPath),
			logging.Int64("expected_size", size),
			logging.Int64("actual_size", info.Size()),
			logging.String(logging.FieldErrorHint, "inspect the destination filesystem for errors"),
		)
		return failure.Wrap(
			failure.ErrValidation,
			"organize",
			"validate placement",
			fmt.Sprintf("moved file %s has %d bytes, expected %d", finalPath, info.Size(), size),
			nil,
		)
	}
	return nil
}
