package sweeper

import (
	"fmt"
	"strconv"
	"strings"

	"recupsort/internal/failure"
)

// Threshold is the resolution below which an image counts as a thumbnail.
type Threshold struct {
	MaxWidth  int
	MaxHeight int
}

// DefaultThreshold is used until the user picks another one.
var DefaultThreshold = Threshold{MaxWidth: 400, MaxHeight: 400}

// IsThumbnail reports whether an image of the given size falls strictly
// below the threshold on both axes.
func (t Threshold) IsThumbnail(width, height int) bool {
	return width < t.MaxWidth && height < t.MaxHeight
}

// Validate rejects non-positive bounds.
func (t Threshold) Validate() error {
	if t.MaxWidth <= 0 || t.MaxHeight <= 0 {
		return failure.Wrap(
			failure.ErrValidation,
			"sweep",
			"validate threshold",
			fmt.Sprintf("Threshold %dx%d must be positive", t.MaxWidth, t.MaxHeight),
			nil,
		)
	}
	return nil
}

func (t Threshold) String() string {
	return fmt.Sprintf("%dx%d", t.MaxWidth, t.MaxHeight)
}

// ParseThreshold parses user-entered width and height. Both must be positive
// integers.
func ParseThreshold(width, height string) (Threshold, error) {
	w, err := parseBound("width", width)
	if err != nil {
		return Threshold{}, err
	}
	h, err := parseBound("height", height)
	if err != nil {
		return Threshold{}, err
	}
	t := Threshold{MaxWidth: w, MaxHeight: h}
	if err := t.Validate(); err != nil {
		return Threshold{}, err
	}
	return t, nil
}

func parseBound(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, failure.Wrap(
			failure.ErrValidation,
			"sweep",
			"parse threshold",
			fmt.Sprintf("Max %s %q is not a whole number", name, strings.TrimSpace(value)),
			err,
		)
	}
	return n, nil
}
