package organizer

import (
	"fmt"
	"path/filepath"
	"strings"

	"recupsort/internal/taxonomy"
	"recupsort/internal/textutil"
)

// LargeVideoThreshold is the size at which a video goes to LargeVideoDir.
const LargeVideoThreshold int64 = 1 << 30

const (
	LargeVideoDir      = "large_videos_1gb_plus"
	WithMetadataDir    = "images_with_metadata"
	WithoutMetadataDir = "images_without_metadata"
)

// MediaFile is a recovered file that belongs to the media taxonomy.
type MediaFile struct {
	Path  string
	Ext   string
	Class taxonomy.Class
	Size  int64
}

// RouteKind identifies which destination rule matched a file.
type RouteKind int

const (
	RouteByExtension RouteKind = iota
	RouteLargeVideo
	RouteImageWithModel
	RouteImageWithoutModel
)

// Route is the destination decision for one file.
type Route struct {
	Kind RouteKind
	// Dir is relative to the destination base.
	Dir string
	// Model is the trimmed camera model for RouteImageWithModel.
	Model string
}

// ModelReader returns the camera model of an image, or false when none is
// available.
type ModelReader func(path string) (string, bool)

// RouteFor decides where file goes. readModel is only consulted for images.
func RouteFor(file MediaFile, readModel ModelReader) Route {
	switch {
	case file.Class == taxonomy.Video && file.Size >= LargeVideoThreshold:
		return Route{Kind: RouteLargeVideo, Dir: LargeVideoDir}
	case file.Class == taxonomy.Image:
		if readModel != nil {
			if model, ok := readModel(file.Path); ok {
				model = strings.TrimSpace(model)
				if model != "" {
					return Route{
						Kind:  RouteImageWithModel,
						Dir:   filepath.Join(WithMetadataDir, textutil.ModelDirName(model)),
						Model: model,
					}
				}
			}
		}
		return Route{Kind: RouteImageWithoutModel, Dir: WithoutMetadataDir}
	default:
		return Route{Kind: RouteByExtension, Dir: file.Ext}
	}
}

// Label is a short human description used in move events.
func (r Route) Label() string {
	switch r.Kind {
	case RouteLargeVideo:
		return "large video"
	case RouteImageWithModel:
		return fmt.Sprintf("image with metadata (%s)", r.Model)
	case RouteImageWithoutModel:
		return "image without metadata"
	default:
		return r.Dir
	}
}
