package config

const (
	defaultConfigPath         = "~/.config/recupsort/config.toml"
	projectConfigName         = "recupsort.toml"
	defaultBaseDir            = "."
	defaultLogDir             = "~/.local/share/recupsort/logs"
	defaultThumbnailMaxWidth  = 400
	defaultThumbnailMaxHeight = 400
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			BaseDir: defaultBaseDir,
			LogDir:  defaultLogDir,
		},
		Thumbnails: Thumbnails{
			MaxWidth:           defaultThumbnailMaxWidth,
			MaxHeight:          defaultThumbnailMaxHeight,
			IncludeDestination: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
