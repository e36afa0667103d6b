package cmd

import (
	"github.com/spf13/viper"

	"github.com/tomortec/drift-expandable/pkg/logging"
)

// Settings are the cardshow options shared by every command.
type Settings struct {
	// Width is the canvas width in logical pixels; 0 uses the gallery's.
	Width float64 `mapstructure:"width"`
	// Height is the surface height the gallery is laid out in before the
	// output is cropped to its content.
	Height float64 `mapstructure:"height"`
	// Background fills the canvas behind the gallery.
	Background string `mapstructure:"background"`
	// Output is the default PNG path for render.
	Output string      `mapstructure:"output"`
	Log    LogSettings `mapstructure:"log"`
}

// LogSettings configures logging output.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault("width", 0.0)
	viper.SetDefault("height", 4000.0)
	viper.SetDefault("background", "#FFF2F2F7")
	viper.SetDefault("output", "gallery.png")
	viper.SetDefault("log.level", logging.LevelWarn)
	viper.SetDefault("log.format", logging.FormatText)
}

// Get returns the current settings.
func Get() *Settings {
	return &Settings{
		Width:      viper.GetFloat64("width"),
		Height:     viper.GetFloat64("height"),
		Background: viper.GetString("background"),
		Output:     viper.GetString("output"),
		Log: LogSettings{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
	}
}
