package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	OutputDir     string `mapstructure:"output_dir"`
	ExpandAll     bool   `mapstructure:"expand_all"`
	ColorTitle    string `mapstructure:"color_title"`
	ColorPages    string `mapstructure:"color_pages"`
	ColorCursor   string `mapstructure:"color_cursor"`
	ColorSelected string `mapstructure:"color_selected"`
	ColorDim      string `mapstructure:"color_dim"`
	ColorBorder   string `mapstructure:"color_border"`
	ColorError    string `mapstructure:"color_error"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("output_dir", "")
	viper.SetDefault("expand_all", false)
	viper.SetDefault("color_title", "")     // terminal default
	viper.SetDefault("color_pages", "6")    // cyan
	viper.SetDefault("color_cursor", "212")
	viper.SetDefault("color_selected", "236")
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("color_border", "240")
	viper.SetDefault("color_error", "1")

	viper.SetConfigName("pdfsplit")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "pdfsplit"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("PDFSPLIT")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetOutputDir returns the configured output directory override with tilde
// expansion; empty means "derive from the source document"
func GetOutputDir() string {
	return expandTilde(viper.GetString("output_dir"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetExpandAll returns whether the chapter tree starts fully expanded
func GetExpandAll() bool {
	return viper.GetBool("expand_all")
}

// GetColorTitle returns the color for chapter titles
func GetColorTitle() string {
	return viper.GetString("color_title")
}

// GetColorPages returns the color for page-range annotations
func GetColorPages() string {
	return viper.GetString("color_pages")
}

// GetColorCursor returns the cursor color
func GetColorCursor() string {
	return viper.GetString("color_cursor")
}

// GetColorSelected returns the background color for the cursor row
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// GetColorDim returns the color for de-emphasized text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorBorder returns the color for dividers
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorError returns the color for validation errors
func GetColorError() string {
	return viper.GetString("color_error")
}

// SetOutputDir sets the output directory at runtime
func SetOutputDir(dir string) {
	viper.Set("output_dir", dir)
	C.OutputDir = dir
}

// SetExpandAll sets the initial disclosure state at runtime
func SetExpandAll(expand bool) {
	viper.Set("expand_all", expand)
	C.ExpandAll = expand
}
