package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "GGCHART"

// Loader merges defaults, a configuration file, the environment and bound
// flags into a Chart.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with the defaults of Default registered.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetTypeByDefaultValue(true)

	d := Default()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("padding.left", d.Padding.Left)
	v.SetDefault("padding.right", d.Padding.Right)
	v.SetDefault("padding.top", d.Padding.Top)
	v.SetDefault("padding.bottom", d.Padding.Bottom)
	v.SetDefault("background.figure", d.Background.Figure)
	v.SetDefault("background.data", d.Background.Data)
	v.SetDefault("grid.visible", d.Grid.Visible)
	v.SetDefault("grid.beneath", d.Grid.Beneath)
	v.SetDefault("grid.major.color", d.Grid.Major.Color)
	v.SetDefault("grid.major.width", d.Grid.Major.Width)
	v.SetDefault("grid.major.anti-alias", d.Grid.Major.AntiAlias)
	v.SetDefault("grid.minor.color", d.Grid.Minor.Color)
	v.SetDefault("grid.minor.width", d.Grid.Minor.Width)
	v.SetDefault("grid.minor.anti-alias", d.Grid.Minor.AntiAlias)
	v.SetDefault("grid.spacing", d.Grid.Spacing)
	v.SetDefault("grid.minor-divisions", d.Grid.MinorDivisions)
	v.SetDefault("grid.maximum-lines", d.Grid.MaximumLines)
	v.SetDefault("frame", d.Frame)
	v.SetDefault("limits.auto", d.Limits.Auto)
	v.SetDefault("limits.x-min", d.Limits.XMin)
	v.SetDefault("limits.x-max", d.Limits.XMax)
	v.SetDefault("limits.y-min", d.Limits.YMin)
	v.SetDefault("limits.y-max", d.Limits.YMax)
	v.SetDefault("margins.x", d.Margins.X)
	v.SetDefault("margins.y", d.Margins.Y)
	return &Loader{v: v}
}

// configKey is a dotted configuration key.
type configKey string

// FlagName returns the command-line flag for the key.
func (k configKey) FlagName() string {
	return strings.ReplaceAll(string(k), ".", "-")
}

func (l *Loader) bind(flags *pflag.FlagSet, key configKey) {
	_ = l.v.BindPFlag(string(key), flags.Lookup(key.FlagName()))
}

// RegisterFlags adds the command-line overrides for the most common
// settings to flags and binds them. Flags only take effect when set.
func (l *Loader) RegisterFlags(flags *pflag.FlagSet) {
	d := Default()

	flags.Int(configKey("width").FlagName(), d.Width, "figure width in pixels")
	l.bind(flags, "width")
	flags.Int(configKey("height").FlagName(), d.Height, "figure height in pixels")
	l.bind(flags, "height")

	flags.String(configKey("background.figure").FlagName(), d.Background.Figure, "figure background color")
	l.bind(flags, "background.figure")
	flags.String(configKey("background.data").FlagName(), d.Background.Data, "data area background color")
	l.bind(flags, "background.data")

	flags.Bool(configKey("grid.visible").FlagName(), d.Grid.Visible, "draw the grid")
	l.bind(flags, "grid.visible")
	flags.Bool(configKey("grid.beneath").FlagName(), d.Grid.Beneath, "draw the grid beneath the data")
	l.bind(flags, "grid.beneath")
	flags.Float64(configKey("grid.minor.width").FlagName(), d.Grid.Minor.Width, "minor grid line width (0 hides)")
	l.bind(flags, "grid.minor.width")

	flags.Bool(configKey("frame").FlagName(), d.Frame, "outline the data area")
	l.bind(flags, "frame")
}

// Load reads path, when not empty, on top of the defaults and returns the
// validated result. The format follows the file extension.
func (l *Loader) Load(path string) (*Chart, error) {
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Chart
	if err := l.v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a chart description from path using a fresh Loader.
func Load(path string) (*Chart, error) {
	return NewLoader().Load(path)
}
