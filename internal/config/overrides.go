package config

// Overrides holds values set explicitly on the command line. Nil fields leave the config unchanged.
type Overrides struct {
	Scene           *string
	Width           *int
	Height          *int
	SamplesPerPixel *int
	MaxDepth        *int
	TileSize        *int
	Workers         *int
	Seed            *int64
	OutputPath      *string
	OutputFormat    *string
	LogLevel        *string
	LogFile         *string
}

// ApplyOverrides applies command line values, which take priority over file and defaults.
func (c *Config) ApplyOverrides(o Overrides) {
	setString(&c.Render.Scene, o.Scene)
	setInt(&c.Render.Width, o.Width)
	setInt(&c.Render.Height, o.Height)
	setInt(&c.Render.SamplesPerPixel, o.SamplesPerPixel)
	setInt(&c.Render.MaxDepth, o.MaxDepth)
	setInt(&c.Render.TileSize, o.TileSize)
	setInt(&c.Render.Workers, o.Workers)
	if o.Seed != nil {
		c.Render.Seed = *o.Seed
	}
	setString(&c.Output.Path, o.OutputPath)
	setString(&c.Output.Format, o.OutputFormat)
	setString(&c.Logging.Level, o.LogLevel)
	setString(&c.Logging.LogFile, o.LogFile)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
