package puml

// Style holds the diagram-wide skinparam values written in the preamble and
// on every package block.
type Style struct {
	ClassBackground   string `toml:"class_background" yaml:"class_background"`
	ArrowColor        string `toml:"arrow_color" yaml:"arrow_color"`
	BorderColor       string `toml:"border_color" yaml:"border_color"`
	FontName          string `toml:"font_name" yaml:"font_name"`
	FontSize          int    `toml:"font_size" yaml:"font_size"`
	PackageBackground string `toml:"package_background" yaml:"package_background"`
	PackageBorder     string `toml:"package_border" yaml:"package_border"`
}

// DefaultStyle returns light yellow classes with dark blue arrows in Arial 12.
func DefaultStyle() Style {
	return Style{
		ClassBackground:   "LightYellow",
		ArrowColor:        "DarkBlue",
		BorderColor:       "Black",
		FontName:          "Arial",
		FontSize:          12,
		PackageBackground: "LightSteelBlue",
		PackageBorder:     "Black",
	}
}

// Options configures rendering. The zero value renders with [DefaultStyle]
// and [DefaultPalette].
type Options struct {
	Style   Style
	Palette Palette
}

// WithDefaults fills a zero Style or Palette with the built-in values.
func (o Options) WithDefaults() Options {
	if o.Style == (Style{}) {
		o.Style = DefaultStyle()
	}
	if o.Palette == (Palette{}) {
		o.Palette = DefaultPalette()
	}
	return o
}
