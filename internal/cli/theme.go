package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/elbamos/ggally/pkg/errors"
)

// Theme holds presentation defaults loaded from a TOML file. Zero values
// mean "not set": the render command only applies a theme field when the
// corresponding flag was not given explicitly.
//
// Example theme:
//
//	[canvas]
//	width = 1600
//	height = 900
//	background = "#0b1a2a"
//
//	[node]
//	color = "steelblue"
//	size = 4.0
//
//	[edge]
//	color = "grey"
//	great_circles = true
//
//	[label]
//	color = "white"
//	size = 2.0
//
//	[attrs]
//	lon = "longitude"
//	group = "region"
type Theme struct {
	Canvas struct {
		Width      int     `toml:"width"`
		Height     int     `toml:"height"`
		Margin     float64 `toml:"margin"`
		Background string  `toml:"background"`
	} `toml:"canvas"`

	Node struct {
		Color     string  `toml:"color"`
		RingColor string  `toml:"ring_color"`
		Size      float64 `toml:"size"`
		Alpha     float64 `toml:"alpha"`
	} `toml:"node"`

	Edge struct {
		Color        string  `toml:"color"`
		Size         float64 `toml:"size"`
		Alpha        float64 `toml:"alpha"`
		GreatCircles bool    `toml:"great_circles"`
		ArrowSize    float64 `toml:"arrow_size"`
	} `toml:"edge"`

	Label struct {
		Color   string  `toml:"color"`
		Size    float64 `toml:"size"`
		OffsetY float64 `toml:"offset_y"`
	} `toml:"label"`

	Attrs struct {
		Lon       string `toml:"lon"`
		Lat       string `toml:"lat"`
		Group     string `toml:"group"`
		RingGroup string `toml:"ring_group"`
		Weight    string `toml:"weight"`
	} `toml:"attrs"`
}

// loadTheme parses the theme file at path. Unknown keys are rejected so a
// typo in a theme does not silently fall back to defaults.
func loadTheme(path string) (*Theme, error) {
	var th Theme
	md, err := toml.DecodeFile(path, &th)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "cannot parse theme %q", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"theme %q has unknown key %q", path, undecoded[0].String())
	}
	return &th, nil
}
