// Package config reads the demo's TOML configuration: window, logging,
// the UI style and the map backdrop.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/OpticalFlyer/overlay/backdrop"
	"github.com/OpticalFlyer/overlay/proj"
	"github.com/OpticalFlyer/overlay/ui"
)

// Config is the root of the configuration file.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Log      LogConfig      `toml:"log"`
	View     ViewConfig     `toml:"view"`
	Style    StyleConfig    `toml:"style"`
	Backdrop BackdropConfig `toml:"backdrop"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type LogConfig struct {
	// Verbose enables debug records from the UI.
	Verbose bool `toml:"verbose"`
}

// ViewConfig is the initial map view.
type ViewConfig struct {
	Lat  float64 `toml:"lat"`
	Lon  float64 `toml:"lon"`
	Zoom int     `toml:"zoom"`
}

// Color is an RGBA quadruple with straight alpha.
type Color [4]uint8

// NRGBA converts c to a colour value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func colorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

type StyleConfig struct {
	FontSize     float64 `toml:"font_size"`
	ToolTipDelay float64 `toml:"tooltip_delay"` // seconds

	Foreground             Color `toml:"foreground"`
	ToggleOff              Color `toml:"toggle_off"`
	Background             Color `toml:"background"`
	Border                 Color `toml:"border"`
	WindowBackground       Color `toml:"window_background"`
	CompactGroupBackground Color `toml:"compact_group_background"`
	MainBorder             Color `toml:"main_border"`
	FocusBorder            Color `toml:"focus_border"`
	FrameFocusBorder       Color `toml:"frame_focus_border"`
	FrameActiveBorder      Color `toml:"frame_active_border"`
	TitleBackground        Color `toml:"title_background"`
	ToolTipBackground      Color `toml:"tooltip_background"`
	MenuBorder             Color `toml:"menu_border"`
}

// BackdropConfig names the shapefile drawn under the UI. An empty path
// draws no backdrop.
type BackdropConfig struct {
	Path        string  `toml:"path"`
	CRS         string  `toml:"crs"` // EPSG:4326 or EPSG:3857
	Fill        Color   `toml:"fill"`
	Stroke      Color   `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`
}

// Default returns a configuration that works without a file.
func Default() Config {
	st := ui.DefaultStyle()
	return Config{
		Window: WindowConfig{Width: 800, Height: 600, Title: "Overlay"},
		View:   ViewConfig{Lat: 39.8333, Lon: -98.5833, Zoom: 4},
		Style: StyleConfig{
			FontSize:               st.Font.Size,
			ToolTipDelay:           st.ToolTipDelay,
			Foreground:             colorOf(st.Foreground),
			ToggleOff:              colorOf(st.ToggleOff),
			Background:             colorOf(st.Background),
			Border:                 colorOf(st.Border),
			WindowBackground:       colorOf(st.WindowBackground),
			CompactGroupBackground: colorOf(st.CompactGroupBackground),
			MainBorder:             colorOf(st.MainBorder),
			FocusBorder:            colorOf(st.FocusBorder),
			FrameFocusBorder:       colorOf(st.FrameFocusBorder),
			FrameActiveBorder:      colorOf(st.FrameActiveBorder),
			TitleBackground:        colorOf(st.TitleBackground),
			ToolTipBackground:      colorOf(st.ToolTipBackground),
			MenuBorder:             colorOf(st.MenuBorder),
		},
		Backdrop: BackdropConfig{
			CRS:         "EPSG:4326",
			Fill:        Color{210, 220, 200, 255},
			Stroke:      Color{90, 100, 90, 255},
			StrokeWidth: 1,
		},
	}
}

// Load reads the file at path over the defaults. A missing file yields
// the defaults; keys the configuration does not know are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r into cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return err
	}
	return cfg.Validate()
}

// Write encodes cfg as TOML.
func (cfg Config) Write(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(cfg)
}

// Validate reports every out-of-range value.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height))
	}
	if cfg.View.Zoom < 0 || cfg.View.Zoom > proj.MaxZoom {
		errs = append(errs, fmt.Errorf("zoom %d out of range [0, %d]", cfg.View.Zoom, proj.MaxZoom))
	}
	if cfg.View.Lat < -90 || cfg.View.Lat > 90 || cfg.View.Lon < -180 || cfg.View.Lon > 180 {
		errs = append(errs, fmt.Errorf("view center %v,%v is not a coordinate", cfg.View.Lat, cfg.View.Lon))
	}
	if cfg.Style.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font size %v must be positive", cfg.Style.FontSize))
	}
	if cfg.Style.ToolTipDelay < 0 {
		errs = append(errs, fmt.Errorf("tooltip delay %v is negative", cfg.Style.ToolTipDelay))
	}
	if cfg.Backdrop.StrokeWidth < 0 {
		errs = append(errs, fmt.Errorf("backdrop stroke width %v is negative", cfg.Backdrop.StrokeWidth))
	}
	if _, err := backdrop.ParseCRS(cfg.Backdrop.CRS); err != nil {
		errs = append(errs, fmt.Errorf("backdrop: %w", err))
	}
	return errors.Join(errs...)
}

// UIStyle converts the style section.
func (cfg Config) UIStyle() ui.Style {
	sc := cfg.Style
	st := ui.DefaultStyle()
	st.Font.Size = sc.FontSize
	st.BoldFont.Size = sc.FontSize
	st.ToolTipDelay = sc.ToolTipDelay
	st.Foreground = sc.Foreground.NRGBA()
	st.ToggleOff = sc.ToggleOff.NRGBA()
	st.Background = sc.Background.NRGBA()
	st.Border = sc.Border.NRGBA()
	st.WindowBackground = sc.WindowBackground.NRGBA()
	st.CompactGroupBackground = sc.CompactGroupBackground.NRGBA()
	st.MainBorder = sc.MainBorder.NRGBA()
	st.FocusBorder = sc.FocusBorder.NRGBA()
	st.FrameFocusBorder = sc.FrameFocusBorder.NRGBA()
	st.FrameActiveBorder = sc.FrameActiveBorder.NRGBA()
	st.TitleBackground = sc.TitleBackground.NRGBA()
	st.ToolTipBackground = sc.ToolTipBackground.NRGBA()
	st.MenuBorder = sc.MenuBorder.NRGBA()
	return st
}
