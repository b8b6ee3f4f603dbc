package config

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpticalFlyer/overlay/ui"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefaultMatchesUIStyle(t *testing.T) {
	got := Default().UIStyle()
	want := ui.DefaultStyle()
	pairs := []struct {
		name      string
		got, want color.Color
	}{
		{"foreground", got.Foreground, want.Foreground},
		{"window background", got.WindowBackground, want.WindowBackground},
		{"tooltip background", got.ToolTipBackground, want.ToolTipBackground},
		{"menu border", got.MenuBorder, want.MenuBorder},
	}
	for _, p := range pairs {
		if colorOf(p.got) != colorOf(p.want) {
			t.Errorf("%s: got %v; want %v", p.name, p.got, p.want)
		}
	}
	if got.Font != want.Font || got.ToolTipDelay != want.ToolTipDelay {
		t.Errorf("got font %+v delay %v; want %+v %v", got.Font, got.ToolTipDelay, want.Font, want.ToolTipDelay)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "overlays the defaults",
			input: `
[window]
width = 1024
[style]
font_size = 14
focus_border = [0, 0, 255, 255]
`,
			check: func(t *testing.T, cfg Config) {
				if cfg.Window.Width != 1024 || cfg.Window.Height != 600 {
					t.Errorf("window %dx%d; want 1024x600", cfg.Window.Width, cfg.Window.Height)
				}
				st := cfg.UIStyle()
				if st.Font.Size != 14 || st.BoldFont.Size != 14 {
					t.Errorf("font sizes %v %v; want 14", st.Font.Size, st.BoldFont.Size)
				}
				if got := st.FocusBorder; got != (color.NRGBA{0, 0, 255, 255}) {
					t.Errorf("focus border %v; want blue", got)
				}
			},
		},
		{
			name:  "backdrop and view",
			input: "[view]\nzoom = 7\n[backdrop]\npath = \"states.shp\"\nstroke_width = 2.5\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.View.Zoom != 7 || cfg.Backdrop.Path != "states.shp" || cfg.Backdrop.StrokeWidth != 2.5 {
					t.Errorf("got %+v %+v", cfg.View, cfg.Backdrop)
				}
			},
		},
		{name: "unknown key", input: "[window]\nwidht = 10\n", wantErr: "unknown keys"},
		{name: "colour out of range", input: "[style]\nborder = [0, 0, 300, 255]\n", wantErr: "toml"},
		{name: "bad zoom", input: "[view]\nzoom = 30\n", wantErr: "zoom 30"},
		{name: "negative delay and size", input: "[style]\ntooltip_delay = -1\n[window]\nheight = 0\n", wantErr: "tooltip delay"},
		{name: "unknown crs", input: "[backdrop]\ncrs = \"EPSG:2056\"\n", wantErr: "EPSG:2056"},
		{name: "not toml", input: "[window\n", wantErr: "toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Decode(strings.NewReader(tt.input), &cfg)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("got error %v; want one containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg != Default() {
		t.Error("missing file did not yield the defaults")
	}

	path := filepath.Join(dir, "overlay.toml")
	if err := os.WriteFile(path, []byte("[log]\nverbose = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Log.Verbose {
		t.Error("verbose not read")
	}

	if err := os.WriteFile(path, []byte("verbose = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("got error %v; want one naming %s", err, path)
	}
}

func TestWriteReadsBack(t *testing.T) {
	want := Default()
	want.Backdrop.Path = "coast.shp"
	var buf bytes.Buffer
	if err := want.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := Config{}
	if err := Decode(&buf, &got); err != nil {
		t.Fatalf("Decode: %v\n%s", err, buf.String())
	}
	if got != want {
		t.Errorf("got %+v; want %+v", got, want)
	}
}
