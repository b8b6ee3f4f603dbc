package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/overlay/backdrop"
	"github.com/OpticalFlyer/overlay/config"
	"github.com/OpticalFlyer/overlay/host"
	"github.com/OpticalFlyer/overlay/ui"
)

// fillColors are the fill choices offered in the layer panel.
var fillColors = map[string]color.NRGBA{
	"Sand":  {230, 215, 170, 255},
	"Grass": {170, 210, 150, 255},
	"Slate": {150, 165, 185, 255},
}

// Demo implements ebiten.Game: a shapefile backdrop with the widget
// overlay on top.
type Demo struct {
	overlay *host.Overlay
	ctl     *ui.Controller
	view    *backdrop.View
	layer   *backdrop.Layer
	shapes  []backdrop.Shape
	cfg     config.Config

	debugMode   bool
	fill        color.Color
	outline     bool
	strokeWidth float64

	// Mouse panning state
	isDragging bool
	lastMouseX int
	lastMouseY int

	lastZoomTime float64

	status    *ui.Label
	menu      *ui.PopupMenu
	menuX     float64
	menuY     float64
	gotoField *ui.TextField
}

func (d *Demo) Update() error {
	// UI first, so that the map only sees what the widgets left
	if err := d.overlay.Update(); err != nil {
		return err
	}
	in := d.overlay.Input()

	for _, k := range in.HostKeys() {
		switch k {
		case ebiten.KeyF1:
			d.debugMode = !d.debugMode
		case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
			d.view.ZoomIn()
		case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
			d.view.ZoomOut()
		case ebiten.KeyArrowLeft:
			d.view.Pan(backdrop.PanLeft)
		case ebiten.KeyArrowRight:
			d.view.Pan(backdrop.PanRight)
		case ebiten.KeyArrowUp:
			d.view.Pan(backdrop.PanUp)
		case ebiten.KeyArrowDown:
			d.view.Pan(backdrop.PanDown)
		}
	}

	if d.isDragging {
		x, y := ebiten.CursorPosition()
		if dx, dy := float64(x-d.lastMouseX), float64(y-d.lastMouseY); dx != 0 || dy != 0 {
			d.view.PanBy(dx, dy)
		}
		d.lastMouseX, d.lastMouseY = x, y
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			d.isDragging = false
		}
	}

	if !d.overlay.IsInteractingWithUI() {
		now := float64(time.Now().UnixNano()) / 1e9
		_, wheelY := ebiten.Wheel()
		if wheelY != 0 && now-d.lastZoomTime > 0.1 {
			x, y := ebiten.CursorPosition()
			d.view.ZoomAtPoint(wheelY > 0, float64(x), float64(y))
			d.lastZoomTime = now
		}

		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			d.isDragging = true
			d.lastMouseX, d.lastMouseY = ebiten.CursorPosition()
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			x, y := ebiten.CursorPosition()
			d.menuX, d.menuY = float64(x), float64(y)
			d.menu.SetItemEnabled("zoom-in", d.view.Zoom < backdrop.MaxZoomLevel)
			d.menu.SetItemEnabled("zoom-out", d.view.Zoom > 0)
			d.menu.Show(d.menuX, d.menuY)
		}

		if dx, dy := in.TouchDelta(); dx != 0 || dy != 0 {
			d.view.PanBy(dx, dy)
		}
	}

	// pinches never reach the widgets
	if p, ok := in.Pinch(); ok {
		if p.Scale > 1.1 {
			d.view.ZoomAtPoint(true, p.MidX, p.MidY)
		} else if p.Scale < 0.9 {
			d.view.ZoomAtPoint(false, p.MidX, p.MidY)
		}
	}

	d.updateStatus()
	return nil
}

func (d *Demo) updateStatus() {
	s := fmt.Sprintf("Zoom %d   %.4f, %.4f", d.view.Zoom, d.view.CenterLat, d.view.CenterLon)
	if s != d.status.Text() {
		d.status.SetText(s)
	}
}

func (d *Demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{235, 240, 245, 255})
	d.drawBackdrop(screen)

	d.overlay.Draw(screen)

	if d.debugMode {
		redColor := color.RGBA{R: 255, A: 255}
		strokeWidth := float32(1.0)

		centerX := float32(d.view.ScreenWidth / 2)
		centerY := float32(d.view.ScreenHeight / 2)
		crosshairSize := float32(10.0)

		vector.StrokeLine(screen,
			centerX-crosshairSize, centerY,
			centerX+crosshairSize, centerY,
			strokeWidth, redColor, false)
		vector.StrokeLine(screen,
			centerX, centerY-crosshairSize,
			centerX, centerY+crosshairSize,
			strokeWidth, redColor, false)

		debugText := fmt.Sprintf("Lat: %.4f\nLon: %.4f\nZoom: %d\nShapes: %d\nHover: %v\nFocus: %v\nTPS: %.1f",
			d.view.CenterLat, d.view.CenterLon, d.view.Zoom, len(d.shapes),
			d.ctl.Hovered() != nil, d.ctl.FocusOwner() != nil, ebiten.ActualTPS())
		ebitenutil.DebugPrint(screen, debugText)
	}
}

func (d *Demo) drawBackdrop(screen *ebiten.Image) {
	if d.layer == nil {
		d.shapes = d.shapes[:0]
		return
	}
	stroke := d.cfg.Backdrop.Stroke.NRGBA()
	d.shapes = d.layer.Project(d.view, d.shapes[:0])
	for _, s := range d.shapes {
		if s.Kind == backdrop.Points {
			for _, part := range s.Parts {
				for _, p := range part {
					vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2+float32(d.strokeWidth), stroke, true)
				}
			}
			continue
		}

		var path vector.Path
		for _, part := range s.Parts {
			if len(part) == 0 {
				continue
			}
			path.MoveTo(float32(part[0].X), float32(part[0].Y))
			for _, p := range part[1:] {
				path.LineTo(float32(p.X), float32(p.Y))
			}
			if s.Kind == backdrop.Polygon {
				path.Close()
			}
		}
		if s.Kind == backdrop.Polygon && d.fill != nil {
			host.FillPath(screen, &path, d.fill, ebiten.FillRuleEvenOdd)
		}
		if (d.outline || s.Kind == backdrop.Line) && d.strokeWidth > 0 {
			host.StrokePath(screen, &path, d.strokeWidth, stroke)
		}
	}
}

func (d *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.view.ScreenWidth = outsideWidth
	d.view.ScreenHeight = outsideHeight
	d.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// handleAction receives every action no component handled itself.
func (d *Demo) handleAction(ev ui.ActionEvent) {
	switch cmd := ev.Command; {
	case cmd == "zoom-in":
		d.view.ZoomAtPoint(true, d.menuX, d.menuY)
	case cmd == "zoom-out":
		d.view.ZoomAtPoint(false, d.menuX, d.menuY)
	case cmd == "center":
		d.view.PanBy(float64(d.view.ScreenWidth)/2-d.menuX, float64(d.view.ScreenHeight)/2-d.menuY)
	case cmd == "home":
		d.view.CenterLat, d.view.CenterLon, d.view.Zoom = d.cfg.View.Lat, d.cfg.View.Lon, d.cfg.View.Zoom
	case cmd == "+":
		d.view.ZoomIn()
	case cmd == "-":
		d.view.ZoomOut()
	case cmd == "debug", cmd == "Debug":
		d.debugMode = !d.debugMode
	case cmd == "Normal":
		d.debugMode = false
	case cmd == "outline":
		d.outline = !d.outline
	case cmd == "stroke##valueChanged":
		d.strokeWidth = float64(ev.Source.(*ui.Slider).Value()) / 2
	case strings.HasPrefix(cmd, "fill:"):
		d.fill = nil
		if c, ok := fillColors[strings.TrimPrefix(cmd, "fill:")]; ok {
			d.fill = c
		}
	case cmd == "goto##enterKeyPressed":
		if err := d.goTo(d.gotoField.Text()); err != nil {
			d.ctl.Logger().Warn("goto", "input", d.gotoField.Text(), "err", err)
			return
		}
		d.gotoField.SetText("")
	default:
		d.ctl.Logger().Debug("unhandled action", "command", cmd)
	}
}

// goTo centers the view on "lat, lon".
func (d *Demo) goTo(s string) error {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want \"lat, lon\", got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return fmt.Errorf("longitude: %w", err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%v, %v is not a coordinate", lat, lon)
	}
	d.view.CenterLat, d.view.CenterLon = lat, lon
	return nil
}

// buildUI creates the layer frame and the map context menu.
func (d *Demo) buildUI() {
	ctl := d.ctl

	frame := ui.NewFrame(ctl, "Layers", nil)
	frame.SetDockable(true)
	frame.SetResizable(true)

	fill := ui.NewChoice(ctl, "fill:", "Sand", "Grass", "Slate")
	fill.SetAllowNone(true)
	fill.SetCompact(false)
	fill.SelectItem("Sand")
	fill.SetCycleChar('f')
	fill.SetToolTipText("Polygon fill colour")
	frame.Add(fill, ui.North)

	outline := ui.NewCheckBox(ctl, "Outline", nil)
	outline.SetActionCommand("outline")
	outline.SetSelected(d.outline)
	frame.Add(outline, ui.North)

	stroke := ui.NewSlider(ctl, "stroke")
	stroke.SetRange(0, 10)
	stroke.SetValue(int(d.strokeWidth * 2))
	stroke.SetToolTipText("Outline width")
	frame.Add(stroke, ui.North)

	home := ui.NewButton(ctl, "Home")
	home.SetActionCommand("home")
	home.SetHotKey(ui.KeyH, ui.ModControl)
	home.SetToolTipText("Back to the start view (Ctrl+H)")
	zoomOut, zoomIn := ui.NewButton(ctl, "-"), ui.NewButton(ctl, "+")
	zoomOut.SetToolTipText("Zoom out")
	zoomIn.SetToolTipText("Zoom in")
	home.SetHint(ui.Stretch)
	frame.Add(ui.NewCompactGroup(ctl, 0, zoomOut, home, zoomIn), ui.North)

	normal := ui.NewToggleButton(ctl, "Normal", nil)
	debug := ui.NewToggleButton(ctl, "Debug", nil)
	ui.NewButtonGroup(normal, debug)
	frame.Add(ui.NewCompactGroup(ctl, 0, normal, debug), ui.North)

	d.gotoField = ui.NewTextField(ctl, "goto")
	d.gotoField.SetEmptyText("lat, lon")
	d.gotoField.SetHotKey(ui.KeyL, ui.ModControl)
	d.gotoField.SetToolTipText("Type a position and press Enter (Ctrl+L)")
	frame.Add(d.gotoField, ui.North)

	d.status = ui.NewLabel(ctl, "")
	frame.Add(d.status, ui.South)

	frame.Pack()
	frame.SetLocation(10, 10)
	ctl.AddWindow(frame, -1)

	d.menu = ui.NewPopupMenu(ctl)
	d.menu.AddItem("Zoom in here", "zoom-in")
	d.menu.AddItem("Zoom out here", "zoom-out")
	d.menu.AddSeparator("")
	d.menu.AddItem("Center here", "center")
	d.menu.AddItem("Toggle debug", "debug")
}

func main() {
	configPath := flag.String("config", "overlay.toml", "configuration file")
	verbose := flag.Bool("verbose", false, "log UI debug records")
	dumpConfig := flag.Bool("dump-config", false, "print the effective configuration and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *dumpConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	ui.SetVerbose(cfg.Log.Verbose || *verbose)

	fonts, err := host.NewFonts()
	if err != nil {
		log.Fatal(err)
	}

	d := &Demo{
		cfg:          cfg,
		view:         backdrop.NewView(cfg.Window.Width, cfg.Window.Height, cfg.View.Lat, cfg.View.Lon, cfg.View.Zoom),
		fill:         fillColors["Sand"],
		outline:      true,
		strokeWidth:  cfg.Backdrop.StrokeWidth,
		lastZoomTime: float64(time.Now().UnixNano()) / 1e9,
	}
	d.ctl = ui.NewController(float64(cfg.Window.Width), float64(cfg.Window.Height),
		ui.WithMeasurer(fonts),
		ui.WithStyle(cfg.UIStyle()),
		ui.WithActionHandler(d.handleAction),
	)
	d.overlay = host.NewOverlay(d.ctl, fonts)
	d.buildUI()

	if cfg.Backdrop.Path != "" {
		crs, _ := backdrop.ParseCRS(cfg.Backdrop.CRS) // validated by config.Load
		layer, err := backdrop.Load(cfg.Backdrop.Path, crs)
		if err != nil {
			slog.Warn("no backdrop", "err", err)
		} else {
			d.layer = layer
			slog.Info("backdrop loaded", "path", cfg.Backdrop.Path, "features", len(layer.Features))
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(d); err != nil {
		log.Fatal(err)
	}
}
