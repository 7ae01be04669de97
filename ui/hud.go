package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD displays for one frame.
type HUDData struct {
	FPS         float64
	FrameTime   time.Duration // average frame work
	P95         time.Duration
	Stars       int
	Visible     int
	Particles   int
	Elapsed     float64
	PixelRatio  float64
	ShadePct    float64
	TrailOn     bool
	SpawnChance float64
}

// HUDActions reports what the user asked for through the HUD this frame.
type HUDActions struct {
	ToggleTrail bool
	Burst       bool
	SpawnChance float64 // new value; equals HUDData.SpawnChance when untouched
}

// HUD renders the debug heads-up display.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
	height   int32 // as last drawn
	visible  bool
}

// NewHUD creates a new HUD at the top-left corner.
func NewHUD(visible bool) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        10,
		y:        10,
		width:    260,
		visible:  visible,
	}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// IsVisible returns whether the HUD is shown.
func (h *HUD) IsVisible() bool {
	return h.visible
}

// Contains reports whether a screen point falls on the HUD panel.
func (h *HUD) Contains(x, y float32) bool {
	return x >= float32(h.x) && x < float32(h.x+h.width) &&
		y >= float32(h.y) && y < float32(h.y+h.height)
}

// Draw renders the HUD and returns the user's actions.
func (h *HUD) Draw(data HUDData) HUDActions {
	actions := HUDActions{SpawnChance: data.SpawnChance}
	if !h.visible {
		return actions
	}

	r := h.renderer
	pad := r.Theme.Padding
	lines := statLines(data)
	h.height = int32(len(lines))*r.Theme.LineHeight + r.Theme.LineHeight*2 + 110
	r.DrawPanel(h.x, h.y, h.width, h.height)

	x := h.x + pad
	y := r.DrawSectionHeader(x, h.y+pad, "Starfield")
	for _, l := range lines {
		y = r.DrawLabelValue(x, y, l.label, l.value)
	}
	y = r.DrawBar(x, y, "shade", float32(data.ShadePct/100), h.width-pad*2)
	y += 6

	inner := float32(h.width - pad*2)
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: inner/2 - 4, Height: 24}, toggleText(data.TrailOn, "Trail off", "Trail on")) {
		actions.ToggleTrail = true
	}
	if gui.Button(rl.Rectangle{X: float32(x) + inner/2 + 4, Y: float32(y), Width: inner/2 - 4, Height: 24}, "Burst") {
		actions.Burst = true
	}
	y += 32

	rl.DrawText("Trail spawn chance", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight
	chance := gui.SliderBar(
		rl.Rectangle{X: float32(x) + 20, Y: float32(y), Width: inner - 70, Height: 16},
		"0", "1",
		float32(data.SpawnChance), 0, 1,
	)
	rl.DrawText(fmt.Sprintf("%.2f", chance), x+int32(inner)-40, y+2, r.Theme.FontSize, r.Theme.ValueColor)
	if chance != float32(data.SpawnChance) {
		actions.SpawnChance = float64(chance)
	}

	return actions
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	if !h.visible {
		return
	}
	rl.DrawText("F1 hud | click burst | F12 screenshot", 10, screenHeight-22, 12, rl.Gray)
}

type statLine struct {
	label, value string
}

func statLines(d HUDData) []statLine {
	return []statLine{
		{"FPS", fmt.Sprintf("%.0f", d.FPS)},
		{"frame", fmt.Sprintf("%s (p95 %s)", d.FrameTime.Round(time.Microsecond), d.P95.Round(time.Microsecond))},
		{"stars", fmt.Sprintf("%d (%d visible)", d.Stars, d.Visible)},
		{"particles", fmt.Sprintf("%d", d.Particles)},
		{"elapsed", fmt.Sprintf("%.1fs", d.Elapsed)},
		{"pixel ratio", fmt.Sprintf("%.2g", d.PixelRatio)},
	}
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
