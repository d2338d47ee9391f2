package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

var textColor = rl.NewColor(21, 128, 61, 255)

// Debug holds the viewer overlays: an FPS counter and a summary of the
// current cactus, both drawn top-right. All overlays are off by default.
type Debug struct {
	ShowFPS     bool
	ShowStats   bool
	frameCount  uint32
	lastFpsText string
	statsLines  []string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowStats sets whether the cactus summary is drawn under the FPS counter.
func (d *Debug) SetShowStats(show bool) {
	d.ShowStats = show
}

// SetStats replaces the summary lines. Call when the cactus is regenerated.
func (d *Debug) SetStats(lines ...string) {
	d.statsLines = append(d.statsLines[:0], lines...)
}

// Draw renders any enabled overlays. Call after scene and terminal in the draw loop.
func (d *Debug) Draw() {
	d.frameCount++
	if d.ShowFPS && (d.lastFpsText == "" || d.frameCount%updateInterval == 0) {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	draw := func(text string) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, textColor)
		y += lineHeight
	}
	if d.ShowFPS {
		draw(d.lastFpsText)
	}
	if d.ShowStats {
		for _, line := range d.statsLines {
			draw(line)
		}
	}
}
