package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cactus-gen/internal/config"
)

// DefaultCSS styles the parameter panel when no stylesheet file is loaded.
const DefaultCSS = `
.panel { background: #1c1917e0; border: #57534e; width: 300px }
.panel-title { color: #fafaf9; padding: 8; font-size: 20 }
.panel-row { color: #d6d3d1; padding: 8; font-size: 16 }
.panel-hint { color: #a8a29e; padding: 8; font-size: 14 }
`

const (
	panelLeft   = 12
	panelTop    = 12
	panelWidth  = 300
	titleHeight = 34
	rowHeight   = 22
	hintHeight  = 28
)

// Panel lists the live cactus parameters, one row per group, like the
// slider sidebar of the editor. Rows are refreshed from a config snapshot.
type Panel struct {
	panel *Node
	title *Node
	rows  []*Node
	hint  *Node
}

// NewPanel creates a panel styled by .panel, .panel-title, .panel-row and .panel-hint.
func NewPanel() *Panel {
	p := &Panel{
		panel: NewNode("panel", "panel", "", ""),
		title: NewNode("label", "panel-title", "", "Cactus"),
		hint:  NewNode("label", "panel-hint", "", `ESC for terminal, "cmd help" for commands`),
	}
	for i := 0; i < len(Rows(config.Default())); i++ {
		p.rows = append(p.rows, NewNode("label", "panel-row", "", ""))
	}
	y := float32(panelTop)
	place := func(n *Node, h float32) {
		n.Bounds = rl.Rectangle{X: panelLeft, Y: y, Width: panelWidth, Height: h}
		y += h
	}
	place(p.title, titleHeight)
	for _, r := range p.rows {
		place(r, rowHeight)
	}
	place(p.hint, hintHeight)
	p.panel.Bounds = rl.Rectangle{X: panelLeft, Y: panelTop, Width: panelWidth, Height: y - panelTop}
	return p
}

// Rows formats c as the panel's text rows.
func Rows(c config.Cactus) []string {
	return []string{
		fmt.Sprintf("body    h %.0f  w %.0f  ribs %d  seg %d", c.Body.Height, c.Body.Width, c.Body.Ribs, c.Body.Segmentation),
		fmt.Sprintf("spines  density %.0f  length %.0f", c.Spines.Density, c.Spines.Length),
		fmt.Sprintf("flowers %d  size %.0f  var %.0f%%  seed %d", c.Addons.Flowers, c.Addons.FlowerSize, c.Addons.FlowerSizeVariation, c.Addons.Seed),
		fmt.Sprintf("arms    %d  pos %.0f  len %.0f  thick %.0f  seed %d", c.Arms.Count, c.Arms.Position, c.Arms.Length, c.Arms.Thickness, c.Arms.PlacementSeed),
		fmt.Sprintf("pot     size %.0f", c.Addons.PotSize),
	}
}

// Update refreshes the row text from c.
func (p *Panel) Update(c config.Cactus) {
	for i, text := range Rows(c) {
		p.rows[i].Text = text
	}
}

// Nodes returns the panel nodes in draw order.
func (p *Panel) Nodes() []*Node {
	out := []*Node{p.panel, p.title}
	out = append(out, p.rows...)
	return append(out, p.hint)
}
