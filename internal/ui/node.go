package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel or label. Class and ID are matched
// against the stylesheet; Bounds is the fallback placement when the style
// gives no left/top.
type Node struct {
	Type   string // "panel" or "label"
	Class  string // e.g. "row" for .row
	ID     string // e.g. "title" for #title
	Bounds rl.Rectangle
	Text   string
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}
