package main

import "github.com/strataui/layout/container"

// resultNode is the output shape printed by `layoutcalc render`: each
// node's calculated position and calculated width/height (not its
// bounding box), not the full declared+calculated Container — a host
// driver reads computed rectangles, not length-expression ASTs.
type resultNode struct {
	Element  string       `json:"element"`
	X        float32      `json:"x"`
	Y        float32      `json:"y"`
	Width    float32      `json:"width"`
	Height   float32      `json:"height"`
	Hidden   bool         `json:"hidden,omitempty"`
	Children []resultNode `json:"children,omitempty"`
}

func toResult(c *container.Container) resultNode {
	r := resultNode{
		Element: c.Element.String(),
		X:       c.CalculatedX,
		Y:       c.CalculatedY,
		Width:   c.CalculatedWidth,
		Height:  c.CalculatedHeight,
		Hidden:  c.Hidden,
	}
	for _, child := range c.Children {
		r.Children = append(r.Children, toResult(child))
	}
	return r
}
