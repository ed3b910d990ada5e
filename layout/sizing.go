package layout

import (
	"github.com/chewxy/math32"
	"github.com/strataui/layout/container"
)

// calcElementSizes is the Sized/Unsized entry point (C4/C5), plus the
// Grid Chunker dispatch (C6): when the container wraps on its main
// axis it partitions elements into wrap groups and runs the sized+
// unsized passes once per group (see grid.go); otherwise it deducts
// the elements' own main-axis padding+margin footprint from the
// running container dimension (the max across elements,
// matching calc_element_sizes in the original) and runs one pass over
// the whole set.
func calcElementSizes(ctx *calcContext, elements []*container.Container, direction container.Direction, overflowX, overflowY container.Overflow, containerWidth, containerHeight float32) {
	if len(elements) == 0 {
		return
	}

	isGrid := overflowX == container.OverflowWrap
	if direction == container.DirectionColumn {
		isGrid = overflowY == container.OverflowWrap
	}

	if isGrid {
		calcElementSizesByRowCol(ctx, elements, direction, containerWidth, containerHeight, func(group []*container.Container, w, h float32) {
			sizeElements(ctx, group, direction, w, h)
		})
		return
	}

	paddingX, paddingY := float32(0), float32(0)
	for _, el := range elements {
		switch direction {
		case container.DirectionRow:
			if fluff := el.PaddingAndMargins(container.DirectionRow); fluff > paddingX {
				paddingX = fluff
			}
		case container.DirectionColumn:
			if fluff := el.PaddingAndMargins(container.DirectionColumn); fluff > paddingY {
				paddingY = fluff
			}
		}
	}

	sizeElements(ctx, elements, direction, containerWidth-paddingX, containerHeight-paddingY)
}

// sizeElements runs the Sized pass (C4) followed by the Unsized pass
// (C5) over a single wrap group (or the whole child set, for a
// non-wrapping parent).
func sizeElements(ctx *calcContext, elements []*container.Container, direction container.Direction, containerWidth, containerHeight float32) {
	remainder := containerWidth
	if direction == container.DirectionColumn {
		remainder = containerHeight
	}

	for _, el := range elements {
		declared := el.Width != nil
		if direction == container.DirectionColumn {
			declared = el.Height != nil
		}
		if !declared {
			continue
		}
		remainder -= calcSizedElementSize(ctx, el, direction, containerWidth, containerHeight)
	}

	var unsized []*container.Container
	for _, el := range elements {
		declared := el.Width != nil
		if direction == container.DirectionColumn {
			declared = el.Height != nil
		}
		if !declared {
			unsized = append(unsized, el)
		}
	}
	if len(unsized) == 0 {
		return
	}

	evenlySplit := remainder / float32(len(unsized))
	for _, el := range unsized {
		sizeUnsizedElement(ctx, el, containerWidth, containerHeight, direction, evenlySplit)
	}
}

// calcSizedElementSize resolves a single declared main-axis length
// (plus, opportunistically, the cross-axis length if also declared)
// and stores both, returning the resolved main-axis size so the caller
// can subtract it from the row/column's remaining budget.
func calcSizedElementSize(ctx *calcContext, el *container.Container, direction container.Direction, containerWidth, containerHeight float32) float32 {
	switch direction {
	case container.DirectionRow:
		crossHeight := containerHeight - el.PaddingAndMargins(container.DirectionColumn)
		width := el.Width.ResolveNonNegative(containerWidth, ctx.rootWidth, ctx.rootHeight)
		height := crossHeight
		if el.Height != nil {
			height = el.Height.ResolveNonNegative(crossHeight, ctx.rootWidth, ctx.rootHeight)
		}
		el.CalculatedWidth = width
		el.CalculatedHeight = math32.Max(0, height)
		return width
	default:
		crossWidth := containerWidth - el.PaddingAndMargins(container.DirectionRow)
		height := el.Height.ResolveNonNegative(containerHeight, ctx.rootWidth, ctx.rootHeight)
		width := crossWidth
		if el.Width != nil {
			width = el.Width.ResolveNonNegative(crossWidth, ctx.rootWidth, ctx.rootHeight)
		}
		el.CalculatedWidth = math32.Max(0, width)
		el.CalculatedHeight = height
		return height
	}
}

// sizeUnsizedElement commits an even-split main-axis size to an
// element lacking a declared main-axis length, and its cross-axis size
// from its own declaration (falling back to the cross inner parent
// dimension). Fixed-positioned elements encountered here (flow
// children of a Fixed-positioned container don't occur in practice,
// but relative-flow iteration never excludes them structurally) get
// zero size — they are laid out later against the root viewport.
func sizeUnsizedElement(ctx *calcContext, el *container.Container, containerWidth, containerHeight float32, direction container.Direction, size float32) {
	if el.Position == container.PositionFixed {
		el.CalculatedWidth = 0
		el.CalculatedHeight = 0
		return
	}

	switch direction {
	case container.DirectionRow:
		crossHeight := containerHeight - el.PaddingAndMargins(container.DirectionColumn)
		height := crossHeight
		if el.Height != nil {
			height = el.Height.ResolveNonNegative(crossHeight, ctx.rootWidth, ctx.rootHeight)
		}
		el.CalculatedHeight = math32.Max(0, height)
		el.CalculatedWidth = math32.Max(0, size)
	default:
		crossWidth := containerWidth - el.PaddingAndMargins(container.DirectionRow)
		width := crossWidth
		if el.Width != nil {
			width = el.Width.ResolveNonNegative(crossWidth, ctx.rootWidth, ctx.rootHeight)
		}
		el.CalculatedWidth = math32.Max(0, width)
		el.CalculatedHeight = math32.Max(0, size)
	}
}
