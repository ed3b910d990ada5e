package layout

import (
	"github.com/chewxy/math32"
	"github.com/strataui/layout/container"
)

func isTableFamily(e container.Element) bool {
	return e == container.ElementTable || e.IsTableCell() || e.IsTableRow() || e.IsTableSection()
}

// resizeChildren is the Scrollbar Reconciler (C9) plus the
// Expand/Wrap/Squash resize reaction to the Overflow Resolver's
// placement pass: it first checks whether a scrollbar reservation
// toggled (which invalidates the sized pass on that axis and forces an
// immediate re-split), then — if content still over/under-fills the
// container — either expands the container to its content (Expand) or
// re-splits remaining unsized children (Wrap/Squash). Table elements
// size their own cells in calcTable and are never touched here.
func resizeChildren(ctx *calcContext, c *container.Container) bool {
	if isTableFamily(c.Element) {
		return false
	}
	children := c.RelativePositionedChildren()
	if len(children) == 0 {
		return false
	}

	width := c.CalculatedWidthMinusBorders()
	height := c.CalculatedHeightMinusBorders()
	containedW := containedCalculatedWidth(c)
	containedH := containedCalculatedHeight(c)

	if checkScrollbarXChanged(ctx, c, &width, height, containedH) {
		evenlyDistributeChildrenWidth(ctx, c, width)
		return true
	}
	if checkScrollbarYChanged(ctx, c, width, &height, containedW) {
		evenlyDistributeChildrenHeight(ctx, c, height)
		return true
	}

	resized := false
	eps := ctx.cfg.Epsilon

	if width < containedW-eps {
		switch c.OverflowX {
		case container.OverflowAuto, container.OverflowScroll, container.OverflowHidden:
		case container.OverflowExpand:
			if c.Width == nil && math32.Abs(c.CalculatedWidth-containedW) > eps {
				c.CalculatedWidth = math32.Max(0, containedW)
				resized = true
			}
		case container.OverflowWrap, container.OverflowSquash:
			if evenlyDistributeChildrenWidth(ctx, c, width) {
				resized = true
			}
		}
	}

	if height < containedH-eps {
		switch c.OverflowY {
		case container.OverflowAuto, container.OverflowScroll, container.OverflowHidden:
		case container.OverflowExpand:
			if c.Height == nil && math32.Abs(c.CalculatedHeight-containedH) > eps {
				c.CalculatedHeight = math32.Max(0, containedH)
				resized = true
			}
		case container.OverflowWrap, container.OverflowSquash:
			if evenlyDistributeChildrenHeight(ctx, c, height) {
				resized = true
			}
		}
	}

	return resized
}

func checkScrollbarXChanged(ctx *calcContext, c *container.Container, containerWidth *float32, containerHeight, containedH float32) bool {
	needsScrollbar := c.OverflowY == container.OverflowScroll ||
		(c.OverflowY == container.OverflowAuto && containedH > containerHeight)

	if needsScrollbar {
		if c.ScrollbarRight == 0 {
			size := ctx.cfg.ScrollbarSize
			c.ScrollbarRight = size
			c.CalculatedWidth = math32.Max(0, c.CalculatedWidth-size)
			*containerWidth = c.CalculatedWidthMinusBorders()
			return true
		}
		return false
	}
	if c.ScrollbarRight > 0 {
		size := c.ScrollbarRight
		c.ScrollbarRight = 0
		c.CalculatedWidth = math32.Max(0, c.CalculatedWidth+size)
		*containerWidth = c.CalculatedWidthMinusBorders()
		return true
	}
	return false
}

func checkScrollbarYChanged(ctx *calcContext, c *container.Container, containerWidth float32, containerHeight *float32, containedW float32) bool {
	needsScrollbar := c.OverflowX == container.OverflowScroll ||
		(c.OverflowX == container.OverflowAuto && containedW > containerWidth)

	if needsScrollbar {
		if c.ScrollbarBottom == 0 {
			size := ctx.cfg.ScrollbarSize
			c.ScrollbarBottom = size
			c.CalculatedHeight = math32.Max(0, c.CalculatedHeight-size)
			*containerHeight = c.CalculatedHeightMinusBorders()
			return true
		}
		return false
	}
	if c.ScrollbarBottom > 0 {
		size := c.ScrollbarBottom
		c.ScrollbarBottom = 0
		c.CalculatedHeight = math32.Max(0, c.CalculatedHeight+size)
		*containerHeight = c.CalculatedHeightMinusBorders()
		return true
	}
	return false
}

// evenlyDistributeChildrenWidth re-splits the given width across
// unsized children only — declared widths are preserved — after a
// scrollbar toggle or an Expand/Wrap/Squash resize.
func evenlyDistributeChildrenWidth(ctx *calcContext, c *container.Container, width float32) bool {
	resized := false
	containedSized, _ := containedSizedWidth(c, ctx.rootWidth, ctx.rootHeight, false)
	evenlySplit := float32(0)
	if width > containedSized {
		evenlySplit = (width - containedSized) / float32(columnCount(c))
	}

	for _, el := range c.RelativePositionedChildren() {
		if el.Width != nil {
			continue
		}
		elementWidth := math32.Max(0, evenlySplit-el.HorizontalPadding())
		if el.CalculatedWidth == 0 || math32.Abs(el.CalculatedWidth-elementWidth) > ctx.cfg.Epsilon {
			el.CalculatedWidth = elementWidth
			resized = true
		}
		if resizeChildren(ctx, el) {
			resized = true
		}
	}
	return resized
}

// evenlyDistributeChildrenHeight is the vertical analogue, operating
// per wrap-row: each row's contained height is measured, the leftover
// space is split across rows with no intrinsic height, and every
// unsized child in such a row receives the split amount.
func evenlyDistributeChildrenHeight(ctx *calcContext, c *container.Container, height float32) bool {
	resized := false
	children := c.RelativePositionedChildren()
	groups := wrapGroups(children, c.Direction)

	containedSized := float32(0)
	unsizedRows := 0
	rowSized := make([]bool, len(groups))
	for i, group := range groups {
		found := false
		max := float32(0)
		for _, el := range group {
			if h, ok := containedSizedHeight(el, ctx.rootWidth, ctx.rootHeight, true); ok {
				if !found || h > max {
					max = h
				}
				found = true
			}
		}
		if found {
			containedSized += max
			rowSized[i] = true
		} else {
			unsizedRows++
		}
	}

	evenlySplit := float32(0)
	if unsizedRows > 0 && height > containedSized {
		evenlySplit = (height - containedSized) / float32(unsizedRows)
	}

	for i, group := range groups {
		if rowSized[i] {
			continue
		}
		for _, el := range group {
			if el.Height != nil {
				continue
			}
			if el.CalculatedHeight == 0 || math32.Abs(el.CalculatedHeight-evenlySplit) > ctx.cfg.Epsilon {
				el.CalculatedHeight = math32.Max(0, evenlySplit)
				resized = true
			}
			if resizeChildren(ctx, el) {
				resized = true
			}
		}
	}
	return resized
}
