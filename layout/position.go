package layout

import "github.com/strataui/layout/container"

// positionChildren is the Positioner (C10), grounded on position_children
// in calc.rs: it distributes free main-axis space per justify_content,
// lets a declared column_gap/row_gap raise the computed inter-child
// margin to a floor (recomputing the leading/trailing half-gap for
// SpaceEvenly so interior gaps still honor the declared minimum), walks
// relative-flow children assigning calculated_x/calculated_y and
// resetting the running cursor at each wrap-row/column boundary, then
// positions Absolute children against relativeSize (or pins them at the
// origin when no Relative ancestor exists) and Fixed children against
// the root viewport.
func positionChildren(ctx *calcContext, c *container.Container, relativeSize relSize) {
	containerWidth := c.CalculatedWidth
	containerHeight := c.CalculatedHeight

	columns := float32(columnCount(c))
	rows := float32(rowCount(c))

	justify := container.JustifyStart
	if c.JustifyContent != nil {
		justify = *c.JustifyContent
	}

	var remainderWidth, remainderHeight float32
	var childHorizontalOffset, childVerticalOffset float32
	var horizontalMargin, verticalMargin float32
	var hasHMargin, hasVMargin bool

	switch justify {
	case container.JustifyStart:
		switch c.Direction {
		case container.DirectionRow:
			remainderWidth = containerWidth - containedCalculatedWidth(c)
		default:
			remainderHeight = containerHeight - containedCalculatedHeight(c)
		}
	case container.JustifyCenter:
		switch c.Direction {
		case container.DirectionRow:
			remainderWidth = containerWidth - containedCalculatedWidth(c)
			childHorizontalOffset = remainderWidth / 2
		default:
			remainderHeight = containerHeight - containedCalculatedHeight(c)
			childVerticalOffset = remainderHeight / 2
		}
	case container.JustifyEnd:
		switch c.Direction {
		case container.DirectionRow:
			remainderWidth = containerWidth - containedCalculatedWidth(c)
			childHorizontalOffset = remainderWidth
		default:
			remainderHeight = containerHeight - containedCalculatedHeight(c)
			childVerticalOffset = remainderHeight
		}
	case container.JustifySpaceBetween:
		switch c.Direction {
		case container.DirectionRow:
			remainderWidth = containerWidth - containedCalculatedWidth(c)
			if columns > 1 {
				horizontalMargin = remainderWidth / (columns - 1)
				hasHMargin = true
			}
		default:
			remainderHeight = containerHeight - containedCalculatedHeight(c)
			if rows > 1 {
				verticalMargin = remainderHeight / (rows - 1)
				hasVMargin = true
			}
		}
	case container.JustifySpaceEvenly:
		switch c.Direction {
		case container.DirectionRow:
			remainderWidth = containerWidth - containedCalculatedWidth(c)
			horizontalMargin = remainderWidth / (columns + 1)
			hasHMargin = true
		default:
			remainderHeight = containerHeight - containedCalculatedHeight(c)
			verticalMargin = remainderHeight / (rows + 1)
			hasVMargin = true
		}
	}

	firstHorizontalMargin, hasFirstHMargin := horizontalMargin, hasHMargin
	firstVerticalMargin, hasFirstVMargin := verticalMargin, hasVMargin

	if c.ColumnGap != nil {
		gapX := c.ColumnGap.ResolveNonNegative(containerWidth, ctx.rootWidth, ctx.rootHeight)
		if hasHMargin {
			if gapX > horizontalMargin {
				horizontalMargin = gapX
				if justify == container.JustifySpaceEvenly {
					firstHorizontalMargin = (gapX*-(columns-1) + remainderWidth) / 2
					hasFirstHMargin = true
				}
			}
		} else {
			horizontalMargin = gapX
			hasHMargin = true
		}
	}
	if c.RowGap != nil {
		gapY := c.RowGap.ResolveNonNegative(containerHeight, ctx.rootWidth, ctx.rootHeight)
		if hasVMargin {
			if gapY > verticalMargin {
				verticalMargin = gapY
				if justify == container.JustifySpaceEvenly {
					firstVerticalMargin = (gapY*-(rows-1) + remainderHeight) / 2
					hasFirstVMargin = true
				}
			}
		} else {
			verticalMargin = gapY
			hasVMargin = true
		}
	}

	if childHorizontalOffset > 0 {
		v := childHorizontalOffset
		c.InternalPaddingLeft = &v
	}
	if childVerticalOffset > 0 {
		v := childVerticalOffset
		c.InternalPaddingTop = &v
	}

	x, y := float32(0), float32(0)
	maxWidth, maxHeight := float32(0), float32(0)
	idx := 0

	for _, el := range c.RelativePositionedChildren() {
		el.InternalMarginLeft = nil
		el.InternalMarginTop = nil

		width := el.BoundingCalculatedWidth()
		height := el.BoundingCalculatedHeight()
		pos := el.CalculatedPosition

		// col/row drive the margin distribution below: a wrapped child
		// uses its real grid coordinate, but a non-wrapping parent never
		// assigns one (CalculatedPosition stays Default for every
		// child), so it falls back to its position in the flattened
		// flow — the single implicit row/column every non-wrapping
		// container's children belong to.
		col, row := pos.Col, pos.Row
		if !pos.Wrapped {
			if c.Direction == container.DirectionRow {
				col, row = idx, 0
			} else {
				col, row = 0, idx
			}
		}

		if justify == container.JustifySpaceEvenly || col > 0 {
			hmargin, has := horizontalMargin, hasHMargin
			if col == 0 {
				hmargin, has = firstHorizontalMargin, hasFirstHMargin
			}
			if has {
				if c.Direction == container.DirectionRow || row == 0 {
					x += hmargin
				}
				v := hmargin
				el.InternalMarginLeft = &v
			}
		}
		if justify == container.JustifySpaceEvenly || row > 0 {
			vmargin, has := verticalMargin, hasVMargin
			if row == 0 {
				vmargin, has = firstVerticalMargin, hasFirstVMargin
			}
			if has {
				if c.Direction == container.DirectionColumn || col == 0 {
					y += vmargin
				}
				v := vmargin
				el.InternalMarginTop = &v
			}
		}

		el.CalculatedX = x
		el.CalculatedY = y

		switch c.Direction {
		case container.DirectionRow:
			if pos.Wrapped && pos.Col == 0 {
				x = 0
				if justify == container.JustifySpaceEvenly && hasHMargin {
					x = horizontalMargin
				}
				y += maxHeight
				maxHeight = 0
				el.CalculatedX = x
				el.CalculatedY = y
			}
			x += width
		default:
			if pos.Wrapped && pos.Row == 0 {
				y = 0
				if justify == container.JustifySpaceEvenly && hasVMargin {
					y = verticalMargin
				}
				x += maxWidth
				maxWidth = 0
				el.CalculatedX = x
				el.CalculatedY = y
			}
			y += height
		}

		if height > maxHeight {
			maxHeight = height
		}
		if width > maxWidth {
			maxWidth = width
		}
		idx++
	}

	for _, el := range c.AbsolutePositionedChildren() {
		if relativeSize.Has {
			w, h := relativeSize.Width, relativeSize.Height
			hasX, hasY := false, false
			if el.Left != nil {
				el.CalculatedX = el.Left.Resolve(w, ctx.rootWidth, ctx.rootHeight)
				hasX = true
			}
			if el.Right != nil {
				offset := el.Right.Resolve(w, ctx.rootWidth, ctx.rootHeight)
				el.CalculatedX = w - offset - el.BoundingCalculatedWidth()
				hasX = true
			}
			if el.Top != nil {
				el.CalculatedY = el.Top.Resolve(h, ctx.rootWidth, ctx.rootHeight)
				hasY = true
			}
			if el.Bottom != nil {
				offset := el.Bottom.Resolve(h, ctx.rootWidth, ctx.rootHeight)
				el.CalculatedY = h - offset - el.BoundingCalculatedHeight()
				hasY = true
			}
			if !hasX {
				el.CalculatedX = 0
			}
			if !hasY {
				el.CalculatedY = 0
			}
		} else {
			el.CalculatedX = 0
			el.CalculatedY = 0
		}
	}

	for _, el := range c.FixedPositionedChildren() {
		w, h := ctx.rootWidth, ctx.rootHeight
		if el.Left != nil {
			el.CalculatedX = el.Left.Resolve(w, ctx.rootWidth, ctx.rootHeight)
		}
		if el.Right != nil {
			offset := el.Right.Resolve(w, ctx.rootWidth, ctx.rootHeight)
			el.CalculatedX = w - offset - el.BoundingCalculatedWidth()
		}
		if el.Top != nil {
			el.CalculatedY = el.Top.Resolve(h, ctx.rootWidth, ctx.rootHeight)
		}
		if el.Bottom != nil {
			offset := el.Bottom.Resolve(h, ctx.rootWidth, ctx.rootHeight)
			el.CalculatedY = h - offset - el.BoundingCalculatedHeight()
		}
	}
}
