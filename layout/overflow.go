package layout

import "github.com/strataui/layout/container"

// handleOverflow is the Overflow Resolver (C8): it recurses into every
// relative-flow child first (so wrap decisions are made bottom-up),
// then walks this container's own children in order, assigning wrap
// coordinates by direction and main-axis overflow mode. It finishes by
// calling resizeChildren (C9, scrollbar.go) and positionChildren (C10,
// position.go), returning whether anything shifted so the Fix-Point
// Driver (C11) knows to run another iteration.
//
// relativeSize is the containing block Absolute descendants resolve
// percent offsets against: it is replaced by c's own calculated size
// when c is Position::Relative, and otherwise passed through unchanged,
// matching get_relative_size().or(relative_size) in the original.
func handleOverflow(ctx *calcContext, c *container.Container, relativeSize relSize) bool {
	if !c.IsVisible() {
		return false
	}

	if c.Position == container.PositionRelative {
		relativeSize = relSize{c.CalculatedWidth, c.CalculatedHeight, true}
	}

	shifted := false

	direction := c.Direction
	overflow := c.MainAxisOverflow()
	containerWidth := c.CalculatedWidthMinusBorders()
	containerHeight := c.CalculatedHeightMinusBorders()

	gapX, hasGapX := resolveGap(c.ColumnGap, containerWidth, ctx)
	gapY, hasGapY := resolveGap(c.RowGap, containerHeight, ctx)

	x, y := float32(0), float32(0)
	maxWidth, maxHeight := float32(0), float32(0)
	row, col := 0, 0

	for _, child := range c.RelativePositionedChildren() {
		if handleOverflow(ctx, child, relativeSize) {
			shifted = true
		}
		width := child.CalculatedWidthMinusBorders()
		height := child.CalculatedHeightMinusBorders()

		currentRow, currentCol := row, col

		switch overflow {
		case container.OverflowWrap:
			switch direction {
			case container.DirectionRow:
				if x > 0 && x+width > containerWidth {
					x = 0
					y += maxHeight
					maxHeight = 0
					row++
					col = 0
					currentRow, currentCol = row, col
				}
				x += width
				if hasGapX {
					x += gapX
				}
				col++
			default:
				if y > 0 && y+height > containerHeight {
					y = 0
					x += maxWidth
					maxWidth = 0
					col++
					row = 0
					currentRow, currentCol = row, col
				}
				y += height
				if hasGapY {
					y += gapY
				}
				row++
			}

			if child.CalculatedPosition.Wrapped {
				if child.CalculatedPosition.Row != currentRow || child.CalculatedPosition.Col != currentCol {
					shifted = true
					child.CalculatedPosition = container.WrapPosition(currentRow, currentCol)
				}
			} else {
				child.CalculatedPosition = container.WrapPosition(currentRow, currentCol)
			}
		default:
			switch direction {
			case container.DirectionRow:
				x += width
			default:
				y += height
			}
			child.CalculatedPosition = container.DefaultPosition
		}

		if height > maxHeight {
			maxHeight = height
		}
		if width > maxWidth {
			maxWidth = width
		}
	}

	if resizeChildren(ctx, c) {
		shifted = true
	}

	positionChildren(ctx, c, relativeSize)

	return shifted
}

func resolveGap(gap *container.Number, containerDim float32, ctx *calcContext) (float32, bool) {
	if gap == nil {
		return 0, false
	}
	return gap.ResolveNonNegative(containerDim, ctx.rootWidth, ctx.rootHeight), true
}

// relSize is the Absolute-descendant containing block threaded through
// handleOverflow/positionChildren: Has is false until a Position::Relative
// ancestor is found, at which point Width/Height pin to that ancestor's
// own calculated size for the remainder of the subtree.
type relSize struct {
	Width, Height float32
	Has           bool
}
