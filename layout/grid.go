package layout

import "github.com/strataui/layout/container"

// calcElementSizesByRowCol is the Grid Chunker (C6): it walks elements
// in order, reading each one's already-assigned Wrap{row,col} (from a
// prior Overflow Resolver pass) and flushes an accumulated group to fn
// whenever the running row/col counter changes, tracking cross-axis
// padding+margin as a max across the group rather than a sum — a wrap
// group occupies a single row/column band, so only the largest
// member's cross-axis footprint constrains the band.
func calcElementSizesByRowCol(ctx *calcContext, elements []*container.Container, direction container.Direction, containerWidth, containerHeight float32, fn func(group []*container.Container, w, h float32)) {
	if len(elements) == 0 {
		return
	}

	group := ctx.arena.Group()
	defer ctx.arena.Release(group)

	rowColIndex := 0
	paddingX, paddingY := float32(0), float32(0)

	flush := func() {
		if len(group) == 0 {
			return
		}
		fn(group, containerWidth-paddingX, containerHeight-paddingY)
	}

	for _, el := range elements {
		current := rowColIndex
		if el.CalculatedPosition.Wrapped {
			if direction == container.DirectionRow {
				current = el.CalculatedPosition.Row
			} else {
				current = el.CalculatedPosition.Col
			}
		}

		if current != rowColIndex {
			flush()
			group = group[:0]
			rowColIndex = current
			paddingX, paddingY = 0, 0
		}

		if fluff := el.PaddingAndMargins(container.DirectionRow); fluff > 0 {
			if direction == container.DirectionRow {
				paddingX += fluff
			} else if fluff > paddingX {
				paddingX = fluff
			}
		}
		if fluff := el.PaddingAndMargins(container.DirectionColumn); fluff > 0 {
			if direction == container.DirectionColumn {
				paddingY += fluff
			} else if fluff > paddingY {
				paddingY = fluff
			}
		}

		group = append(group, el)
	}

	flush()
}
