package layout

import (
	"github.com/chewxy/math32"
	"github.com/strataui/layout/container"
)

// wrapGroups splits relative-flow children into consecutive runs that
// share the same main-axis wrap coordinate (row for DirectionRow, col
// for DirectionColumn). A non-wrapping parent's children all carry
// container.DefaultPosition, so they form a single run — this mirrors
// the original's chunk_by over calculated_position's row/col key.
func wrapGroups(children []*container.Container, direction container.Direction) [][]*container.Container {
	var groups [][]*container.Container
	var cur []*container.Container
	var curKey int
	for _, ch := range children {
		key, wrapped := mainAxisKey(ch, direction)
		if len(cur) > 0 && wrapped && key != curKey {
			groups = append(groups, cur)
			cur = nil
		}
		cur = append(cur, ch)
		curKey = key
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// mainAxisKey returns the wrap-row (DirectionRow) or wrap-column
// (DirectionColumn) coordinate of c, and whether c is wrapped at all.
// Unwrapped children report wrapped=false, which wrapGroups treats as
// "always continues the current run" — a non-wrapping parent's
// children therefore collapse into a single group.
func mainAxisKey(c *container.Container, direction container.Direction) (int, bool) {
	if !c.CalculatedPosition.Wrapped {
		return 0, false
	}
	if direction == container.DirectionRow {
		return c.CalculatedPosition.Row, true
	}
	return c.CalculatedPosition.Col, true
}

// containedSizedWidth is the recursive "what would my children take if
// nothing were declared" helper backing the Table Solver's initial
// column sizing and the Overflow Resolver's Expand comparison
// (SUPPLEMENTED FEATURES). ok is false when no child in any group
// contributes a sized or contained width.
func containedSizedWidth(c *container.Container, rootWidth, rootHeight float32, recurse bool) (float32, bool) {
	children := c.RelativePositionedChildren()
	if len(children) == 0 {
		return 0, false
	}
	groups := wrapGroups(children, c.Direction)

	best := float32(0)
	found := false

	switch c.Direction {
	case container.DirectionRow:
		for _, group := range groups {
			sum := float32(0)
			any := false
			for _, ch := range group {
				if w, ok := childWidth(ch, c.CalculatedWidth, rootWidth, rootHeight, recurse); ok {
					sum += w
					any = true
				}
			}
			if any && (!found || sum > best) {
				best = sum
				found = true
			}
		}
	default:
		for _, group := range groups {
			groupMax := float32(0)
			any := false
			for _, ch := range group {
				if w, ok := childWidth(ch, c.CalculatedWidth, rootWidth, rootHeight, recurse); ok {
					if !any || w > groupMax {
						groupMax = w
					}
					any = true
				}
			}
			if any {
				best += groupMax
				found = true
			}
		}
	}
	return best, found
}

func childWidth(ch *container.Container, containerWidth, rootWidth, rootHeight float32, recurse bool) (float32, bool) {
	if ch.Width != nil {
		return ch.Width.Resolve(containerWidth, rootWidth, rootHeight), true
	}
	if recurse {
		return containedSizedWidth(ch, rootWidth, rootHeight, recurse)
	}
	return 0, false
}

// containedSizedHeight is the vertical analogue of containedSizedWidth.
func containedSizedHeight(c *container.Container, rootWidth, rootHeight float32, recurse bool) (float32, bool) {
	children := c.RelativePositionedChildren()
	if len(children) == 0 {
		return 0, false
	}
	groups := wrapGroups(children, c.Direction)

	best := float32(0)
	found := false

	switch c.Direction {
	case container.DirectionColumn:
		for _, group := range groups {
			sum := float32(0)
			any := false
			for _, ch := range group {
				if h, ok := childHeight(ch, c.CalculatedHeight, rootWidth, rootHeight, recurse); ok {
					sum += h
					any = true
				}
			}
			if any && (!found || sum > best) {
				best = sum
				found = true
			}
		}
	default:
		for _, group := range groups {
			groupMax := float32(0)
			any := false
			for _, ch := range group {
				if h, ok := childHeight(ch, c.CalculatedHeight, rootWidth, rootHeight, recurse); ok {
					if !any || h > groupMax {
						groupMax = h
					}
					any = true
				}
			}
			if any {
				best += groupMax
				found = true
			}
		}
	}
	return best, found
}

func childHeight(ch *container.Container, containerHeight, rootWidth, rootHeight float32, recurse bool) (float32, bool) {
	if ch.Height != nil {
		return ch.Height.Resolve(containerHeight, rootWidth, rootHeight), true
	}
	if recurse {
		return containedSizedHeight(ch, rootWidth, rootHeight, recurse)
	}
	return 0, false
}

// containedCalculatedWidth aggregates children's *actual* bounding
// widths (not their declared/contained widths): the sum across a row
// (Row direction) maxed over rows, or the max across a column maxed
// over columns (Column direction). Used by the Positioner (C10) to
// determine free space for justification and by the Scrollbar/Expand
// resize logic to detect overflow.
func containedCalculatedWidth(c *container.Container) float32 {
	children := c.RelativePositionedChildren()
	if len(children) == 0 {
		return 0
	}
	groups := wrapGroups(children, c.Direction)

	width := float32(0)
	switch c.Direction {
	case container.DirectionRow:
		for _, group := range groups {
			sum := float32(0)
			for _, ch := range group {
				sum += ch.BoundingCalculatedWidth()
			}
			width = math32.Max(width, sum)
		}
	default:
		for _, group := range groups {
			groupMax := float32(0)
			for _, ch := range group {
				groupMax = math32.Max(groupMax, ch.BoundingCalculatedWidth())
			}
			width = math32.Max(width, groupMax)
		}
	}
	return width
}

// containedCalculatedHeight is the vertical analogue of
// containedCalculatedWidth.
func containedCalculatedHeight(c *container.Container) float32 {
	children := c.RelativePositionedChildren()
	if len(children) == 0 {
		return 0
	}
	groups := wrapGroups(children, c.Direction)

	height := float32(0)
	switch c.Direction {
	case container.DirectionRow:
		for _, group := range groups {
			groupMax := float32(0)
			for _, ch := range group {
				groupMax = math32.Max(groupMax, ch.BoundingCalculatedHeight())
			}
			height = math32.Max(height, groupMax)
		}
	default:
		for _, group := range groups {
			sum := float32(0)
			for _, ch := range group {
				sum += ch.BoundingCalculatedHeight()
			}
			height = math32.Max(height, sum)
		}
	}
	return height
}

// rowCount returns the number of wrap rows (or, for a non-wrapping
// Column-direction parent, the child count; 1 otherwise).
func rowCount(c *container.Container) int {
	if c.OverflowX != container.OverflowWrap && c.OverflowY != container.OverflowWrap {
		if c.Direction == container.DirectionColumn {
			return len(c.RelativePositionedChildren())
		}
		return 1
	}
	max := -1
	for _, ch := range c.RelativePositionedChildren() {
		if ch.CalculatedPosition.Wrapped && ch.CalculatedPosition.Row > max {
			max = ch.CalculatedPosition.Row
		}
	}
	return max + 1
}

// columnCount is the horizontal analogue of rowCount.
func columnCount(c *container.Container) int {
	if c.OverflowX != container.OverflowWrap && c.OverflowY != container.OverflowWrap {
		if c.Direction == container.DirectionRow {
			return len(c.RelativePositionedChildren())
		}
		return 1
	}
	max := -1
	for _, ch := range c.RelativePositionedChildren() {
		if ch.CalculatedPosition.Wrapped && ch.CalculatedPosition.Col > max {
			max = ch.CalculatedPosition.Col
		}
	}
	return max + 1
}
