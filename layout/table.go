package layout

import (
	"github.com/chewxy/math32"
	"github.com/strataui/layout/container"
)

type colSize struct {
	width, containedWidth   float32
	hasWidth, hasContained  bool
}

// calcTable is the Table Solver (C7), grounded on calc_table in
// original_source/.../calc.rs: column-count discovery, an initial
// even-split tentative width per cell used to measure each cell's
// intrinsic/contained width and height, a two-round unsized-column
// convergence (SUPPLEMENTED FEATURES), then row/section wrapper
// sizing and a final recursive calcInner into every cell.
func calcTable(ctx *calcContext, t *container.Container, relativeSize relSize) {
	if t.Element != container.ElementTable {
		container.Fatal(container.KindInvalidContainerDimensions, "calcTable called on non-table element %s", t.Element)
	}

	containerWidth := t.CalculatedWidthMinusBorders()
	containerHeight := t.CalculatedHeightMinusBorders()
	calcHardSizedElements(ctx, t)

	sections := t.RelativePositionedChildren()
	var headSection, bodySection *container.Container
	var rowSections []*container.Container
	for _, s := range sections {
		switch {
		case s.Element == container.ElementTHead:
			headSection = s
		case s.Element == container.ElementTBody:
			bodySection = s
		case s.Element == container.ElementTR:
			rowSections = append(rowSections, s)
		default:
			container.Fatal(container.KindInvalidTableChild, "invalid table child element %s", s.Element)
		}
	}

	var headRows, bodyRows []*container.Container
	if headSection != nil {
		headRows = headSection.RelativePositionedChildren()
	}
	if bodySection != nil {
		bodyRows = bodySection.RelativePositionedChildren()
	} else {
		bodyRows = rowSections
	}

	colCount := 0
	for _, r := range headRows {
		if n := len(r.RelativePositionedChildren()); n > colCount {
			colCount = n
		}
	}
	for _, r := range bodyRows {
		if n := len(r.RelativePositionedChildren()); n > colCount {
			colCount = n
		}
	}
	if colCount == 0 {
		t.CalculatedHeight = 0
		return
	}

	evenSplit := containerWidth / float32(colCount)
	colSizes := make([]colSize, colCount)

	sizeCellsInitial := func(row *container.Container) float32 {
		cells := row.RelativePositionedChildren()
		for _, cell := range cells {
			if cell.Height != nil {
				cell.CalculatedHeight = cell.Height.ResolveNonNegative(containerHeight, ctx.rootWidth, ctx.rootHeight)
			} else if cell.CalculatedHeight == 0 {
				cell.CalculatedHeight = containedCalculatedHeight(cell)
			}
			if cell.Width != nil {
				cell.CalculatedWidth = cell.Width.ResolveNonNegative(containerWidth, ctx.rootWidth, ctx.rootHeight)
			} else if cell.CalculatedWidth == 0 {
				cell.CalculatedWidth = evenSplit
			}
		}

		rowHeight := float32(0)
		for i, cell := range cells {
			if i >= len(colSizes) {
				break
			}
			if cell.Width != nil {
				w := cell.CalculatedWidth
				if !colSizes[i].hasWidth || w > colSizes[i].width {
					colSizes[i].width = w
					colSizes[i].hasWidth = true
				}
			} else if cw, ok := containedSizedWidth(cell, ctx.rootWidth, ctx.rootHeight, true); ok {
				if !colSizes[i].hasContained || cw > colSizes[i].containedWidth {
					colSizes[i].containedWidth = cw
					colSizes[i].hasContained = true
				}
			}
			rowHeight = math32.Max(rowHeight, cell.CalculatedHeight)
		}
		if rowHeight == 0 {
			rowHeight = ctx.cfg.DefaultTableCellHeight
		}
		for _, cell := range cells {
			cell.CalculatedHeight = rowHeight
		}
		return rowHeight
	}

	headingHeight := float32(0)
	for _, row := range headRows {
		headingHeight += sizeCellsInitial(row)
	}
	bodyHeight := float32(0)
	for _, row := range bodyRows {
		bodyHeight += sizeCellsInitial(row)
	}

	for _, row := range headRows {
		for _, cell := range row.RelativePositionedChildren() {
			calcStyling(ctx, cell, containerWidth, containerHeight, ctx.rootWidth, ctx.rootHeight)
		}
	}
	for _, row := range bodyRows {
		for _, cell := range row.RelativePositionedChildren() {
			calcStyling(ctx, cell, containerWidth, containerHeight, ctx.rootWidth, ctx.rootHeight)
		}
	}

	// First convergence round: an unsized column whose contained width
	// already exceeds the naive even split over all unsized columns
	// keeps its contained width and drops out of the second round.
	resolved := make([]float32, colCount)
	hasResolved := make([]bool, colCount)
	for i, cs := range colSizes {
		if cs.hasWidth {
			resolved[i] = cs.width
			hasResolved[i] = true
		}
	}
	remaining1 := remainingUnsized(resolved, hasResolved, containerWidth)
	for i, cs := range colSizes {
		if !hasResolved[i] && cs.hasContained && cs.containedWidth > remaining1 {
			resolved[i] = cs.containedWidth
			hasResolved[i] = true
		}
	}

	unsizedCount := 0
	sizedWidth := float32(0)
	for i := range resolved {
		if hasResolved[i] {
			sizedWidth += resolved[i]
		} else {
			unsizedCount++
		}
	}
	evenlySplitRemaining := float32(0)
	if unsizedCount > 0 {
		evenlySplitRemaining = (containerWidth - sizedWidth) / float32(unsizedCount)
	}
	evenlySplitIncrease := float32(0)
	if unsizedCount == 0 && sizedWidth < containerWidth {
		evenlySplitIncrease = (containerWidth - sizedWidth) / float32(colCount)
	}

	finalColWidth := func(i int) float32 {
		if hasResolved[i] {
			return resolved[i] + evenlySplitIncrease
		}
		return evenlySplitRemaining
	}

	assignCellWidths := func(rows []*container.Container) {
		for _, row := range rows {
			for i, cell := range row.RelativePositionedChildren() {
				if i >= colCount {
					break
				}
				w := finalColWidth(i) - cell.PaddingAndMargins(container.DirectionRow)
				cell.CalculatedWidth = math32.Max(0, w)
			}
		}
	}
	assignCellWidths(headRows)
	assignCellWidths(bodyRows)

	t.CalculatedHeight = headingHeight + bodyHeight

	if headSection != nil {
		sizeTableSection(ctx, headSection, containerWidth, headingHeight)
	}
	if bodySection != nil {
		sizeTableSection(ctx, bodySection, containerWidth, bodyHeight)
	} else {
		for _, row := range rowSections {
			sizeTableRow(row, containerWidth)
		}
	}

	for _, row := range headRows {
		for _, cell := range row.RelativePositionedChildren() {
			calcInner(ctx, cell, relativeSize)
		}
	}
	for _, row := range bodyRows {
		for _, cell := range row.RelativePositionedChildren() {
			calcInner(ctx, cell, relativeSize)
		}
	}
}

func remainingUnsized(resolved []float32, hasResolved []bool, containerWidth float32) float32 {
	unsizedCount := 0
	sizedWidth := float32(0)
	for i := range resolved {
		if hasResolved[i] {
			sizedWidth += resolved[i]
		} else {
			unsizedCount++
		}
	}
	if unsizedCount == 0 {
		return 0
	}
	return (containerWidth - sizedWidth) / float32(unsizedCount)
}

func sizeTableSection(ctx *calcContext, section *container.Container, width, height float32) {
	if section.Width == nil {
		section.CalculatedWidth = width
	}
	if section.Height == nil {
		section.CalculatedHeight = height
	}
	for _, row := range section.RelativePositionedChildren() {
		sizeTableRow(row, width)
	}
}

func sizeTableRow(row *container.Container, width float32) {
	if row.Width == nil {
		row.CalculatedWidth = width
	}
	if row.Height == nil {
		h := float32(0)
		for _, cell := range row.RelativePositionedChildren() {
			h = math32.Max(h, cell.CalculatedHeight)
		}
		row.CalculatedHeight = h
	}
}
