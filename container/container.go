// Package container defines the layout tree's sole node type,
// Container, plus the declared-style types (length expressions,
// borders, positioning/overflow/justification enums) it is built from.
// The engine in package layout reads declared fields and writes
// calculated fields; package container owns the type definitions and a
// handful of pure derived-geometry accessors that are part of the
// host-facing inspection surface (SPEC_FULL.md §6).
package container

// Container is the sole node type of the layout tree (spec.md §3).
type Container struct {
	Element  Element
	Children []*Container

	// Hidden short-circuits the engine entirely for this subtree: no
	// sizing, overflow, or positioning pass visits it or its children.
	Hidden bool

	// Declared style. Read-only to the engine; nil means "not declared".
	Width, Height *Number

	MarginTop, MarginRight, MarginBottom, MarginLeft   *Number
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft *Number

	BorderTop, BorderRight, BorderBottom, BorderLeft *Border

	BorderTopLeftRadius, BorderTopRightRadius         *Number
	BorderBottomRightRadius, BorderBottomLeftRadius    *Number

	Opacity *Number

	ColumnGap, RowGap *Number

	Top, Right, Bottom, Left *Number

	Position          Position
	Direction         Direction
	OverflowX, OverflowY Overflow
	JustifyContent    *JustifyContent

	// Element-specific declared data.
	Href  string // Anchor
	Src   string // Image
	Value string // RawText

	// Calculated style, filled in by the engine. Zero-valued before the
	// first call to layout.Calculate.
	CalculatedWidth, CalculatedHeight float32
	CalculatedX, CalculatedY          float32

	CalculatedMarginTop, CalculatedMarginRight, CalculatedMarginBottom, CalculatedMarginLeft     float32
	CalculatedPaddingTop, CalculatedPaddingRight, CalculatedPaddingBottom, CalculatedPaddingLeft   float32
	CalculatedBorderTopWidth, CalculatedBorderRightWidth, CalculatedBorderBottomWidth, CalculatedBorderLeftWidth float32

	CalculatedBorderTopLeftRadius, CalculatedBorderTopRightRadius         float32
	CalculatedBorderBottomRightRadius, CalculatedBorderBottomLeftRadius    float32

	CalculatedOpacity float32

	CalculatedPosition LayoutPosition

	ScrollbarRight, ScrollbarBottom float32

	// InternalMarginLeft/Top and InternalPaddingLeft/Top record the
	// per-child leading gap contributed by SpaceBetween/SpaceEvenly/
	// wrap-start centering (SUPPLEMENTED FEATURES in SPEC_FULL.md). They
	// are inspection-only: nothing in the engine reads them back.
	InternalMarginLeft, InternalMarginTop     *float32
	InternalPaddingLeft, InternalPaddingTop   *float32
}

// IsVisible reports whether this container (and therefore its subtree)
// participates in layout at all.
func (c *Container) IsVisible() bool { return c != nil && !c.Hidden }

// MainAxisOverflow returns the overflow mode that applies to the
// container's own main axis (OverflowX for Row, OverflowY for Column).
func (c *Container) MainAxisOverflow() Overflow {
	if c.Direction == DirectionColumn {
		return c.OverflowY
	}
	return c.OverflowX
}

// CrossAxisOverflow returns the overflow mode for the cross axis.
func (c *Container) CrossAxisOverflow() Overflow {
	if c.Direction == DirectionColumn {
		return c.OverflowX
	}
	return c.OverflowY
}

// HorizontalMargin is the sum of calculated left+right margin.
func (c *Container) HorizontalMargin() float32 {
	return c.CalculatedMarginLeft + c.CalculatedMarginRight
}

// VerticalMargin is the sum of calculated top+bottom margin.
func (c *Container) VerticalMargin() float32 {
	return c.CalculatedMarginTop + c.CalculatedMarginBottom
}

// HorizontalPadding is the sum of calculated left+right padding.
func (c *Container) HorizontalPadding() float32 {
	return c.CalculatedPaddingLeft + c.CalculatedPaddingRight
}

// VerticalPadding is the sum of calculated top+bottom padding.
func (c *Container) VerticalPadding() float32 {
	return c.CalculatedPaddingTop + c.CalculatedPaddingBottom
}

// HorizontalBorders is the sum of calculated left+right border widths.
func (c *Container) HorizontalBorders() float32 {
	return c.CalculatedBorderLeftWidth + c.CalculatedBorderRightWidth
}

// VerticalBorders is the sum of calculated top+bottom border widths.
func (c *Container) VerticalBorders() float32 {
	return c.CalculatedBorderTopWidth + c.CalculatedBorderBottomWidth
}

// BoundingCalculatedWidth implements invariant 3 of spec.md §3: a
// parent always sees a child through this box.
func (c *Container) BoundingCalculatedWidth() float32 {
	return c.CalculatedWidth + c.HorizontalPadding() + c.ScrollbarRight + c.HorizontalMargin()
}

// BoundingCalculatedHeight is the vertical analogue of
// BoundingCalculatedWidth.
func (c *Container) BoundingCalculatedHeight() float32 {
	return c.CalculatedHeight + c.VerticalPadding() + c.ScrollbarBottom + c.VerticalMargin()
}

// CalculatedWidthMinusBorders implements invariant 4: the inner box
// children's main-axis layout uses.
func (c *Container) CalculatedWidthMinusBorders() float32 {
	return max32(0, c.CalculatedWidth-c.HorizontalBorders())
}

// CalculatedHeightMinusBorders is the vertical analogue.
func (c *Container) CalculatedHeightMinusBorders() float32 {
	return max32(0, c.CalculatedHeight-c.VerticalBorders())
}

// PaddingAndMargins returns the horizontal (Row) or vertical (Column)
// padding+margin deduction used by the Table Solver (C7) to convert a
// resolved column width into a cell's own content width.
func (c *Container) PaddingAndMargins(d Direction) float32 {
	if d == DirectionRow {
		return c.HorizontalPadding() + c.HorizontalMargin()
	}
	return c.VerticalPadding() + c.VerticalMargin()
}

// RelativePositionedChildren returns the subset of Children that
// participate in normal flow (Default or Relative position).
func (c *Container) RelativePositionedChildren() []*Container {
	out := make([]*Container, 0, len(c.Children))
	for _, ch := range c.Children {
		if ch.IsVisible() && ch.Position.IsInFlow() {
			out = append(out, ch)
		}
	}
	return out
}

// AbsolutePositionedChildren returns the subset of Children positioned
// Absolute.
func (c *Container) AbsolutePositionedChildren() []*Container {
	var out []*Container
	for _, ch := range c.Children {
		if ch.IsVisible() && ch.Position == PositionAbsolute {
			out = append(out, ch)
		}
	}
	return out
}

// FixedPositionedChildren returns the subset of Children positioned
// Fixed.
func (c *Container) FixedPositionedChildren() []*Container {
	var out []*Container
	for _, ch := range c.Children {
		if ch.IsVisible() && ch.Position == PositionFixed {
			out = append(out, ch)
		}
	}
	return out
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
