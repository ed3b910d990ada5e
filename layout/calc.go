// Package layout implements the constraint-based layout engine
// (spec.md): given a tree of container.Container nodes with declared
// style and a root viewport size, Calculate fills in every Calculated*
// field in place, dispatching across the twelve passes described in
// SPEC_FULL.md §4 (Number Resolver through the Calc Entry Point).
package layout

import (
	"github.com/strataui/layout/container"
	"github.com/strataui/layout/layout/arena"
	"github.com/strataui/layout/layoutconfig"
)

// calcContext threads the immutable inputs every pass needs — the root
// viewport size, tunable knobs, a scratch-slice pool, and the host's
// FontMetrics capability — without a parameter on every function in the
// package.
type calcContext struct {
	rootWidth, rootHeight float32
	cfg                   layoutconfig.Config
	arena                 *arena.Arena
	metrics               FontMetrics
}

// Calculate is the Calc Entry Point (C12): the engine's sole public
// entry, matching calc() in calc.rs. root.CalculatedWidth/Height must
// already be set to the viewport size. Calculate does not reset
// calculated state before it runs: sizes and positions are recomputed,
// but ScrollbarRight/ScrollbarBottom and CalculatedPosition start from
// whatever a previous call left, and calculated margin, padding,
// border, radius and opacity values are only written for properties
// that are declared. Hidden subtrees are skipped
// entirely. Calculate panics with a *container.FatalError on any
// invariant violation (SPEC_FULL.md §7) — callers recover it at the
// outermost boundary (cmd/layoutcalc does this).
func Calculate(root *container.Container, metrics FontMetrics, cfg layoutconfig.Config) {
	if root.CalculatedWidth <= 0 || root.CalculatedHeight <= 0 {
		container.Fatal(container.KindMissingRootSize,
			"root calculated_width/calculated_height must be set to a positive viewport size before Calculate")
	}

	ctx := &calcContext{
		rootWidth:  root.CalculatedWidth,
		rootHeight: root.CalculatedHeight,
		cfg:        cfg,
		arena:      arena.New(),
		metrics:    metrics,
	}
	defer ctx.arena.Reset()

	calcInner(ctx, root, relSize{})
}

// calcInner is the per-container dispatch shared by every recursion
// site: it clears the previous pass's internal margin/padding
// inspection slots, validates the container's own resolved size, styles
// every direct child against this container's own dimensions (C2/C3),
// then dispatches to the Table Solver or the general container path.
func calcInner(ctx *calcContext, c *container.Container, relativeSize relSize) {
	if !c.IsVisible() {
		return
	}

	c.InternalMarginLeft = nil
	c.InternalMarginTop = nil
	c.InternalPaddingLeft = nil
	c.InternalPaddingTop = nil

	if c.CalculatedWidth < 0 || c.CalculatedHeight < 0 {
		container.Fatal(container.KindNegativeSize,
			"calcInner: %s has negative calculated size (%.2f, %.2f)", c.Element, c.CalculatedWidth, c.CalculatedHeight)
	}

	for _, child := range c.Children {
		if !child.IsVisible() {
			continue
		}
		calcStyling(ctx, child, c.CalculatedWidth, c.CalculatedHeight, ctx.rootWidth, ctx.rootHeight)
	}

	if c.Element == container.ElementTable {
		calcTable(ctx, c, relativeSize)
		return
	}
	calcInnerContainer(ctx, c, relativeSize)
}

// calcInnerContainer is the general (non-table) container path (folding
// C4–C6, C8–C11 together): it sizes relative-flow children, recurses
// into them, then sizes and recurses into Absolute children (against
// relativeSize, when a Relative ancestor exists) and Fixed children
// (always against the root viewport), and finally runs the Fix-Point
// Driver over this container's own placement.
func calcInnerContainer(ctx *calcContext, c *container.Container, relativeSize relSize) {
	direction := c.Direction
	containerWidth := c.CalculatedWidth
	containerHeight := c.CalculatedHeight

	calcElementSizes(ctx, c.RelativePositionedChildren(), direction, c.OverflowX, c.OverflowY, containerWidth, containerHeight)

	if c.Position == container.PositionRelative {
		relativeSize = relSize{containerWidth, containerHeight, true}
	}

	for _, child := range c.RelativePositionedChildren() {
		calcInner(ctx, child, relativeSize)
	}

	if relativeSize.Has {
		absChildren := c.AbsolutePositionedChildren()
		calcChildMarginsAndPadding(ctx, absChildren, relativeSize.Width, relativeSize.Height)
		calcElementSizes(ctx, absChildren, direction, c.OverflowX, c.OverflowY, containerWidth, containerHeight)
		for _, child := range absChildren {
			calcInner(ctx, child, relativeSize)
		}
	}

	fixedChildren := c.FixedPositionedChildren()
	calcChildMarginsAndPadding(ctx, fixedChildren, ctx.rootWidth, ctx.rootHeight)
	calcElementSizes(ctx, fixedChildren, direction, c.OverflowX, c.OverflowY, ctx.rootWidth, ctx.rootHeight)
	for _, child := range fixedChildren {
		calcInner(ctx, child, relativeSize)
	}

	runFixPoint(ctx, c, relativeSize)
}

// calcChildMarginsAndPadding resolves only margin and padding (not
// borders, opacity, or hard sizes) on each of elements against the
// given containing-block dimensions — Absolute/Fixed children are
// sized independently of their flow parent, so they need their own
// margin/padding resolved against their actual containing block rather
// than inheriting the containerWidth/containerHeight calcInner already
// used for their siblings.
func calcChildMarginsAndPadding(ctx *calcContext, elements []*container.Container, containerWidth, containerHeight float32) {
	for _, el := range elements {
		calcMargin(el, containerWidth, containerHeight, ctx.rootWidth, ctx.rootHeight)
		calcPadding(el, containerWidth, containerHeight, ctx.rootWidth, ctx.rootHeight)
	}
}
