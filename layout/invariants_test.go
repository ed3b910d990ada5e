package layout

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strataui/layout/container"
	"github.com/strataui/layout/layoutconfig"
)

// walk calls fn on every visible container in the subtree rooted at c,
// including c itself.
func walk(c *container.Container, fn func(*container.Container)) {
	if !c.IsVisible() {
		return
	}
	fn(c)
	for _, child := range c.Children {
		walk(child, fn)
	}
}

// Invariant 1: every visible container has non-negative calculated size.
func TestInvariantNonNegativeSizes(t *testing.T) {
	children := make([]*container.Container, 3)
	for i := range children {
		children[i] = &container.Container{}
	}
	root := &container.Container{
		Direction: container.DirectionRow, OverflowX: container.OverflowSquash,
		CalculatedWidth: 300, CalculatedHeight: 100,
		Children: children,
	}
	Calculate(root, nil, layoutconfig.Default())

	walk(root, func(c *container.Container) {
		assert.GreaterOrEqual(t, c.CalculatedWidth, float32(0), "%s width", c.Element)
		assert.GreaterOrEqual(t, c.CalculatedHeight, float32(0), "%s height", c.Element)
	})
}

// Invariant 2: under Squash, siblings never exceed the parent's inner
// main-axis size (no scrollbar, no wrap, no resize response).
func TestInvariantSquashNeverExceedsParent(t *testing.T) {
	children := make([]*container.Container, 3)
	for i := range children {
		children[i] = &container.Container{}
	}
	root := &container.Container{
		Direction: container.DirectionRow, OverflowX: container.OverflowSquash,
		CalculatedWidth: 300, CalculatedHeight: 100,
		Children: children,
	}
	Calculate(root, nil, layoutconfig.Default())

	inner := root.CalculatedWidthMinusBorders()
	sum := float32(0)
	for _, c := range children {
		sum += c.BoundingCalculatedWidth()
	}
	assert.LessOrEqual(t, sum, inner+0.01, "sum of child bounding widths must not exceed inner width")
}

// Invariant 3: within a Wrap parent, children sharing a row share
// calculated_y and children sharing a column share calculated_x.
func TestInvariantWrapSharesRowColumnCoordinates(t *testing.T) {
	children := make([]*container.Container, 4)
	for i := range children {
		children[i] = &container.Container{Width: container.Px(100), Height: container.Px(50)}
	}
	root := &container.Container{
		Direction: container.DirectionRow, OverflowX: container.OverflowWrap,
		CalculatedWidth: 200, CalculatedHeight: 200,
		Children: children,
	}
	Calculate(root, nil, layoutconfig.Default())

	byRow := map[int]float32{}
	byCol := map[int]float32{}
	for _, c := range children {
		p := c.CalculatedPosition
		if y, ok := byRow[p.Row]; ok {
			assert.InDelta(t, y, c.CalculatedY, geometryTolerance, "row %d calculated_y", p.Row)
		} else {
			byRow[p.Row] = c.CalculatedY
		}
		if x, ok := byCol[p.Col]; ok {
			assert.InDelta(t, x, c.CalculatedX, geometryTolerance, "col %d calculated_x", p.Col)
		} else {
			byCol[p.Col] = c.CalculatedX
		}
	}
}

// Invariant 4: an Expand parent with no declared main length grows to
// exactly the sum of its in-flow children's bounding main-axis size.
func TestInvariantExpandMatchesChildrenSum(t *testing.T) {
	children := []*container.Container{
		{Width: container.Px(100)},
		{Width: container.Px(100)},
		{Width: container.Px(100)},
	}
	root := &container.Container{
		Direction: container.DirectionRow, OverflowX: container.OverflowExpand,
		CalculatedWidth: 50, CalculatedHeight: 100,
		Children: children,
	}
	Calculate(root, nil, layoutconfig.Default())

	sum := float32(0)
	for _, c := range children {
		sum += c.BoundingCalculatedWidth()
	}
	assert.InDelta(t, sum, root.CalculatedWidth, geometryTolerance)
}

// Invariant 5: bounding_width - calculated_width equals the summed
// horizontal padding + scrollbar + margin, for every visible container.
func TestInvariantBoundingWidthBreaksDownToPaddingScrollbarMargin(t *testing.T) {
	child := &container.Container{Width: container.Px(100), Height: container.Px(200)}
	root := &container.Container{
		OverflowX: container.OverflowHidden, OverflowY: container.OverflowAuto,
		CalculatedWidth: 100, CalculatedHeight: 100,
		Children: []*container.Container{child},
	}
	Calculate(root, nil, layoutconfig.Default())

	walk(root, func(c *container.Container) {
		got := c.BoundingCalculatedWidth() - c.CalculatedWidth
		want := c.HorizontalPadding() + c.ScrollbarRight + c.HorizontalMargin()
		assert.InDelta(t, want, got, geometryTolerance, "bounding-calculated breakdown for %s", c.Element)
	})
}

// Invariant 6: idempotence — running Calculate twice over the same
// tree with no intervening changes to declared style produces
// identical calculated fields.
func TestInvariantIdempotence(t *testing.T) {
	children := make([]*container.Container, 4)
	for i := range children {
		children[i] = &container.Container{Width: container.Px(100), Height: container.Px(50)}
	}
	root := &container.Container{
		Direction: container.DirectionRow, OverflowX: container.OverflowWrap,
		CalculatedWidth: 200, CalculatedHeight: 200,
		Children: children,
	}
	cfg := layoutconfig.Default()

	Calculate(root, nil, cfg)
	first := make([][2]float32, len(children))
	for i, c := range children {
		first[i] = [2]float32{c.CalculatedX, c.CalculatedY}
	}

	Calculate(root, nil, cfg)
	for i, c := range children {
		assert.InDelta(t, first[i][0], c.CalculatedX, geometryTolerance, "second-run x")
		assert.InDelta(t, first[i][1], c.CalculatedY, geometryTolerance, "second-run y")
	}
}

// Invariant 7: monotonic expansion — widening the root never shrinks an
// unsized relative-flow child's calculated_width.
func TestInvariantMonotonicExpansion(t *testing.T) {
	build := func(width float32) *container.Container {
		root := &container.Container{
			Direction: container.DirectionRow, OverflowX: container.OverflowExpand,
			CalculatedWidth: width, CalculatedHeight: 100,
			Children: []*container.Container{{}},
		}
		Calculate(root, nil, layoutconfig.Default())
		return root
	}

	narrow := build(200)
	wide := build(400)
	assert.GreaterOrEqual(t, wide.Children[0].CalculatedWidth, narrow.Children[0].CalculatedWidth,
		"wider root must not shrink its unsized child")
}

// Invariant 8: scrollbar round-trip — content that fits reserves no
// scrollbar; content that overflows under Auto reserves exactly
// ScrollbarSize and shrinks the effective inner dimension by that much.
func TestInvariantScrollbarRoundTrip(t *testing.T) {
	cfg := layoutconfig.Default()

	fits := &container.Container{
		OverflowY:       container.OverflowAuto,
		CalculatedWidth: 100, CalculatedHeight: 100,
		Children: []*container.Container{{Width: container.Px(100), Height: container.Px(50)}},
	}
	Calculate(fits, nil, cfg)
	assert.Equal(t, float32(0), fits.ScrollbarRight, "fitting content should not reserve a scrollbar")

	overflows := &container.Container{
		OverflowX:       container.OverflowHidden,
		OverflowY:       container.OverflowAuto,
		CalculatedWidth: 100, CalculatedHeight: 100,
		Children: []*container.Container{{Width: container.Px(100), Height: container.Px(200)}},
	}
	Calculate(overflows, nil, cfg)
	assert.InDelta(t, cfg.ScrollbarSize, overflows.ScrollbarRight, geometryTolerance)
	assert.InDelta(t, 100-cfg.ScrollbarSize, overflows.CalculatedWidth, geometryTolerance)
}

// randomTree builds a small, deterministic (seeded) tree of containers
// with a mix of declared and undeclared sizes, for the property test
// below. No field ever depends on wall-clock time.
func randomTree(rng *rand.Rand, depth int) *container.Container {
	c := &container.Container{}
	if rng.IntN(2) == 0 {
		c.Direction = container.DirectionColumn
	}
	switch rng.IntN(3) {
	case 0:
		c.OverflowX = container.OverflowSquash
	case 1:
		c.OverflowX = container.OverflowHidden
	case 2:
		c.OverflowX = container.OverflowAuto
	}

	if depth <= 0 {
		return c
	}
	n := rng.IntN(4)
	for i := 0; i < n; i++ {
		child := randomTree(rng, depth-1)
		if rng.IntN(2) == 0 {
			child.Width = container.Px(float32(20 + rng.IntN(80)))
		}
		if rng.IntN(2) == 0 {
			child.Height = container.Px(float32(20 + rng.IntN(80)))
		}
		c.Children = append(c.Children, child)
	}
	return c
}

// TestPropertyRandomTreesKeepCoreInvariants runs a batch of small,
// seeded random trees through Calculate and checks the invariants that
// must hold unconditionally regardless of shape: non-negative sizes
// and the bounding-width/bounding-height breakdown.
func TestPropertyRandomTreesKeepCoreInvariants(t *testing.T) {
	cfg := layoutconfig.Default()
	rng := rand.New(rand.NewPCG(1, 2))

	for trial := 0; trial < 50; trial++ {
		root := randomTree(rng, 3)
		root.CalculatedWidth = float32(100 + rng.IntN(400))
		root.CalculatedHeight = float32(100 + rng.IntN(400))

		Calculate(root, nil, cfg)

		walk(root, func(c *container.Container) {
			require := assert.New(t)
			require.GreaterOrEqual(c.CalculatedWidth, float32(0), "trial %d: negative width on %s", trial, c.Element)
			require.GreaterOrEqual(c.CalculatedHeight, float32(0), "trial %d: negative height on %s", trial, c.Element)

			gotW := c.BoundingCalculatedWidth() - c.CalculatedWidth
			wantW := c.HorizontalPadding() + c.ScrollbarRight + c.HorizontalMargin()
			require.InDelta(wantW, gotW, geometryTolerance, "trial %d: bounding width breakdown", trial)

			gotH := c.BoundingCalculatedHeight() - c.CalculatedHeight
			wantH := c.VerticalPadding() + c.ScrollbarBottom + c.VerticalMargin()
			require.InDelta(wantH, gotH, geometryTolerance, "trial %d: bounding height breakdown", trial)
		})
	}
}
