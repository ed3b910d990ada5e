package layout

import "github.com/strataui/layout/container"

// calcHardSizedElements recursively visits c's visible descendants and
// stamps calculated_width/height from any declared pure pixel/integer
// literal (C3), ahead of any pass that needs a resolved containing
// block. Percent-, viewport-, and calc()-dependent lengths are left
// for the main sizing pass since they need a containing-block
// dimension this early walk doesn't have.
//
// A RawText leaf with no declared width is the one exception: its
// content is known up front (it has no children to size it instead),
// so its intrinsic box is measured here via the FontMetrics capability
// rather than left at zero — the original left this measurement as a
// commented-out TODO, never wired up; this completes it using the
// capability spec.md §5/§6 already requires the host to supply.
func calcHardSizedElements(ctx *calcContext, c *container.Container) {
	for _, child := range c.Children {
		if !child.IsVisible() {
			continue
		}
		calcHardSizedElements(ctx, child)

		if child.Width.IsPureLiteralPixel() {
			trace("calcHardSizedElements: stamping width", "value", child.Width.Value)
			child.CalculatedWidth = child.Width.Value
		}
		if child.Height.IsPureLiteralPixel() {
			trace("calcHardSizedElements: stamping height", "value", child.Height.Value)
			child.CalculatedHeight = child.Height.Value
		}

		if child.Element == container.ElementRawText && len(child.Children) == 0 {
			measureRawText(ctx, child)
		}
	}
}

// measureRawText fills CalculatedWidth/Height for an unsized RawText
// leaf from ctx.metrics. The width budget is the leaf's own declared
// width resolved against the root width; with no declared width the
// budget is zero, so the text is measured without wrapping (lines break
// only at explicit newlines).
func measureRawText(ctx *calcContext, c *container.Container) {
	if ctx.metrics == nil {
		return
	}
	widthBudget := float32(0)
	if c.Width != nil {
		widthBudget = c.Width.Resolve(ctx.rootWidth, ctx.rootWidth, ctx.rootHeight)
	}
	width, height := ctx.metrics.MeasureText(c.Value, ctx.cfg.DefaultFontSize, widthBudget)
	if c.Width == nil {
		c.CalculatedWidth = width
	}
	if c.Height == nil {
		c.CalculatedHeight = height
	}
}
