package layout

import "github.com/strataui/layout/container"

// calcStyling resolves margin, padding, borders (color+width), the
// four border radii, and opacity on c from its declared length
// expressions (C2), then stamps any pure-pixel hard sizes on c's own
// subtree (C3) before any content-dependent pass runs. containerWidth
// and containerHeight are the *parent's* own calculated dimensions —
// horizontal properties resolve against containerWidth, vertical
// against containerHeight, per spec.md §4.2.
func calcStyling(ctx *calcContext, c *container.Container, containerWidth, containerHeight, rootWidth, rootHeight float32) {
	calcMargin(c, containerWidth, containerHeight, rootWidth, rootHeight)
	calcPadding(c, containerWidth, containerHeight, rootWidth, rootHeight)
	calcBorders(c, containerWidth, containerHeight, rootWidth, rootHeight)
	calcOpacity(c, rootWidth, rootHeight)
	calcHardSizedElements(ctx, c)
}

func calcMargin(c *container.Container, containerWidth, containerHeight, rootWidth, rootHeight float32) {
	if c.MarginTop != nil {
		c.CalculatedMarginTop = c.MarginTop.ResolveNonNegative(containerHeight, rootWidth, rootHeight)
	}
	if c.MarginBottom != nil {
		c.CalculatedMarginBottom = c.MarginBottom.ResolveNonNegative(containerHeight, rootWidth, rootHeight)
	}
	if c.MarginLeft != nil {
		c.CalculatedMarginLeft = c.MarginLeft.ResolveNonNegative(containerWidth, rootWidth, rootHeight)
	}
	if c.MarginRight != nil {
		c.CalculatedMarginRight = c.MarginRight.ResolveNonNegative(containerWidth, rootWidth, rootHeight)
	}
}

func calcPadding(c *container.Container, containerWidth, containerHeight, rootWidth, rootHeight float32) {
	if c.PaddingTop != nil {
		c.CalculatedPaddingTop = c.PaddingTop.ResolveNonNegative(containerHeight, rootWidth, rootHeight)
	}
	if c.PaddingBottom != nil {
		c.CalculatedPaddingBottom = c.PaddingBottom.ResolveNonNegative(containerHeight, rootWidth, rootHeight)
	}
	if c.PaddingLeft != nil {
		c.CalculatedPaddingLeft = c.PaddingLeft.ResolveNonNegative(containerWidth, rootWidth, rootHeight)
	}
	if c.PaddingRight != nil {
		c.CalculatedPaddingRight = c.PaddingRight.ResolveNonNegative(containerWidth, rootWidth, rootHeight)
	}
}

func calcBorders(c *container.Container, containerWidth, containerHeight, rootWidth, rootHeight float32) {
	if c.BorderTop != nil && c.BorderTop.Width != nil {
		c.CalculatedBorderTopWidth = c.BorderTop.Width.ResolveNonNegative(containerHeight, rootWidth, rootHeight)
	}
	if c.BorderBottom != nil && c.BorderBottom.Width != nil {
		c.CalculatedBorderBottomWidth = c.BorderBottom.Width.ResolveNonNegative(containerHeight, rootWidth, rootHeight)
	}
	if c.BorderLeft != nil && c.BorderLeft.Width != nil {
		c.CalculatedBorderLeftWidth = c.BorderLeft.Width.ResolveNonNegative(containerWidth, rootWidth, rootHeight)
	}
	if c.BorderRight != nil && c.BorderRight.Width != nil {
		c.CalculatedBorderRightWidth = c.BorderRight.Width.ResolveNonNegative(containerWidth, rootWidth, rootHeight)
	}
	if c.BorderTopLeftRadius != nil {
		c.CalculatedBorderTopLeftRadius = c.BorderTopLeftRadius.ResolveNonNegative(containerWidth, rootWidth, rootHeight)
	}
	if c.BorderTopRightRadius != nil {
		c.CalculatedBorderTopRightRadius = c.BorderTopRightRadius.ResolveNonNegative(containerWidth, rootWidth, rootHeight)
	}
	if c.BorderBottomLeftRadius != nil {
		c.CalculatedBorderBottomLeftRadius = c.BorderBottomLeftRadius.ResolveNonNegative(containerWidth, rootWidth, rootHeight)
	}
	if c.BorderBottomRightRadius != nil {
		c.CalculatedBorderBottomRightRadius = c.BorderBottomRightRadius.ResolveNonNegative(containerWidth, rootWidth, rootHeight)
	}
}

func calcOpacity(c *container.Container, rootWidth, rootHeight float32) {
	if c.Opacity != nil {
		c.CalculatedOpacity = c.Opacity.ResolveNonNegative(1, rootWidth, rootHeight)
	}
}
