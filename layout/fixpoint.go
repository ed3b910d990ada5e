package layout

import "github.com/strataui/layout/container"

// runFixPoint is the Fix-Point Driver (C11): calc_inner_container in the
// original simply loops `while self.handle_overflow(...)`, re-running
// wrap placement, scrollbar reconciliation, and justification until a
// pass reports no further shift. A real tree converges in one or two
// iterations; exceeding the configured attempt cap means wrap/resize
// decisions are oscillating and is a programming error, not a
// recoverable condition, so it surfaces as KindFixPointDivergence.
func runFixPoint(ctx *calcContext, c *container.Container, relativeSize relSize) {
	attempt := 0
	for handleOverflow(ctx, c, relativeSize) {
		attempt++
		if attempt >= ctx.cfg.MaxFixPointAttempts {
			container.Fatal(container.KindFixPointDivergence,
				"fix-point driver did not converge after %d attempts on %s", attempt, c.Element)
		}
	}
}
