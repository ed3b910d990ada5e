package layout

// FontMetrics is the capability the engine consumes from the host
// (spec.md §5/§6): a pure, side-effect-free measurement of how much
// space a run of text occupies, given a font size and a horizontal
// width budget (for word-wrapping). Implementations must be safe to
// call concurrently from multiple goroutines laying out disjoint trees.
//
// Concrete implementations live in layout/fontmetrics: Fixed (a
// deterministic stub for tests) and TrueType (a real glyph-metrics
// implementation backed by github.com/golang/freetype).
type FontMetrics interface {
	MeasureText(text string, fontSize float32, widthBudget float32) (width, height float32)
}
