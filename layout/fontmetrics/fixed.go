// Package fontmetrics provides FontMetrics implementations for the
// layout engine: a deterministic Fixed metric for tests, and a real
// glyph-based TrueType metric for hosts that have an actual font file.
package fontmetrics

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Fixed is a deterministic FontMetrics implementation: every grapheme
// cluster (not byte, not rune — a user-perceived character, via
// github.com/rivo/uniseg) occupies AdvanceFactor*fontSize pixels of
// width and LineHeightFactor*fontSize pixels of height. It breaks onto
// additional lines at any grapheme boundary when a line would exceed
// the width budget (word boundaries are not considered), without
// needing an actual font file — useful for deterministic tests (spec.md §9: "Font
// metrics as a capability... allows tests to inject deterministic text
// measurement").
type Fixed struct {
	// AdvanceFactor is the per-grapheme-cluster width, as a multiple of
	// fontSize. Defaults to 0.6 if zero.
	AdvanceFactor float32
	// LineHeightFactor is the per-line height, as a multiple of
	// fontSize. Defaults to 1.2 if zero.
	LineHeightFactor float32
}

// NewFixed returns a Fixed metric with the conventional 0.6/1.2 advance
// and line-height factors (roughly what a monospace font at a typical
// aspect ratio occupies).
func NewFixed() *Fixed {
	return &Fixed{AdvanceFactor: 0.6, LineHeightFactor: 1.2}
}

// GraphemeWidth counts the user-perceived characters (grapheme
// clusters, via github.com/rivo/uniseg) in text, ignoring line breaks.
// It is the fallback width estimator used whenever no font file is
// available: callers multiply the result by a per-character advance to
// get a pixel width without needing real glyph metrics.
func GraphemeWidth(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if strings.ContainsRune(gr.Str(), '\n') {
			continue
		}
		n++
	}
	return n
}

func (f *Fixed) advance() float32 {
	if f.AdvanceFactor == 0 {
		return 0.6
	}
	return f.AdvanceFactor
}

func (f *Fixed) lineHeight() float32 {
	if f.LineHeightFactor == 0 {
		return 1.2
	}
	return f.LineHeightFactor
}

// MeasureText implements layout.FontMetrics.
func (f *Fixed) MeasureText(text string, fontSize, widthBudget float32) (width, height float32) {
	charWidth := f.advance() * fontSize
	lineHeight := f.lineHeight() * fontSize
	if text == "" {
		return 0, lineHeight
	}

	maxPerLine := 1
	if charWidth > 0 && widthBudget > 0 {
		maxPerLine = int(widthBudget / charWidth)
		if maxPerLine < 1 {
			maxPerLine = 1
		}
	}

	lines := 1
	lineWidth := 0
	widestLine := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if strings.ContainsRune(gr.Str(), '\n') {
			if lineWidth > widestLine {
				widestLine = lineWidth
			}
			lines++
			lineWidth = 0
			continue
		}
		if widthBudget > 0 && lineWidth >= maxPerLine {
			if lineWidth > widestLine {
				widestLine = lineWidth
			}
			lines++
			lineWidth = 0
		}
		lineWidth++
	}
	if lineWidth > widestLine {
		widestLine = lineWidth
	}

	return float32(widestLine) * charWidth, float32(lines) * lineHeight
}
