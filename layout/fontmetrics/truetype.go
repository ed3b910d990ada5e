package fontmetrics

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TrueType measures text by summing real glyph advances from a parsed
// TrueType font, the FontMetrics implementation a real rendering host
// plugs in (spec.md §5's "real implementation... plug into the host's
// toolkit"). It caches one font.Face per (size) pair since rasterizing
// a face is comparatively expensive and fontSize repeats heavily
// across a layout pass.
type TrueType struct {
	font *truetype.Font

	mu    sync.Mutex
	faces map[int]font.Face // keyed by fontSize rounded to the nearest pixel
}

// NewTrueType parses the given TrueType/OpenType font file bytes.
func NewTrueType(fontBytes []byte) (*TrueType, error) {
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("fontmetrics: parsing truetype font: %w", err)
	}
	return &TrueType{font: f, faces: make(map[int]font.Face)}, nil
}

// faceForSize must be called with t.mu held.
func (t *TrueType) faceForSize(fontSize float32) font.Face {
	key := int(fontSize + 0.5)
	if f, ok := t.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(t.font, &truetype.Options{
		Size:    float64(key),
		Hinting: font.HintingFull,
	})
	t.faces[key] = f
	return f
}

// MeasureText implements layout.FontMetrics using the parsed font's
// real glyph advances, word-wrapping greedily at grapheme-cluster
// boundaries (via github.com/rivo/uniseg) once a line would exceed
// widthBudget.
func (t *TrueType) MeasureText(text string, fontSize, widthBudget float32) (width, height float32) {
	// A font.Face is not safe for concurrent use, so the whole
	// measurement runs under t.mu, not just the face-cache lookup.
	t.mu.Lock()
	defer t.mu.Unlock()
	if text == "" {
		return 0, lineHeightFor(t.faceForSize(fontSize))
	}
	face := t.faceForSize(fontSize)
	lh := lineHeightFor(face)

	var widest fixed.Int26_6
	var lineWidth fixed.Int26_6
	budget := fixed.Int26_6(widthBudget * 64)
	lines := 1
	var prev rune
	hasPrev := false

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		if cluster == "\n" {
			if lineWidth > widest {
				widest = lineWidth
			}
			lines++
			lineWidth = 0
			hasPrev = false
			continue
		}
		var clusterAdvance fixed.Int26_6
		for _, r := range cluster {
			if hasPrev {
				clusterAdvance += face.Kern(prev, r)
			}
			if adv, ok := face.GlyphAdvance(r); ok {
				clusterAdvance += adv
			}
			prev = r
			hasPrev = true
		}
		if widthBudget > 0 && lineWidth > 0 && lineWidth+clusterAdvance > budget {
			if lineWidth > widest {
				widest = lineWidth
			}
			lines++
			lineWidth = 0
			hasPrev = false
		}
		lineWidth += clusterAdvance
	}
	if lineWidth > widest {
		widest = lineWidth
	}

	return float32(widest) / 64, float32(lines) * lh
}

func lineHeightFor(face font.Face) float32 {
	m := face.Metrics()
	return float32(m.Height) / 64
}
