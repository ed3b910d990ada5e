package fontmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedMeasureTextEmpty(t *testing.T) {
	f := NewFixed()
	w, h := f.MeasureText("", 10, 0)
	assert.Equal(t, float32(0), w)
	assert.Equal(t, float32(12), h)
}

func TestFixedMeasureTextSingleLineUnbounded(t *testing.T) {
	f := NewFixed()
	w, h := f.MeasureText("hello", 10, 0)
	assert.Equal(t, float32(30), w)
	assert.Equal(t, float32(12), h)
}

func TestFixedMeasureTextWrapsAtBudget(t *testing.T) {
	f := NewFixed()
	w, h := f.MeasureText("abcdef", 10, 18)
	assert.Equal(t, float32(18), w)
	assert.Equal(t, float32(24), h, "2 lines")
}

func TestFixedMeasureTextExplicitNewline(t *testing.T) {
	f := NewFixed()
	w, h := f.MeasureText("ab\ncd", 10, 0)
	assert.Equal(t, float32(12), w)
	assert.Equal(t, float32(24), h, "2 lines")
}

func TestFixedMeasureTextCustomFactors(t *testing.T) {
	f := &Fixed{AdvanceFactor: 1, LineHeightFactor: 2}
	w, h := f.MeasureText("ab", 10, 0)
	assert.Equal(t, float32(20), w)
	assert.Equal(t, float32(20), h)
}

func TestGraphemeWidth(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"hello": 5,
		"a\nb":  2,
	}
	for text, want := range cases {
		assert.Equal(t, want, GraphemeWidth(text), "GraphemeWidth(%q)", text)
	}
}
