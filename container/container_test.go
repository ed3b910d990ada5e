package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerIsVisible(t *testing.T) {
	var nilContainer *Container
	assert.False(t, nilContainer.IsVisible())
	c := &Container{}
	assert.True(t, c.IsVisible())
	c.Hidden = true
	assert.False(t, c.IsVisible())
}

func TestContainerAxisOverflow(t *testing.T) {
	c := &Container{Direction: DirectionRow, OverflowX: OverflowScroll, OverflowY: OverflowWrap}
	assert.Equal(t, OverflowScroll, c.MainAxisOverflow())
	assert.Equal(t, OverflowWrap, c.CrossAxisOverflow())

	c.Direction = DirectionColumn
	assert.Equal(t, OverflowWrap, c.MainAxisOverflow())
	assert.Equal(t, OverflowScroll, c.CrossAxisOverflow())
}

func TestContainerBoundingCalculatedWidth(t *testing.T) {
	c := &Container{
		CalculatedWidth:        100,
		CalculatedPaddingLeft:  5,
		CalculatedPaddingRight: 5,
		CalculatedMarginLeft:   2,
		CalculatedMarginRight:  2,
		ScrollbarRight:         16,
	}
	assert.Equal(t, float32(100+10+16+4), c.BoundingCalculatedWidth())
}

func TestContainerCalculatedWidthMinusBordersClampsToZero(t *testing.T) {
	c := &Container{CalculatedWidth: 5, CalculatedBorderLeftWidth: 10}
	assert.Equal(t, float32(0), c.CalculatedWidthMinusBorders())
}

func TestContainerPaddingAndMargins(t *testing.T) {
	c := &Container{
		CalculatedPaddingLeft: 1, CalculatedPaddingRight: 2,
		CalculatedMarginLeft: 3, CalculatedMarginRight: 4,
		CalculatedPaddingTop: 5, CalculatedPaddingBottom: 6,
		CalculatedMarginTop: 7, CalculatedMarginBottom: 8,
	}
	assert.Equal(t, float32(10), c.PaddingAndMargins(DirectionRow))
	assert.Equal(t, float32(26), c.PaddingAndMargins(DirectionColumn))
}

func TestContainerChildrenByPosition(t *testing.T) {
	rel := &Container{Position: PositionDefault}
	relExplicit := &Container{Position: PositionRelative}
	abs := &Container{Position: PositionAbsolute}
	fixed := &Container{Position: PositionFixed}
	hiddenAbs := &Container{Position: PositionAbsolute, Hidden: true}

	parent := &Container{Children: []*Container{rel, relExplicit, abs, fixed, hiddenAbs}}

	assert.Len(t, parent.RelativePositionedChildren(), 2)
	assert.Equal(t, []*Container{abs}, parent.AbsolutePositionedChildren())
	assert.Equal(t, []*Container{fixed}, parent.FixedPositionedChildren())
}
