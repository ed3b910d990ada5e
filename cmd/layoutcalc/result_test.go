package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataui/layout/container"
)

func TestToResultFlat(t *testing.T) {
	c := &container.Container{
		Element:          container.ElementSpan,
		CalculatedX:      10,
		CalculatedY:      20,
		CalculatedWidth:  100,
		CalculatedHeight: 50,
		Hidden:           true,
	}
	r := toResult(c)
	assert.Equal(t, "Span", r.Element)
	assert.Equal(t, float32(10), r.X)
	assert.Equal(t, float32(20), r.Y)
	assert.Equal(t, float32(100), r.Width)
	assert.Equal(t, float32(50), r.Height)
	assert.True(t, r.Hidden)
	assert.Nil(t, r.Children)
}

func TestToResultNested(t *testing.T) {
	child := &container.Container{
		Element:          container.ElementDiv,
		CalculatedWidth:  30,
		CalculatedHeight: 40,
	}
	parent := &container.Container{
		Element:          container.ElementDiv,
		CalculatedWidth:  100,
		CalculatedHeight: 100,
		Children:         []*container.Container{child},
	}
	r := toResult(parent)
	require.Len(t, r.Children, 1)
	assert.Equal(t, float32(30), r.Children[0].Width)
	assert.Equal(t, float32(40), r.Children[0].Height)
}
