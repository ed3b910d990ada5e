package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataui/layout/container"
)

func TestDecodeTreeJSON(t *testing.T) {
	doc := `{
		"element": "div",
		"direction": "row",
		"overflowX": "wrap",
		"children": [
			{"element": "span", "width": "100px", "height": "50px"},
			{"element": "span", "width": "50%"}
		]
	}`
	c, err := decodeTree([]byte(doc), "json")
	require.NoError(t, err)
	assert.Equal(t, container.ElementDiv, c.Element)
	assert.Equal(t, container.DirectionRow, c.Direction)
	assert.Equal(t, container.OverflowWrap, c.OverflowX)
	require.Len(t, c.Children, 2)
	assert.Equal(t, container.ElementSpan, c.Children[0].Element)
	require.NotNil(t, c.Children[0].Width)
	assert.Equal(t, float32(100), c.Children[0].Width.Resolve(0, 0, 0))
	require.NotNil(t, c.Children[1].Width)
	assert.Equal(t, float32(100), c.Children[1].Width.Resolve(200, 0, 0), "percent width should resolve against the containing block")
}

func TestDecodeTreeYAML(t *testing.T) {
	doc := "element: div\nposition: relative\nwidth: 10px\n"
	c, err := decodeTree([]byte(doc), "yaml")
	require.NoError(t, err)
	assert.Equal(t, container.PositionRelative, c.Position)
	require.NotNil(t, c.Width)
	assert.Equal(t, float32(10), c.Width.Resolve(0, 0, 0))
}

func TestDecodeTreeUnknownElement(t *testing.T) {
	_, err := decodeTree([]byte(`{"element": "bogus"}`), "json")
	assert.Error(t, err)
}

func TestDecodeTreeUnknownJustifyContent(t *testing.T) {
	_, err := decodeTree([]byte(`{"element": "div", "justifyContent": "bogus"}`), "json")
	assert.Error(t, err)
}

func TestDecodeTreeDefaultsOmittedFieldsToNil(t *testing.T) {
	c, err := decodeTree([]byte(`{"element": "div"}`), "json")
	require.NoError(t, err)
	assert.Nil(t, c.Width)
	assert.Nil(t, c.Height)
	assert.Nil(t, c.JustifyContent)
}
