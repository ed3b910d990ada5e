package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataui/layout/container"
)

func TestBuildMetricsFixed(t *testing.T) {
	m, err := buildMetrics("fixed", "")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestBuildMetricsTrueTypeRequiresFontFile(t *testing.T) {
	_, err := buildMetrics("truetype", "")
	assert.Error(t, err)
}

func TestBuildMetricsUnknownKind(t *testing.T) {
	_, err := buildMetrics("bogus", "")
	assert.Error(t, err)
}

func TestTruncatedDumpStopsAtMaxDepth(t *testing.T) {
	leaf := &container.Container{Element: container.ElementSpan, CalculatedWidth: 10, CalculatedHeight: 10}
	mid := &container.Container{Element: container.ElementDiv, Children: []*container.Container{leaf}}
	root := &container.Container{Element: container.ElementDiv, Children: []*container.Container{mid}}

	out := truncatedDump(root, 0, 1)
	assert.Contains(t, out, "...(truncated)")
	assert.NotContains(t, out, "Span", "dump should not descend into the truncated leaf")
}

func TestTruncatedDumpNilContainer(t *testing.T) {
	assert.Equal(t, "", truncatedDump(nil, 0, 3))
}
