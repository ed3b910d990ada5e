package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberLiterals(t *testing.T) {
	cases := []struct {
		in   string
		c    float32
		root float32
		want float32
	}{
		{"16px", 0, 0, 16},
		{"16", 0, 0, 16},
		{"50%", 200, 0, 100},
		{"100vw", 0, 400, 400},
		{"100vh", 0, 300, 300},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			n, err := ParseNumber(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.Resolve(tc.c, tc.root, tc.root))
		})
	}
}

func TestParseNumberCalcExpression(t *testing.T) {
	n, err := ParseNumber("calc(100% - 2 * 8px)")
	require.NoError(t, err)
	assert.Equal(t, float32(184), n.Resolve(200, 0, 0))
}

func TestParseNumberNestedParens(t *testing.T) {
	n, err := ParseNumber("calc((10px + 5px) * 2)")
	require.NoError(t, err)
	assert.Equal(t, float32(30), n.Resolve(0, 0, 0))
}

func TestParseNumberWhitespace(t *testing.T) {
	n, err := ParseNumber("  calc( 100%   -   10px )  ")
	require.NoError(t, err)
	assert.Equal(t, float32(90), n.Resolve(100, 0, 0))
}

func TestParseNumberErrors(t *testing.T) {
	cases := []string{
		"",
		"px",
		"calc(1px",
		"1px extra",
		"calc(1px + )",
	}
	for _, in := range cases {
		_, err := ParseNumber(in)
		assert.Error(t, err, "ParseNumber(%q) expected error", in)
	}
}

func TestMustParseNumberPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustParseNumber("not a number")
	})
}
