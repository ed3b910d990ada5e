package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberResolveLiterals(t *testing.T) {
	cases := []struct {
		name string
		n    *Number
		c    float32
		root float32
		want float32
	}{
		{"px", Px(10), 200, 400, 10},
		{"percent", Percent(50), 200, 400, 100},
		{"vw", Vw(25), 200, 400, 100},
		{"vh", Vh(25), 200, 300, 75},
		{"dvw treated as vw", Dvw(10), 200, 400, 40},
		{"dvh treated as vh", Dvh(10), 200, 300, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.n.Resolve(tc.c, tc.root, tc.root))
		})
	}
}

func TestNumberResolveNil(t *testing.T) {
	var n *Number
	assert.Equal(t, float32(0), n.Resolve(100, 100, 100))
}

func TestNumberCalc(t *testing.T) {
	// calc(100% - 2 * 8px) against a 200px containing block == 184.
	expr := Calc(CalcSub, Percent(100), Calc(CalcMul, Int(2), Px(8)))
	assert.Equal(t, float32(184), expr.Resolve(200, 0, 0))
}

func TestNumberCalcDivisionByZero(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic on division by zero")
		fe, ok := r.(*FatalError)
		require.True(t, ok, "panic value is %T, want *FatalError", r)
		assert.Equal(t, KindDivisionByZero, fe.Kind)
	}()
	Calc(CalcDiv, Px(10), Px(0)).Resolve(0, 0, 0)
}

func TestNumberResolveNonNegativeClamps(t *testing.T) {
	n := Px(-5)
	assert.Equal(t, float32(0), n.ResolveNonNegative(0, 0, 0))
}

func TestNumberIsPureLiteralPixel(t *testing.T) {
	assert.True(t, Px(10).IsPureLiteralPixel())
	assert.False(t, Percent(10).IsPureLiteralPixel())
	assert.False(t, Calc(CalcAdd, Px(1), Px(2)).IsPureLiteralPixel())
	var nilNumber *Number
	assert.False(t, nilNumber.IsPureLiteralPixel())
}

func TestNumberString(t *testing.T) {
	cases := map[string]*Number{
		"10px":  Px(10),
		"50%":   Percent(50),
		"25vw":  Vw(25),
		"25vh":  Vh(25),
		"10dvw": Dvw(10),
		"10dvh": Dvh(10),
	}
	for want, n := range cases {
		assert.Equal(t, want, n.String())
	}
	assert.Equal(t, "calc(1px + 2px)", Calc(CalcAdd, Px(1), Px(2)).String())
}
