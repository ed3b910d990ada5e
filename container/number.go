package container

import (
	"strconv"

	"github.com/chewxy/math32"
)

// Unit identifies how a Number literal's value is interpreted.
type Unit int

const (
	// UnitPx is an absolute pixel (or unitless integer, promoted to
	// real) literal. It never depends on a containing block.
	UnitPx Unit = iota
	// UnitPercent resolves against the axis-appropriate containing-block
	// dimension passed to Resolve.
	UnitPercent
	// UnitVw resolves against the root (viewport) width.
	UnitVw
	// UnitVh resolves against the root (viewport) height.
	UnitVh
	// UnitDvw is the "dynamic viewport width" variant of UnitVw. The
	// engine treats it identically to UnitVw: the distinction matters to
	// the host's resize-tracking policy, not to a single layout pass.
	UnitDvw
	// UnitDvh is the dynamic-viewport-height counterpart of UnitVh.
	UnitDvh
)

// CalcOp is a binary operator inside a calc(...) expression.
type CalcOp int

const (
	CalcAdd CalcOp = iota
	CalcSub
	CalcMul
	CalcDiv
)

func (op CalcOp) String() string {
	switch op {
	case CalcAdd:
		return "+"
	case CalcSub:
		return "-"
	case CalcMul:
		return "*"
	case CalcDiv:
		return "/"
	default:
		return "?"
	}
}

// Number is a length expression: a literal term in one of the supported
// units, or a calc(...) node composing two sub-expressions with a binary
// operator. See SPEC_FULL.md §4's Number Resolver (C1).
type Number struct {
	// Composite is true for a calc(...) node; Left/Right/Op are only
	// meaningful in that case. Otherwise Unit/Value describe a literal.
	Composite bool
	Op        CalcOp
	Left      *Number
	Right     *Number

	Unit  Unit
	Value float32
}

// Px builds a literal pixel Number.
func Px(v float32) *Number { return &Number{Unit: UnitPx, Value: v} }

// Int builds a literal pixel Number from an integer, promoted to real
// per SPEC_FULL.md §4.1.
func Int(v int) *Number { return &Number{Unit: UnitPx, Value: float32(v)} }

// Percent builds a literal percent-of-containing-block Number.
func Percent(v float32) *Number { return &Number{Unit: UnitPercent, Value: v} }

// Vw builds a viewport-width-relative Number.
func Vw(v float32) *Number { return &Number{Unit: UnitVw, Value: v} }

// Vh builds a viewport-height-relative Number.
func Vh(v float32) *Number { return &Number{Unit: UnitVh, Value: v} }

// Dvw builds a dynamic-viewport-width-relative Number.
func Dvw(v float32) *Number { return &Number{Unit: UnitDvw, Value: v} }

// Dvh builds a dynamic-viewport-height-relative Number.
func Dvh(v float32) *Number { return &Number{Unit: UnitDvh, Value: v} }

// Calc builds a calc(...) composite Number.
func Calc(op CalcOp, left, right *Number) *Number {
	return &Number{Composite: true, Op: op, Left: left, Right: right}
}

// IsPureLiteralPixel reports whether n is a plain pixel/integer literal
// with no percent, viewport unit, or calc() composition — the condition
// the Hard-Size Propagator (C3) uses to stamp calculated sizes before
// any content-dependent pass runs.
func (n *Number) IsPureLiteralPixel() bool {
	return n != nil && !n.Composite && n.Unit == UnitPx
}

// Resolve evaluates the length expression against a containing-block
// dimension c and root (viewport) width/height, producing a pixel
// value. Horizontal properties should pass the containing block's
// width as c and vertical properties its height; vw/dvw and vh/dvh
// always resolve against rootWidth/rootHeight respectively regardless
// of axis. Division by zero inside calc() is fatal (KindDivisionByZero)
// — there is no silent NaN propagation.
func (n *Number) Resolve(c, rootWidth, rootHeight float32) float32 {
	if n == nil {
		return 0
	}
	if n.Composite {
		l := n.Left.Resolve(c, rootWidth, rootHeight)
		r := n.Right.Resolve(c, rootWidth, rootHeight)
		switch n.Op {
		case CalcAdd:
			return l + r
		case CalcSub:
			return l - r
		case CalcMul:
			return l * r
		case CalcDiv:
			if r == 0 {
				Fatal(KindDivisionByZero, "calc() division by zero: %v / %v", l, r)
			}
			return l / r
		default:
			Fatal(KindDivisionByZero, "calc() unknown operator %v", n.Op)
		}
	}
	switch n.Unit {
	case UnitPx:
		return n.Value
	case UnitPercent:
		return c * n.Value / 100
	case UnitVw, UnitDvw:
		return rootWidth * n.Value / 100
	case UnitVh, UnitDvh:
		return rootHeight * n.Value / 100
	default:
		return 0
	}
}

// ResolveNonNegative is Resolve clamped to zero, for contexts (most
// style properties) where a negative pixel value would violate
// invariant 1.
func (n *Number) ResolveNonNegative(c, rootWidth, rootHeight float32) float32 {
	return math32.Max(0, n.Resolve(c, rootWidth, rootHeight))
}

func (n *Number) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Composite {
		return "calc(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
	}
	switch n.Unit {
	case UnitPercent:
		return formatFloat(n.Value) + "%"
	case UnitVw:
		return formatFloat(n.Value) + "vw"
	case UnitVh:
		return formatFloat(n.Value) + "vh"
	case UnitDvw:
		return formatFloat(n.Value) + "dvw"
	case UnitDvh:
		return formatFloat(n.Value) + "dvh"
	default:
		return formatFloat(n.Value) + "px"
	}
}

func formatFloat(v float32) string {
	// Trimmed formatting good enough for diagnostics; not on any hot path.
	i := int64(v)
	if float32(i) == v {
		return strconv.FormatInt(i, 10)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
