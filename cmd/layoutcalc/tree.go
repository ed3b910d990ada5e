package main

import (
	"encoding/json"
	"fmt"

	"github.com/strataui/layout/container"
	"gopkg.in/yaml.v3"
)

// node is the wire format a host document (JSON by default, YAML with
// --format=yaml) is decoded into: every declared length is a bare
// string ("16px", "50%", "calc(100% - 2 * 8px)") parsed through
// container.ParseNumber at load time, matching the doc comment on
// ParseNumber itself ("once parsed, the engine never re-parses a
// Number"). Unset fields stay at the Go zero value, which toContainer
// (via parseOpt/borderSide) treats as "not declared".
type node struct {
	Element  string `json:"element" yaml:"element"`
	Children []node `json:"children,omitempty" yaml:"children,omitempty"`
	Hidden   bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`

	Width  string `json:"width,omitempty" yaml:"width,omitempty"`
	Height string `json:"height,omitempty" yaml:"height,omitempty"`

	MarginTop    string `json:"marginTop,omitempty" yaml:"marginTop,omitempty"`
	MarginRight  string `json:"marginRight,omitempty" yaml:"marginRight,omitempty"`
	MarginBottom string `json:"marginBottom,omitempty" yaml:"marginBottom,omitempty"`
	MarginLeft   string `json:"marginLeft,omitempty" yaml:"marginLeft,omitempty"`

	PaddingTop    string `json:"paddingTop,omitempty" yaml:"paddingTop,omitempty"`
	PaddingRight  string `json:"paddingRight,omitempty" yaml:"paddingRight,omitempty"`
	PaddingBottom string `json:"paddingBottom,omitempty" yaml:"paddingBottom,omitempty"`
	PaddingLeft   string `json:"paddingLeft,omitempty" yaml:"paddingLeft,omitempty"`

	BorderTopWidth    string `json:"borderTopWidth,omitempty" yaml:"borderTopWidth,omitempty"`
	BorderRightWidth  string `json:"borderRightWidth,omitempty" yaml:"borderRightWidth,omitempty"`
	BorderBottomWidth string `json:"borderBottomWidth,omitempty" yaml:"borderBottomWidth,omitempty"`
	BorderLeftWidth   string `json:"borderLeftWidth,omitempty" yaml:"borderLeftWidth,omitempty"`
	BorderColor       string `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`

	BorderTopLeftRadius     string `json:"borderTopLeftRadius,omitempty" yaml:"borderTopLeftRadius,omitempty"`
	BorderTopRightRadius    string `json:"borderTopRightRadius,omitempty" yaml:"borderTopRightRadius,omitempty"`
	BorderBottomRightRadius string `json:"borderBottomRightRadius,omitempty" yaml:"borderBottomRightRadius,omitempty"`
	BorderBottomLeftRadius  string `json:"borderBottomLeftRadius,omitempty" yaml:"borderBottomLeftRadius,omitempty"`

	Opacity string `json:"opacity,omitempty" yaml:"opacity,omitempty"`

	ColumnGap string `json:"columnGap,omitempty" yaml:"columnGap,omitempty"`
	RowGap    string `json:"rowGap,omitempty" yaml:"rowGap,omitempty"`

	Top    string `json:"top,omitempty" yaml:"top,omitempty"`
	Right  string `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom string `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   string `json:"left,omitempty" yaml:"left,omitempty"`

	Position       string `json:"position,omitempty" yaml:"position,omitempty"`
	Direction      string `json:"direction,omitempty" yaml:"direction,omitempty"`
	OverflowX      string `json:"overflowX,omitempty" yaml:"overflowX,omitempty"`
	OverflowY      string `json:"overflowY,omitempty" yaml:"overflowY,omitempty"`
	JustifyContent string `json:"justifyContent,omitempty" yaml:"justifyContent,omitempty"`

	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
	Src   string `json:"src,omitempty" yaml:"src,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// decodeTree parses b (JSON unless format == "yaml") into a node tree
// and converts it to a *container.Container.
func decodeTree(b []byte, format string) (*container.Container, error) {
	var n node
	var err error
	switch format {
	case "yaml":
		err = yaml.Unmarshal(b, &n)
	default:
		err = json.Unmarshal(b, &n)
	}
	if err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return n.toContainer()
}

var elementNames = map[string]container.Element{
	"div":      container.ElementDiv,
	"span":     container.ElementSpan,
	"header":   container.ElementHeader,
	"footer":   container.ElementFooter,
	"main":     container.ElementMain,
	"section":  container.ElementSection,
	"aside":    container.ElementAside,
	"form":     container.ElementForm,
	"button":   container.ElementButton,
	"a":        container.ElementAnchor,
	"h1":       container.ElementHeading1,
	"h2":       container.ElementHeading2,
	"h3":       container.ElementHeading3,
	"h4":       container.ElementHeading4,
	"h5":       container.ElementHeading5,
	"h6":       container.ElementHeading6,
	"ol":       container.ElementOrderedList,
	"ul":       container.ElementUnorderedList,
	"li":       container.ElementListItem,
	"table":    container.ElementTable,
	"thead":    container.ElementTHead,
	"tbody":    container.ElementTBody,
	"tr":       container.ElementTR,
	"th":       container.ElementTH,
	"td":       container.ElementTD,
	"img":      container.ElementImage,
	"input":    container.ElementInput,
	"canvas":   container.ElementCanvas,
	"text":     container.ElementRawText,
}

var positionNames = map[string]container.Position{
	"":         container.PositionDefault,
	"default":  container.PositionDefault,
	"relative": container.PositionRelative,
	"absolute": container.PositionAbsolute,
	"fixed":    container.PositionFixed,
}

var directionNames = map[string]container.Direction{
	"":       container.DirectionRow,
	"row":    container.DirectionRow,
	"column": container.DirectionColumn,
}

var overflowNames = map[string]container.Overflow{
	"":       container.OverflowAuto,
	"auto":   container.OverflowAuto,
	"scroll": container.OverflowScroll,
	"expand": container.OverflowExpand,
	"hidden": container.OverflowHidden,
	"squash": container.OverflowSquash,
	"wrap":   container.OverflowWrap,
}

var justifyNames = map[string]container.JustifyContent{
	"start":         container.JustifyStart,
	"center":        container.JustifyCenter,
	"end":           container.JustifyEnd,
	"space-between": container.JustifySpaceBetween,
	"space-evenly":  container.JustifySpaceEvenly,
}

func (n node) toContainer() (*container.Container, error) {
	el, ok := elementNames[n.Element]
	if !ok && n.Element != "" {
		return nil, fmt.Errorf("decode tree: unknown element %q", n.Element)
	}
	pos, ok := positionNames[n.Position]
	if !ok {
		return nil, fmt.Errorf("decode tree: unknown position %q", n.Position)
	}
	dir, ok := directionNames[n.Direction]
	if !ok {
		return nil, fmt.Errorf("decode tree: unknown direction %q", n.Direction)
	}
	ox, ok := overflowNames[n.OverflowX]
	if !ok {
		return nil, fmt.Errorf("decode tree: unknown overflowX %q", n.OverflowX)
	}
	oy, ok := overflowNames[n.OverflowY]
	if !ok {
		return nil, fmt.Errorf("decode tree: unknown overflowY %q", n.OverflowY)
	}

	c := &container.Container{
		Element:   el,
		Hidden:    n.Hidden,
		Position:  pos,
		Direction: dir,
		OverflowX: ox,
		OverflowY: oy,
		Href:      n.Href,
		Src:       n.Src,
		Value:     n.Value,
	}

	var err error
	if c.Width, err = parseOpt(n.Width); err != nil {
		return nil, err
	}
	if c.Height, err = parseOpt(n.Height); err != nil {
		return nil, err
	}
	if c.MarginTop, err = parseOpt(n.MarginTop); err != nil {
		return nil, err
	}
	if c.MarginRight, err = parseOpt(n.MarginRight); err != nil {
		return nil, err
	}
	if c.MarginBottom, err = parseOpt(n.MarginBottom); err != nil {
		return nil, err
	}
	if c.MarginLeft, err = parseOpt(n.MarginLeft); err != nil {
		return nil, err
	}
	if c.PaddingTop, err = parseOpt(n.PaddingTop); err != nil {
		return nil, err
	}
	if c.PaddingRight, err = parseOpt(n.PaddingRight); err != nil {
		return nil, err
	}
	if c.PaddingBottom, err = parseOpt(n.PaddingBottom); err != nil {
		return nil, err
	}
	if c.PaddingLeft, err = parseOpt(n.PaddingLeft); err != nil {
		return nil, err
	}
	if c.BorderTopLeftRadius, err = parseOpt(n.BorderTopLeftRadius); err != nil {
		return nil, err
	}
	if c.BorderTopRightRadius, err = parseOpt(n.BorderTopRightRadius); err != nil {
		return nil, err
	}
	if c.BorderBottomRightRadius, err = parseOpt(n.BorderBottomRightRadius); err != nil {
		return nil, err
	}
	if c.BorderBottomLeftRadius, err = parseOpt(n.BorderBottomLeftRadius); err != nil {
		return nil, err
	}
	if c.Opacity, err = parseOpt(n.Opacity); err != nil {
		return nil, err
	}
	if c.ColumnGap, err = parseOpt(n.ColumnGap); err != nil {
		return nil, err
	}
	if c.RowGap, err = parseOpt(n.RowGap); err != nil {
		return nil, err
	}
	if c.Top, err = parseOpt(n.Top); err != nil {
		return nil, err
	}
	if c.Right, err = parseOpt(n.Right); err != nil {
		return nil, err
	}
	if c.Bottom, err = parseOpt(n.Bottom); err != nil {
		return nil, err
	}
	if c.Left, err = parseOpt(n.Left); err != nil {
		return nil, err
	}

	c.BorderTop, err = borderSide(n.BorderTopWidth, n.BorderColor)
	if err != nil {
		return nil, err
	}
	c.BorderRight, err = borderSide(n.BorderRightWidth, n.BorderColor)
	if err != nil {
		return nil, err
	}
	c.BorderBottom, err = borderSide(n.BorderBottomWidth, n.BorderColor)
	if err != nil {
		return nil, err
	}
	c.BorderLeft, err = borderSide(n.BorderLeftWidth, n.BorderColor)
	if err != nil {
		return nil, err
	}

	if n.JustifyContent != "" {
		j, ok := justifyNames[n.JustifyContent]
		if !ok {
			return nil, fmt.Errorf("decode tree: unknown justifyContent %q", n.JustifyContent)
		}
		c.JustifyContent = &j
	}

	for _, child := range n.Children {
		cc, err := child.toContainer()
		if err != nil {
			return nil, err
		}
		c.Children = append(c.Children, cc)
	}

	return c, nil
}

func parseOpt(s string) (*container.Number, error) {
	if s == "" {
		return nil, nil
	}
	return container.ParseNumber(s)
}

func borderSide(width, color string) (*container.Border, error) {
	if width == "" {
		return nil, nil
	}
	w, err := container.ParseNumber(width)
	if err != nil {
		return nil, err
	}
	return &container.Border{Color: color, Width: w}, nil
}
