package pathdata

import (
	"fmt"
	"math"
)

// Kind is the drawing instruction of a command.
type Kind int

// see https://www.w3.org/TR/SVG11/paths.html#PathData
const (
	MoveTo Kind = iota
	LineTo
	HorizontalLineTo
	VerticalLineTo
	CubicCurve
	SmoothCubicCurve
	QuadraticCurve
	SmoothQuadraticCurve
	EllipticalArc
	ClosePath
)

// MaxArity is the largest number of parameters of any command.
const MaxArity = 7

var kindInfo = [...]struct {
	letter byte
	arity  int
	name   string
}{
	MoveTo:               {'M', 2, "MoveTo"},
	LineTo:               {'L', 2, "LineTo"},
	HorizontalLineTo:     {'H', 1, "HorizontalLineTo"},
	VerticalLineTo:       {'V', 1, "VerticalLineTo"},
	CubicCurve:           {'C', 6, "CubicCurve"},
	SmoothCubicCurve:     {'S', 4, "SmoothCubicCurve"},
	QuadraticCurve:       {'Q', 4, "QuadraticCurve"},
	SmoothQuadraticCurve: {'T', 2, "SmoothQuadraticCurve"},
	EllipticalArc:        {'A', 7, "EllipticalArc"},
	ClosePath:            {'Z', 0, "ClosePath"},
}

func (k Kind) valid() bool {
	return 0 <= k && int(k) < len(kindInfo)
}

// Arity returns the number of parameters that follow the command letter.
func (k Kind) Arity() int {
	if !k.valid() {
		return 0
	}
	return kindInfo[k].arity
}

// Letter returns the command letter, lowercase for relative commands.
func (k Kind) Letter(rel bool) byte {
	if !k.valid() {
		return '?'
	}
	c := kindInfo[k].letter
	if rel {
		c += 'a' - 'A'
	}
	return c
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindInfo[k].name
}

// KindOf decodes a command letter.
func KindOf(c byte) (Kind, bool, bool) {
	rel := false
	if 'a' <= c && c <= 'z' {
		rel = true
		c -= 'a' - 'A'
	}
	switch c {
	case 'M':
		return MoveTo, rel, true
	case 'L':
		return LineTo, rel, true
	case 'H':
		return HorizontalLineTo, rel, true
	case 'V':
		return VerticalLineTo, rel, true
	case 'C':
		return CubicCurve, rel, true
	case 'S':
		return SmoothCubicCurve, rel, true
	case 'Q':
		return QuadraticCurve, rel, true
	case 'T':
		return SmoothQuadraticCurve, rel, true
	case 'A':
		return EllipticalArc, rel, true
	case 'Z':
		return ClosePath, rel, true
	}
	return 0, false, false
}

// isFlag is true for the large-arc and sweep parameters of an arc.
func isFlag(kind Kind, i int) bool {
	return kind == EllipticalArc && (i == 3 || i == 4)
}

////////////////////////////////////////////////////////////////

// Command is a single drawing instruction. It is a value type and never changes once constructed.
type Command struct {
	kind Kind
	rel  bool
	d    [MaxArity]float64
}

// NewCommand returns a command of the given kind, it fails when the number of parameters does not match the arity or a parameter is NaN or infinite.
func NewCommand(kind Kind, rel bool, params ...float64) (Command, error) {
	if !kind.valid() {
		return Command{}, &UnknownCommandError{Offset: -1, Cmd: '?'}
	} else if len(params) != kind.Arity() {
		return Command{}, &ArityError{Offset: -1, Cmd: kind.Letter(rel), Kind: kind, Got: len(params)}
	}
	for i, f := range params {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Command{}, &ParamError{Kind: kind, Index: i, Value: f}
		}
	}
	c := Command{kind: kind, rel: rel}
	copy(c.d[:], params)
	if kind == EllipticalArc {
		c.d[3] = fromArcFlag(c.d[3] != 0.0)
		c.d[4] = fromArcFlag(c.d[4] != 0.0)
	}
	return c, nil
}

func fromArcFlag(f bool) float64 {
	if f {
		return 1.0
	}
	return 0.0
}

// MoveToCmd starts a new subpath at (x,y).
func MoveToCmd(x, y float64) Command {
	return Command{kind: MoveTo, d: [MaxArity]float64{x, y}}
}

// LineToCmd draws a straight line to (x,y).
func LineToCmd(x, y float64) Command {
	return Command{kind: LineTo, d: [MaxArity]float64{x, y}}
}

// HLineToCmd draws a horizontal line to x.
func HLineToCmd(x float64) Command {
	return Command{kind: HorizontalLineTo, d: [MaxArity]float64{x}}
}

// VLineToCmd draws a vertical line to y.
func VLineToCmd(y float64) Command {
	return Command{kind: VerticalLineTo, d: [MaxArity]float64{y}}
}

// CubeToCmd draws a cubic Bézier with control points (x1,y1) and (x2,y2) to (x,y).
func CubeToCmd(x1, y1, x2, y2, x, y float64) Command {
	return Command{kind: CubicCurve, d: [MaxArity]float64{x1, y1, x2, y2, x, y}}
}

// SmoothCubeToCmd draws a cubic Bézier whose first control point is the reflection of the previous one.
func SmoothCubeToCmd(x2, y2, x, y float64) Command {
	return Command{kind: SmoothCubicCurve, d: [MaxArity]float64{x2, y2, x, y}}
}

// QuadToCmd draws a quadratic Bézier with control point (x1,y1) to (x,y).
func QuadToCmd(x1, y1, x, y float64) Command {
	return Command{kind: QuadraticCurve, d: [MaxArity]float64{x1, y1, x, y}}
}

// SmoothQuadToCmd draws a quadratic Bézier whose control point is the reflection of the previous one.
func SmoothQuadToCmd(x, y float64) Command {
	return Command{kind: SmoothQuadraticCurve, d: [MaxArity]float64{x, y}}
}

// ArcToCmd draws an elliptical arc with radii rx and ry, with rot the rotation of the x-axis in degrees, to (x,y).
func ArcToCmd(rx, ry, rot float64, large, sweep bool, x, y float64) Command {
	return Command{kind: EllipticalArc, d: [MaxArity]float64{rx, ry, rot, fromArcFlag(large), fromArcFlag(sweep), x, y}}
}

// CloseCmd closes the current subpath.
func CloseCmd() Command {
	return Command{kind: ClosePath}
}

// Kind returns the drawing instruction.
func (c Command) Kind() Kind {
	return c.kind
}

// Relative is true when the coordinates are offsets from the current point.
func (c Command) Relative() bool {
	return c.rel
}

// Rel returns a copy of the command with relative coordinates. The parameters are not converted.
func (c Command) Rel() Command {
	c.rel = true
	return c
}

// Abs returns a copy of the command with absolute coordinates. The parameters are not converted.
func (c Command) Abs() Command {
	c.rel = false
	return c
}

// Params returns a copy of the parameters.
func (c Command) Params() []float64 {
	return c.d[:c.kind.Arity():c.kind.Arity()]
}

// Param returns the i-th parameter.
func (c Command) Param(i int) float64 {
	if i < 0 || c.kind.Arity() <= i {
		panic("parameter index out of range")
	}
	return c.d[i]
}

// ArcFlags returns the large-arc and sweep flags.
func (c Command) ArcFlags() (bool, bool) {
	if c.kind != EllipticalArc {
		panic("must be arc")
	}
	return c.d[3] == 1.0, c.d[4] == 1.0
}

// Letter returns the command letter.
func (c Command) Letter() byte {
	return c.kind.Letter(c.rel)
}

// Equals returns true if both commands have the same kind, relativity and identical parameters.
func (c Command) Equals(d Command) bool {
	return c == d
}
