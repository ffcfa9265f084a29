package pathdata

// Scanner walks over the commands of a path and resolves them to absolute coordinates. It keeps the current point, the start of the subpath and the last control point as it goes.
type Scanner struct {
	p Path
	i int

	start, end Point
	subpath    Point // start of the current subpath
	ctrl       Point // implicit first control point of S and T
	cp         Point // last control point of the previous curve
	prev       Kind
	d          [MaxArity]float64
}

// Scanner returns a scanner positioned before the first command.
func (p Path) Scanner() *Scanner {
	return &Scanner{p: p, i: -1, prev: -1}
}

// Scan advances to the next command and returns false when there are no more.
func (s *Scanner) Scan() bool {
	if len(s.p.cmds) <= s.i+1 {
		return false
	}
	if 0 <= s.i {
		s.prev = s.p.cmds[s.i].kind
	}
	s.i++

	cmd := s.p.cmds[s.i]
	cur := s.end
	s.start = cur
	s.d = cmd.d
	if cmd.rel {
		switch cmd.kind {
		case HorizontalLineTo:
			s.d[0] += cur.X
		case VerticalLineTo:
			s.d[0] += cur.Y
		case EllipticalArc:
			s.d[5] += cur.X
			s.d[6] += cur.Y
		case ClosePath:
		default:
			for j := 0; j < cmd.kind.Arity(); j += 2 {
				s.d[j] += cur.X
				s.d[j+1] += cur.Y
			}
		}
	}

	s.ctrl = cur
	switch cmd.kind {
	case MoveTo:
		s.end = Point{s.d[0], s.d[1]}
		s.subpath = s.end
	case LineTo:
		s.end = Point{s.d[0], s.d[1]}
	case HorizontalLineTo:
		s.end = Point{s.d[0], cur.Y}
	case VerticalLineTo:
		s.end = Point{cur.X, s.d[0]}
	case CubicCurve:
		s.cp = Point{s.d[2], s.d[3]}
		s.end = Point{s.d[4], s.d[5]}
	case SmoothCubicCurve:
		if s.prev == CubicCurve || s.prev == SmoothCubicCurve {
			s.ctrl = cur.Reflect(s.cp)
		}
		s.cp = Point{s.d[0], s.d[1]}
		s.end = Point{s.d[2], s.d[3]}
	case QuadraticCurve:
		s.cp = Point{s.d[0], s.d[1]}
		s.end = Point{s.d[2], s.d[3]}
	case SmoothQuadraticCurve:
		if s.prev == QuadraticCurve || s.prev == SmoothQuadraticCurve {
			s.ctrl = cur.Reflect(s.cp)
		}
		s.cp = s.ctrl
		s.end = Point{s.d[0], s.d[1]}
	case EllipticalArc:
		s.end = Point{s.d[5], s.d[6]}
	case ClosePath:
		s.end = s.subpath
	}
	return true
}

// Index returns the index of the current command.
func (s *Scanner) Index() int {
	return s.i
}

// Command returns the current command as it appears in the path.
func (s *Scanner) Command() Command {
	return s.p.cmds[s.i]
}

// Kind returns the kind of the current command.
func (s *Scanner) Kind() Kind {
	return s.p.cmds[s.i].kind
}

// Values returns the parameters of the current command in absolute coordinates.
func (s *Scanner) Values() []float64 {
	n := s.p.cmds[s.i].kind.Arity()
	values := make([]float64, n)
	copy(values, s.d[:n])
	return values
}

// Start returns the current point before the command.
func (s *Scanner) Start() Point {
	return s.start
}

// End returns the current point after the command. For ClosePath this is the start of the subpath.
func (s *Scanner) End() Point {
	return s.end
}

// Control returns the implicit first control point of smooth curves, which is the reflection of the previous curve's last control point through the current point, or the current point itself when the previous command is not a compatible curve. For other commands it returns Start.
func (s *Scanner) Control() Point {
	return s.ctrl
}

// CP1 returns the first control point for quadratic and cubic Béziers.
func (s *Scanner) CP1() Point {
	switch s.Kind() {
	case CubicCurve, QuadraticCurve:
		return Point{s.d[0], s.d[1]}
	case SmoothCubicCurve, SmoothQuadraticCurve:
		return s.ctrl
	}
	panic("must be quadratic or cubic Bézier")
}

// CP2 returns the second control point for cubic Béziers.
func (s *Scanner) CP2() Point {
	switch s.Kind() {
	case CubicCurve:
		return Point{s.d[2], s.d[3]}
	case SmoothCubicCurve:
		return Point{s.d[0], s.d[1]}
	}
	panic("must be cubic Bézier")
}
