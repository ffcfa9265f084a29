package pathdata

// Equivalent returns true if both paths draw the same geometry within Tolerance. Relative and absolute commands are compared after resolving them to absolute coordinates. Use Path.Equals for exact comparison.
func Equivalent(p, q Path) bool {
	return EquivalentTolerance(p, q, Tolerance)
}

// EquivalentTolerance is like Equivalent but with a custom tolerance.
func EquivalentTolerance(p, q Path, epsilon float64) bool {
	if p.Len() != q.Len() {
		return false
	}
	sp, sq := p.Scanner(), q.Scanner()
	for sp.Scan() && sq.Scan() {
		if sp.Kind() != sq.Kind() {
			return false
		}
		for i := 0; i < sp.Kind().Arity(); i++ {
			if !equal(sp.d[i], sq.d[i], epsilon) {
				return false
			}
		}
		if kind := sp.Kind(); kind == SmoothCubicCurve || kind == SmoothQuadraticCurve {
			if !sp.Control().Equals(sq.Control(), epsilon) {
				return false
			}
		}
	}
	return true
}

// EqualStrings parses both path data strings and compares them exactly. Parse errors are returned and never reported as inequality.
func EqualStrings(a, b string) (bool, error) {
	p, err := Parse(a)
	if err != nil {
		return false, err
	}
	q, err := Parse(b)
	if err != nil {
		return false, err
	}
	return p.Equals(q), nil
}
