package pathdata

// Segment is a command resolved to absolute coordinates.
type Segment struct {
	Kind    Kind
	Start   Point     // current point before the command
	Values  []float64 // absolute parameters, same order and length as the command's
	Control Point     // implicit first control point of smooth curves, Start otherwise
	end     Point
}

// End returns the current point after the segment.
func (seg Segment) End() Point {
	return seg.end
}

// Normalize returns one segment per command in absolute coordinates. The path itself is not changed.
func Normalize(p Path) []Segment {
	segs := make([]Segment, 0, p.Len())
	for s := p.Scanner(); s.Scan(); {
		segs = append(segs, Segment{
			Kind:    s.Kind(),
			Start:   s.Start(),
			Values:  s.Values(),
			Control: s.Control(),
			end:     s.End(),
		})
	}
	return segs
}

// Absolute returns the same path with every command in absolute coordinates. Command kinds are kept, so smooth curves stay smooth curves.
func (p Path) Absolute() Path {
	cmds := make([]Command, 0, len(p.cmds))
	for s := p.Scanner(); s.Scan(); {
		cmd := Command{kind: s.Kind()}
		copy(cmd.d[:], s.Values())
		cmds = append(cmds, cmd)
	}
	return Path{cmds}
}
