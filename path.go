// Package pathdata parses, writes and compares SVG path data.
package pathdata

// Path is an ordered sequence of commands describing one or more subpaths. A Path is immutable, every operation that changes it returns a new Path.
type Path struct {
	cmds []Command
}

// New returns a path of the given commands.
func New(cmds ...Command) Path {
	return Path{append([]Command{}, cmds...)}
}

// Empty returns true if the path has no commands.
func (p Path) Empty() bool {
	return len(p.cmds) == 0
}

// Len returns the number of commands.
func (p Path) Len() int {
	return len(p.cmds)
}

// At returns the i-th command.
func (p Path) At(i int) Command {
	return p.cmds[i]
}

// Commands returns a copy of the commands.
func (p Path) Commands() []Command {
	return append([]Command{}, p.cmds...)
}

// Count returns the number of commands of the given kind.
func (p Path) Count(kind Kind) int {
	n := 0
	for _, cmd := range p.cmds {
		if cmd.kind == kind {
			n++
		}
	}
	return n
}

// Subpaths returns the number of subpaths, which is the number of MoveTo commands.
func (p Path) Subpaths() int {
	return p.Count(MoveTo)
}

// Closed returns true if the path is not empty and every subpath ends with a ClosePath.
func (p Path) Closed() bool {
	if len(p.cmds) == 0 {
		return false
	}
	for i, cmd := range p.cmds {
		if 0 < i && cmd.kind == MoveTo && p.cmds[i-1].kind != ClosePath {
			return false
		}
	}
	return p.cmds[len(p.cmds)-1].kind == ClosePath
}

// Append returns a new path with the commands of q after those of p.
func (p Path) Append(q Path) Path {
	cmds := make([]Command, 0, len(p.cmds)+len(q.cmds))
	cmds = append(cmds, p.cmds...)
	cmds = append(cmds, q.cmds...)
	return Path{cmds}
}

// Equals returns true if both paths have the same commands with identical parameters and relativity. Use Equivalent to compare geometry.
func (p Path) Equals(q Path) bool {
	if len(p.cmds) != len(q.cmds) {
		return false
	}
	for i := range p.cmds {
		if p.cmds[i] != q.cmds[i] {
			return false
		}
	}
	return true
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return p.AppendText(nil)
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text results in an empty path.
func (p *Path) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*p = Path{}
		return nil
	}
	q, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = q
	return nil
}
