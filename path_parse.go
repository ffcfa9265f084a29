package pathdata

import (
	"io"

	"github.com/tdewolff/parse/v2"
)

// Parse parses SVG path data into a sequence of commands. It returns a LexError, ArityError, UnknownCommandError or ErrEmptyInput on failure, and never a partial path.
//
// A subpath that is left open but whose last point coincides with its start is closed by inserting a ClosePath before the next MoveTo. Parsing the text of such a path therefore returns one more command than the path had. Use ParseLiteral to keep the commands exactly as written, ParseLiteral(p.String()) always equals p.
func Parse(s string) (Path, error) {
	p, err := ParseLiteral(s)
	if err != nil {
		return Path{}, err
	}
	return Path{closeLoops(p.cmds)}, nil
}

// ParseLiteral parses SVG path data like Parse, but returns one command per parameter group as written without closing loops.
func ParseLiteral(s string) (Path, error) {
	l := NewLexer(parse.NewInputString(s))
	cmds := []Command{}

	var hasCmd bool
	var letter byte   // letter of the active group
	var kind Kind     // kind of the next command, LineTo after the first pair of a MoveTo
	var cmdOffset int // offset of the active letter
	var count int     // parameters since the active letter
	var leading, leadingOffset int
	var d [MaxArity]float64
	n := 0

	endGroup := func() error {
		if !hasCmd {
			return nil
		}
		groupKind, _, _ := KindOf(letter)
		arity := groupKind.Arity()
		if arity == 0 && count != 0 || arity != 0 && (count == 0 || n != 0) {
			return &ArityError{Offset: cmdOffset, Cmd: letter, Kind: groupKind, Got: count}
		}
		return nil
	}

	for {
		t := l.Next()
		switch t.Type {
		case ErrorToken:
			if err := l.Err(); err != io.EOF {
				return Path{}, err
			} else if !hasCmd {
				return Path{}, ErrEmptyInput
			} else if err := endGroup(); err != nil {
				return Path{}, err
			}
			return Path{cmds}, nil
		case CommandToken:
			if err := endGroup(); err != nil {
				return Path{}, err
			} else if 0 < leading {
				return Path{}, &ArityError{Offset: leadingOffset, Got: leading}
			}
			c := t.Data[0]
			var rel, ok bool
			if kind, rel, ok = KindOf(c); !ok {
				return Path{}, &UnknownCommandError{Offset: t.Offset, Cmd: c}
			}
			hasCmd = true
			letter = c
			cmdOffset = t.Offset
			count = 0
			n = 0
			if kind == ClosePath {
				cmds = append(cmds, Command{kind: ClosePath, rel: rel})
			}
		case NumberToken, FlagToken:
			if !hasCmd {
				if leading == 0 {
					leadingOffset = t.Offset
				}
				leading++
				continue
			}
			count++
			if kind == ClosePath {
				continue
			}
			d[n] = t.Value
			n++
			if n == kind.Arity() {
				cmds = append(cmds, Command{kind: kind, rel: 'a' <= letter, d: d})
				d = [MaxArity]float64{}
				n = 0
				if kind == MoveTo {
					kind = LineTo
				}
			}
		}
	}
}

// MustParse parses SVG path data and panics on error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MustParseLiteral parses SVG path data without closing loops and panics on error.
func MustParseLiteral(s string) Path {
	p, err := ParseLiteral(s)
	if err != nil {
		panic(err)
	}
	return p
}

// closeLoops inserts a ClosePath before each MoveTo that follows an open subpath ending at its own start.
func closeLoops(cmds []Command) []Command {
	var out []Command
	open := false
	var subpath Point
	for s := (Path{cmds}).Scanner(); s.Scan(); {
		switch s.Kind() {
		case MoveTo:
			if open && s.Start().Equals(subpath, Epsilon) {
				if out == nil {
					out = append(make([]Command, 0, len(cmds)+1), cmds[:s.Index()]...)
				}
				out = append(out, Command{kind: ClosePath})
			}
			open = false
			subpath = s.End()
		case ClosePath:
			open = false
		default:
			open = true
		}
		if out != nil {
			out = append(out, s.Command())
		}
	}
	if out == nil {
		return cmds
	}
	return out
}
