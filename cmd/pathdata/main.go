package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kpango/glg"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/pathdata"
	"github.com/tdewolff/pathdata/svg"
)

type Format struct {
	Literal  bool   `short:"l" desc:"Keep commands as written, without closing subpaths that return to their start"`
	Absolute bool   `short:"a" desc:"Write all commands in absolute coordinates"`
	Data     string `index:"0" desc:"Path data, or - for stdin"`
}

type Minify struct {
	Precision int    `short:"p" default:"6" desc:"Significant digits"`
	Data      string `index:"0" desc:"Path data, or - for stdin"`
}

type Compare struct {
	Epsilon float64 `short:"e" default:"0.01" desc:"Tolerance for absolute coordinates"`
	A       string  `index:"0" desc:"First path data"`
	B       string  `index:"1" desc:"Second path data"`
}

type SVG struct {
	Minify    bool   `short:"m" desc:"Write minified path data"`
	Precision int    `short:"p" default:"6" desc:"Significant digits when minifying"`
	Input     string `index:"0" desc:"SVG file, or - for stdin"`
}

type Dump struct {
	Data string `index:"0" desc:"Path data, or - for stdin"`
}

func main() {
	root := argp.NewCmd(&Format{}, "SVG path data toolkit")
	root.AddCmd(&Minify{}, "min", "Minify path data")
	root.AddCmd(&Compare{}, "cmp", "Compare two paths exactly and within a tolerance")
	root.AddCmd(&SVG{}, "svg", "List the path data of an SVG document")
	root.AddCmd(&Dump{}, "dump", "Print every command in absolute coordinates")
	root.Parse()
	root.PrintHelp()
}

func readData(s string) (string, error) {
	if s != "-" {
		return s, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func parseData(s string, literal bool) (pathdata.Path, error) {
	data, err := readData(s)
	if err != nil {
		return pathdata.Path{}, err
	}
	if literal {
		return pathdata.ParseLiteral(data)
	}
	return pathdata.Parse(data)
}

func (cmd *Format) Run() error {
	if cmd.Data == "" {
		return argp.ShowUsage
	}

	p, err := parseData(cmd.Data, cmd.Literal)
	if err != nil {
		return err
	}
	if cmd.Absolute {
		p = p.Absolute()
	}
	fmt.Println(p)
	return nil
}

func (cmd *Minify) Run() error {
	if cmd.Data == "" {
		return argp.ShowUsage
	}

	p, err := parseData(cmd.Data, false)
	if err != nil {
		return err
	}
	fmt.Println(p.Minify(cmd.Precision))
	return nil
}

func (cmd *Compare) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}

	p, err := pathdata.Parse(cmd.A)
	if err != nil {
		return fmt.Errorf("first path: %w", err)
	}
	q, err := pathdata.Parse(cmd.B)
	if err != nil {
		return fmt.Errorf("second path: %w", err)
	}
	fmt.Println(compare(p, q, cmd.Epsilon))
	return nil
}

// compare describes how two paths relate.
func compare(p, q pathdata.Path, epsilon float64) string {
	if p.Equals(q) {
		return "equal"
	} else if pathdata.EquivalentTolerance(p, q, epsilon) {
		return "equivalent"
	} else if p.Len() != q.Len() {
		return fmt.Sprintf("different: %d and %d commands", p.Len(), q.Len())
	}

	segs, segsQ := pathdata.Normalize(p), pathdata.Normalize(q)
	for i := range segs {
		if segs[i].Kind != segsQ[i].Kind {
			return fmt.Sprintf("different: command %d is %v and %v", i, segs[i].Kind, segsQ[i].Kind)
		} else if !segs[i].End().Equals(segsQ[i].End(), epsilon) {
			return fmt.Sprintf("different: command %d ends at %v and %v", i, segs[i].End(), segsQ[i].End())
		}
	}
	return "different: control points or arc parameters differ"
}

func (cmd *SVG) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	r := io.Reader(os.Stdin)
	if cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	elems, err := svg.Paths(r)
	if err != nil {
		return err
	}
	glg.Infof("found %d elements with path data", len(elems))

	for _, elem := range elems {
		p, err := elem.Path()
		if err != nil {
			glg.Errorf("%v", err)
			continue
		}

		name := elem.ID
		if name == "" {
			name = fmt.Sprintf("%s@%d", elem.Tag, elem.Offset)
		}
		data := p.String()
		if cmd.Minify {
			data = p.Minify(cmd.Precision)
		}
		fmt.Printf("%s: %d commands, %d subpaths, closed=%v\n  %s\n", name, p.Len(), p.Subpaths(), p.Closed(), data)
	}
	return nil
}

func (cmd *Dump) Run() error {
	if cmd.Data == "" {
		return argp.ShowUsage
	}

	p, err := parseData(cmd.Data, false)
	if err != nil {
		return err
	}
	for i, seg := range pathdata.Normalize(p) {
		fmt.Println(dumpLine(i, p.At(i), seg))
	}
	return nil
}

func dumpLine(i int, cmd pathdata.Command, seg pathdata.Segment) string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%4d %c %-20v", i, cmd.Letter(), seg.Kind)
	for _, f := range seg.Values {
		fmt.Fprintf(&sb, " %g", f)
	}
	fmt.Fprintf(&sb, "  %v -> %v", seg.Start, seg.End())
	return sb.String()
}
