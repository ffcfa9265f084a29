// Package svg reads path data from SVG documents.
package svg

import (
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"github.com/tdewolff/pathdata"
)

// Element is an element with path data, such as <path d="...">.
type Element struct {
	Tag    string
	ID     string
	Data   string // value of the d attribute
	Offset int    // byte offset of the start tag in the document
}

// Path parses the element's path data.
func (e Element) Path() (pathdata.Path, error) {
	p, err := pathdata.Parse(e.Data)
	if err != nil {
		return pathdata.Path{}, fmt.Errorf("%s at offset %d: %w", e.Tag, e.Offset, err)
	}
	return p, nil
}

// Equals returns true if both elements have exactly equal path data. Data that fails to parse is never equal.
func (e Element) Equals(f Element) bool {
	p, err := e.Path()
	if err != nil {
		return false
	}
	q, err := f.Path()
	if err != nil {
		return false
	}
	return p.Equals(q)
}

// hasPathData are the elements whose d attribute holds path data.
var hasPathData = map[string]bool{
	"path":          true,
	"glyph":         true,
	"missing-glyph": true,
}

// Paths returns all elements with path data in document order. Elements without a d attribute are skipped.
func Paths(r io.Reader) ([]Element, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	elems := []Element{}
	l := xml.NewLexer(z)
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			}
			return elems, nil
		case xml.StartTagToken:
			offset := z.Offset() - len(data)
			tag := string(l.Text())
			attrs := map[string]string{}
			for {
				ttAttr, _ := l.Next()
				if ttAttr != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 1 < len(val) && (val[0] == '\'' || val[0] == '"') && val[0] == val[len(val)-1] {
					val = val[1 : len(val)-1]
				}
				attrs[string(l.Text())] = string(val)
			}

			if d, ok := attrs["d"]; ok && hasPathData[tag] {
				elems = append(elems, Element{
					Tag:    tag,
					ID:     attrs["id"],
					Data:   d,
					Offset: offset,
				})
			}
		}
	}
}
