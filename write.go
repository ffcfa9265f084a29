package pathdata

import (
	"bytes"
	"strconv"

	"github.com/tdewolff/minify/v2"
)

// String returns the path data in canonical form, eg. "M10 0L20-5z".
func (p Path) String() string {
	b, _ := p.AppendText(nil)
	return string(b)
}

// AppendText appends the path data in canonical form to b. Numbers use the shortest representation that parses back to the same value, so that parsing the result gives an equal path.
func (p Path) AppendText(b []byte) ([]byte, error) {
	for _, cmd := range p.cmds {
		b = appendCommand(b, cmd, 0)
	}
	return b, nil
}

// String returns the command in canonical form, eg. "c1 2 3 4 5 6".
func (c Command) String() string {
	return string(appendCommand(nil, c, 0))
}

// Minify returns compact path data with numbers rounded to prec significant digits. Separators are only written where the grammar needs them.
func (p Path) Minify(prec int) string {
	if prec <= 0 {
		prec = 15
	}
	b := []byte{}
	for _, cmd := range p.cmds {
		b = appendCommand(b, cmd, prec)
	}
	return string(b)
}

// appendCommand writes the command letter and its parameters. A zero prec writes the canonical form.
func appendCommand(b []byte, cmd Command, prec int) []byte {
	b = append(b, cmd.Letter())
	var prev []byte
	prevFlag := false
	for i, f := range cmd.Params() {
		flag := isFlag(cmd.kind, i)

		var num []byte
		if flag {
			num = []byte{'0'}
			if f != 0.0 {
				num[0] = '1'
			}
		} else if prec == 0 {
			num = strconv.AppendFloat(nil, f, 'g', -1, 64)
		} else {
			num = minify.Number(strconv.AppendFloat(nil, f, 'g', prec, 64), prec)
		}

		if i != 0 && needsSeparator(prev, prevFlag, num, prec != 0) {
			b = append(b, ' ')
		}
		b = append(b, num...)
		prev, prevFlag = num, flag
	}
	return b
}

// needsSeparator returns true if num cannot directly follow prev without changing how the data lexes.
func needsSeparator(prev []byte, prevFlag bool, num []byte, compact bool) bool {
	if len(num) == 0 || num[0] == '-' || num[0] == '+' {
		return false
	} else if !compact {
		return true
	} else if prevFlag {
		// flags are always a single character
		return false
	} else if num[0] == '.' {
		// a second decimal point starts a new number
		return !bytes.ContainsAny(prev, ".eE")
	}
	return true
}
