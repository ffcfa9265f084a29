package pathdata

import (
	"io"
	"strconv"

	"github.com/tdewolff/parse/v2"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// TokenType determines the type of token, eg. a number or a command letter.
type TokenType uint32

// TokenType values.
const (
	ErrorToken TokenType = iota // extra token when errors occur
	CommandToken
	NumberToken
	FlagToken
)

// String returns the string representation of a TokenType.
func (tt TokenType) String() string {
	switch tt {
	case ErrorToken:
		return "Error"
	case CommandToken:
		return "Command"
	case NumberToken:
		return "Number"
	case FlagToken:
		return "Flag"
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

// Token is a command letter, a number or an arc flag.
type Token struct {
	Type   TokenType
	Data   []byte
	Value  float64 // number value, or 0 and 1 for flags
	Offset int
}

////////////////////////////////////////////////////////////////

// Lexer is the state for the path data lexer.
type Lexer struct {
	r   *parse.Input
	err error

	hasCmd bool
	kind   Kind // active command
	i      int  // index of the next parameter within the command's group
}

// NewLexer returns a new Lexer for a given parse.Input.
func NewLexer(r *parse.Input) *Lexer {
	return &Lexer{
		r: r,
	}
}

// Err returns the error encountered during lexing, this is often io.EOF but also other errors can be returned.
func (l *Lexer) Err() error {
	if l.err != nil {
		return l.err
	}
	return l.r.Err()
}

// Offset returns the current byte offset in the input.
func (l *Lexer) Offset() int {
	return l.r.Offset()
}

// Next returns the next Token. It returns ErrorToken when an error was encountered. Using Err() one can retrieve the error message.
func (l *Lexer) Next() Token {
	if l.err != nil {
		return Token{Type: ErrorToken, Offset: l.r.Offset()}
	}

	l.skipSeparators()
	offset := l.r.Offset()
	c := l.r.Peek(0)
	if c == 0 && l.r.Err() != nil {
		return Token{Type: ErrorToken, Offset: offset}
	}

	if kind, _, ok := KindOf(c); ok {
		l.r.Move(1)
		l.hasCmd = true
		l.kind = kind
		l.i = 0
		return Token{Type: CommandToken, Data: l.r.Shift(), Offset: offset}
	}

	if l.hasCmd && isFlag(l.kind, l.i) {
		if c != '0' && c != '1' {
			return l.fail("bad arc flag")
		}
		l.r.Move(1)
		l.param()
		return Token{Type: FlagToken, Data: l.r.Shift(), Value: float64(c - '0'), Offset: offset}
	}

	if c == '+' || c == '-' || c == '.' || '0' <= c && c <= '9' {
		_, n := pstrconv.ParseFloat(l.r.Bytes()[offset:])
		if n == 0 {
			return l.fail("bad number")
		}
		l.r.Move(n)
		f, err := strconv.ParseFloat(string(l.r.Lexeme()), 64)
		if err != nil {
			// out of range
			l.r.Rewind(0)
			return l.fail("bad number")
		}
		l.param()
		return Token{Type: NumberToken, Data: l.r.Shift(), Value: f, Offset: offset}
	}
	return l.fail("unexpected character")
}

func (l *Lexer) skipSeparators() {
	for {
		c := l.r.Peek(0)
		if c != ' ' && c != ',' && c != '\n' && c != '\r' && c != '\t' {
			break
		}
		l.r.Move(1)
	}
	l.r.Skip()
}

// param advances the parameter index of the active command.
func (l *Lexer) param() {
	if !l.hasCmd {
		return
	}
	if arity := l.kind.Arity(); 0 < arity {
		l.i = (l.i + 1) % arity
	}
}

func (l *Lexer) fail(message string) Token {
	offset := l.r.Offset()
	end := offset + 1
	if b := l.r.Bytes(); len(b) < end {
		end = len(b)
	} else if c := l.r.Peek(0); 0x80 <= c {
		_, n := l.r.PeekRune(0)
		end = offset + n
	}
	text := string(l.r.Bytes()[offset:end])
	l.err = &LexError{
		Offset: offset,
		Text:   text,
		Err:    parse.NewErrorLexer(l.r, "%s %q", message, text),
	}
	return Token{Type: ErrorToken, Offset: offset}
}

// Tokenize splits path data into tokens.
func Tokenize(s string) ([]Token, error) {
	l := NewLexer(parse.NewInputString(s))
	tokens := []Token{}
	for {
		t := l.Next()
		if t.Type == ErrorToken {
			if err := l.Err(); err != io.EOF {
				return nil, err
			}
			return tokens, nil
		}
		tokens = append(tokens, t)
	}
}
