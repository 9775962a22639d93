package svgpath

import (
	"fmt"
	"io"
	"strconv"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// TokenKind distinguishes command letters from numeric operands.
type TokenKind int

const (
	CommandToken TokenKind = iota
	NumberToken
)

// Token is a single command letter or number of path data.
type Token struct {
	Kind    TokenKind
	Command byte
	Number  float64
	Pos     int
}

func (t Token) String() string {
	if t.Kind == CommandToken {
		return string(t.Command)
	}
	return strconv.FormatFloat(t.Number, 'g', -1, 64)
}

// Tokenizer scans path data lazily. It cannot be rewound; create a new
// one to scan the same data again.
type Tokenizer struct {
	b   []byte
	pos int
}

// NewTokenizer returns a Tokenizer over d.
func NewTokenizer(d string) *Tokenizer {
	return &Tokenizer{b: []byte(d)}
}

// Next returns the next token, or io.EOF once the data is exhausted.
// Commas and whitespace between tokens are skipped.
func (t *Tokenizer) Next() (Token, error) {
	t.skipSeparators()
	if t.pos >= len(t.b) {
		return Token{}, io.EOF
	}
	c := t.b[t.pos]
	switch {
	case isCommand(c):
		t.pos++
		return Token{Kind: CommandToken, Command: c, Pos: t.pos - 1}, nil
	case isNumberStart(c):
		return t.number()
	}
	return Token{}, &ParseError{Pos: t.pos, Err: fmt.Errorf("%w: unexpected character %q", ErrMalformedToken, c)}
}

// number scans one literal. ParseFloat stops at the first byte that cannot
// continue the literal, so "10-5" and "0.5.5" split into two numbers.
func (t *Tokenizer) number() (Token, error) {
	start := t.pos
	_, n := pstrconv.ParseFloat(t.b[start:])
	if n == 0 {
		return Token{}, &ParseError{Pos: start, Err: fmt.Errorf("%w: invalid number", ErrMalformedToken)}
	}
	lit := string(t.b[start : start+n])
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Token{}, &ParseError{Pos: start, Err: fmt.Errorf("%w: %q: %v", ErrMalformedToken, lit, err)}
	}
	t.pos += n
	return Token{Kind: NumberToken, Number: f, Pos: start}, nil
}

func (t *Tokenizer) skipSeparators() {
	for t.pos < len(t.b) && isSeparator(t.b[t.pos]) {
		t.pos++
	}
}

// Tokens scans all of d. It is a convenience for callers that want the
// whole token stream at once.
func Tokens(d string) ([]Token, error) {
	var toks []Token
	t := NewTokenizer(d)
	for {
		tok, err := t.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', ',':
		return true
	}
	return false
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.'
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c',
		'S', 's', 'Q', 'q', 'T', 't', 'Z', 'z', 'A', 'a':
		return true
	}
	return false
}
