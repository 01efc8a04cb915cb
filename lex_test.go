package complexpr

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// spaces
		{"", []Token{{Kind: TokenEOI}}},
		{" \t \r\n ", []Token{{Kind: TokenEOI, Start: 6, End: 6}}},
		// numbers
		{"0", []Token{{Kind: TokenNum, Lexeme: "0", Value: 0, Start: 0, End: 1}, {Kind: TokenEOI, Start: 1, End: 1}}},
		{"9876543210", []Token{{Kind: TokenNum, Lexeme: "9876543210", Value: 9876543210, End: 10}, {Kind: TokenEOI, Start: 10, End: 10}}},
		{"1 0", []Token{{Kind: TokenNum, Lexeme: "1", Value: 1, End: 1}, {Kind: TokenNum, Lexeme: "0", Start: 2, End: 3}, {Kind: TokenEOI, Start: 3, End: 3}}},
		{"1.5", []Token{{Kind: TokenNum, Lexeme: "1.5", Value: 1.5, End: 3}, {Kind: TokenEOI, Start: 3, End: 3}}},
		{".5", []Token{{Kind: TokenNum, Lexeme: ".5", Value: 0.5, End: 2}, {Kind: TokenEOI, Start: 2, End: 2}}},
		{"5.", []Token{{Kind: TokenNum, Lexeme: "5.", Value: 5, End: 2}, {Kind: TokenEOI, Start: 2, End: 2}}},
		{"-1", []Token{{Kind: TokenMinus, Lexeme: "-", End: 1}, {Kind: TokenNum, Lexeme: "1", Value: 1, Start: 1, End: 2}, {Kind: TokenEOI, Start: 2, End: 2}}},
		{"2x", []Token{{Kind: TokenNum, Lexeme: "2", Value: 2, End: 1}, {Kind: TokenVar, Lexeme: "x", Name: "x", Start: 1, End: 2}, {Kind: TokenEOI, Start: 2, End: 2}}},
		// identifiers
		{"x", []Token{{Kind: TokenVar, Lexeme: "x", Name: "x", End: 1}, {Kind: TokenEOI, Start: 1, End: 1}}},
		{"Xy_1", []Token{{Kind: TokenVar, Lexeme: "Xy_1", Name: "Xy_1", End: 4}, {Kind: TokenEOI, Start: 4, End: 4}}},
		{"e1", []Token{{Kind: TokenVar, Lexeme: "e1", Name: "e1", End: 2}, {Kind: TokenEOI, Start: 2, End: 2}}},
		{"e", []Token{{Kind: TokenConst, Lexeme: "e", Name: "e", End: 1}, {Kind: TokenEOI, Start: 1, End: 1}}},
		{"I", []Token{{Kind: TokenConst, Lexeme: "I", Name: "i", End: 1}, {Kind: TokenEOI, Start: 1, End: 1}}},
		{"Pi", []Token{{Kind: TokenConst, Lexeme: "Pi", Name: "pi", End: 2}, {Kind: TokenEOI, Start: 2, End: 2}}},
		{"π", []Token{{Kind: TokenConst, Lexeme: "π", Name: "pi", End: 1}, {Kind: TokenEOI, Start: 1, End: 1}}},
		{"eπ", []Token{{Kind: TokenVar, Lexeme: "eπ", Name: "eπ", End: 2}, {Kind: TokenEOI, Start: 2, End: 2}}},
		{"SQRT", []Token{{Kind: TokenFunc, Lexeme: "SQRT", Name: "sqrt", End: 4}, {Kind: TokenEOI, Start: 4, End: 4}}},
		{"asec", []Token{{Kind: TokenFunc, Lexeme: "asec", Name: "asec", End: 4}, {Kind: TokenEOI, Start: 4, End: 4}}},
		{"acos", []Token{{Kind: TokenVar, Lexeme: "acos", Name: "acos", End: 4}, {Kind: TokenEOI, Start: 4, End: 4}}},
		{"sin(", []Token{{Kind: TokenFunc, Lexeme: "sin", Name: "sin", End: 3}, {Kind: TokenOpen, Lexeme: "(", Start: 3, End: 4}, {Kind: TokenEOI, Start: 4, End: 4}}},
		// operators
		{"+-*/^()", []Token{
			{Kind: TokenPlus, Lexeme: "+", End: 1},
			{Kind: TokenMinus, Lexeme: "-", Start: 1, End: 2},
			{Kind: TokenStar, Lexeme: "*", Start: 2, End: 3},
			{Kind: TokenSlash, Lexeme: "/", Start: 3, End: 4},
			{Kind: TokenCaret, Lexeme: "^", Start: 4, End: 5},
			{Kind: TokenOpen, Lexeme: "(", Start: 5, End: 6},
			{Kind: TokenClose, Lexeme: ")", Start: 6, End: 7},
			{Kind: TokenEOI, Start: 7, End: 7},
		}},
		{"−×÷∕⁄", []Token{
			{Kind: TokenMinus, Lexeme: "−", End: 1},
			{Kind: TokenStar, Lexeme: "×", Start: 1, End: 2},
			{Kind: TokenSlash, Lexeme: "÷", Start: 2, End: 3},
			{Kind: TokenSlash, Lexeme: "∕", Start: 3, End: 4},
			{Kind: TokenSlash, Lexeme: "⁄", Start: 4, End: 5},
			{Kind: TokenEOI, Start: 5, End: 5},
		}},
		{"a - b", []Token{
			{Kind: TokenVar, Lexeme: "a", Name: "a", End: 1},
			{Kind: TokenMinus, Lexeme: "-", Start: 2, End: 3},
			{Kind: TokenVar, Lexeme: "b", Name: "b", Start: 4, End: 5},
			{Kind: TokenEOI, Start: 5, End: 5},
		}},
	}
	for _, c := range cases {
		toks, err := LexString(c.src)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if diff := cmp.Diff(c.tokens, toks); diff != "" {
			t.Errorf("scanning %q: wrong tokens (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  LexError
	}{
		{"dots", "1.2.1", LexError{Message: MsgBadNumber, Lexeme: "1.2.1", Start: 0, End: 5}},
		{"dot", ".", LexError{Message: MsgBadNumber, Lexeme: ".", Start: 0, End: 1}},
		{"dotdot", "x + ..", LexError{Message: MsgBadNumber, Lexeme: "..", Start: 4, End: 6}},
		{"symbol", "$", LexError{Message: MsgUnrecognizedSymbol, Lexeme: "$", Start: 0, End: 1}},
		{"late", "a$", LexError{Message: MsgUnrecognizedSymbol, Lexeme: "$", Start: 1, End: 2}},
		{"first", "$1.1.1", LexError{Message: MsgUnrecognizedSymbol, Lexeme: "$", Start: 0, End: 1}},
		{"unicode", "π≠3", LexError{Message: MsgUnrecognizedSymbol, Lexeme: "≠", Start: 1, End: 2}},
		{"comma", "f(x, y)", LexError{Message: MsgUnrecognizedSymbol, Lexeme: ",", Start: 3, End: 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := LexString(c.src)
			if toks != nil {
				t.Errorf("%q gave tokens %v with error", c.src, toks)
			}
			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Fatalf("%q gave wrong error type %T (%v)", c.src, err, err)
			}
			if diff := cmp.Diff(&c.err, lerr); diff != "" {
				t.Errorf("%q gave wrong error (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestOpKindsExist(t *testing.T) {
	for _, r := range Operators {
		if opkind(r) == TokenNone {
			t.Errorf("no token kind for %c", r)
		}
	}
}

// failReader returns an error after its contents are exhausted.
type failReader struct {
	*strings.Reader
	err error
}

func (r failReader) ReadRune() (rune, int, error) {
	c, sz, err := r.Reader.ReadRune()
	if errors.Is(err, io.EOF) {
		return 0, 0, r.err
	}
	return c, sz, err
}

func TestLexReaderError(t *testing.T) {
	want := errors.New("oops")
	for _, src := range []string{"", "x", "12", "x + "} {
		_, err := Lex(failReader{strings.NewReader(src), want})
		if !errors.Is(err, want) {
			t.Errorf("%q: want reader error, got %v", src, err)
		}
	}
}
