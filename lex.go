package complexpr

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical token of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Lexeme is the source text of the token, in its original casing. It is
	// empty for the end of input.
	Lexeme string
	// Name is the normalized name of a function, constant, or variable.
	Name string
	// Value is the value of a number token.
	Value float64
	// Start and End are the rune offsets of the token in the source, with End
	// exclusive.
	Start, End int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Lexeme + "@" + strconv.Itoa(t.Start)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenEOI marks the end of the input. It is always the last token.
	TokenEOI
	// Operators and brackets.
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenOpen
	TokenClose
	// TokenNum is a number literal. Its Value is set.
	TokenNum
	// TokenFunc is the name of a function. Its Name is set.
	TokenFunc
	// TokenConst is the name of a constant. Its Name is set.
	TokenConst
	// TokenVar is any other identifier. Its Name is set.
	TokenVar
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// Operators contains the runes which the lexer recognizes as operators or
// brackets. Several Unicode symbols are accepted as spellings of the ASCII
// operators.
const Operators = "+-−*×/÷∕⁄^()"

// opkind gets the token kind of an operator rune, or TokenNone if r is not an
// operator.
func opkind(r rune) TokenKind {
	switch r {
	case '+':
		return TokenPlus
	case '-', '−':
		return TokenMinus
	case '*', '×':
		return TokenStar
	case '/', '÷', '∕', '⁄':
		return TokenSlash
	case '^':
		return TokenCaret
	case '(':
		return TokenOpen
	case ')':
		return TokenClose
	default:
		return TokenNone
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWord reports whether r can appear in an identifier.
func isWord(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', isDigit(r):
		return true
	case r == '_', r == 'π':
		return true
	default:
		return false
	}
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// pos is the number of runes read from src.
	pos int
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.pos++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.pos--
}

// next scans the next token from the input. At the end of the input, the
// result is an EOI token positioned after the last rune.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		start := l.pos
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{Kind: TokenEOI, Start: start, End: start}, nil
			}
			return Token{}, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r), r == '.':
			l.unreadRune()
			return l.scanNum()
		case isWord(r):
			l.unreadRune()
			return l.scanIdent()
		}
		if k := opkind(r); k != TokenNone {
			return Token{Kind: k, Lexeme: string(r), Start: start, End: l.pos}, nil
		}
		return Token{}, &LexError{Message: MsgUnrecognizedSymbol, Lexeme: string(r), Start: start, End: l.pos}
	}
}

// scanNum scans the longest run of digits and dots as a number.
func (l *lexer) scanNum() (Token, error) {
	start := l.pos
	dots := 0
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if !isDigit(r) && r != '.' {
			l.unreadRune()
			break
		}
		if r == '.' {
			dots++
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	// Overflow is not a failure to understand the number; it is just large.
	if dots > 1 || err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, &LexError{Message: MsgBadNumber, Lexeme: text, Start: start, End: l.pos}
	}
	return Token{Kind: TokenNum, Lexeme: text, Value: v, Start: start, End: l.pos}, nil
}

// scanIdent scans the longest run of word runes and classifies it as a
// function, constant, or variable.
func (l *lexer) scanIdent() (Token, error) {
	start := l.pos
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				break
			}
			return Token{}, err
		}
		if !isWord(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	tok := Token{Lexeme: text, Start: start, End: l.pos}
	name := strings.ToLower(text)
	if name == "π" {
		name = "pi"
	}
	switch {
	case isFunc(name):
		tok.Kind = TokenFunc
		tok.Name = name
	case isConst(name):
		tok.Kind = TokenConst
		tok.Name = name
	default:
		tok.Kind = TokenVar
		tok.Name = text
	}
	return tok, nil
}

// Lex scans an entire expression. The result always ends with a TokenEOI
// token. Lexing stops at the first invalid token, in which case the error is
// a *LexError, or at the first error from src other than io.EOF.
func Lex(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOI {
			return toks, nil
		}
	}
}

// LexString is a shortcut to scan an expression from a string.
func LexString(src string) ([]Token, error) {
	return Lex(strings.NewReader(src))
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Message describes the problem. It is MsgUnrecognizedSymbol or
	// MsgBadNumber.
	Message string
	// Lexeme is the invalid text: the single unrecognized rune, or the whole
	// run of a malformed number.
	Lexeme string
	// Start and End are the rune offsets of Lexeme in the source.
	Start, End int
}

func (err *LexError) Error() string {
	return errpos(err.Start, errlexeme(err.Message, err.Lexeme))
}

func (err *LexError) Pos() int {
	return err.Start
}

func (err *LexError) Span() (start, end int) {
	return err.Start, err.End
}
