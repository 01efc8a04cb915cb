package complexpr

import "strconv"

// Messages used in input errors.
const (
	MsgUnrecognizedSymbol = "Unrecognized symbol"
	MsgBadNumber          = "Could not understand this number"
	MsgExpectedAtom       = "Expected a number, variable, or function"
	MsgUnmatchedParens    = "Unmatched parentheses"
)

// SyntaxError is an error indicating a token that the grammar cannot accept
// where it appears. It implements InputError.
type SyntaxError struct {
	// Message describes the problem. It is MsgExpectedAtom or
	// MsgUnmatchedParens.
	Message string
	// Lexeme is the text of the offending token. It is empty for the end of
	// input.
	Lexeme string
	// Start and End are the rune offsets of the offending token.
	Start, End int
}

func syntaxError(msg string, tok Token) *SyntaxError {
	return &SyntaxError{Message: msg, Lexeme: tok.Lexeme, Start: tok.Start, End: tok.End}
}

func (err *SyntaxError) Error() string {
	return errpos(err.Start, errlexeme(err.Message, err.Lexeme))
}

func (err *SyntaxError) Pos() int {
	return err.Start
}

func (err *SyntaxError) Span() (start, end int) {
	return err.Start, err.End
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// errlexeme appends the quoted lexeme to a message if there is one.
func errlexeme(msg, lexeme string) string {
	if lexeme == "" {
		return msg
	}
	return msg + ": " + strconv.Quote(lexeme)
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the rune offset of the start of the token that caused the
	// error.
	Pos() int
	// Span returns the rune offsets of the start and end of the token that
	// caused the error, with end exclusive.
	Span() (start, end int)
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
