package complexpr

import (
	"io"
	"strings"
)

// expression  = factor { ("+" | "-") factor }
// factor      = exponential { ["*"] exponential | "/" exponential }
// exponential = ["-"] atom ["^" exponential]
// atom        = num | var | const | func atom | "(" expression ")"

// parser is a cursor over a token sequence. It is used for exactly one parse.
type parser struct {
	// toks is the token sequence. It always ends with TokenEOI.
	toks []Token
	pos  int
}

// peek returns the next token without consuming it.
func (p *parser) peek() Token {
	return p.toks[p.pos]
}

// advance consumes and returns the next token. The end of input is never
// consumed, so advancing past it keeps returning it.
func (p *parser) advance() Token {
	tok := p.toks[p.pos]
	if tok.Kind != TokenEOI {
		p.pos++
	}
	return tok
}

// Parse scans and parses an expression. The error is a *LexError or
// *SyntaxError if the input is invalid.
func Parse(src io.RuneScanner) (*Node, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Node, error) {
	return Parse(strings.NewReader(src))
}

// ParseTokens parses a token sequence as produced by Lex. If toks does not end
// with TokenEOI, the parser behaves as if it did. Parsing stops at the first
// error, which is a *SyntaxError.
func ParseTokens(toks []Token) (*Node, error) {
	p := parser{toks: terminate(toks)}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	// The only token that can end an expression other than EOI is a close
	// paren, and at the top level there is nothing for it to close.
	if tok := p.peek(); tok.Kind != TokenEOI {
		return nil, syntaxError(MsgUnmatchedParens, tok)
	}
	return n, nil
}

// terminate ensures that a token sequence ends with TokenEOI without modifying
// the caller's slice.
func terminate(toks []Token) []Token {
	if len(toks) > 0 && toks[len(toks)-1].Kind == TokenEOI {
		return toks
	}
	end := 0
	if len(toks) > 0 {
		end = toks[len(toks)-1].End
	}
	return append(toks[:len(toks):len(toks)], Token{Kind: TokenEOI, Start: end, End: end})
}

// expression parses a sum of factors. Subtracted terms are negated.
func (p *parser) expression() (*Node, error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	args := []*Node{n}
	for {
		switch p.peek().Kind {
		case TokenPlus:
			p.advance()
			n, err := p.factor()
			if err != nil {
				return nil, err
			}
			args = append(args, n)
		case TokenMinus:
			p.advance()
			n, err := p.factor()
			if err != nil {
				return nil, err
			}
			args = append(args, negate(n))
		default:
			return fold(NodeSum, args), nil
		}
	}
}

// factor parses a product of exponentials. Juxtaposed terms multiply, and
// divisors become reciprocals.
func (p *parser) factor() (*Node, error) {
	n, err := p.exponential()
	if err != nil {
		return nil, err
	}
	args := []*Node{n}
	for {
		switch p.peek().Kind {
		case TokenPlus, TokenMinus, TokenClose, TokenEOI:
			return fold(NodeProduct, args), nil
		case TokenSlash:
			p.advance()
			n, err := p.exponential()
			if err != nil {
				return nil, err
			}
			args = append(args, reciprocal(n))
		case TokenStar:
			p.advance()
			fallthrough
		default:
			// (parsed) x -> (parsed) * (x)
			n, err := p.exponential()
			if err != nil {
				return nil, err
			}
			args = append(args, n)
		}
	}
}

// exponential parses an optionally negated power. The negation applies to the
// entire power, so -2^2 is -(2^2). Exponentiation is right-associative.
func (p *parser) exponential() (*Node, error) {
	neg := false
	if p.peek().Kind == TokenMinus {
		p.advance()
		neg = true
	}
	n, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == TokenCaret {
		p.advance()
		exp, err := p.exponential()
		if err != nil {
			return nil, err
		}
		n = Pow(n, exp)
	}
	if neg {
		n = negate(n)
	}
	return n, nil
}

// atom parses a single operand. Functions apply to exactly the next atom, so
// sin x y is (sin x) y.
func (p *parser) atom() (*Node, error) {
	tok := p.advance()
	switch tok.Kind {
	case TokenNum:
		return Num(tok.Value), nil
	case TokenVar:
		return Var(tok.Name), nil
	case TokenConst:
		return Const(tok.Name), nil
	case TokenFunc:
		arg, err := p.atom()
		if err != nil {
			return nil, err
		}
		return Apply(tok.Name, arg), nil
	case TokenOpen:
		n, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != TokenClose {
			// Only the end of input can stop an expression other than a
			// close paren, so report the error there.
			return nil, syntaxError(MsgUnmatchedParens, p.toks[len(p.toks)-1])
		}
		p.advance()
		return n, nil
	default:
		return nil, syntaxError(MsgExpectedAtom, tok)
	}
}

// fold collects the operands of a sum or product. A single operand stands for
// itself, and no operands give the identity of the operation.
func fold(kind NodeKind, args []*Node) *Node {
	switch len(args) {
	case 0:
		if kind == NodeSum {
			return Num(0)
		}
		return Num(1)
	case 1:
		return args[0]
	default:
		return &Node{Kind: kind, Args: args}
	}
}

// negate creates -1*n.
func negate(n *Node) *Node {
	return &Node{Kind: NodeProduct, Args: []*Node{Num(-1), n}}
}

// reciprocal creates n^-1.
func reciprocal(n *Node) *Node {
	return Pow(n, Num(-1))
}
