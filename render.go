package complexpr

import (
	"math"
	"strconv"
	"strings"
)

// Placeholder is the rendering of any node that Render does not understand.
const Placeholder = "?"

// Render formats an expression tree as LaTeX. Parentheses are added only
// where the structure of the tree needs them: a product containing a sum, a
// power whose base is not a single term, or a function argument that is not
// a single term. Products of -1 and another term render as negations, and
// powers with exponent -1 render as fractions.
//
// Render never fails. Nodes it does not understand become Placeholder.
func Render(n *Node) string {
	if n == nil {
		return Placeholder
	}
	switch n.Kind {
	case NodeSum:
		return renderSum(n)
	case NodeProduct:
		return renderProduct(n)
	case NodePower:
		base := Render(n.Left)
		if compound(n.Left) {
			base = paren(base)
		}
		return "{" + base + "}^{" + Render(n.Right) + "}"
	case NodeSub:
		return Render(n.Left) + "-" + Render(n.Right)
	case NodeDiv:
		return frac(Render(n.Left), Render(n.Right))
	case NodeApply:
		return renderApply(n)
	case NodeConst:
		if n.Name == "pi" {
			return `\pi`
		}
		return n.Name
	case NodeVar:
		return n.Name
	case NodeNum:
		return formatNum(n.Value)
	default:
		return Placeholder
	}
}

func renderSum(n *Node) string {
	if len(n.Args) == 0 {
		return "0"
	}
	// Addition binds most loosely, so no term needs parentheses.
	var b strings.Builder
	neg, t := negated(n.Args[0])
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(Render(t))
	for _, a := range n.Args[1:] {
		neg, t := negated(a)
		if neg {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		b.WriteString(Render(t))
	}
	return b.String()
}

func renderProduct(n *Node) string {
	if neg, t := negated(n); neg {
		return "-" + Render(t)
	}
	if len(n.Args) == 0 {
		return "1"
	}
	neg, first := negated(n.Args[0])
	out := Render(first)
	// The first factor only needs parentheses if something is written next to
	// it. As a numerator, the fraction bar separates it.
	wrap := loose(first)
	for _, f := range n.Args[1:] {
		if recip, base := reciprocated(f); recip {
			if strings.HasPrefix(out, "-") {
				out = "-" + frac(out[1:], Render(base))
			} else {
				out = frac(out, Render(base))
			}
		} else {
			if wrap {
				out = paren(out)
			}
			s := Render(f)
			if compound(f) {
				s = paren(s)
			}
			out += " " + s
		}
		wrap = false
	}
	if neg {
		out = "-" + out
	}
	return out
}

func renderApply(n *Node) string {
	arg := Render(n.Left)
	switch n.Name {
	case "abs":
		return `\left|` + arg + `\right|`
	case "sqrt":
		return `\sqrt{` + arg + "}"
	case "asec", "asin", "atan":
		op := `\` + n.Name[1:] + "^{-1}"
		if !atom(n.Left) {
			return op + paren(arg)
		}
		return op + arg
	default:
		if !atom(n.Left) {
			return `\` + n.Name + paren(arg)
		}
		return `\` + n.Name + " " + arg
	}
}

// negated checks whether n is -1 times another term and returns that term.
// Otherwise, it returns n.
func negated(n *Node) (bool, *Node) {
	if n != nil && n.Kind == NodeProduct && len(n.Args) == 2 && isNum(n.Args[0], -1) {
		return true, n.Args[1]
	}
	return false, n
}

// reciprocated checks whether n is another term to the power of -1 and
// returns that term. Otherwise, it returns n.
func reciprocated(n *Node) (bool, *Node) {
	if n != nil && n.Kind == NodePower && isNum(n.Right, -1) {
		return true, n.Left
	}
	return false, n
}

func isNum(n *Node, v float64) bool {
	return n != nil && n.Kind == NodeNum && n.Value == v
}

// loose reports whether n is a sum or difference.
func loose(n *Node) bool {
	return n != nil && (n.Kind == NodeSum || n.Kind == NodeSub)
}

// compound reports whether n is a sum, difference, product, or quotient.
func compound(n *Node) bool {
	return loose(n) || n != nil && (n.Kind == NodeProduct || n.Kind == NodeDiv)
}

// atom reports whether n renders as a single term.
func atom(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case NodeNum, NodeVar, NodeConst, NodeApply:
		return true
	default:
		return false
	}
}

func paren(s string) string {
	return `\left(` + s + `\right)`
}

func frac(num, den string) string {
	return `\frac{` + num + "}{" + den + "}"
}

// formatNum formats a number with the fewest digits that identify it,
// switching to exponent notation for very large or small magnitudes.
func formatNum(v float64) string {
	if v == 0 {
		// Includes negative zero.
		return "0"
	}
	if a := math.Abs(v); 1e-6 <= a && a < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
