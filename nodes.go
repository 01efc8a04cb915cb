package complexpr

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. Which fields
// are meaningful depends on Kind. Nodes are never modified after they are
// built; the parser, evaluator, and renderer only read them, so a tree may be
// shared freely.
type Node struct {
	Kind NodeKind

	// Name is the name of the function, constant, or variable.
	Name string
	// Value is the value of a number.
	Value float64

	// Left and Right are the operands of binary nodes. The argument of a
	// function application is Left.
	Left  *Node
	Right *Node

	// Args are the operands of sums and products, in order.
	Args []*Node
}

// NodeKind is the type of a node.
type NodeKind int8

const (
	NodeNone NodeKind = iota

	NodeSum     // sum of Args, 0 if empty
	NodeProduct // product of Args, 1 if empty
	NodePower   // Left raised to Right
	NodeApply   // function Name applied to Left
	NodeConst   // constant Name
	NodeVar     // lookup(Name)
	NodeNum     // Value

	// The parser never produces these. They exist for trees built by hand.
	NodeSub // Left minus Right
	NodeDiv // Left divided by Right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=NodeKind -trimprefix=Node
//go:generate go mod tidy

// Sum creates an n-ary sum.
func Sum(args ...*Node) *Node {
	return &Node{Kind: NodeSum, Args: append([]*Node(nil), args...)}
}

// Product creates an n-ary product.
func Product(args ...*Node) *Node {
	return &Node{Kind: NodeProduct, Args: append([]*Node(nil), args...)}
}

// Pow creates an exponentiation.
func Pow(base, exp *Node) *Node {
	return &Node{Kind: NodePower, Left: base, Right: exp}
}

// Apply creates an application of a named function.
func Apply(name string, arg *Node) *Node {
	return &Node{Kind: NodeApply, Name: name, Left: arg}
}

// Const creates a named constant.
func Const(name string) *Node {
	return &Node{Kind: NodeConst, Name: name}
}

// Var creates a variable reference.
func Var(name string) *Node {
	return &Node{Kind: NodeVar, Name: name}
}

// Num creates a number.
func Num(v float64) *Node {
	return &Node{Kind: NodeNum, Value: v}
}

// Sub creates a binary subtraction.
func Sub(left, right *Node) *Node {
	return &Node{Kind: NodeSub, Left: left, Right: right}
}

// Div creates a binary division.
func Div(left, right *Node) *Node {
	return &Node{Kind: NodeDiv, Left: left, Right: right}
}

// String formats the tree with alternating round and square brackets grouping
// each node.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Kind {
	case NodeNum:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case NodeVar, NodeConst:
		b.WriteString(n.Name)
	case NodeApply:
		b.WriteString(n.Name)
		b.WriteByte(' ')
		n.Left.fmt(b, !square)
	case NodeSum:
		n.fmtargs(b, " + ", !square)
	case NodeProduct:
		n.fmtargs(b, " * ", !square)
	case NodePower:
		n.Left.fmt(b, !square)
		b.WriteString(" ^ ")
		n.Right.fmt(b, !square)
	case NodeSub:
		n.Left.fmt(b, !square)
		b.WriteString(" - ")
		n.Right.fmt(b, !square)
	case NodeDiv:
		n.Left.fmt(b, !square)
		b.WriteString(" / ")
		n.Right.fmt(b, !square)
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		b.WriteString(n.Kind.String())
		b.WriteByte('$')
	}
}

func (n *Node) fmtargs(b *strings.Builder, sep string, square bool) {
	if len(n.Args) == 0 {
		// Empty folds show their kind so that they are distinguishable.
		b.WriteString(n.Kind.String())
		return
	}
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(sep)
		}
		a.fmt(b, square)
	}
}

// Vars returns the sorted names of the variables used in the tree.
func (n *Node) Vars() []string {
	seen := make(map[string]bool)
	n.vars(seen)
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

func (n *Node) vars(seen map[string]bool) {
	if n == nil {
		return
	}
	if n.Kind == NodeVar {
		seen[n.Name] = true
	}
	n.Left.vars(seen)
	n.Right.vars(seen)
	for _, a := range n.Args {
		a.vars(seen)
	}
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
