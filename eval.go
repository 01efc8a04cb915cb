package complexpr

import (
	"io"
	"math"
	"math/cmplx"
	"strings"
)

// Context is a context for evaluating expressions. It holds the values of
// variables. It is not safe to use a Context concurrently with Set.
type Context struct {
	names map[string]complex128
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  complex128
	}
	varsopt map[string]complex128
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val complex128) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]complex128) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Eval evaluates an expression tree. Evaluation never fails: variables that
// are not set in ctx, unknown functions and constants, and malformed nodes
// all evaluate to NaN, which propagates through the rest of the arithmetic.
// A nil ctx has no variables.
func (ctx *Context) Eval(n *Node) complex128 {
	return n.eval(ctx)
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value complex128) *Context {
	if ctx.names == nil {
		ctx.names = make(map[string]complex128)
	}
	ctx.names[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether it is set.
func (ctx *Context) Lookup(name string) (complex128, bool) {
	if ctx == nil {
		return 0, false
	}
	v, ok := ctx.names[name]
	return v, ok
}

// Names returns the sorted names of the variables set in the context.
func (ctx *Context) Names() []string {
	if ctx == nil {
		return nil
	}
	r := make([]string, 0, len(ctx.names))
	for k := range ctx.names {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// Clone creates a copy of a context and applies options to it. Setting
// variables on the copy does not affect the original. Cloning a nil context
// gives a context with only the variables set by opts.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{names: make(map[string]complex128)}
	if ctx != nil {
		for name, val := range ctx.names {
			n.names[name] = val
		}
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("complexpr: unknown option type")
		}
	}
	return &n
}

// NaN returns the value of expressions which cannot be evaluated.
func NaN() complex128 {
	return cmplx.NaN()
}

// IsNaN reports whether either part of z is NaN. Unlike cmplx.IsNaN, an
// infinite part does not hide a NaN in the other.
func IsNaN(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z))
}

// eval computes the node's value.
func (n *Node) eval(ctx *Context) complex128 {
	if n == nil {
		return NaN()
	}
	switch n.Kind {
	case NodeSum:
		var r complex128
		for _, a := range n.Args {
			r += a.eval(ctx)
		}
		return r
	case NodeProduct:
		r := complex128(1)
		for _, a := range n.Args {
			r *= a.eval(ctx)
		}
		return r
	case NodePower:
		return cmplx.Pow(n.Left.eval(ctx), n.Right.eval(ctx))
	case NodeSub:
		return n.Left.eval(ctx) - n.Right.eval(ctx)
	case NodeDiv:
		return n.Left.eval(ctx) / n.Right.eval(ctx)
	case NodeApply:
		x := n.Left.eval(ctx)
		f := globalfuncs[n.Name]
		if f == nil {
			return NaN()
		}
		return f(x)
	case NodeConst:
		v, ok := globalconsts[n.Name]
		if !ok {
			return NaN()
		}
		return v
	case NodeVar:
		v, ok := ctx.Lookup(n.Name)
		if !ok {
			return NaN()
		}
		return v
	case NodeNum:
		return complex(n.Value, 0)
	default:
		return NaN()
	}
}

// Eval is a shortcut to parse an expression and evaluate it with a new context
// created with opts. The error is non-nil only if the expression does not
// parse.
func Eval(src io.RuneScanner, opts ...ContextOption) (complex128, error) {
	a, err := Parse(src)
	if err != nil {
		return NaN(), err
	}
	return NewContext(opts...).Eval(a), nil
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (complex128, error) {
	return Eval(strings.NewReader(src), opts...)
}
