package complexpr_test

import (
	"fmt"

	"github.com/zephyrtronium/complexpr"
)

func ExampleParseString() {
	n, err := complexpr.ParseString("2x - y/2")
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	fmt.Println(n.Vars())
	fmt.Println(complexpr.Render(n))
	// Output:
	// ([(2) * (x)] + [(-1) * ([y] * [(2) ^ (-1)])])
	// [x y]
	// 2 x-\frac{y}{2}
}

func ExampleContext_Eval() {
	n, err := complexpr.ParseString("2x - y/2")
	if err != nil {
		panic(err)
	}
	ctx := complexpr.NewContext(complexpr.SetVar("x", 1.5), complexpr.SetVar("y", 3))
	fmt.Println(ctx.Eval(n))
	fmt.Println(complexpr.IsNaN(complexpr.NewContext().Eval(n)))
	// Output:
	// (1.5+0i)
	// true
}

func ExampleEvalString() {
	fmt.Println(complexpr.EvalString("sqrt(-4)"))
	fmt.Println(complexpr.EvalString("2^exp(-$)"))
	// Output:
	// (0+2i) <nil>
	// (NaN+NaNi) 7: Unrecognized symbol: "$"
}

func ExampleRender() {
	n, _ := complexpr.ParseString("(1 + 1)/(1 + 2)")
	fmt.Println(complexpr.Render(n))
	n, _ = complexpr.ParseString("-2 ^ -2 ^ -2")
	fmt.Println(complexpr.Render(n))
	// Output:
	// \frac{1+1}{1+2}
	// -{2}^{-{2}^{-2}}
}
