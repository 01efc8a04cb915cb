package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/iancoleman/orderedmap"

	"github.com/zephyrtronium/complexpr"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, colors string
		with                 [][2]string
		nl, tex, tree, js    bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&tex, "tex", false, "print LaTeX renderings")
	flag.BoolVar(&tree, "tree", false, "print parse trees")
	flag.BoolVar(&js, "json", false, "print results as JSON objects")
	flag.StringVar(&colors, "color", "auto", "color error messages: auto, always, or never")
	flag.Parse()
	switch colors {
	case "auto":
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		log.Fatalf("-color must be auto, always, or never, not %q", colors)
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s, err := readall(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	for _, arg := range flag.Args() {
		s, _ := readall(strings.NewReader(arg), nl)
		srcs = append(srcs, s...)
	}

	ctx, err := bind(with)
	if err != nil {
		log.Fatal(err)
	}

	verb += "\n"
	failed := false
	for _, src := range srcs {
		a, err := complexpr.ParseString(src)
		if err != nil {
			report(os.Stderr, src, err)
			failed = true
			continue
		}
		r := ctx.Eval(a)
		switch {
		case js:
			b, err := json.Marshal(result(src, a, r, with, ctx))
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%s\n", b)
			continue
		case tree:
			fmt.Printf("%v : ", a)
		}
		if tex {
			fmt.Printf("%s : ", complexpr.Render(a))
		}
		fmt.Printf(verb, r)
	}
	if failed {
		os.Exit(1)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// readall reads the expressions in an input. With lines set, each non-blank
// line is a separate expression; otherwise the whole input is one.
func readall(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var s []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		s = append(s, sc.Text())
	}
	return s, sc.Err()
}

// bind evaluates variable definitions in order. Each definition can use the
// variables defined before it.
func bind(with [][2]string) (*complexpr.Context, error) {
	ctx := complexpr.NewContext()
	for _, d := range with {
		nm, vl := d[0], d[1]
		a, err := complexpr.ParseString(vl)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", nm, err)
		}
		ctx.Set(nm, ctx.Eval(a))
	}
	return ctx, nil
}

// report prints an input error with the offending part of the source
// highlighted.
func report(w io.Writer, src string, err error) {
	var ierr complexpr.InputError
	if !errors.As(err, &ierr) {
		fmt.Fprintln(w, err)
		return
	}
	start, end := ierr.Span()
	line, col, n := errline([]rune(src), start, end)
	bad := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(w, "%s%s%s\n", string(line[:col]), bad.Sprint(string(line[col:col+n])), string(line[col+n:]))
	fmt.Fprintf(w, "%*s%s\n", col, "", bad.Sprint("^"+strings.Repeat("~", max(n-1, 0))))
	fmt.Fprintln(w, err)
}

// errline finds the line of src containing the span [start, end). It returns
// the line, the column of start within it, and the length of the span clipped
// to the line.
func errline(src []rune, start, end int) (line []rune, col, n int) {
	start = min(max(start, 0), len(src))
	end = min(max(end, start), len(src))
	lo := start
	for lo > 0 && src[lo-1] != '\n' {
		lo--
	}
	hi := start
	for hi < len(src) && src[hi] != '\n' {
		hi++
	}
	return src[lo:hi], start - lo, min(end, hi) - start
}

// result builds the JSON object describing one evaluated expression.
func result(src string, a *complexpr.Node, r complex128, with [][2]string, ctx *complexpr.Context) *orderedmap.OrderedMap {
	o := orderedmap.New()
	o.SetEscapeHTML(false)
	o.Set("expr", strings.TrimSpace(src))
	o.Set("tex", complexpr.Render(a))
	o.Set("re", jsonnum(real(r)))
	o.Set("im", jsonnum(imag(r)))
	given := orderedmap.New()
	for _, d := range with {
		if _, ok := given.Get(d[0]); ok {
			continue
		}
		v, _ := ctx.Lookup(d[0])
		g := orderedmap.New()
		g.Set("re", jsonnum(real(v)))
		g.Set("im", jsonnum(imag(v)))
		given.Set(d[0], g)
	}
	o.Set("given", given)
	return o
}

// jsonnum converts a float to a value that encoding/json accepts. JSON has no
// representation for NaN or infinities, so those become strings.
func jsonnum(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return v
}
