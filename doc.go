// Package complexpr implements a complex-valued calculator with LaTeX output.
//
// The syntax of expressions is intended to be similar to math you'd write in
// your notes. "2 x y" is a multiplication of three terms, as is "2*x*y".
// Functions apply to the next single term, so "sin 2x" is "(sin 2) x" and
// "sqrt(x+1)" takes the whole group. "-2^2^n" is the same as "-(2^(2^n))",
// where "a^b" is exponentiation. i, pi (or π), and e are constants.
//
// Parsing produces a tree of Nodes in which subtraction and division are
// written as sums of negations and products of reciprocals. Trees can be
// evaluated with a Context holding variable values, or rendered as LaTeX with
// Render. Neither evaluation nor rendering can fail; invalid expressions are
// rejected while parsing with an InputError that locates the problem.
package complexpr
