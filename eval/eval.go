package eval

import (
	"math"

	"github.com/xiam/arith/ast"
)

// Eval computes the value of an expression tree. Division by zero and any
// other numeric edge case follow IEEE-754 and are not reported as errors.
func Eval(n ast.Node) float64 {
	switch n := n.(type) {
	case *ast.Number:
		return n.Value

	case *ast.Binary:
		v1 := Eval(n.Left)
		v2 := Eval(n.Right)
		return apply(n.Op, v1, v2)
	}

	panic("unknown node type")
}

func apply(op ast.Operator, v1, v2 float64) float64 {
	switch op {
	case ast.OpAdd:
		return v1 + v2
	case ast.OpSubtract:
		return v1 - v2
	case ast.OpMultiply:
		return v1 * v2
	case ast.OpDivide:
		return v1 / v2
	case ast.OpPower:
		return Power(v1, v2)
	}

	panic("unknown operator")
}

// Power multiplies an accumulator that starts at 1 by base once for every
// integer counter value below exp. That is ceil(exp) multiplications for a
// positive exp and none otherwise, so 2**2.5 is 8 and 2**-1 is 1.
func Power(base, exp float64) float64 {
	acc := 1.0
	for i := int64(0); float64(i) < exp; i++ {
		next := acc * base

		// Once the accumulator stops changing, or flips between two values,
		// the remaining iterations are known without running them.
		if sameFloat(next, acc) {
			return acc
		}
		if sameFloat(next*base, acc) {
			if math.IsInf(exp, 1) {
				return math.NaN()
			}
			remaining := math.Ceil(exp) - float64(i)
			if math.Mod(remaining, 2) == 0 {
				return acc
			}
			return next
		}

		acc = next
	}
	return acc
}

func sameFloat(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
