package lib

import (
	"fmt"
	"math"
)

// Evaluate reduces a parsed expression to a number. Division by zero and
// invalid powers yield IEEE special values rather than errors.
func Evaluate(expr Expression) float64 {
	switch e := expr.(type) {
	case NumberLiteral:
		return e.Value
	case BinaryExpression:
		left := Evaluate(e.Left)
		right := Evaluate(e.Right)
		return apply(e.Op, left, right)
	default:
		panic(fmt.Sprintf("Evaluate: unexpected expression %T", expr))
	}
}

func apply(op binaryExprOpType, left float64, right float64) float64 {
	switch op {
	case BinaryExprOpAdd:
		return left + right
	case BinaryExprOpSubtract:
		return left - right
	case BinaryExprOpMultiply:
		return left * right
	case BinaryExprOpDivide:
		return left / right
	case BinaryExprOpMod:
		return math.Mod(left, right)
	case BinaryExprOpPow:
		return math.Pow(left, right)
	default:
		panic(fmt.Sprintf("apply: unexpected operator %d", op))
	}
}
