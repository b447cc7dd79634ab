package lib

type binaryExprOpType int

const (
	BinaryExprOpAdd binaryExprOpType = iota
	BinaryExprOpSubtract
	BinaryExprOpMultiply
	BinaryExprOpDivide
	BinaryExprOpMod
	BinaryExprOpPow
)

func (op binaryExprOpType) Symbol() string {
	switch op {
	case BinaryExprOpAdd:
		return "+"
	case BinaryExprOpSubtract:
		return "-"
	case BinaryExprOpMultiply:
		return "*"
	case BinaryExprOpDivide:
		return "/"
	case BinaryExprOpMod:
		return "%"
	case BinaryExprOpPow:
		return "^"
	default:
		return "?"
	}
}

func (op binaryExprOpType) String() string {
	switch op {
	case BinaryExprOpAdd:
		return "add"
	case BinaryExprOpSubtract:
		return "subtract"
	case BinaryExprOpMultiply:
		return "multiply"
	case BinaryExprOpDivide:
		return "divide"
	case BinaryExprOpMod:
		return "mod"
	case BinaryExprOpPow:
		return "pow"
	default:
		return "unknown"
	}
}

type Expression interface {
	isExpression()
}

func (n NumberLiteral) isExpression()    {}
func (b BinaryExpression) isExpression() {}

type NumberLiteral struct {
	Value float64
}

// BinaryExpression owns both operands; the parser never shares subtrees.
type BinaryExpression struct {
	Left  Expression
	Right Expression
	Op    binaryExprOpType
}
