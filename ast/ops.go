package ast

// BinaryOp is the operator of a binary expression.
type BinaryOp int

// Binary operators.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAnd
	OpOr
)

var binaryOpSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpEq:  "==",
	OpNeq: "!=",
	OpLt:  "<",
	OpLte: "<=",
	OpGt:  ">",
	OpGte: ">=",
	OpAnd: "&&",
	OpOr:  "||",
}

func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpSymbols) {
		return "?"
	}
	return binaryOpSymbols[op]
}

// BinaryOpFor returns the binary operator for a symbol like "<=".
func BinaryOpFor(sym string) (BinaryOp, bool) {
	for op, s := range binaryOpSymbols {
		if s == sym {
			return BinaryOp(op), true
		}
	}
	return 0, false
}

// UnaryOp is the operator of a unary expression.
type UnaryOp int

// Unary operators.
const (
	OpNeg UnaryOp = iota // arithmetic negation '-'
	OpNot                // logical negation '!'
)

func (op UnaryOp) String() string {
	switch op {
	case OpNeg:
		return "-"
	case OpNot:
		return "!"
	}
	return "?"
}
