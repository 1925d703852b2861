package ast

// ExprType represents the type of a parsed expression
type ExprType uint8

// Expression types
const (
	ExprInvalid ExprType = iota
	ExprInteger
	ExprFloat
	ExprAtom
	ExprBool
	ExprString
)

func (et ExprType) String() string {
	s, ok := exprTypeName[et]
	if ok {
		return s
	}
	return ""
}

var exprTypeName = map[ExprType]string{
	ExprInteger: "integer",
	ExprFloat:   "float",
	ExprAtom:    "atom",
	ExprBool:    "bool",
	ExprString:  "string",
}
