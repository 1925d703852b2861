package ast

import (
	"fmt"
	"strconv"
)

// Expr represents a literal value, a leaf of the AST. The zero value is an
// invalid expression.
type Expr struct {
	t ExprType
	v interface{}
}

func newExpr(t ExprType, v interface{}) Expr {
	return Expr{
		t: t,
		v: v,
	}
}

// NewInteger creates an expression of type integer
func NewInteger(v int64) Expr {
	return newExpr(ExprInteger, v)
}

// NewFloat creates an expression of type float
func NewFloat(v float64) Expr {
	return newExpr(ExprFloat, v)
}

// NewAtom creates an expression of type atom, name is the symbol without the
// leading quote.
func NewAtom(name string) Expr {
	return newExpr(ExprAtom, name)
}

// NewBool creates an expression of type bool
func NewBool(v bool) Expr {
	return newExpr(ExprBool, v)
}

// NewString creates an expression of type string
func NewString(v string) Expr {
	return newExpr(ExprString, v)
}

// Type returns the type of the expression
func (e Expr) Type() ExprType {
	return e.t
}

// Value returns the Go value held by the expression
func (e Expr) Value() interface{} {
	return e.v
}

func (e Expr) Int() int64 {
	return e.v.(int64)
}

func (e Expr) Float64() float64 {
	return e.v.(float64)
}

func (e Expr) Bool() bool {
	return e.v.(bool)
}

// Text returns the symbol of an atom or the content of a string
func (e Expr) Text() string {
	return e.v.(string)
}

// Equal reports whether both expressions have the same type and value.
// Floats follow IEEE 754 comparison: NaN is not equal to itself and -0
// equals +0.
func (e Expr) Equal(other Expr) bool {
	if e.t != other.t {
		return false
	}
	switch e.t {
	case ExprInteger:
		return e.Int() == other.Int()
	case ExprFloat:
		return e.Float64() == other.Float64()
	case ExprAtom, ExprString:
		return e.Text() == other.Text()
	case ExprBool:
		return e.Bool() == other.Bool()
	}
	return false
}

// Encode returns the canonical text representation of the expression
func (e Expr) Encode() string {
	switch e.t {
	case ExprInteger:
		return strconv.FormatInt(e.Int(), 10)
	case ExprFloat:
		return EncodeFloat(e.Float64(), DefaultFloatPrecision)
	case ExprAtom, ExprString:
		return e.Text()
	case ExprBool:
		return strconv.FormatBool(e.Bool())
	}
	return ""
}

func (e Expr) String() string {
	return e.Encode()
}

// GoString is used by %#v, it shows the type along with the value.
func (e Expr) GoString() string {
	if e.t == ExprInvalid {
		return "ast.Expr(invalid)"
	}
	return fmt.Sprintf("ast.Expr(%v %#v)", e.t, e.v)
}
