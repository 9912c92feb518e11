package annotation

import (
	"go/ast"
	"go/constant"
	"go/token"
	"math"
)

// Annotation is one @Name(args) line of a doc comment, before resolution.
type Annotation struct {
	// Name is the annotation name exactly as written, e.g. "router.Route".
	Name string

	// Args are the argument expressions. Nil when written without parentheses.
	Args []ast.Expr

	// Raw is the comment text after the '@'.
	Raw string

	// Pos is the position of the comment line.
	Pos token.Pos

	// Err is set when the argument list is not a valid Go expression list.
	Err error
}

// ParamKind is the static kind an annotation parameter expects.
type ParamKind int

const (
	// KindString accepts string literals.
	KindString ParamKind = iota
	// KindOrdinal accepts integer literals and enum constants.
	KindOrdinal
	// KindNumber accepts integer and float literals, but not enum constants.
	KindNumber
)

func (k ParamKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindOrdinal:
		return "ordinal"
	case KindNumber:
		return "number"
	}
	return "unknown"
}

// Param declares one annotation constructor parameter.
type Param struct {
	Name string
	Kind ParamKind

	// Default is used when the argument is omitted. Nil makes the parameter
	// required.
	Default *Value
}

// Type declares an annotation: its canonical name and parameters.
type Type struct {
	Name   string
	Params []Param
}

// Value is a resolved argument.
type Value struct {
	Const constant.Value

	// Enum names the enum the value came from ("ChangeFreq"), empty for literals.
	Enum string
}

// Resolved is an annotation whose name was bound to a Type and whose
// arguments were evaluated.
type Resolved struct {
	Type *Type
	Args []Value
	Pos  token.Pos
}

// Arity returns the number of resolved arguments, defaults included.
func (r Resolved) Arity() int {
	return len(r.Args)
}

// StringArg returns argument i as a string if it is a string constant.
func (r Resolved) StringArg(i int) (string, bool) {
	if i < 0 || i >= len(r.Args) || r.Args[i].Const.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(r.Args[i].Const), true
}

// OrdinalArg returns argument i as an integer if it is an integer literal or enum
// constant. Integers too large for int64 report math.MinInt64, which no enum
// table maps.
func (r Resolved) OrdinalArg(i int) (int64, bool) {
	if i < 0 || i >= len(r.Args) || r.Args[i].Const.Kind() != constant.Int {
		return 0, false
	}
	n, exact := constant.Int64Val(r.Args[i].Const)
	if !exact {
		return math.MinInt64, true
	}
	return n, true
}

// NumberArg returns argument i as a float64 if it is a numeric literal.
// Enum constants are rejected.
func (r Resolved) NumberArg(i int) (float64, bool) {
	if i < 0 || i >= len(r.Args) || r.Args[i].Enum != "" {
		return 0, false
	}
	switch r.Args[i].Const.Kind() {
	case constant.Int, constant.Float:
		f, _ := constant.Float64Val(constant.ToFloat(r.Args[i].Const))
		return f, true
	}
	return 0, false
}

// Matches reports whether argument i has the static kind k.
func (r Resolved) Matches(i int, k ParamKind) bool {
	switch k {
	case KindString:
		_, ok := r.StringArg(i)
		return ok
	case KindOrdinal:
		_, ok := r.OrdinalArg(i)
		return ok
	case KindNumber:
		_, ok := r.NumberArg(i)
		return ok
	}
	return false
}
