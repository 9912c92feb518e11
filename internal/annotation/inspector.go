package annotation

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
)

// Inspector answers "which annotations does this declaration carry, and what
// are their argument values".
type Inspector struct {
	registry *Registry
}

// NewInspector creates an Inspector over registry.
// Panics if registry is nil.
func NewInspector(registry *Registry) *Inspector {
	if registry == nil {
		panic("registry cannot be nil")
	}
	return &Inspector{registry: registry}
}

// Registry returns the registry the inspector resolves against.
func (i *Inspector) Registry() *Registry {
	return i.registry
}

// TypeDoc returns the doc comment that belongs to spec. A lone type
// declaration ("type X struct{}") keeps its comment on the GenDecl; inside a
// parenthesised group each spec has its own.
func TypeDoc(gen *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}
	if !gen.Lparen.IsValid() {
		return gen.Doc
	}
	return nil
}

// Annotations returns the annotations attached to spec, in source order.
func (i *Inspector) Annotations(gen *ast.GenDecl, spec *ast.TypeSpec) []Annotation {
	return Extract(TypeDoc(gen, spec))
}

// Resolve binds a to its registered Type and evaluates its arguments.
//
// Missing trailing arguments are filled from parameter defaults. Surplus
// arguments are evaluated and kept, so Arity reflects what was written.
// A missing argument without a default simply shortens the result.
func (i *Inspector) Resolve(a Annotation) (Resolved, error) {
	if a.Err != nil {
		return Resolved{}, a.Err
	}

	t, ok := i.registry.Lookup(a.Name)
	if !ok {
		return Resolved{}, &ResolveError{Name: a.Name, Argument: -1, Message: "unknown annotation"}
	}

	args := make([]Value, 0, max(len(a.Args), len(t.Params)))
	for n, expr := range a.Args {
		v, err := i.eval(expr)
		if err != nil {
			return Resolved{}, &ResolveError{Name: a.Name, Argument: n, Message: err.Error()}
		}
		args = append(args, v)
	}

	for n := len(a.Args); n < len(t.Params); n++ {
		if t.Params[n].Default == nil {
			break
		}
		args = append(args, *t.Params[n].Default)
	}

	return Resolved{Type: t, Args: args, Pos: a.Pos}, nil
}

func (i *Inspector) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		switch e.Kind {
		case token.STRING, token.INT, token.FLOAT:
			v := constant.MakeFromLiteral(e.Value, e.Kind, 0)
			if v.Kind() == constant.Unknown {
				return Value{}, fmt.Errorf("malformed literal %s", e.Value)
			}
			return Value{Const: v}, nil
		}
		return Value{}, fmt.Errorf("unsupported literal %s", e.Value)

	case *ast.ParenExpr:
		return i.eval(e.X)

	case *ast.UnaryExpr:
		if e.Op != token.SUB && e.Op != token.ADD {
			return Value{}, fmt.Errorf("unsupported operator %s", e.Op)
		}
		v, err := i.eval(e.X)
		if err != nil {
			return Value{}, err
		}
		if v.Enum != "" || (v.Const.Kind() != constant.Int && v.Const.Kind() != constant.Float) {
			return Value{}, fmt.Errorf("operator %s needs a numeric literal", e.Op)
		}
		return Value{Const: constant.UnaryOp(e.Op, v.Const, 0)}, nil

	case *ast.Ident:
		if n, ok := i.registry.enumConstant("", e.Name); ok {
			return Value{Const: constant.MakeInt64(n), Enum: ChangeFreqEnum}, nil
		}
		return Value{}, fmt.Errorf("undefined: %s", e.Name)

	case *ast.SelectorExpr:
		pkg, ok := e.X.(*ast.Ident)
		if !ok {
			return Value{}, fmt.Errorf("unsupported selector expression")
		}
		if n, ok := i.registry.enumConstant(pkg.Name, e.Sel.Name); ok {
			return Value{Const: constant.MakeInt64(n), Enum: ChangeFreqEnum}, nil
		}
		return Value{}, fmt.Errorf("undefined: %s.%s", pkg.Name, e.Sel.Name)
	}

	return Value{}, fmt.Errorf("unsupported expression %T", expr)
}
