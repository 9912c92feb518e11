package annotation

import (
	"fmt"
	"go/ast"
	"go/parser"
	"regexp"
	"strings"
)

// annotationLineRegex matches "@Name" or "@Name(args)" filling a whole
// comment line. Group 1 is the name, group 2 the parenthesised argument list.
var annotationLineRegex = regexp.MustCompile(`^@([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)\s*(\(.*\))?\s*$`)

// Extract returns the annotations of a doc comment in source order.
// A nil comment group has no annotations.
//
// Argument lists are parsed as Go call arguments. A list that does not parse
// still yields an Annotation, with Err set, so callers can tell "annotated but
// broken" from "not annotated".
func Extract(doc *ast.CommentGroup) []Annotation {
	if doc == nil {
		return nil
	}

	var annotations []Annotation
	for _, c := range doc.List {
		for _, line := range commentLines(c.Text) {
			m := annotationLineRegex.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			a := Annotation{
				Name: m[1],
				Raw:  strings.TrimPrefix(line, "@"),
				Pos:  c.Slash,
			}
			if m[2] != "" {
				a.Args, a.Err = parseArgs(m[1], m[2])
			}
			annotations = append(annotations, a)
		}
	}
	return annotations
}

// commentLines strips comment markers and returns the trimmed lines of one
// comment, either a // line or a /* */ block.
func commentLines(text string) []string {
	if strings.HasPrefix(text, "//") {
		return []string{strings.TrimSpace(text[2:])}
	}

	text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		l = strings.TrimSpace(l)
		lines[i] = strings.TrimSpace(strings.TrimPrefix(l, "*"))
	}
	return lines
}

// parseArgs parses "(a, b)" as the argument list of a call expression.
func parseArgs(name, list string) ([]ast.Expr, error) {
	expr, err := parser.ParseExpr("_" + list)
	if err != nil {
		return nil, &ResolveError{Name: name, Argument: -1, Message: fmt.Sprintf("invalid argument list: %v", err)}
	}

	call, ok := expr.(*ast.CallExpr)
	if !ok || call.Ellipsis.IsValid() {
		return nil, &ResolveError{Name: name, Argument: -1, Message: "invalid argument list"}
	}
	if fn, ok := call.Fun.(*ast.Ident); !ok || fn.Name != "_" {
		return nil, &ResolveError{Name: name, Argument: -1, Message: "invalid argument list"}
	}

	if call.Args == nil {
		return []ast.Expr{}, nil
	}
	return call.Args, nil
}
