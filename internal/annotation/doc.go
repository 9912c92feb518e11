// Package annotation reads declarative annotations from Go doc comments and
// resolves their arguments into typed constants.
//
// # Annotation Format
//
// An annotation is a doc comment line that starts with '@', followed by a
// (possibly qualified) name and an optional argument list written as Go
// expressions:
//
//	// ProductPage renders a single product.
//	//
//	// @router.Route("/products/{id}")
//	// @SitemapUrl(sitemap.Weekly, 0.8)
//	type ProductPage struct{}
//
// Annotations must fit on one line. Lines that do not match the format are
// ordinary prose and are ignored.
//
// # Two Phases
//
// Extraction is purely syntactic: Extract returns every annotation with its
// name as written and its arguments as ast.Expr. Resolution is semantic:
// Inspector.Resolve looks the name up in a Registry, evaluates each argument
// with go/constant, and fills trailing parameters from their declared defaults.
// Resolution never judges arity or argument kinds; callers decide what a valid
// shape is, so "three arguments where two are expected" is visible to them.
//
// # Supported Argument Expressions
//
//   - string, integer and float literals, optionally signed and parenthesised
//   - registered enum constants, bare (Weekly) or qualified (sitemap.Weekly)
//
// Anything else (calls, variables, composite literals) fails to resolve.
package annotation
