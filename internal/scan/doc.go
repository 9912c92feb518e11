// Package scan discovers sitemap entries in a Go source tree.
//
// The scanner walks every .go file below a root, parses it, and hands each
// type declaration's doc comment to an annotation.Inspector. A declaration
// becomes a sitemap entry when it carries exactly one route annotation with a
// string argument and exactly one sitemap annotation with a change frequency
// and a priority:
//
//	// @router.Route("/products")
//	// @SitemapUrl(sitemap.Daily, 0.9)
//	type ProductList struct{}
//
// Anything else is skipped without an error. Skipped declarations that carried
// at least one of the two annotations are reported as omissions so callers can
// offer a lint mode.
//
// # Ordering
//
// Files are visited in lexical path order and declarations in source order.
// Files are parsed concurrently, but each file's results land in its own slot
// and the final list is assembled sequentially, so output is deterministic.
//
// # Skipped Files
//
// Test files (_test.go), the generated output file, and directories named
// vendor or testdata or starting with '.' or '_' are never scanned. Extra
// exclusions are glob patterns matched against slash-separated paths relative
// to the root.
package scan
