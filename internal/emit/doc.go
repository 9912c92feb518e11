// Package emit turns scanned sitemap entries into the generated Go file and
// writes it without churn.
//
// Source renders one of two flavours, net/http or gin, from a text/template
// and runs the result through go/format. The output depends only on the
// entry list and the options, so rerunning the generator on an unchanged tree
// produces byte-identical files.
//
// Writer compares normalized checksums before touching the disk, implements
// check mode for CI, and asks an approver before replacing a file that was not
// generated by sitemapgen.
package emit
