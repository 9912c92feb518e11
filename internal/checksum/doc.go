// Package checksum hashes generated Go source so the writer can tell whether a
// file actually changed.
//
// Two checksums are offered:
//
//   - Raw checksum: Hash of the exact file content
//   - Normalized checksum: Hash after normalizing line endings and trailing
//     whitespace, so a checkout with CRLF endings or an editor that trims
//     blank lines does not count as drift
//
// # Normalization Strategy
//
//  1. Convert CRLF and lone CR to LF
//  2. Strip trailing spaces and tabs from every line
//  3. Drop trailing blank lines
//
// Comments and indentation inside lines are significant: the generated file
// is gofmt output, so any other difference is a real change.
//
// # Example Usage
//
//	calculator := checksum.New()
//	if calculator.CalculateNormalized(existing) == calculator.CalculateNormalized(generated) {
//	    // up to date
//	}
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
