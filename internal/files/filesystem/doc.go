// Package filesystem abstracts the file operations sitemapgen needs: walking a
// source tree, reading Go files, and writing the generated output.
//
// Key interfaces:
//   - FileSystemProvider: Opens directories and reads, writes and stats files
//   - Directory: A tree that can be walked in lexical order
//   - File: An individual file with metadata and content
//
// Implementations:
//   - OSFileSystem: Production implementation backed by the os package
//   - MemoryFileSystem: In-memory implementation for tests
package filesystem
