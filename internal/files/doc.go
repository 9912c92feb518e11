// Package files groups file access for sitemapgen.
//
// Sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory) used by the
//     scanner to walk source trees and by the writer to replace the
//     generated file
//
// # Usage
//
//	import "github.com/vvka-141/sitemapgen/internal/files/filesystem"
//
//	fsProvider := filesystem.NewOSFileSystem()
//	dir, err := fsProvider.Open("./web")
//	err = dir.Walk(func(f filesystem.File, err error) error { ... })
package files
