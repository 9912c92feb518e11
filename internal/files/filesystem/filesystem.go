package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the slash-separated path relative to the walked root.
	// The root itself is ".".
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk visits the directory itself and everything below it in lexical
	// order. Returning fs.SkipDir for a directory skips its contents; any other
	// error stops the walk and is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is the entry point to a filesystem implementation.
// Implementations must be safe for concurrent reads.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of path, creating it if needed.
	WriteFile(path string, data []byte) error

	// ReadDir lists the direct children of a directory, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path.
	// Missing paths yield an error matching fs.ErrNotExist.
	Stat(path string) (FileInfo, error)
}
