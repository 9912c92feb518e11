package scan

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"io/fs"
	"path"
	"runtime"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/sitemapgen/internal/annotation"
	"github.com/vvka-141/sitemapgen/internal/files/filesystem"
	"github.com/vvka-141/sitemapgen/internal/logging"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// Options configures a Scanner.
type Options struct {
	// Annotations selects the annotation names to match.
	// The zero value means sitemapgen.DefaultAnnotationNames().
	Annotations sitemapgen.AnnotationNames

	// Exclude holds glob patterns of root-relative, slash-separated paths to
	// skip. A pattern matching a directory skips everything below it.
	Exclude []string

	// OutputFile is the root-relative path of the generated file, which is
	// never scanned.
	OutputFile string

	// Concurrency bounds parallel parsing. Zero means GOMAXPROCS.
	Concurrency int

	Logger sitemapgen.Logger
}

// Scanner discovers sitemap entries in a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as the
// provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider  filesystem.FileSystemProvider
	inspector   *annotation.Inspector
	exclude     []glob.Glob
	outputFile  string
	concurrency int
	logger      sitemapgen.Logger
}

// NewScanner creates a scanner over the OS filesystem.
func NewScanner(opts Options) (*Scanner, error) {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), opts)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, opts Options) (*Scanner, error) {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}

	names := opts.Annotations
	if names.Route == "" && names.Sitemap == "" {
		names = sitemapgen.DefaultAnnotationNames()
	}

	exclude := make([]glob.Glob, 0, len(opts.Exclude))
	for _, pattern := range opts.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %v: %w", pattern, err, sitemapgen.ErrInvalidConfig)
		}
		exclude = append(exclude, g)
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	return &Scanner{
		fsProvider:  fsProvider,
		inspector:   annotation.NewInspector(annotation.NewRegistry(names)),
		exclude:     exclude,
		outputFile:  path.Clean(strings.TrimPrefix(opts.OutputFile, "./")),
		concurrency: concurrency,
		logger:      logger,
	}, nil
}

// fileResult is one file's contribution, filled by a worker and read by the
// reduction.
type fileResult struct {
	entries   []sitemapgen.ScannedEntry
	omissions []sitemapgen.Omission
}

// Scan walks root and returns the entries of every qualifying declaration.
// Malformed or partial annotations never fail the scan; unreadable files and
// Go syntax errors do.
func (s *Scanner) Scan(ctx context.Context, root string) (sitemapgen.ScanResult, error) {
	files, err := s.collect(root)
	if err != nil {
		return sitemapgen.ScanResult{}, err
	}
	if len(files) == 0 {
		return sitemapgen.ScanResult{}, fmt.Errorf("%s: %w", root, sitemapgen.ErrNoSourceFiles)
	}
	s.logger.Verbose("Scanning %d Go files under %s", len(files), root)

	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, f := range files {
		i, f := i, f // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := s.scanFile(f)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sitemapgen.ScanResult{}, err
	}

	result := sitemapgen.ScanResult{FilesScanned: len(files)}
	for _, r := range results {
		result.Entries = append(result.Entries, r.entries...)
		result.Omissions = append(result.Omissions, r.omissions...)
	}

	s.logger.Verbose("Found %d sitemap entries, %d omitted declarations", len(result.Entries), len(result.Omissions))
	return result, nil
}

// collect walks root and returns the Go files to scan, sorted by relative path.
func (s *Scanner) collect(root string) ([]filesystem.File, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	var files []filesystem.File
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		rel := file.RelativePath()
		if file.Info().IsDir() {
			if rel != "." && (skipDirName(file.Info().Name()) || s.excluded(rel)) {
				return fs.SkipDir
			}
			return nil
		}

		if s.wantFile(rel, file.Info().Name()) {
			files = append(files, file)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b filesystem.File) int {
		return strings.Compare(a.RelativePath(), b.RelativePath())
	})
	return files, nil
}

// skipDirName reports directories the go tool itself ignores.
func skipDirName(name string) bool {
	return name == "vendor" || name == "testdata" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func (s *Scanner) wantFile(rel, name string) bool {
	switch {
	case !strings.HasSuffix(name, ".go"),
		strings.HasSuffix(name, "_test.go"),
		strings.HasPrefix(name, "."), strings.HasPrefix(name, "_"),
		rel == s.outputFile:
		return false
	}
	return !s.excluded(rel)
}

func (s *Scanner) excluded(rel string) bool {
	for _, g := range s.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// scanFile parses one file and classifies its type declarations.
func (s *Scanner) scanFile(file filesystem.File) (fileResult, error) {
	rel := file.RelativePath()

	content, err := file.ReadContent()
	if err != nil {
		return fileResult{}, fmt.Errorf("failed to read file %s: %w", rel, err)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, rel, content, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			return fileResult{}, fmt.Errorf("syntax error: %w", list[0])
		}
		return fileResult{}, fmt.Errorf("failed to parse %s: %w", rel, err)
	}

	var r fileResult
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)

			anns := s.inspector.Annotations(gen, ts)
			if len(anns) == 0 {
				continue
			}

			d := sitemapgen.Declaration{
				Dir:      path.Dir(rel),
				TypeName: ts.Name.Name,
				File:     rel,
				Line:     fset.Position(ts.Pos()).Line,
			}

			entry, omission := classify(s.inspector, d, anns)
			switch {
			case entry != nil:
				r.entries = append(r.entries, *entry)
			case omission != nil:
				r.omissions = append(r.omissions, *omission)
			}
		}
	}
	return r, nil
}

// Verify Scanner implements the interface at compile time
var _ sitemapgen.SourceScanner = (*Scanner)(nil)
