package emit

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/vvka-141/sitemapgen/internal/checksum"
	"github.com/vvka-141/sitemapgen/internal/files/filesystem"
	"github.com/vvka-141/sitemapgen/internal/logging"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// Outcome reports what Write did.
type Outcome int

const (
	// Unchanged: the file already had the wanted content.
	Unchanged Outcome = iota
	// Created: the file did not exist.
	Created
	// Updated: an existing file was replaced.
	Updated
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Created:
		return "created"
	case Updated:
		return "updated"
	}
	return "unknown"
}

// Writer writes generated files only when their content changes.
// Writer is safe for concurrent use if its approver is.
type Writer struct {
	fsProvider filesystem.FileSystemProvider
	calculator checksum.Calculator
	approver   sitemapgen.Approver
	logger     sitemapgen.Logger
}

// NewWriter creates a Writer. A nil approver denies every overwrite of a
// hand-written file; a nil logger discards messages.
// Panics if fsProvider is nil.
func NewWriter(fsProvider filesystem.FileSystemProvider, approver sitemapgen.Approver, logger sitemapgen.Logger) *Writer {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Writer{
		fsProvider: fsProvider,
		calculator: checksum.New(),
		approver:   approver,
		logger:     logger,
	}
}

// Write makes path hold content.
//
// Files whose normalized checksum already matches are left alone. In check
// mode nothing is written and any difference yields ErrOutputStale. A file
// that exists but lacks the generated-code header is only replaced after the
// approver agrees; otherwise ErrOverwriteDenied is returned.
func (w *Writer) Write(ctx context.Context, path string, content []byte, check bool) (Outcome, error) {
	existing, err := w.fsProvider.ReadFile(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Unchanged, fmt.Errorf("failed to read %s: %w", path, err)
	}

	want := w.calculator.CalculateNormalized(content)
	if exists && w.calculator.CalculateNormalized(existing) == want {
		w.logger.Verbose("%s is up to date (sha256 %s)", path, checksum.Short(want))
		return Unchanged, nil
	}

	if check {
		if !exists {
			return Unchanged, fmt.Errorf("%s does not exist: %w", path, sitemapgen.ErrOutputStale)
		}
		return Unchanged, fmt.Errorf("%s differs from generated output: %w", path, sitemapgen.ErrOutputStale)
	}

	if exists && !IsGenerated(existing) {
		if err := w.approve(ctx, path); err != nil {
			return Unchanged, err
		}
	}

	if err := w.fsProvider.WriteFile(path, content); err != nil {
		return Unchanged, fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.logger.Verbose("Wrote %s (sha256 %s)", path, checksum.Short(w.calculator.CalculateRaw(content)))

	if exists {
		return Updated, nil
	}
	return Created, nil
}

func (w *Writer) approve(ctx context.Context, path string) error {
	if w.approver == nil {
		return fmt.Errorf("%s was not generated by sitemapgen: %w", path, sitemapgen.ErrOverwriteDenied)
	}

	ok, err := w.approver.RequestApproval(ctx, path)
	if err != nil {
		return fmt.Errorf("approval for %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", path, sitemapgen.ErrOverwriteDenied)
	}
	return nil
}

// IsGenerated reports whether content carries the sitemapgen header before
// its package clause.
func IsGenerated(content []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == sitemapgen.GeneratedHeader {
			return true
		}
		if strings.HasPrefix(line, "package ") {
			return false
		}
	}
	return false
}
