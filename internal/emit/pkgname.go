package emit

import (
	"errors"
	"go/parser"
	"go/token"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/vvka-141/sitemapgen/internal/files/filesystem"
)

// DetectPackage returns the package name for a file generated into dir.
//
// The package clause of the first non-test Go file in dir wins (ignoring
// skip, the generated file itself). Without one, the directory name is
// turned into an identifier; "main" is never guessed.
func DetectPackage(fsProvider filesystem.FileSystemProvider, dir, skip string) (string, error) {
	infos, err := fsProvider.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == skip {
			continue
		}

		content, err := fsProvider.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		f, err := parser.ParseFile(token.NewFileSet(), name, content, parser.PackageClauseOnly)
		if err != nil {
			continue
		}
		return f.Name.Name, nil
	}

	return identifierFromDir(dir), nil
}

// identifierFromDir lowercases the last path element and drops characters
// that cannot appear in an identifier: "web-app" → "webapp".
func identifierFromDir(dir string) string {
	base := path.Base(filepath.ToSlash(filepath.Clean(dir)))

	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if r == '_' || unicode.IsLetter(r) || (unicode.IsDigit(r) && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "sitemap"
	}
	return b.String()
}

func isIdentifier(s string) bool {
	return token.IsIdentifier(s) && !token.IsKeyword(s)
}
