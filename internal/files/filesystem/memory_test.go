package filesystem

import (
	"errors"
	"io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkFiles(t *testing.T, d Directory, skip ...string) []string {
	t.Helper()
	var files []string
	err := d.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if file.Info().IsDir() {
			for _, s := range skip {
				if file.RelativePath() == s {
					return fs.SkipDir
				}
			}
			return nil
		}
		files = append(files, file.RelativePath())
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestMemoryFileSystem_Basic(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("main.go", "package main")
	mfs.AddFile("pages/home.go", "package pages")

	dir, err := mfs.Open("/test/project")
	require.NoError(t, err, "Failed to open root directory")
	require.NotNil(t, dir)

	assert.Equal(t, []string{"main.go", "pages/home.go"}, walkFiles(t, dir))
}

func TestMemoryFileSystem_WalkOrderMatchesFilepathWalk(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("a.go", "")
	mfs.AddFile("a/b.go", "")
	mfs.AddFile("B.go", "")
	mfs.AddFile("a/z/c.go", "")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	assert.Equal(t, []string{"B.go", "a/b.go", "a/z/c.go", "a.go"}, walkFiles(t, dir))
}

func TestMemoryFileSystem_WalkSkipDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("keep/a.go", "")
	mfs.AddFile("vendor/x/b.go", "")
	mfs.AddFile("vendor.go", "")

	dir, err := mfs.Open("/p")
	require.NoError(t, err)

	assert.Equal(t, []string{"keep/a.go", "vendor.go"}, walkFiles(t, dir, "vendor"))
}

func TestMemoryFileSystem_WalkSubdirectoryIsRerooted(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("web/pages/home.go", "")

	dir, err := mfs.Open("web")
	require.NoError(t, err)

	var rels []string
	require.NoError(t, dir.Walk(func(f File, err error) error {
		rels = append(rels, f.RelativePath())
		return nil
	}))
	assert.Equal(t, []string{".", "pages", "pages/home.go"}, rels)
}

func TestMemoryFileSystem_WalkCallbackPanic(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("a.go", "")

	dir, err := mfs.Open("/p")
	require.NoError(t, err)

	err = dir.Walk(func(f File, err error) error {
		if f.RelativePath() == "a.go" {
			panic("boom")
		}
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("main.go", "package main")

	content, err := mfs.ReadFile("/test/project/main.go")
	require.NoError(t, err)
	require.Equal(t, "package main", string(content))

	_, err = mfs.ReadFile("missing.go")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_WriteFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")

	require.NoError(t, mfs.WriteFile("/p/gen/sitemap_gen.go", []byte("package gen\n")))

	content, err := mfs.ReadFile("gen/sitemap_gen.go")
	require.NoError(t, err)
	assert.Equal(t, "package gen\n", string(content))

	info, err := mfs.Stat("gen")
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "parent directories are created")

	assert.Error(t, mfs.WriteFile("gen", []byte("x")), "cannot overwrite a directory")
}

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("pages/b.go", "")
	mfs.AddFile("pages/a.go", "")
	mfs.AddFile("pages/sub/c.go", "")
	mfs.AddDir("empty")

	infos, err := mfs.ReadDir("pages")
	require.NoError(t, err)

	var names []string
	for _, i := range infos {
		names = append(names, i.Name())
	}
	assert.Equal(t, []string{"a.go", "b.go", "sub"}, names)

	infos, err = mfs.ReadDir("empty")
	require.NoError(t, err)
	assert.Empty(t, infos)

	_, err = mfs.ReadDir("pages/a.go")
	assert.Error(t, err)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("main.go", "package main")

	info, err := mfs.Stat("/test/project/main.go")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "main.go", info.Name())

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = mfs.Stat("nope.go")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_Open_Errors(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("main.go", "package main")

	_, err := mfs.Open("missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.Open("main.go")
	assert.Error(t, err)
}

func TestMemoryFileSystem_ConcurrentReadWrite(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("a.go", "package a")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = mfs.ReadFile("a.go")
		}()
		go func() {
			defer wg.Done()
			_ = mfs.WriteFile("b.go", []byte("package b"))
		}()
	}
	wg.Wait()

	_, err := mfs.Stat("b.go")
	assert.NoError(t, err)
}
