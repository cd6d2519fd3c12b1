package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"trailing newline", "one\ntwo\n", []string{"one", "two"}},
		{"no trailing newline", "one\ntwo", []string{"one", "two"}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"empty", "", []string{""}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
	}

	l, err := NewLoader(8)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".txt", tt.content)
			lines, err := l.Load(path)
			require.NoError(t, err)
			require.Equal(t, tt.want, lines)
		})
	}
}

func TestLoaderNoticesChangesOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n")

	l, err := NewLoader(0)
	require.NoError(t, err)

	_, err = l.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, l.Cached())

	require.NoError(t, os.WriteFile(path, []byte("package other\n\nfunc f() {}\n"), 0o644))
	lines, err := l.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"package other", "", "func f() {}"}, lines)
}

func TestLoaderInvalidate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n")

	l, err := NewLoader(0)
	require.NoError(t, err)
	_, err = l.Load(path)
	require.NoError(t, err)

	l.Invalidate(path)
	require.Equal(t, 0, l.Cached())
}

func TestLoaderEvictsOldest(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLoader(2)
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c"} {
		_, err := l.Load(writeFile(t, dir, name, name))
		require.NoError(t, err)
	}
	require.Equal(t, 2, l.Cached())
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLoader(2)
	require.NoError(t, err)

	_, err = l.Load(filepath.Join(dir, "missing.go"))
	require.ErrorIs(t, err, ErrNotFound)

	_, err = l.Load(dir)
	require.Error(t, err)

	require.False(t, l.Exists(dir))
	require.False(t, l.Exists(filepath.Join(dir, "missing.go")))
	require.True(t, l.Exists(writeFile(t, dir, "x", "x")))
}
