package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystore/skystore/internal/domain"
	"github.com/skystore/skystore/internal/usecase"
)

func entry(t *testing.T, path, content string) usecase.ArchiveEntry {
	t.Helper()
	parsed, err := domain.ParsePath(path)
	require.NoError(t, err)

	e := usecase.ArchiveEntry{Path: parsed}
	if !parsed.IsDirectory() {
		e.Open = func(ctx context.Context) (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte(content))), nil
		}
	}
	return e
}

func TestZipBuild(t *testing.T) {
	ctx := context.Background()

	entries := []usecase.ArchiveEntry{
		entry(t, "a.txt", "alpha"),
		entry(t, "sub/", ""),
		entry(t, "sub/b.txt", "beta"),
	}

	reader, err := NewZip().Build(ctx, entries)
	require.NoError(t, err)
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	require.NoError(t, err)

	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)
	require.Len(t, archive.File, 3)

	got := make(map[string]string)
	for _, file := range archive.File {
		if file.FileInfo().IsDir() {
			got[file.Name] = ""
			continue
		}
		rc, err := file.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		got[file.Name] = string(content)
	}

	assert.Equal(t, map[string]string{
		"a.txt":     "alpha",
		"sub/":      "",
		"sub/b.txt": "beta",
	}, got)
}

func TestZipBuildEmpty(t *testing.T) {
	reader, err := NewZip().Build(context.Background(), nil)
	require.NoError(t, err)
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	require.NoError(t, err)

	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)
	assert.Empty(t, archive.File)
}

func TestZipBuildSourceError(t *testing.T) {
	parsed, err := domain.ParsePath("broken.txt")
	require.NoError(t, err)

	entries := []usecase.ArchiveEntry{{
		Path: parsed,
		Open: func(ctx context.Context) (io.ReadCloser, error) {
			return nil, io.ErrUnexpectedEOF
		},
	}}

	reader, err := NewZip().Build(context.Background(), entries)
	require.NoError(t, err)
	defer reader.Close()

	_, err = io.ReadAll(reader)
	assert.Error(t, err)
}
