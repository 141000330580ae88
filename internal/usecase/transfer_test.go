package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("stores content and reports size and type", func(t *testing.T) {
		w := newWorld(t)
		content := []byte("hello world")

		resource := w.mustUpload(t, "notes.txt", content)
		assert.Equal(t, "notes.txt", resource.Path.String())
		assert.False(t, resource.IsDirectory())
		require.NotNil(t, resource.Size)
		assert.Equal(t, int64(len(content)), *resource.Size)
		assert.NotEmpty(t, resource.ContentType)

		stored, err := w.storage.GetFile(ctx, w.key("notes.txt"))
		require.NoError(t, err)
		assert.Equal(t, content, stored)
	})

	t.Run("materializes missing ancestors", func(t *testing.T) {
		w := newWorld(t)
		w.mustUpload(t, "folder1/folder2/file.txt", []byte("data"))

		for _, dir := range []string{"folder1/", "folder1/folder2/"} {
			exists, err := w.storage.Exists(ctx, w.key(dir))
			require.NoError(t, err)
			assert.True(t, exists, "ancestor %q should exist", dir)
		}
	})

	t.Run("rejects overwrite", func(t *testing.T) {
		w := newWorld(t)
		w.mustUpload(t, "file.txt", []byte("one"))

		_, err := NewUploadFile(w.users, w.storage).Execute(ctx, w.user.ID, "file.txt", []byte("two"))
		assert.Equal(t, KindAlreadyExists, KindOf(err))
	})

	t.Run("rejects directory path", func(t *testing.T) {
		w := newWorld(t)
		_, err := NewUploadFile(w.users, w.storage).Execute(ctx, w.user.ID, "folder/", []byte("x"))
		require.Error(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := newWorld(t)
		_, err := NewUploadFile(w.users, w.storage).Execute(ctx, uuid.New(), "file.txt", []byte("x"))
		assert.Equal(t, KindNotFound, KindOf(err))
	})
}

func TestDownloadResource(t *testing.T) {
	ctx := context.Background()

	t.Run("streams file content", func(t *testing.T) {
		w := newWorld(t)
		content := []byte("download me")
		w.mustUpload(t, "file.bin", content)

		download := NewDownloadResource(w.users, w.storage, fakeArchiver{})
		result, err := download.Execute(ctx, w.user.ID, "file.bin")
		require.NoError(t, err)
		defer result.Content.Close()

		assert.False(t, result.Resource.IsDirectory())
		got, err := io.ReadAll(result.Content)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("archives directory subtree", func(t *testing.T) {
		w := newWorld(t)
		w.mustUpload(t, "docs/a.txt", []byte("a"))
		w.mustUpload(t, "docs/sub/b.txt", []byte("b"))

		archiver := &recordingArchiver{}
		download := NewDownloadResource(w.users, w.storage, archiver)
		result, err := download.Execute(ctx, w.user.ID, "docs/")
		require.NoError(t, err)
		defer result.Content.Close()

		assert.True(t, result.Resource.IsDirectory())

		var names []string
		for _, entry := range archiver.entries {
			names = append(names, entry.Path.String())
		}
		assert.ElementsMatch(t, []string{"a.txt", "sub/", "sub/b.txt"}, names)
	})

	t.Run("missing resource", func(t *testing.T) {
		w := newWorld(t)
		download := NewDownloadResource(w.users, w.storage, fakeArchiver{})
		_, err := download.Execute(ctx, w.user.ID, "nope.txt")
		assert.Equal(t, KindNotFound, KindOf(err))
	})
}

type fakeArchiver struct{}

func (fakeArchiver) Build(ctx context.Context, entries []ArchiveEntry) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

type recordingArchiver struct {
	entries []ArchiveEntry
}

func (r *recordingArchiver) Build(ctx context.Context, entries []ArchiveEntry) (io.ReadCloser, error) {
	r.entries = entries
	return io.NopCloser(strings.NewReader("")), nil
}
