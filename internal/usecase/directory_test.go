package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystore/skystore/internal/domain"
)

func TestCreateDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates marker", func(t *testing.T) {
		w := newWorld(t)

		resource, err := NewCreateDirectory(w.users, w.storage).Execute(ctx, w.user.ID, "docs/")
		require.NoError(t, err)
		assert.Equal(t, domain.TypeDirectory, resource.Type)

		exists, err := w.storage.Exists(ctx, w.key("docs/"))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("materializes missing ancestors", func(t *testing.T) {
		w := newWorld(t)

		_, err := NewCreateDirectory(w.users, w.storage).Execute(ctx, w.user.ID, "a/b/c/")
		require.NoError(t, err)

		for _, dir := range []string{"a/", "a/b/", "a/b/c/"} {
			exists, err := w.storage.Exists(ctx, w.key(dir))
			require.NoError(t, err)
			assert.True(t, exists, "directory %q should exist", dir)
		}
	})

	t.Run("rejects existing directory", func(t *testing.T) {
		w := newWorld(t)
		create := NewCreateDirectory(w.users, w.storage)

		_, err := create.Execute(ctx, w.user.ID, "docs/")
		require.NoError(t, err)
		_, err = create.Execute(ctx, w.user.ID, "docs/")
		assert.Equal(t, KindAlreadyExists, KindOf(err))
	})

	t.Run("rejects file path and root", func(t *testing.T) {
		w := newWorld(t)
		create := NewCreateDirectory(w.users, w.storage)

		_, err := create.Execute(ctx, w.user.ID, "file.txt")
		assert.Equal(t, KindNotDirectory, KindOf(err))
		_, err = create.Execute(ctx, w.user.ID, "")
		assert.Equal(t, KindNotDirectory, KindOf(err))
	})
}

func TestListDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("lists immediate children only", func(t *testing.T) {
		w := newWorld(t)
		w.mustUpload(t, "docs/a.txt", []byte("a"))
		w.mustUpload(t, "docs/sub/deep.txt", []byte("d"))
		w.mustUpload(t, "top.txt", []byte("t"))

		resources, err := NewListDirectory(w.users, w.storage).Execute(ctx, w.user.ID, "docs/")
		require.NoError(t, err)

		var paths []string
		for _, r := range resources {
			paths = append(paths, r.Path.String())
		}
		assert.Equal(t, []string{"docs/a.txt", "docs/sub/"}, paths)
	})

	t.Run("root lists before first write", func(t *testing.T) {
		w := newWorld(t)

		resources, err := NewListDirectory(w.users, w.storage).Execute(ctx, w.user.ID, "")
		require.NoError(t, err)
		assert.Empty(t, resources)
	})

	t.Run("empty directory lists empty", func(t *testing.T) {
		w := newWorld(t)
		_, err := NewCreateDirectory(w.users, w.storage).Execute(ctx, w.user.ID, "empty/")
		require.NoError(t, err)

		resources, err := NewListDirectory(w.users, w.storage).Execute(ctx, w.user.ID, "empty/")
		require.NoError(t, err)
		assert.Empty(t, resources)
	})

	t.Run("missing directory", func(t *testing.T) {
		w := newWorld(t)
		_, err := NewListDirectory(w.users, w.storage).Execute(ctx, w.user.ID, "nope/")
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("rejects file path", func(t *testing.T) {
		w := newWorld(t)
		_, err := NewListDirectory(w.users, w.storage).Execute(ctx, w.user.ID, "file.txt")
		assert.Equal(t, KindNotDirectory, KindOf(err))
	})
}
