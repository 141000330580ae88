package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64ptr(v int64) *int64 { return &v }

func TestNewResourceValid(t *testing.T) {
	filePath, _ := ParsePath("docs/report.pdf")
	dirPath, _ := ParsePath("docs/")

	file, err := NewResource(TypeFile, filePath, int64ptr(1024))
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", file.Name())
	assert.Equal(t, "docs/", file.ParentPath().String())
	assert.False(t, file.IsDirectory())

	dir, err := NewResource(TypeDirectory, dirPath, nil)
	require.NoError(t, err)
	assert.Equal(t, "docs", dir.Name())
	assert.True(t, dir.IsDirectory())
	assert.Nil(t, dir.Size)
}

func TestNewResourceInvalidCombinations(t *testing.T) {
	filePath, _ := ParsePath("docs/report.pdf")
	dirPath, _ := ParsePath("docs/")

	tests := []struct {
		name string
		typ  ResourceType
		path Path
		size *int64
	}{
		{"file without size", TypeFile, filePath, nil},
		{"file with negative size", TypeFile, filePath, int64ptr(-1)},
		{"file with directory path", TypeFile, dirPath, int64ptr(1)},
		{"directory with size", TypeDirectory, dirPath, int64ptr(1)},
		{"directory with file path", TypeDirectory, filePath, nil},
		{"unknown type", ResourceType("symlink"), filePath, int64ptr(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResource(tt.typ, tt.path, tt.size)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}
