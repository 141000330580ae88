// Package archive builds zip archives for directory downloads.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/skystore/skystore/internal/usecase"
)

// Zip streams entries into a zip archive through a pipe, so a large
// directory download never buffers fully in memory.
type Zip struct {
	level int
}

// NewZip creates a builder using the default compression level.
func NewZip() *Zip {
	return &Zip{level: flate.DefaultCompression}
}

// Build returns a reader producing the archive. Writing happens in a
// background goroutine; any failure surfaces as the reader's error.
func (z *Zip) Build(ctx context.Context, entries []usecase.ArchiveEntry) (io.ReadCloser, error) {
	pr, pw := io.Pipe()

	go func() {
		writer := zip.NewWriter(pw)
		writer.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(out, z.level)
		})

		err := z.writeEntries(ctx, writer, entries)
		if closeErr := writer.Close(); err == nil {
			err = closeErr
		}
		pw.CloseWithError(err)
	}()

	return pr, nil
}

func (z *Zip) writeEntries(ctx context.Context, writer *zip.Writer, entries []usecase.ArchiveEntry) error {
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := z.writeEntry(ctx, writer, entry); err != nil {
			return fmt.Errorf("archive entry %q: %w", entry.Path.String(), err)
		}
	}
	return nil
}

func (z *Zip) writeEntry(ctx context.Context, writer *zip.Writer, entry usecase.ArchiveEntry) error {
	if entry.Open == nil {
		// Trailing slash makes unzip tools restore the empty directory.
		_, err := writer.Create(entry.Path.String())
		return err
	}

	dest, err := writer.CreateHeader(&zip.FileHeader{
		Name:   entry.Path.String(),
		Method: zip.Deflate,
	})
	if err != nil {
		return err
	}

	source, err := entry.Open(ctx)
	if err != nil {
		return err
	}
	defer source.Close()

	_, err = io.Copy(dest, source)
	return err
}
