package usecase

import (
	"context"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/skystore/skystore/internal/domain"
)

// UploadFile stores content at a file path, materializing missing
// ancestor directories. Overwrites are rejected.
type UploadFile struct {
	users   UserGateway
	storage ObjectStorage
}

func NewUploadFile(users UserGateway, storage ObjectStorage) *UploadFile {
	return &UploadFile{users: users, storage: storage}
}

func (uc *UploadFile) Execute(ctx context.Context, userID uuid.UUID, rawPath string, content []byte) (domain.Resource, error) {
	user, err := lookupUser(ctx, uc.users, userID)
	if err != nil {
		return domain.Resource{}, err
	}

	rel, full, err := resolveUnderRoot(user, rawPath)
	if err != nil {
		return domain.Resource{}, err
	}
	if rel.IsDirectory() {
		return domain.Resource{}, domain.NewValidation("upload path " + rel.String() + " must be a file path")
	}

	exists, err := uc.storage.Exists(ctx, full.String())
	if err != nil {
		return domain.Resource{}, err
	}
	if exists {
		return domain.Resource{}, ErrAlreadyExists("file " + rel.String())
	}

	if err := materializeAncestors(ctx, uc.storage, user.RootPath(), rel); err != nil {
		return domain.Resource{}, err
	}
	if err := uc.storage.SaveFile(ctx, full.String(), content); err != nil {
		return domain.Resource{}, err
	}

	resource, err := domain.NewFile(rel, int64(len(content)))
	if err != nil {
		return domain.Resource{}, err
	}
	resource.ContentType = mimetype.Detect(content).String()
	return resource, nil
}

// Download is the streamed result of a download request. Files stream
// their raw bytes; directories stream a zip archive of their subtree.
type Download struct {
	Resource domain.Resource
	Content  io.ReadCloser
}

// DownloadResource streams a file or a zipped directory subtree.
type DownloadResource struct {
	users    UserGateway
	storage  ObjectStorage
	archiver ArchiveBuilder
}

func NewDownloadResource(users UserGateway, storage ObjectStorage, archiver ArchiveBuilder) *DownloadResource {
	return &DownloadResource{users: users, storage: storage, archiver: archiver}
}

func (uc *DownloadResource) Execute(ctx context.Context, userID uuid.UUID, rawPath string) (*Download, error) {
	user, err := lookupUser(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}

	rel, full, err := resolveUnderRoot(user, rawPath)
	if err != nil {
		return nil, err
	}

	if !rel.IsRoot() {
		exists, err := uc.storage.Exists(ctx, full.String())
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrNotFound("resource " + rel.String())
		}
	}

	resource, err := typedResource(ctx, uc.storage, rel, full)
	if err != nil {
		return nil, err
	}

	if !resource.IsDirectory() {
		stream, err := uc.storage.GetFileStream(ctx, full.String())
		if err != nil {
			return nil, err
		}
		return &Download{Resource: resource, Content: stream}, nil
	}

	entries, err := uc.archiveEntries(ctx, full)
	if err != nil {
		return nil, err
	}
	archive, err := uc.archiver.Build(ctx, entries)
	if err != nil {
		return nil, err
	}
	return &Download{Resource: resource, Content: archive}, nil
}

// archiveEntries enumerates the subtree under dir and maps each key to
// an archive entry named relative to dir.
func (uc *DownloadResource) archiveEntries(ctx context.Context, dir domain.Path) ([]ArchiveEntry, error) {
	keys, err := uc.storage.ListRecursive(ctx, dir.String())
	if err != nil {
		return nil, err
	}

	entries := make([]ArchiveEntry, 0, len(keys))
	for _, key := range keys {
		full, err := domain.ParsePath(key)
		if err != nil {
			return nil, err
		}
		rel, err := full.RelativeTo(dir)
		if err != nil {
			return nil, err
		}
		if rel.IsRoot() {
			continue
		}

		entry := ArchiveEntry{Path: rel}
		if !rel.IsDirectory() {
			sourceKey := key
			entry.Open = func(ctx context.Context) (io.ReadCloser, error) {
				return uc.storage.GetFileStream(ctx, sourceKey)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
