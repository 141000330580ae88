package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/skystore/skystore/internal/domain"
)

// GetResource returns a typed view of a single path, with size populated
// for files.
type GetResource struct {
	users   UserGateway
	storage ObjectStorage
}

func NewGetResource(users UserGateway, storage ObjectStorage) *GetResource {
	return &GetResource{users: users, storage: storage}
}

func (uc *GetResource) Execute(ctx context.Context, userID uuid.UUID, rawPath string) (domain.Resource, error) {
	user, err := lookupUser(ctx, uc.users, userID)
	if err != nil {
		return domain.Resource{}, err
	}

	rel, full, err := resolveUnderRoot(user, rawPath)
	if err != nil {
		return domain.Resource{}, err
	}

	exists, err := uc.storage.Exists(ctx, full.String())
	if err != nil {
		return domain.Resource{}, err
	}
	if !exists {
		return domain.Resource{}, ErrNotFound("resource " + rel.String())
	}

	return typedResource(ctx, uc.storage, rel, full)
}

// DeleteResource removes a key; directory keys are removed together with
// every descendant.
type DeleteResource struct {
	users   UserGateway
	storage ObjectStorage
}

func NewDeleteResource(users UserGateway, storage ObjectStorage) *DeleteResource {
	return &DeleteResource{users: users, storage: storage}
}

func (uc *DeleteResource) Execute(ctx context.Context, userID uuid.UUID, rawPath string) error {
	user, err := lookupUser(ctx, uc.users, userID)
	if err != nil {
		return err
	}

	rel, full, err := resolveUnderRoot(user, rawPath)
	if err != nil {
		return err
	}

	exists, err := uc.storage.Exists(ctx, full.String())
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound("resource " + rel.String())
	}

	return uc.storage.Delete(ctx, full.String())
}

// typedResource classifies rel by shape and, for files, fills the size
// from the storage gateway.
func typedResource(ctx context.Context, storage ObjectStorage, rel, full domain.Path) (domain.Resource, error) {
	if rel.IsDirectory() {
		return domain.NewDirectory(rel)
	}
	size, err := storage.FileSize(ctx, full.String())
	if err != nil {
		return domain.Resource{}, err
	}
	return domain.NewFile(rel, size)
}
