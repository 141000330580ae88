package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/skystore/skystore/internal/domain"
)

// CreateDirectory creates an empty directory marker, materializing any
// missing ancestors first.
type CreateDirectory struct {
	users   UserGateway
	storage ObjectStorage
}

func NewCreateDirectory(users UserGateway, storage ObjectStorage) *CreateDirectory {
	return &CreateDirectory{users: users, storage: storage}
}

func (uc *CreateDirectory) Execute(ctx context.Context, userID uuid.UUID, rawPath string) (domain.Resource, error) {
	user, err := lookupUser(ctx, uc.users, userID)
	if err != nil {
		return domain.Resource{}, err
	}

	rel, full, err := resolveUnderRoot(user, rawPath)
	if err != nil {
		return domain.Resource{}, err
	}
	if !rel.IsDirectory() || rel.IsRoot() {
		return domain.Resource{}, ErrNotDirectory()
	}

	exists, err := uc.storage.Exists(ctx, full.String())
	if err != nil {
		return domain.Resource{}, err
	}
	if exists {
		return domain.Resource{}, ErrAlreadyExists("directory " + rel.String())
	}

	if err := materializeAncestors(ctx, uc.storage, user.RootPath(), rel); err != nil {
		return domain.Resource{}, err
	}
	if err := uc.storage.CreateDirectory(ctx, full.String()); err != nil {
		return domain.Resource{}, err
	}
	return domain.NewDirectory(rel)
}

// ListDirectory returns the immediate children of a directory. The
// namespace root always lists, even before the user's first write.
type ListDirectory struct {
	users   UserGateway
	storage ObjectStorage
}

func NewListDirectory(users UserGateway, storage ObjectStorage) *ListDirectory {
	return &ListDirectory{users: users, storage: storage}
}

func (uc *ListDirectory) Execute(ctx context.Context, userID uuid.UUID, rawPath string) ([]domain.Resource, error) {
	user, err := lookupUser(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}

	rel, full, err := resolveUnderRoot(user, rawPath)
	if err != nil {
		return nil, err
	}
	if !rel.IsDirectory() {
		return nil, ErrNotDirectory()
	}

	if !rel.IsRoot() {
		exists, err := uc.storage.Exists(ctx, full.String())
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrNotFound("directory " + rel.String())
		}
	}

	keys, err := uc.storage.ListDirectory(ctx, full.String())
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	resources := make([]domain.Resource, 0, len(keys))
	for _, key := range keys {
		childFull, err := domain.ParsePath(key)
		if err != nil {
			return nil, err
		}
		childRel, err := childFull.RelativeTo(user.RootPath())
		if err != nil {
			return nil, err
		}
		resource, err := typedResource(ctx, uc.storage, childRel, childFull)
		if err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}
	return resources, nil
}

// materializeAncestors walks rel's parent chain upward, then creates the
// missing directory markers shallowest first.
func materializeAncestors(ctx context.Context, storage ObjectStorage, root, rel domain.Path) error {
	var missing []domain.Path
	for parent := rel.Parent(); !parent.IsRoot(); parent = parent.Parent() {
		full, err := root.Join(parent)
		if err != nil {
			return err
		}
		exists, err := storage.Exists(ctx, full.String())
		if err != nil {
			return err
		}
		if exists {
			break
		}
		missing = append(missing, full)
	}
	for i := len(missing) - 1; i >= 0; i-- {
		if err := storage.CreateDirectory(ctx, missing[i].String()); err != nil {
			return err
		}
	}
	return nil
}
