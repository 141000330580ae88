package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/skystore/skystore/internal/domain"
)

// MoveResource relocates a file or a directory subtree and returns the
// resource at its new location.
type MoveResource struct {
	users   UserGateway
	storage ObjectStorage
}

func NewMoveResource(users UserGateway, storage ObjectStorage) *MoveResource {
	return &MoveResource{users: users, storage: storage}
}

func (uc *MoveResource) Execute(ctx context.Context, userID uuid.UUID, rawFrom, rawTo string) (domain.Resource, error) {
	user, err := lookupUser(ctx, uc.users, userID)
	if err != nil {
		return domain.Resource{}, err
	}

	fromRel, fromFull, err := resolveUnderRoot(user, rawFrom)
	if err != nil {
		return domain.Resource{}, err
	}
	toRel, toFull, err := resolveUnderRoot(user, rawTo)
	if err != nil {
		return domain.Resource{}, err
	}

	if fromRel.IsRoot() || toRel.IsRoot() {
		return domain.Resource{}, domain.NewValidation("cannot move to or from the namespace root")
	}
	if fromRel == toRel {
		return domain.Resource{}, domain.NewValidation("source and destination paths are the same")
	}
	if fromRel.IsDirectory() != toRel.IsDirectory() {
		return domain.Resource{}, domain.NewValidation("source and destination paths must both be files or both be directories")
	}
	if fromRel.IsAncestorOf(toRel) {
		return domain.Resource{}, domain.NewValidation("cannot move a directory into its own subtree")
	}

	exists, err := uc.storage.Exists(ctx, fromFull.String())
	if err != nil {
		return domain.Resource{}, err
	}
	if !exists {
		return domain.Resource{}, ErrNotFound("resource " + fromRel.String())
	}

	exists, err = uc.storage.Exists(ctx, toFull.String())
	if err != nil {
		return domain.Resource{}, err
	}
	if exists {
		return domain.Resource{}, ErrAlreadyExists("resource " + toRel.String())
	}

	if err := materializeAncestors(ctx, uc.storage, user.RootPath(), toRel); err != nil {
		return domain.Resource{}, err
	}
	if err := uc.storage.Move(ctx, fromFull.String(), toFull.String()); err != nil {
		return domain.Resource{}, err
	}

	return typedResource(ctx, uc.storage, toRel, toFull)
}
