package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/skystore/skystore/internal/domain"
)

// SearchResources finds every resource in the user's namespace whose
// name matches the query exactly.
type SearchResources struct {
	users   UserGateway
	storage ObjectStorage
}

func NewSearchResources(users UserGateway, storage ObjectStorage) *SearchResources {
	return &SearchResources{users: users, storage: storage}
}

func (uc *SearchResources) Execute(ctx context.Context, userID uuid.UUID, query string) ([]domain.Resource, error) {
	user, err := lookupUser(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return nil, domain.NewValidation("search query cannot be empty")
	}

	keys, err := uc.storage.ListRecursive(ctx, user.RootPath().String())
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	var matches []domain.Resource
	for _, key := range keys {
		full, err := domain.ParsePath(key)
		if err != nil {
			return nil, err
		}
		rel, err := full.RelativeTo(user.RootPath())
		if err != nil {
			return nil, err
		}
		if rel.IsRoot() || rel.Name() != query {
			continue
		}
		resource, err := typedResource(ctx, uc.storage, rel, full)
		if err != nil {
			return nil, err
		}
		matches = append(matches, resource)
	}
	return matches, nil
}
