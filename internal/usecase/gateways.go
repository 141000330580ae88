package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/skystore/skystore/internal/domain"
)

// Session is an ephemeral login token issued by the session gateway.
type Session struct {
	ID        string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// UserGateway persists and resolves user records. Lookups return
// (nil, nil) when no record exists.
type UserGateway interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}

// Hasher hashes and verifies credentials.
type Hasher interface {
	Hash(text string) (string, error)
	Verify(text, hashed string) bool
}

// UnitOfWork is the explicit, caller-driven commit boundary of the
// relational store. Only the register interactor commits.
type UnitOfWork interface {
	Commit(ctx context.Context) error
}

// SessionGateway manages ephemeral session tokens. Delete is idempotent.
type SessionGateway interface {
	Create(ctx context.Context, userID uuid.UUID) (*Session, error)
	GetUserID(ctx context.Context, sessionID string) (uuid.UUID, error)
	Delete(ctx context.Context, sessionID string) error
}

// ObjectStorage is the flat key-value object store underneath the
// virtual filesystem. Keys are full path strings; a key ending in a
// separator is a directory marker. Exists is an exact-key check.
type ObjectStorage interface {
	Exists(ctx context.Context, key string) (bool, error)
	SaveFile(ctx context.Context, key string, content []byte) error
	GetFile(ctx context.Context, key string) ([]byte, error)
	GetFileStream(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the key; for directory keys it also removes every
	// key under the prefix.
	Delete(ctx context.Context, key string) error
	// Move relocates a key; for directory keys it copies every
	// descendant first and deletes the sources afterwards.
	Move(ctx context.Context, fromKey, toKey string) error
	ListDirectory(ctx context.Context, key string) ([]string, error)
	ListRecursive(ctx context.Context, key string) ([]string, error)
	FileSize(ctx context.Context, key string) (int64, error)
	CreateDirectory(ctx context.Context, key string) error
}

// ArchiveEntry is one entry handed to the archive builder. Open is nil
// for directory markers.
type ArchiveEntry struct {
	Path domain.Path
	Open func(ctx context.Context) (io.ReadCloser, error)
}

// ArchiveBuilder assembles entries into a streamed archive.
type ArchiveBuilder interface {
	Build(ctx context.Context, entries []ArchiveEntry) (io.ReadCloser, error)
}

// lookupUser resolves the acting user or fails with KindNotFound. Every
// resource interactor starts here.
func lookupUser(ctx context.Context, users UserGateway, userID uuid.UUID) (*domain.User, error) {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound("user " + userID.String())
	}
	return user, nil
}

// resolveUnderRoot parses raw and anchors it under the user's namespace
// root, returning both the relative and the full path.
func resolveUnderRoot(user *domain.User, raw string) (rel, full domain.Path, err error) {
	rel, err = domain.ParsePath(raw)
	if err != nil {
		return domain.Path{}, domain.Path{}, err
	}
	full, err = user.RootPath().Join(rel)
	if err != nil {
		return domain.Path{}, domain.Path{}, err
	}
	return rel, full, nil
}
