package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/skystore/skystore/internal/domain"
	"github.com/skystore/skystore/internal/infrastructure/objectstore"
)

type fakeUsers struct {
	byID map[uuid.UUID]*domain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUsers) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if user, ok := f.byID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUsers) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	for _, user := range f.byID {
		if user.Login == login {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Save(ctx context.Context, user *domain.User) error {
	copied := *user
	f.byID[user.ID] = &copied
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(text string) (string, error) {
	return "hashed:" + text, nil
}

func (fakeHasher) Verify(text, hashed string) bool {
	return hashed == "hashed:"+text
}

type fakeSessions struct {
	tokens map[string]uuid.UUID
	next   int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[string]uuid.UUID)}
}

func (f *fakeSessions) Create(ctx context.Context, userID uuid.UUID) (*Session, error) {
	f.next++
	token := fmt.Sprintf("token-%d", f.next)
	f.tokens[token] = userID
	return &Session{ID: token, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeSessions) GetUserID(ctx context.Context, sessionID string) (uuid.UUID, error) {
	if userID, ok := f.tokens[sessionID]; ok {
		return userID, nil
	}
	return uuid.Nil, fmt.Errorf("session %q not found", sessionID)
}

func (f *fakeSessions) Delete(ctx context.Context, sessionID string) error {
	delete(f.tokens, sessionID)
	return nil
}

type fakeUOW struct {
	committed int
}

func (f *fakeUOW) Commit(ctx context.Context) error {
	f.committed++
	return nil
}

// world bundles the collaborators most interactor tests need: one
// registered user and an empty in-memory object store.
type world struct {
	users   *fakeUsers
	storage *objectstore.Memory
	user    *domain.User
}

func newWorld(t *testing.T) *world {
	t.Helper()
	user, err := domain.NewUser("alice", "hashed:Password_1")
	require.NoError(t, err)

	users := newFakeUsers()
	require.NoError(t, users.Save(context.Background(), &user))

	return &world{
		users:   users,
		storage: objectstore.NewMemory(),
		user:    &user,
	}
}

// key resolves rel against the test user's namespace root.
func (w *world) key(rel string) string {
	return w.user.RootPath().String() + rel
}

func (w *world) mustUpload(t *testing.T, path string, content []byte) domain.Resource {
	t.Helper()
	resource, err := NewUploadFile(w.users, w.storage).Execute(context.Background(), w.user.ID, path, content)
	require.NoError(t, err)
	return resource
}
