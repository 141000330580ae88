package usecase

import (
	"context"
	"regexp"

	"github.com/skystore/skystore/internal/domain"
)

var (
	passwordCharset  = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*_]{8,}$`)
	passwordNonAlpha = regexp.MustCompile(`[0-9!@#$%^&*_]`)
)

// RegisterUser creates a new account. It is the only interactor that
// commits the relational unit of work.
type RegisterUser struct {
	users  UserGateway
	hasher Hasher
	uow    UnitOfWork
}

func NewRegisterUser(users UserGateway, hasher Hasher, uow UnitOfWork) *RegisterUser {
	return &RegisterUser{users: users, hasher: hasher, uow: uow}
}

func (uc *RegisterUser) Execute(ctx context.Context, login, password string) error {
	if !isStrongPassword(password) {
		return ErrPasswordRequirement()
	}

	hashed, err := uc.hasher.Hash(password)
	if err != nil {
		return err
	}

	user, err := domain.NewUser(login, hashed)
	if err != nil {
		return err
	}

	existing, err := uc.users.GetByLogin(ctx, login)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyExists("login " + login)
	}

	if err := uc.users.Save(ctx, &user); err != nil {
		return err
	}
	return uc.uow.Commit(ctx)
}

// isStrongPassword enforces the register-time policy: at least 8
// characters from the allowed charset, with at least one character that
// is not a letter.
func isStrongPassword(password string) bool {
	return passwordCharset.MatchString(password) && passwordNonAlpha.MatchString(password)
}

// LoginUser authenticates a login/password pair and issues a session.
type LoginUser struct {
	users    UserGateway
	hasher   Hasher
	sessions SessionGateway
}

func NewLoginUser(users UserGateway, hasher Hasher, sessions SessionGateway) *LoginUser {
	return &LoginUser{users: users, hasher: hasher, sessions: sessions}
}

func (uc *LoginUser) Execute(ctx context.Context, login, password string) (*Session, error) {
	user, err := uc.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound("user with login " + login)
	}

	if !uc.hasher.Verify(password, user.HashedPassword) {
		return nil, ErrWrongPassword()
	}

	return uc.sessions.Create(ctx, user.ID)
}

// LogoutUser deletes a session token. Deleting an absent token is not
// an error.
type LogoutUser struct {
	sessions SessionGateway
}

func NewLogoutUser(sessions SessionGateway) *LogoutUser {
	return &LogoutUser{sessions: sessions}
}

func (uc *LogoutUser) Execute(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}
