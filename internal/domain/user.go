package domain

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var loginPattern = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*]{3,}$`)

// User is the aggregate root of a private storage namespace. Its identity
// deterministically derives the namespace root under which every storage
// key belonging to the user lives.
type User struct {
	ID             uuid.UUID
	Login          string
	HashedPassword string
}

// NewUser validates login and creates a user with a fresh identity.
// The password must already be hashed; the domain never sees plaintext.
func NewUser(login, hashedPassword string) (User, error) {
	if !loginPattern.MatchString(login) {
		return User{}, validationf(
			"login must be at least 3 characters long, with only Latin letters, digits and !@#$%%^&*")
	}
	return User{ID: uuid.New(), Login: login, HashedPassword: hashedPassword}, nil
}

// RootPath returns the user's namespace root. No operation may touch a
// storage key outside of it.
func (u User) RootPath() Path {
	return Path{value: fmt.Sprintf("user-%s-files/", u.ID)}
}
