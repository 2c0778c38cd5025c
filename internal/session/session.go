// Package session performs the one-time credential check and derives the
// role tier for the rest of the process lifetime.
package session

import (
	"strings"

	apperrors "hospital-records-server/internal/errors"
	"hospital-records-server/internal/models"
	"hospital-records-server/internal/store"
)

// Session is an established login: the matched user plus the derived role.
type Session struct {
	User models.User
	Role models.Role
}

// Service authenticates operators against the users table.
type Service struct {
	Store *store.Store
}

// NewService creates a session Service.
func NewService(st *store.Store) *Service {
	return &Service{Store: st}
}

// Authenticate validates the credentials and derives the role. The role is
// admin iff the username is the reserved admin account name. No hashing, no
// lockout, no rate limiting; the trust boundary is the local machine.
func (s *Service) Authenticate(username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "Please enter username & password")
	}

	user, err := s.Store.FindUserByCredentials(username, password)
	if err != nil {
		return nil, err
	}

	return &Session{
		User: *user,
		Role: models.RoleOf(user.Username),
	}, nil
}
