package store

import (
	"errors"

	"gorm.io/gorm"

	apperrors "hospital-records-server/internal/errors"
	"hospital-records-server/internal/models"
)

// DefaultUser is a built-in account created on first run.
type DefaultUser struct {
	Username string
	Password string
}

// DefaultUsers are seeded when absent and can never be deleted through the
// admin panel.
var DefaultUsers = []DefaultUser{
	{Username: "admin", Password: "admin123"},
	{Username: "hamza", Password: "hamza123"},
	{Username: "muzamil", Password: "muzamil123"},
}

func isProtectedUsername(username string) bool {
	for _, du := range DefaultUsers {
		if du.Username == username {
			return true
		}
	}
	return false
}

// SeedDefaultUsers inserts each default account only if its username is
// absent. An existing account's password is never overwritten.
func (s *Store) SeedDefaultUsers() error {
	for _, du := range DefaultUsers {
		var existing models.User
		err := s.DB.Where("username = ?", du.Username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		user := models.User{Username: du.Username, Password: du.Password}
		if err := s.DB.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindUserByCredentials looks up a user by exact, case-sensitive username and
// password match.
func (s *Store) FindUserByCredentials(username, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ? AND password = ?", username, password).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "Invalid Username or Password")
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every login account.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// InsertUser creates a login account. The username must be unused.
func (s *Store) InsertUser(username, password string) (*models.User, error) {
	var existing models.User
	err := s.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, apperrors.New(apperrors.CodeConstraintViolation, "Username already exists!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{Username: username, Password: password}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a login account. The seeded default accounts are
// permanently protected.
func (s *Store) DeleteUser(userID uint) error {
	var user models.User
	if err := s.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "User no longer exists")
		}
		return err
	}
	if isProtectedUsername(user.Username) {
		return apperrors.New(apperrors.CodeForbidden, "Cannot delete default users")
	}
	return s.DB.Delete(&user).Error
}
