package service

import (
	"time"

	"github.com/chirpmux/chirpmux/model"
	"github.com/chirpmux/chirpmux/utils"
	Logger "github.com/chirpmux/chirpmux/utils/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Signup creates a user with its profile and an initial auth token in one
// transaction. A username collision surfaces as ErrConflict.
func (s *Service) Signup(username string, password string) (*model.User, string, error) {
	if username == "" {
		return nil, "", errors.Wrap(ErrInvalid, "username must not be empty")
	}
	if password == "" {
		return nil, "", errors.Wrap(ErrInvalid, "password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := model.User{
		Id:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
	}
	token := model.AuthToken{
		Key:    uuid.New().String(),
		UserID: user.Id,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.Profile{UserID: user.Id}).Error; err != nil {
			return err
		}
		return tx.Create(&token).Error
	})
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, "", errors.Wrapf(ErrConflict, "username %s is taken", username)
		}
		return nil, "", err
	}

	Logger.Log.Info("user signed up: ", user.Username)
	return &user, token.Key, nil
}

// Login verifies the password and issues a fresh token. Old tokens stay valid
// until the user is deleted.
func (s *Service) Login(username string, password string) (string, error) {
	var user model.User
	res := s.DB.Where("username = ?", username).First(&user)
	if res.RowsAffected != 1 {
		return "", errors.Wrap(ErrUnauthenticated, "unknown username")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.Wrap(ErrUnauthenticated, "wrong password")
	}

	token := model.AuthToken{
		Key:       uuid.New().String(),
		UserID:    user.Id,
		CreatedAt: time.Now(),
	}
	if err := s.DB.Create(&token).Error; err != nil {
		return "", err
	}
	return token.Key, nil
}

// ResolveToken maps a bearer token to its principal. The returned user is
// treated as immutable for the lifetime of the request.
func (s *Service) ResolveToken(key string) (*model.User, error) {
	var token model.AuthToken
	res := s.DB.Preload("User").Where("key = ?", key).First(&token)
	if res.RowsAffected != 1 {
		return nil, errors.Wrap(ErrUnauthenticated, "invalid token")
	}
	return &token.User, nil
}
