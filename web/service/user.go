// Package service implements the data access and authorization logic of
// notepanel on top of the shared gorm database.
package service

import (
	"strings"

	"notepanel/database"
	"notepanel/database/model"
	"notepanel/logger"
	"notepanel/util/crypto"
)

type UserService struct{}

func (s *UserService) GetUserById(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser hashes the password and stores a new non-admin account. The
// unique index on email surfaces duplicates as an error.
func (s *UserService) CreateUser(email string, password string) (*model.User, error) {
	db := database.GetDB()

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hash,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies login credentials. A wrong password or unknown email
// yields nil, never an error; the call has no side effects.
func (s *UserService) CheckUser(email string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPassword(user.Password, password) {
		return nil
	}
	return user
}

func (s *UserService) GetUsers() ([]model.User, error) {
	db := database.GetDB()

	var users []model.User
	err := db.Model(model.User{}).
		Order("email asc").
		Find(&users).
		Error
	return users, err
}

func (s *UserService) DeleteUserByEmail(email string) error {
	db := database.GetDB()
	return db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Delete(&model.User{}).
		Error
}
