package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appdotbuilder/smart-diet-tracker/config"
	"github.com/appdotbuilder/smart-diet-tracker/models"
	"github.com/appdotbuilder/smart-diet-tracker/utils"

	"gorm.io/gorm"
)

// RegisterUser creates an account. Email uniqueness is enforced by the store;
// the duplicate-key failure is surfaced as ErrEmailTaken.
func RegisterUser(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks credentials and returns a signed JWT.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		return "", errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
