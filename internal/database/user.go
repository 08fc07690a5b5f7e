package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// User represents a registered user.
// The username is unique and immutable; there is no rename or delete path.
// Passwords are only ever stored as a bcrypt hash, never in plaintext.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Recipes      []Recipe
}

func (c *Client) CreateUser(ctx context.Context, username, passwordHash string) (*User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := c.db.WithContext(ctx).Create(&user).Error; err != nil {
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to get user by username", "error", err)
		return nil, err
	}
	return &user, nil
}

func (c *Client) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&User{}).Count(&count).Error; err != nil {
		log.Error("failed to count users", "error", err)
		return 0, err
	}
	return count, nil
}
