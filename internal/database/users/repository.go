// Package users provides database operations for library members.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetUserByEmail("reader@example.com")
package users

import (
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

// ErrEmailTaken is returned when an insert hits the unique email index.
var ErrEmailTaken = errors.New("email already exists")

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new active user. The password must already be hashed.
func (r *Repository) CreateUser(name, email, passwordHash string) (*entities.User, error) {
	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		State:        entities.RecordStateActive,
	}

	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves an active user by ID.
func (r *Repository) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.Scopes(database.Active).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves an active user by email.
func (r *Repository) GetUserByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Scopes(database.Active).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether any user, deleted or not, holds the email.
// Emails stay reserved after a soft delete because the column is unique.
func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateUserName changes the name of an active user.
func (r *Repository) UpdateUserName(id uint, name string) error {
	result := r.db.Model(&entities.User{}).
		Scopes(database.Active).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteUser performs a soft delete.
func (r *Repository) DeleteUser(id uint) error {
	now := time.Now().UTC()
	result := r.db.Model(&entities.User{}).
		Scopes(database.Active).
		Where("id = ?", id).
		Updates(map[string]any{
			"state":      entities.RecordStateDeleted,
			"deleted_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
