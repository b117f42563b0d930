// Package books provides database operations for the book catalogue.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(123)
package books

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook inserts a new active, available book and fills in its ID.
func (r *Repository) CreateBook(book *entities.Book) error {
	book.State = entities.RecordStateActive
	book.Availability = entities.AvailabilityAvailable
	book.DeletedAt = nil
	return r.db.Create(book).Error
}

// GetBookByID retrieves an active book by its ID.
// Returns gorm.ErrRecordNotFound for unknown and soft-deleted books.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Scopes(database.Active).First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBookByTitle retrieves the first active book with the given title.
func (r *Repository) GetBookByTitle(title string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Scopes(database.Active).Where("title = ?", title).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CountBooks returns the number of active books.
func (r *Repository) CountBooks() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Scopes(database.Active).Count(&count).Error
	return count, err
}

// DeleteBook performs a soft delete. Deleting a missing or already deleted
// book returns gorm.ErrRecordNotFound.
func (r *Repository) DeleteBook(id uint) error {
	now := time.Now().UTC()
	result := r.db.Model(&entities.Book{}).
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
