// Package borrowings provides database operations for book loans.
//
// A book's availability column and its borrowing rows are always changed
// together inside one transaction, guarded by conditional updates, so two
// concurrent borrow requests for the same book cannot both succeed.
//
// # Usage
//
//	repo := borrowings.NewRepository(db)
//	err := repo.OpenBorrowing(&entities.Borrowing{BookID: 1, UserID: 2, ...})
package borrowings

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

var (
	// ErrBookUnavailable means the book is already lent out or no longer active.
	ErrBookUnavailable = errors.New("book is not available")
	// ErrBorrowingClosed means the borrowing has already been returned.
	ErrBorrowingClosed = errors.New("borrowing already returned")
)

// Repository handles all borrowing database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new borrowings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetBorrowingByID retrieves a borrowing with its book and user.
func (r *Repository) GetBorrowingByID(id uint) (*entities.Borrowing, error) {
	var borrowing entities.Borrowing
	err := r.db.Preload("Book").Preload("User").First(&borrowing, id).Error
	if err != nil {
		return nil, err
	}
	return &borrowing, nil
}

// GetLastBorrowingByBookID returns the most recent borrowing of a book by
// borrow time. Returns gorm.ErrRecordNotFound if the book was never borrowed.
func (r *Repository) GetLastBorrowingByBookID(bookID uint) (*entities.Borrowing, error) {
	var borrowing entities.Borrowing
	err := r.db.Where("book_id = ?", bookID).
		Order("borrowed_at DESC, id DESC").
		First(&borrowing).Error
	if err != nil {
		return nil, err
	}
	return &borrowing, nil
}

// GetLastBorrowingByUserID returns the most recent borrowing made by a user.
func (r *Repository) GetLastBorrowingByUserID(userID uint) (*entities.Borrowing, error) {
	var borrowing entities.Borrowing
	err := r.db.Where("user_id = ?", userID).
		Order("borrowed_at DESC, id DESC").
		First(&borrowing).Error
	if err != nil {
		return nil, err
	}
	return &borrowing, nil
}

// OpenBorrowing marks the book as borrowed and inserts the borrowing row.
// Returns ErrBookUnavailable if the book is not an active, available book.
func (r *Repository) OpenBorrowing(borrowing *entities.Borrowing) error {
	borrowing.BorrowedAt = borrowing.BorrowedAt.UTC()
	borrowing.DueDate = borrowing.DueDate.UTC()
	borrowing.ReturnedAt = nil
	borrowing.Status = entities.BorrowingStatusBorrowed

	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Book{}).
			Scopes(database.Active).
			Where("id = ? AND availability = ?", borrowing.BookID, entities.AvailabilityAvailable).
			Update("availability", entities.AvailabilityBorrowed)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBookUnavailable
		}

		return tx.Omit("Book", "User").Create(borrowing).Error
	})
}

// CloseBorrowing marks an open borrowing as returned and makes its book
// available again. Returns ErrBorrowingClosed if it was already returned.
func (r *Repository) CloseBorrowing(borrowingID uint, returnedAt time.Time) error {
	returnedAt = returnedAt.UTC()

	return r.db.Transaction(func(tx *gorm.DB) error {
		var borrowing entities.Borrowing
		if err := tx.First(&borrowing, borrowingID).Error; err != nil {
			return err
		}

		result := tx.Model(&entities.Borrowing{}).
			Where("id = ? AND status = ?", borrowingID, entities.BorrowingStatusBorrowed).
			Updates(map[string]any{
				"status":      entities.BorrowingStatusReturned,
				"returned_at": returnedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBorrowingClosed
		}

		// Deleted books can still come back, so no state filter here.
		return tx.Model(&entities.Book{}).
			Where("id = ?", borrowing.BookID).
			Update("availability", entities.AvailabilityAvailable).Error
	})
}

// GetOverdueBorrowings returns open borrowings that started within
// [start, end] and were due before now. A nil end leaves the range open.
func (r *Repository) GetOverdueBorrowings(start time.Time, end *time.Time, now time.Time) ([]entities.Borrowing, error) {
	var result []entities.Borrowing
	err := r.db.Preload("Book").Preload("User").
		Scopes(borrowedBetween(start, end)).
		Where("due_date < ?", now.UTC()).
		Where("status = ?", entities.BorrowingStatusBorrowed).
		Order("borrowed_at ASC, id ASC").
		Find(&result).Error
	return result, err
}

// GetBorrowingsBetweenDates returns every borrowing that started within
// [start, end]. A nil end leaves the range open.
func (r *Repository) GetBorrowingsBetweenDates(start time.Time, end *time.Time) ([]entities.Borrowing, error) {
	var result []entities.Borrowing
	err := r.db.Preload("Book").Preload("User").
		Scopes(borrowedBetween(start, end)).
		Order("borrowed_at ASC, id ASC").
		Find(&result).Error
	return result, err
}

func borrowedBetween(start time.Time, end *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("borrowed_at >= ?", start.UTC())
		if end != nil {
			db = db.Where("borrowed_at <= ?", end.UTC())
		}
		return db
	}
}
