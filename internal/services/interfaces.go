package services

import (
	"time"

	"github.com/mrlokans/library/internal/entities"
)

// BookStore persists catalogue records.
type BookStore interface {
	CreateBook(book *entities.Book) error
	GetBookByID(id uint) (*entities.Book, error)
	DeleteBook(id uint) error
}

// UserStore persists library members.
type UserStore interface {
	CreateUser(name, email, passwordHash string) (*entities.User, error)
	GetUserByID(id uint) (*entities.User, error)
	GetUserByEmail(email string) (*entities.User, error)
	EmailExists(email string) (bool, error)
	UpdateUserName(id uint, name string) error
	DeleteUser(id uint) error
}

// BorrowingStore persists loans. OpenBorrowing and CloseBorrowing must
// change the borrowing row and the book's availability atomically.
type BorrowingStore interface {
	GetLastBorrowingByBookID(bookID uint) (*entities.Borrowing, error)
	OpenBorrowing(borrowing *entities.Borrowing) error
	CloseBorrowing(borrowingID uint, returnedAt time.Time) error
}

// ReportStore runs the analytics queries. Returned borrowings must have
// Book and User loaded.
type ReportStore interface {
	GetOverdueBorrowings(start time.Time, end *time.Time, now time.Time) ([]entities.Borrowing, error)
	GetBorrowingsBetweenDates(start time.Time, end *time.Time) ([]entities.Borrowing, error)
}

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Clock returns the current time; overdue checks depend on it.
type Clock func() time.Time
