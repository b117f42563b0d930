package http

import (
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/services"
)

// Each controller depends on the narrow slice of the service layer it uses.
// The services package provides the implementations.

// BookManager manages catalogue records.
type BookManager interface {
	AddBook(input services.AddBookInput) (*entities.Book, error)
	GetBook(id uint) (*entities.Book, error)
	DeleteBook(id uint) error
}

// Lender moves books in and out of circulation.
type Lender interface {
	Borrow(input services.BorrowInput) (*entities.Borrowing, error)
	Return(input services.ReturnInput) (*entities.Borrowing, error)
}

// UserManager manages library members.
type UserManager interface {
	CreateUser(input services.CreateUserInput) (*entities.User, error)
	GetUser(email string) (*entities.User, error)
	UpdateUser(input services.UpdateUserInput) (*entities.User, error)
	DeleteUser(email string) (*entities.User, error)
}

// ReportGenerator renders the analytics CSV reports.
type ReportGenerator interface {
	OverdueReport(input services.ReportInput) (*services.Report, error)
	BorrowingsReport(input services.ReportInput) (*services.Report, error)
}
