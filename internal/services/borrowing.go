package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database/borrowings"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/validation"
)

type BorrowInput struct {
	BookID     uint      `json:"bookId" validate:"required,gt=0"`
	UserID     uint      `json:"userId" validate:"required,gt=0"`
	DueDate    time.Time `json:"dueDate" validate:"required,gtefield=BorrowDate"`
	BorrowDate time.Time `json:"borrowDate" validate:"required"`
}

type ReturnInput struct {
	BookID     uint      `json:"bookId" validate:"required,gt=0"`
	UserID     uint      `json:"userId" validate:"required,gt=0"`
	ReturnDate time.Time `json:"returnDate" validate:"required"`
}

// BorrowService moves books between the available and borrowed states.
// The latest borrowing of a book decides which transitions are allowed;
// the store flips book availability in the same transaction so two
// concurrent borrows cannot both succeed.
type BorrowService struct {
	books      BookStore
	users      UserStore
	borrowings BorrowingStore
	validate   *validation.Validator
}

func NewBorrowService(books BookStore, users UserStore, borrowings BorrowingStore) *BorrowService {
	return &BorrowService{
		books:      books,
		users:      users,
		borrowings: borrowings,
		validate:   validation.New(),
	}
}

func (s *BorrowService) Borrow(input BorrowInput) (*entities.Borrowing, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, invalid(err)
	}

	book, err := s.books.GetBookByID(input.BookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(MsgBookNotFound)
		}
		return nil, internal("failed to load book", err)
	}

	user, err := s.users.GetUserByID(input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(MsgUserNotFound)
		}
		return nil, internal("failed to load user", err)
	}

	last, err := s.lastBorrowing(input.BookID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		if last.Status == entities.BorrowingStatusBorrowed {
			return nil, conflict(MsgBookBorrowed)
		}
		// A new loan must become the latest one, otherwise returns
		// would resolve to a closed borrowing.
		if input.BorrowDate.Before(last.BorrowedAt) {
			return nil, conflict(MsgBorrowDateTooEarly)
		}
	}

	borrowing := &entities.Borrowing{
		BookID:     book.ID,
		UserID:     user.ID,
		BorrowedAt: input.BorrowDate,
		DueDate:    input.DueDate,
	}
	if err := s.borrowings.OpenBorrowing(borrowing); err != nil {
		if errors.Is(err, borrowings.ErrBookUnavailable) {
			return nil, conflict(MsgBookBorrowed)
		}
		return nil, internal("failed to create borrowing", err)
	}

	borrowing.Book = book
	borrowing.User = user
	return borrowing, nil
}

func (s *BorrowService) Return(input ReturnInput) (*entities.Borrowing, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, invalid(err)
	}

	last, err := s.lastBorrowing(input.BookID)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, notFound(MsgBorrowingNotFound)
	}
	if last.Status == entities.BorrowingStatusReturned {
		return nil, conflict(MsgBookReturned)
	}
	if last.UserID != input.UserID {
		return nil, unauthorized(MsgUserNotAuthorized)
	}

	returnedAt := input.ReturnDate.UTC()
	if err := s.borrowings.CloseBorrowing(last.ID, returnedAt); err != nil {
		switch {
		case errors.Is(err, borrowings.ErrBorrowingClosed):
			return nil, conflict(MsgBookReturned)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, notFound(MsgBorrowingNotFound)
		}
		return nil, internal("failed to close borrowing", err)
	}

	last.Status = entities.BorrowingStatusReturned
	last.ReturnedAt = &returnedAt

	// The return is committed; a book or member deleted meanwhile is
	// simply left out of the response.
	if book, err := s.books.GetBookByID(last.BookID); err == nil {
		last.Book = book
	}
	if user, err := s.users.GetUserByID(last.UserID); err == nil {
		last.User = user
	}
	return last, nil
}

// lastBorrowing returns nil without error when the book was never borrowed.
func (s *BorrowService) lastBorrowing(bookID uint) (*entities.Borrowing, error) {
	last, err := s.borrowings.GetLastBorrowingByBookID(bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal("failed to load latest borrowing", err)
	}
	return last, nil
}
