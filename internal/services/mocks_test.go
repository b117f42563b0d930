package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/entities"
)

type bookStoreMock struct {
	createFn func(book *entities.Book) error
	getFn    func(id uint) (*entities.Book, error)
	deleteFn func(id uint) error
}

func (m *bookStoreMock) CreateBook(book *entities.Book) error { return m.createFn(book) }
func (m *bookStoreMock) GetBookByID(id uint) (*entities.Book, error) {
	return m.getFn(id)
}
func (m *bookStoreMock) DeleteBook(id uint) error { return m.deleteFn(id) }

type userStoreMock struct {
	createFn      func(name, email, hash string) (*entities.User, error)
	getByIDFn     func(id uint) (*entities.User, error)
	getByEmailFn  func(email string) (*entities.User, error)
	emailExistsFn func(email string) (bool, error)
	updateNameFn  func(id uint, name string) error
	deleteFn      func(id uint) error
}

func (m *userStoreMock) CreateUser(name, email, hash string) (*entities.User, error) {
	return m.createFn(name, email, hash)
}
func (m *userStoreMock) GetUserByID(id uint) (*entities.User, error) { return m.getByIDFn(id) }
func (m *userStoreMock) GetUserByEmail(email string) (*entities.User, error) {
	return m.getByEmailFn(email)
}
func (m *userStoreMock) EmailExists(email string) (bool, error) { return m.emailExistsFn(email) }
func (m *userStoreMock) UpdateUserName(id uint, name string) error {
	return m.updateNameFn(id, name)
}
func (m *userStoreMock) DeleteUser(id uint) error { return m.deleteFn(id) }

type borrowingStoreMock struct {
	lastFn  func(bookID uint) (*entities.Borrowing, error)
	openFn  func(b *entities.Borrowing) error
	closeFn func(id uint, returnedAt time.Time) error
}

func (m *borrowingStoreMock) GetLastBorrowingByBookID(bookID uint) (*entities.Borrowing, error) {
	return m.lastFn(bookID)
}
func (m *borrowingStoreMock) OpenBorrowing(b *entities.Borrowing) error { return m.openFn(b) }
func (m *borrowingStoreMock) CloseBorrowing(id uint, returnedAt time.Time) error {
	return m.closeFn(id, returnedAt)
}

type reportStoreMock struct {
	overdueFn func(start time.Time, end *time.Time, now time.Time) ([]entities.Borrowing, error)
	betweenFn func(start time.Time, end *time.Time) ([]entities.Borrowing, error)
}

func (m *reportStoreMock) GetOverdueBorrowings(start time.Time, end *time.Time, now time.Time) ([]entities.Borrowing, error) {
	return m.overdueFn(start, end, now)
}
func (m *reportStoreMock) GetBorrowingsBetweenDates(start time.Time, end *time.Time) ([]entities.Borrowing, error) {
	return m.betweenFn(start, end)
}

type hasherMock struct {
	err error
}

func (h hasherMock) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func bookFound(id uint) (*entities.Book, error) {
	return &entities.Book{ID: id, Title: "Emma", ISBN: "978-0141439587", Author: "Jane Austen", Location: "A1"}, nil
}

func userFound(id uint) (*entities.User, error) {
	return &entities.User{ID: id, Name: "Ada", Email: "ada@example.com"}, nil
}

func noRecord[T any](uint) (*T, error) {
	return nil, gorm.ErrRecordNotFound
}
