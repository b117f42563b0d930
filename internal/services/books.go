package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/validation"
)

// AddBookInput is a new catalogue entry.
type AddBookInput struct {
	Title    string `json:"title" validate:"required,min=3"`
	ISBN     string `json:"ISBN" validate:"required,min=3"`
	Author   string `json:"author" validate:"required,min=3"`
	Location string `json:"location" validate:"required,min=3"`
}

type BookService struct {
	store    BookStore
	validate *validation.Validator
}

func NewBookService(store BookStore) *BookService {
	return &BookService{store: store, validate: validation.New()}
}

func (s *BookService) AddBook(input AddBookInput) (*entities.Book, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, invalid(err)
	}

	book := &entities.Book{
		Title:    input.Title,
		ISBN:     input.ISBN,
		Author:   input.Author,
		Location: input.Location,
	}
	if err := s.store.CreateBook(book); err != nil {
		return nil, internal("failed to create book", err)
	}
	return book, nil
}

func (s *BookService) GetBook(id uint) (*entities.Book, error) {
	book, err := s.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(MsgBookNotFound)
		}
		return nil, internal("failed to load book", err)
	}
	return book, nil
}

// DeleteBook soft deletes the book. Deleting twice yields NotFound.
func (s *BookService) DeleteBook(id uint) error {
	if err := s.store.DeleteBook(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(MsgBookNotFound)
		}
		return internal("failed to delete book", err)
	}
	return nil
}
