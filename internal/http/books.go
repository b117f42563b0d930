package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/services"
)

type BooksController struct {
	books        BookManager
	lender       Lender
	auditService *audit.Service
}

func NewBooksController(books BookManager, lender Lender, auditService *audit.Service) *BooksController {
	return &BooksController{books: books, lender: lender, auditService: auditService}
}

type bookIDRequest struct {
	ID uint `json:"id" binding:"required"`
}

type borrowRequest struct {
	BookID     uint  `json:"bookId" binding:"required"`
	UserID     uint  `json:"userId" binding:"required"`
	DueDate    *Date `json:"dueDate" binding:"required"`
	BorrowDate *Date `json:"borrowDate" binding:"required"`
}

type returnRequest struct {
	BookID     uint  `json:"bookId" binding:"required"`
	UserID     uint  `json:"userId" binding:"required"`
	ReturnDate *Date `json:"returnDate" binding:"required"`
}

// AddBook adds a book to the catalogue
// POST /books
func (bc *BooksController) AddBook(c *gin.Context) {
	var input services.AddBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	book, err := bc.books.AddBook(input)
	if err != nil {
		respondServiceError(c, err, "add book")
		return
	}

	bc.auditService.LogBookCreated(GetRequestID(c), book)
	respondSuccess(c, "book created", book)
}

// GetBook returns one book
// GET /books?id=1 (or JSON body {"id": 1})
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := bookIDFromRequest(c)
	if !ok {
		return
	}

	book, err := bc.books.GetBook(id)
	if err != nil {
		respondServiceError(c, err, "get book")
		return
	}
	respondSuccess(c, "book found", book)
}

// DeleteBook soft deletes a book
// DELETE /books?id=1 (or JSON body {"id": 1})
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := bookIDFromRequest(c)
	if !ok {
		return
	}

	if err := bc.books.DeleteBook(id); err != nil {
		respondServiceError(c, err, "delete book")
		return
	}

	bc.auditService.LogBookDeleted(GetRequestID(c), id)
	respondSuccess(c, "book deleted", nil)
}

// Borrow lends a book to a user
// POST /books/borrow
func (bc *BooksController) Borrow(c *gin.Context) {
	var req borrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	borrowing, err := bc.lender.Borrow(services.BorrowInput{
		BookID:     req.BookID,
		UserID:     req.UserID,
		DueDate:    req.DueDate.Time,
		BorrowDate: req.BorrowDate.Time,
	})
	bc.auditService.LogBorrow(GetRequestID(c), req.BookID, req.UserID, err)
	if err != nil {
		respondServiceError(c, err, "borrow book")
		return
	}
	respondSuccess(c, "book borrowed", borrowing)
}

// Return closes the user's open borrowing of a book
// POST /books/return
func (bc *BooksController) Return(c *gin.Context) {
	var req returnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	borrowing, err := bc.lender.Return(services.ReturnInput{
		BookID:     req.BookID,
		UserID:     req.UserID,
		ReturnDate: req.ReturnDate.Time,
	})
	bc.auditService.LogReturn(GetRequestID(c), req.BookID, req.UserID, err)
	if err != nil {
		respondServiceError(c, err, "return book")
		return
	}
	respondSuccess(c, "book returned", borrowing)
}

// bookIDFromRequest reads the book id from the query string, falling back to
// a JSON body.
func bookIDFromRequest(c *gin.Context) (uint, bool) {
	if c.Query("id") != "" {
		return parseQueryID(c, "id")
	}

	var req bookIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return 0, false
	}
	return req.ID, true
}
