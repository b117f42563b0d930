package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/services"
)

func TestBooksController_AddBook(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("creates a book", func(t *testing.T) {
		w := s.do(http.MethodPost, "/books", gin.H{"title": "Persuasion", "ISBN": "978-0141439686", "author": "Jane Austen", "location": "Shelf B2"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var book entities.Book
		resp := decodeSuccess(t, w, &book)
		assert.Equal(t, "book created", resp.Message)
		assert.NotZero(t, book.ID)
		assert.Equal(t, "978-0141439686", book.ISBN)
		assert.Equal(t, entities.AvailabilityAvailable, book.Availability)
	})

	t.Run("reports each invalid field", func(t *testing.T) {
		w := s.do(http.MethodPost, "/books", gin.H{"title": "ab", "ISBN": "978", "author": "Jane Austen"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, services.MsgInvalidInput, resp.Error)
		assert.Equal(t, "validation", resp.Code)
		assert.Contains(t, w.Body.String(), `"field":"title"`)
		assert.Contains(t, w.Body.String(), `"field":"location"`)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		w := s.do(http.MethodPost, "/books", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBooksController_GetAndDelete(t *testing.T) {
	s := newTestServer(t, nil)
	bookID, _ := s.seed(t)
	path := fmt.Sprintf("/books?id=%d", bookID)

	w := s.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var book entities.Book
	assert.Equal(t, "book found", decodeSuccess(t, w, &book).Message)
	assert.Equal(t, "Emma", book.Title)

	w = s.do(http.MethodGet, "/books", gin.H{"id": bookID})
	assert.Equal(t, http.StatusOK, w.Code, "id from JSON body")

	w = s.do(http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "book deleted", decodeSuccess(t, w, nil).Message)

	w = s.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, services.MsgBookNotFound, decodeError(t, w).Error)

	w = s.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/books?id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/books", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBooksController_BorrowAndReturn(t *testing.T) {
	s := newTestServer(t, nil)
	bookID, userID := s.seed(t)

	borrow := gin.H{"bookId": bookID, "userId": userID, "borrowDate": "2024-04-01T09:00:00Z", "dueDate": "2024-04-08"}

	w := s.do(http.MethodPost, "/books/borrow", borrow)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var borrowing entities.Borrowing
	assert.Equal(t, "book borrowed", decodeSuccess(t, w, &borrowing).Message)
	assert.Equal(t, entities.BorrowingStatusBorrowed, borrowing.Status)

	w = s.do(http.MethodPost, "/books/borrow", borrow)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgBookBorrowed, decodeError(t, w).Error)

	w = s.do(http.MethodPost, "/books/return", gin.H{"bookId": bookID, "userId": userID + 1, "returnDate": "2024-04-02"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, services.MsgUserNotAuthorized, decodeError(t, w).Error)

	w = s.do(http.MethodPost, "/books/return", gin.H{"bookId": bookID, "userId": userID, "returnDate": "2024-04-03"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var returned entities.Borrowing
	assert.Equal(t, "book returned", decodeSuccess(t, w, &returned).Message)
	assert.Equal(t, entities.BorrowingStatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnedAt)
	assert.Equal(t, "2024-04-03", returned.ReturnedAt.Format("2006-01-02"))
	require.NotNil(t, returned.Book)
	assert.Equal(t, bookID, returned.Book.ID)
	assert.Equal(t, "Emma", returned.Book.Title)
	require.NotNil(t, returned.User)
	assert.Equal(t, userID, returned.User.ID)
	assert.NotContains(t, w.Body.String(), `"createdAt":"0001-01-01T00:00:00Z"`)

	w = s.do(http.MethodPost, "/books/return", gin.H{"bookId": bookID, "userId": userID, "returnDate": "2024-04-04"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgBookReturned, decodeError(t, w).Error)
}

func TestBooksController_BorrowErrors(t *testing.T) {
	s := newTestServer(t, nil)
	bookID, userID := s.seed(t)

	tests := []struct {
		name   string
		body   any
		status int
		want   string
	}{
		{"unknown book", gin.H{"bookId": 999, "userId": userID, "borrowDate": "2024-04-01", "dueDate": "2024-04-08"}, http.StatusNotFound, services.MsgBookNotFound},
		{"unknown user", gin.H{"bookId": bookID, "userId": 999, "borrowDate": "2024-04-01", "dueDate": "2024-04-08"}, http.StatusNotFound, services.MsgUserNotFound},
		{"missing dates", gin.H{"bookId": bookID, "userId": userID}, http.StatusBadRequest, `"field":"dueDate"`},
		{"bad date", gin.H{"bookId": bookID, "userId": userID, "borrowDate": "someday", "dueDate": "2024-04-08"}, http.StatusBadRequest, "invalid date"},
		{"due before borrow", gin.H{"bookId": bookID, "userId": userID, "borrowDate": "2024-04-08", "dueDate": "2024-04-01"}, http.StatusBadRequest, `"rule":"gtefield"`},
		{"id of wrong type", gin.H{"bookId": "one", "userId": userID, "borrowDate": "2024-04-01", "dueDate": "2024-04-08"}, http.StatusBadRequest, `"field":"bookId"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/books/borrow", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestBooksController_ReturnNeverBorrowed(t *testing.T) {
	s := newTestServer(t, nil)
	bookID, userID := s.seed(t)

	w := s.do(http.MethodPost, "/books/return", gin.H{"bookId": bookID, "userId": userID, "returnDate": "2024-04-03"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, services.MsgBorrowingNotFound, decodeError(t, w).Error)
}
