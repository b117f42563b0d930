package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/auth"
	"github.com/mrlokans/library/internal/database"
	dbaudit "github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/borrowings"
	"github.com/mrlokans/library/internal/database/users"
	"github.com/mrlokans/library/internal/services"
)

type testServer struct {
	router  *gin.Engine
	db      *database.Database
	auditor *audit.Service
}

func newTestServer(t *testing.T, now services.Clock) *testServer {
	t.Helper()

	db, err := database.NewDatabaseWithOptions(filepath.Join(t.TempDir(), "library.db"), database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	if now == nil {
		now = time.Now
	}

	bookRepo := books.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	borrowRepo := borrowings.NewRepository(db.DB)
	auditor := audit.NewService(dbaudit.NewRepository(db.DB))

	router := NewRouter(RouterConfig{
		Books:    services.NewBookService(bookRepo),
		Lender:   services.NewBorrowService(bookRepo, userRepo, borrowRepo),
		Users:    services.NewUserService(userRepo, auth.NewBcryptHasher(4)),
		Reports:  services.NewAnalyticsService(borrowRepo, now),
		Database: db,
		Auditor:  auditor,
		Version:  "test",
	})

	return &testServer{router: router, db: db, auditor: auditor}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeSuccess(t *testing.T, w *httptest.ResponseRecorder, data any) SuccessResponse {
	t.Helper()
	var resp struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if data != nil {
		require.NoError(t, json.Unmarshal(resp.Data, data))
	}
	return SuccessResponse{Message: resp.Message}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// seed creates a book and a user through the API and returns their ids.
func (s *testServer) seed(t *testing.T) (bookID, userID uint) {
	t.Helper()

	w := s.do(http.MethodPost, "/books", gin.H{"title": "Emma", "ISBN": "978-0141439587", "author": "Jane Austen", "location": "Shelf A1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var book struct {
		ID uint `json:"id"`
	}
	decodeSuccess(t, w, &book)

	w = s.do(http.MethodPost, "/user", gin.H{"name": "Ada Lovelace", "email": "ada@example.com", "password": "analytical"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var user struct {
		ID uint `json:"id"`
	}
	decodeSuccess(t, w, &user)

	return book.ID, user.ID
}
