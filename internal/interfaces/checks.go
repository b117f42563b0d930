package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/library/internal/auth"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/borrowings"
	"github.com/mrlokans/library/internal/database/users"
	"github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.BookStore = (*books.Repository)(nil)
var _ services.UserStore = (*users.Repository)(nil)
var _ services.BorrowingStore = (*borrowings.Repository)(nil)
var _ services.ReportStore = (*borrowings.Repository)(nil)
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Services
// =============================================================================

var _ services.PasswordHasher = (*auth.BcryptHasher)(nil)

var _ http.BookManager = (*services.BookService)(nil)
var _ http.Lender = (*services.BorrowService)(nil)
var _ http.UserManager = (*services.UserService)(nil)
var _ http.ReportGenerator = (*services.AnalyticsService)(nil)
