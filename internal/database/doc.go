// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── scopes.go        # Shared query scopes (soft-delete filter)
//	├── books/           # Book records
//	├── users/           # Library members
//	├── borrowings/      # Loans, availability transitions, report queries
//	└── audit/           # Audit event log
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./library.db")
//
//	booksRepo := books.NewRepository(db.DB)
//	borrowingsRepo := borrowings.NewRepository(db.DB)
//
//	book, err := booksRepo.GetBookByID(123)
//	last, err := borrowingsRepo.GetLastBorrowingByBookID(123)
//
// # Soft Deletion
//
// Books and users carry a state column (active or deleted) together with a
// deletion timestamp. Every read path goes through database.Active so that
// lookups by id, by email and before deletion all see the same rows.
//
// # Times
//
// Repositories store and compare times in UTC. sqlite keeps timestamps as
// text, so mixing zones would break range comparisons.
//
// # Interface Implementations
//
//   - books.Repository: implements services.BookStore
//   - users.Repository: implements services.UserStore
//   - borrowings.Repository: implements services.BorrowingStore, services.ReportStore
//   - audit.Repository: backs audit.Service
package database
