package http

import (
	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Books    BookManager
	Lender   Lender
	Users    UserManager
	Reports  ReportGenerator
	Database *database.Database
	Auditor  *audit.Service // nil disables auditing

	// Mount point for every route, e.g. "/api". Empty means root.
	BasePath string

	// Application info
	Version string
}
