package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/validation"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	validation.UseJSONNamesForBinding()

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	var store Pinger
	if cfg.Database != nil {
		store = cfg.Database
	}

	health := NewHealthController(store, cfg.Version)
	books := NewBooksController(cfg.Books, cfg.Lender, cfg.Auditor)
	users := NewUsersController(cfg.Users, cfg.Auditor)
	analytics := NewAnalyticsController(cfg.Reports, cfg.Auditor)
	auditLog := NewAuditController(cfg.Auditor)

	// Health endpoints stay at the root so probes do not depend on BasePath
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	api := router.Group(cfg.BasePath)

	// Users
	api.POST("/user", users.CreateUser)
	api.GET("/user", users.GetUser)
	api.PATCH("/user", users.UpdateUser)
	api.DELETE("/user", users.DeleteUser)

	// Books
	api.POST("/books", books.AddBook)
	api.GET("/books", books.GetBook)
	api.DELETE("/books", books.DeleteBook)
	api.POST("/books/borrow", books.Borrow)
	api.POST("/books/return", books.Return)

	// Analytics
	api.GET("/analytics/overdue", analytics.Overdue)
	api.GET("/analytics/borrowings", analytics.Borrowings)

	// Audit log
	if cfg.Auditor != nil {
		api.GET("/audit", auditLog.GetAuditEvents)
	}

	return router
}
