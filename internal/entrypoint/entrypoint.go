package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/auth"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	dbaudit "github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/borrowings"
	"github.com/mrlokans/library/internal/database/users"
	http_controllers "github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d%s", cfg.HTTP.Host, cfg.HTTP.Port, cfg.HTTP.BasePath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 sends SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	log.Println("Server exiting")
}

// OpenDatabase opens the configured database, logging every statement when
// DATABASE_LOG_QUERY is set.
func OpenDatabase(cfg *config.Config) (*database.Database, error) {
	level := logger.Warn
	if cfg.Database.LogQuery {
		level = logger.Info
	}
	return database.NewDatabaseWithOptions(cfg.Database.Path, database.Options{LogLevel: level})
}

// NewRouter wires repositories, services and controllers on top of an open
// database.
func NewRouter(cfg *config.Config, db *database.Database, version string) *gin.Engine {
	bookRepo := books.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	borrowRepo := borrowings.NewRepository(db.DB)

	var auditor *audit.Service
	if cfg.Audit.Enabled {
		auditor = audit.NewService(dbaudit.NewRepository(db.DB))
	} else {
		log.Printf("Audit log disabled")
	}

	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Books:    services.NewBookService(bookRepo),
		Lender:   services.NewBorrowService(bookRepo, userRepo, borrowRepo),
		Users:    services.NewUserService(userRepo, auth.NewBcryptHasher(cfg.Auth.BcryptCost)),
		Reports:  services.NewAnalyticsService(borrowRepo, time.Now),
		Database: db,
		Auditor:  auditor,
		BasePath: cfg.HTTP.BasePath,
		Version:  version,
	})
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Library v%s", version)

	db, err := OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	router := NewRouter(cfg, db, version)
	Serve(router, cfg, nil)
}
