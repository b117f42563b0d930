// Package audit records what happened to books, users and borrowings.
//
// A nil *Service is valid and drops every event, which is how auditing is
// switched off.
package audit

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/entities"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	if s == nil {
		return nil
	}
	return s.repo.LogEvent(event)
}

// record stores the event and only logs a failure: auditing never fails a request.
func (s *Service) record(event *entities.AuditEvent, err error) {
	if s == nil {
		return
	}
	event.Status = entities.AuditStatusSuccess
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
	if logErr := s.Log(event); logErr != nil {
		log.Printf("Failed to log audit event %s: %v", event.Action, logErr)
	}
}

// LogBookCreated records a book being added to the catalogue.
func (s *Service) LogBookCreated(requestID string, book *entities.Book) {
	s.record(&entities.AuditEvent{
		EventType:   entities.AuditEventCreate,
		Action:      "book_create",
		Description: truncate(fmt.Sprintf("Added book: %s by %s", book.Title, book.Author), 500),
		EntityType:  "book",
		EntityID:    &book.ID,
		RequestID:   requestID,
	}, nil)
}

// LogBookDeleted records a soft delete of a book.
func (s *Service) LogBookDeleted(requestID string, bookID uint) {
	s.record(&entities.AuditEvent{
		EventType:   entities.AuditEventDelete,
		Action:      "book_delete",
		Description: fmt.Sprintf("Deleted book %d", bookID),
		EntityType:  "book",
		EntityID:    &bookID,
		RequestID:   requestID,
	}, nil)
}

// LogUserChange records a user being created, renamed or deleted.
func (s *Service) LogUserChange(requestID string, eventType entities.AuditEventType, user *entities.User) {
	s.record(&entities.AuditEvent{
		UserID:      user.ID,
		EventType:   eventType,
		Action:      "user_" + string(eventType),
		Description: "User " + string(eventType) + ": " + user.Email,
		EntityType:  "user",
		EntityID:    &user.ID,
		RequestID:   requestID,
	}, nil)
}

// LogBorrow records a borrow attempt, successful or not.
func (s *Service) LogBorrow(requestID string, bookID, userID uint, err error) {
	s.record(&entities.AuditEvent{
		UserID:      userID,
		EventType:   entities.AuditEventBorrow,
		Action:      "book_borrow",
		Description: fmt.Sprintf("User %d borrowed book %d", userID, bookID),
		EntityType:  "book",
		EntityID:    &bookID,
		RequestID:   requestID,
	}, err)
}

// LogReturn records a return attempt, successful or not.
func (s *Service) LogReturn(requestID string, bookID, userID uint, err error) {
	s.record(&entities.AuditEvent{
		UserID:      userID,
		EventType:   entities.AuditEventReturn,
		Action:      "book_return",
		Description: fmt.Sprintf("User %d returned book %d", userID, bookID),
		EntityType:  "book",
		EntityID:    &bookID,
		RequestID:   requestID,
	}, err)
}

// LogReport records a CSV report download.
func (s *Service) LogReport(requestID, report string, rows int) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventReport,
		Action:      report + "_report",
		Description: fmt.Sprintf("Exported %s report", report),
		EntityType:  "borrowing",
		RequestID:   requestID,
	}
	if mdBytes, e := json.Marshal(map[string]any{"rows": rows}); e == nil {
		event.Metadata = string(mdBytes)
	}
	s.record(event, nil)
}

// ListEvents retrieves paginated audit events.
func (s *Service) ListEvents(filter audit.EventFilter) ([]entities.AuditEvent, int64, error) {
	if s == nil {
		return nil, 0, nil
	}
	return s.repo.ListEvents(filter)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
