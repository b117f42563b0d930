package services

import (
	"time"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/reports"
	"github.com/mrlokans/library/internal/validation"
)

const (
	ReportOverdue    = "overdue"
	ReportBorrowings = "borrowings"
)

// ReportInput selects borrowings by borrow time. A nil EndDate leaves the
// range open.
type ReportInput struct {
	StartDate time.Time  `json:"startDate" validate:"required"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Report is a rendered CSV document.
type Report struct {
	Name string
	Rows int
	Data []byte
}

type AnalyticsService struct {
	store    ReportStore
	now      Clock
	validate *validation.Validator
}

func NewAnalyticsService(store ReportStore, now Clock) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{store: store, now: now, validate: validation.New()}
}

// OverdueReport lists open borrowings whose due date has passed. Dates are
// rendered as UTC strings.
func (s *AnalyticsService) OverdueReport(input ReportInput) (*Report, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	now := s.now()
	items, err := s.store.GetOverdueBorrowings(input.StartDate, input.EndDate, now)
	if err != nil {
		return nil, internal("failed to query overdue borrowings", err)
	}

	// Rows are re-checked against the same clock the query used.
	overdue := items[:0]
	for i := range items {
		if items[i].IsOverdue(now) {
			overdue = append(overdue, items[i])
		}
	}
	return render(ReportOverdue, overdue, reports.UTCString)
}

// BorrowingsReport lists every borrowing in the range. Dates are rendered as
// ISO-8601 timestamps, unlike the overdue report.
func (s *AnalyticsService) BorrowingsReport(input ReportInput) (*Report, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	items, err := s.store.GetBorrowingsBetweenDates(input.StartDate, input.EndDate)
	if err != nil {
		return nil, internal("failed to query borrowings", err)
	}
	return render(ReportBorrowings, items, reports.Timestamp)
}

func (s *AnalyticsService) check(input ReportInput) error {
	if err := s.validate.Validate(input); err != nil {
		return invalid(err)
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return &Error{
			Kind:    KindValidation,
			Message: MsgInvalidInput,
			Details: []validation.FieldError{{
				Field:   "endDate",
				Rule:    "gtefield",
				Param:   "startDate",
				Message: "endDate must not be before startDate",
			}},
		}
	}
	return nil
}

func render(name string, items []entities.Borrowing, format reports.DateFormatter) (*Report, error) {
	records := reports.FromBorrowings(items, format)
	data, err := reports.WriteCSV(records)
	if err != nil {
		return nil, internal("failed to render report", err)
	}
	return &Report{Name: name, Rows: len(records), Data: data}, nil
}
