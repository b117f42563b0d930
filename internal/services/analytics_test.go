package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
)

var reportNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return reportNow }

func reportBorrowing() entities.Borrowing {
	return entities.Borrowing{
		BookID:     4,
		BorrowedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC),
		Status:     entities.BorrowingStatusBorrowed,
		Book:       &entities.Book{ID: 4, Title: "Emma", ISBN: "978-0141439587"},
		User:       &entities.User{Name: "Ada", Email: "ada@example.com"},
	}
}

func TestOverdueReport(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var gotNow time.Time
	var gotEnd *time.Time
	store := &reportStoreMock{overdueFn: func(s time.Time, end *time.Time, now time.Time) ([]entities.Borrowing, error) {
		assert.Equal(t, start, s)
		gotEnd, gotNow = end, now
		return []entities.Borrowing{reportBorrowing()}, nil
	}}

	report, err := NewAnalyticsService(store, fixedClock).OverdueReport(ReportInput{StartDate: start})
	require.NoError(t, err)
	assert.Nil(t, gotEnd)
	assert.Equal(t, reportNow, gotNow)
	assert.Equal(t, ReportOverdue, report.Name)
	assert.Equal(t, 1, report.Rows)

	lines := strings.Split(strings.TrimSuffix(string(report.Data), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "userName,bookTitle,dueDate,ISBN,userEmail,borrowDate,bookId,status", lines[0])
	assert.Equal(t, "Ada,Emma,\"Wed, 15 May 2024 10:00:00 GMT\",978-0141439587,ada@example.com,\"Wed, 01 May 2024 10:00:00 GMT\",4,BORROWED", lines[1])
}

func TestOverdueReport_SkipsRowsNotOverdue(t *testing.T) {
	returned := reportBorrowing()
	returned.Status = entities.BorrowingStatusReturned
	notDue := reportBorrowing()
	notDue.DueDate = reportNow.Add(time.Hour)

	store := &reportStoreMock{overdueFn: func(time.Time, *time.Time, time.Time) ([]entities.Borrowing, error) {
		return []entities.Borrowing{returned, reportBorrowing(), notDue}, nil
	}}

	report, err := NewAnalyticsService(store, fixedClock).OverdueReport(ReportInput{StartDate: reportNow.AddDate(0, -3, 0)})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Rows)
	assert.Equal(t, 1, strings.Count(string(report.Data), "BORROWED"))
}

func TestBorrowingsReport(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	store := &reportStoreMock{betweenFn: func(s time.Time, e *time.Time) ([]entities.Borrowing, error) {
		require.NotNil(t, e)
		assert.Equal(t, end, *e)
		return []entities.Borrowing{reportBorrowing()}, nil
	}}

	report, err := NewAnalyticsService(store, fixedClock).BorrowingsReport(ReportInput{StartDate: start, EndDate: &end})
	require.NoError(t, err)
	assert.Contains(t, string(report.Data), "Ada,Emma,2024-05-15T10:00:00.000Z,978-0141439587,ada@example.com,2024-05-01T10:00:00.000Z,4,BORROWED\r\n")
}

func TestReportValidation(t *testing.T) {
	svc := NewAnalyticsService(&reportStoreMock{}, fixedClock)

	_, err := svc.OverdueReport(ReportInput{})
	assert.Equal(t, KindValidation, KindOf(err))

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err = svc.BorrowingsReport(ReportInput{StartDate: start, EndDate: &end})
	var svcErr *Error
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, KindValidation, svcErr.Kind)
	assert.Equal(t, "endDate", svcErr.Details[0].Field)
}

func TestReportStoreFailure(t *testing.T) {
	store := &reportStoreMock{overdueFn: func(time.Time, *time.Time, time.Time) ([]entities.Borrowing, error) {
		return nil, errors.New("no such table")
	}}

	_, err := NewAnalyticsService(store, fixedClock).OverdueReport(ReportInput{StartDate: reportNow})
	assert.Equal(t, KindInternal, KindOf(err))
}
