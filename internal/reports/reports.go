// Package reports turns borrowings into flat rows and CSV documents.
package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/mrlokans/library/internal/entities"
)

const (
	// UTCStringLayout matches the HTTP date form used by the overdue report.
	UTCStringLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
	// TimestampLayout is the ISO-8601 form used by the borrowings report.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// Header is the column order of every report.
var Header = []string{"userName", "bookTitle", "dueDate", "ISBN", "userEmail", "borrowDate", "bookId", "status"}

// Record is one report row.
type Record struct {
	UserName   string
	BookTitle  string
	DueDate    string
	ISBN       string
	UserEmail  string
	BorrowDate string
	BookID     uint
	Status     entities.BorrowingStatus
}

func (r Record) fields() []string {
	return []string{
		r.UserName,
		r.BookTitle,
		r.DueDate,
		r.ISBN,
		r.UserEmail,
		r.BorrowDate,
		strconv.FormatUint(uint64(r.BookID), 10),
		string(r.Status),
	}
}

// DateFormatter renders a report date.
type DateFormatter func(time.Time) string

func UTCString(t time.Time) string {
	return t.UTC().Format(UTCStringLayout)
}

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FromBorrowings maps borrowings to records. Book and User columns stay
// empty when the association was not loaded.
func FromBorrowings(items []entities.Borrowing, format DateFormatter) []Record {
	records := make([]Record, 0, len(items))
	for _, b := range items {
		rec := Record{
			DueDate:    format(b.DueDate),
			BorrowDate: format(b.BorrowedAt),
			BookID:     b.BookID,
			Status:     b.Status,
		}
		if b.Book != nil {
			rec.BookTitle = b.Book.Title
			rec.ISBN = b.Book.ISBN
		}
		if b.User != nil {
			rec.UserName = b.User.Name
			rec.UserEmail = b.User.Email
		}
		records = append(records, rec)
	}
	return records
}

// WriteCSV serializes records with a header line and CRLF line endings.
// The header is written even when there are no records.
func WriteCSV(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(r.fields()); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
