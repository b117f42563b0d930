package entities

import (
	"time"
)

// RecordState is the lifecycle state of a soft-deletable row.
type RecordState string

const (
	RecordStateActive  RecordState = "active"
	RecordStateDeleted RecordState = "deleted"
)

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBorrowed  Availability = "borrowed"
)

type BorrowingStatus string

const (
	BorrowingStatusBorrowed BorrowingStatus = "BORROWED"
	BorrowingStatusReturned BorrowingStatus = "RETURNED"
)

type Book struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Title        string       `gorm:"index;size:512;not null" json:"title"`
	ISBN         string       `gorm:"column:isbn;index;size:32;not null" json:"ISBN"`
	Author       string       `gorm:"index;size:256;not null" json:"author"`
	Location     string       `gorm:"size:256;not null" json:"location"`
	Availability Availability `gorm:"size:20;not null;default:'available'" json:"availability"`
	State        RecordState  `gorm:"index;size:20;not null;default:'active'" json:"-"`
	DeletedAt    *time.Time   `json:"deletedAt,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (b *Book) IsBorrowed() bool {
	return b.Availability == AvailabilityBorrowed
}

type User struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"size:256;not null" json:"name"`
	Email        string      `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string      `gorm:"size:255;not null" json:"-"`
	State        RecordState `gorm:"index;size:20;not null;default:'active'" json:"-"`
	DeletedAt    *time.Time  `json:"deletedAt,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Borrowing links one user to one book for one loan period.
type Borrowing struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	BookID     uint            `gorm:"index;not null" json:"bookId"`
	UserID     uint            `gorm:"index;not null" json:"userId"`
	BorrowedAt time.Time       `gorm:"index;not null" json:"borrowedAt"`
	DueDate    time.Time       `gorm:"index;not null" json:"dueDate"`
	ReturnedAt *time.Time      `json:"returnedAt,omitempty"`
	Status     BorrowingStatus `gorm:"index;size:20;not null" json:"status"`

	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOverdue reports whether the borrowing is still open past its due date.
func (b *Borrowing) IsOverdue(now time.Time) bool {
	return b.Status == BorrowingStatusBorrowed && b.DueDate.Before(now)
}
