// Package demo fills a library database with public domain books, a few
// members and a borrowing history that produces rows in both reports.
package demo

import (
	"fmt"
	"log"
	"time"

	"github.com/mrlokans/library/internal/auth"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/borrowings"
	"github.com/mrlokans/library/internal/database/users"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/services"
)

// DemoPassword is the password of every seeded member.
const DemoPassword = "library-demo"

// Summary counts what Seed created.
type Summary struct {
	Books      int
	Users      int
	Borrowings int
	Returns    int
}

var demoBooks = []services.AddBookInput{
	{Title: "Meditations", ISBN: "978-0140449334", Author: "Marcus Aurelius", Location: "Shelf A1"},
	{Title: "Pride and Prejudice", ISBN: "978-0141439518", Author: "Jane Austen", Location: "Shelf A2"},
	{Title: "Moby-Dick", ISBN: "978-0142437247", Author: "Herman Melville", Location: "Shelf B1"},
	{Title: "Frankenstein", ISBN: "978-0141439471", Author: "Mary Shelley", Location: "Shelf B2"},
	{Title: "The Odyssey", ISBN: "978-0140268867", Author: "Homer", Location: "Shelf C1"},
	{Title: "On the Origin of Species", ISBN: "978-0451529060", Author: "Charles Darwin", Location: "Shelf C2"},
}

var demoUsers = []services.CreateUserInput{
	{Name: "Ada Lovelace", Email: "ada@example.com", Password: DemoPassword},
	{Name: "Alan Turing", Email: "alan@example.com", Password: DemoPassword},
	{Name: "Grace Hopper", Email: "grace@example.com", Password: DemoPassword},
}

// loan describes one seeded borrowing relative to the seeding time.
type loan struct {
	book, user   int
	startDaysAgo int
	loanDays     int
	returnAfter  int // days after start, 0 keeps the loan open
}

var demoLoans = []loan{
	{book: 0, user: 0, startDaysAgo: 60, loanDays: 14, returnAfter: 10},
	{book: 0, user: 1, startDaysAgo: 30, loanDays: 14},                  // overdue
	{book: 1, user: 2, startDaysAgo: 20, loanDays: 7},                   // overdue
	{book: 2, user: 0, startDaysAgo: 5, loanDays: 21},                   // open, not due
	{book: 3, user: 1, startDaysAgo: 45, loanDays: 14, returnAfter: 20}, // returned late
}

// Seed creates the demo library through the service layer so every record
// passes the same validation as API traffic.
func Seed(db *database.Database, now time.Time) (Summary, error) {
	var summary Summary

	bookRepo := books.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	borrowRepo := borrowings.NewRepository(db.DB)

	bookService := services.NewBookService(bookRepo)
	userService := services.NewUserService(userRepo, auth.NewBcryptHasher(config.DefaultBcryptCost))
	borrowService := services.NewBorrowService(bookRepo, userRepo, borrowRepo)

	createdBooks := make([]*entities.Book, 0, len(demoBooks))
	for _, input := range demoBooks {
		book, err := bookService.AddBook(input)
		if err != nil {
			return summary, fmt.Errorf("add book %q: %w", input.Title, err)
		}
		createdBooks = append(createdBooks, book)
		summary.Books++
		log.Printf("Saved: %s by %s", book.Title, book.Author)
	}

	createdUsers := make([]*entities.User, 0, len(demoUsers))
	for _, input := range demoUsers {
		user, err := userService.CreateUser(input)
		if err != nil {
			return summary, fmt.Errorf("create user %s: %w", input.Email, err)
		}
		createdUsers = append(createdUsers, user)
		summary.Users++
	}

	for _, l := range demoLoans {
		book, user := createdBooks[l.book], createdUsers[l.user]
		start := now.AddDate(0, 0, -l.startDaysAgo).UTC()

		_, err := borrowService.Borrow(services.BorrowInput{
			BookID:     book.ID,
			UserID:     user.ID,
			BorrowDate: start,
			DueDate:    start.AddDate(0, 0, l.loanDays),
		})
		if err != nil {
			return summary, fmt.Errorf("borrow %q for %s: %w", book.Title, user.Email, err)
		}
		summary.Borrowings++

		if l.returnAfter == 0 {
			continue
		}
		_, err = borrowService.Return(services.ReturnInput{
			BookID:     book.ID,
			UserID:     user.ID,
			ReturnDate: start.AddDate(0, 0, l.returnAfter),
		})
		if err != nil {
			return summary, fmt.Errorf("return %q for %s: %w", book.Title, user.Email, err)
		}
		summary.Returns++
	}

	return summary, nil
}
