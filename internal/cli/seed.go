package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/demo"
)

// SeedCommand populates a database with demo books, members and loans
type SeedCommand struct {
	DatabasePath string
	Fresh        bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file to populate")
	fs.BoolVar(&cmd.Fresh, "fresh", false, "Delete the database file before seeding")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Fill a library database with demo books, members and borrowings.\n")
		fmt.Fprintf(os.Stderr, "Every member gets the password %q.\n\n", demo.DemoPassword)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.DatabasePath == "" {
		return fmt.Errorf("flag -db must not be empty")
	}
	return nil
}

func (cmd *SeedCommand) Run() error {
	fmt.Println("Library Seed")
	fmt.Println("============")
	fmt.Printf("Database: %s\n", cmd.DatabasePath)

	if cmd.Fresh {
		if err := os.Remove(cmd.DatabasePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	summary, err := demo.Seed(db, time.Now())
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Println()
	fmt.Printf("Books:      %d\n", summary.Books)
	fmt.Printf("Users:      %d\n", summary.Users)
	fmt.Printf("Borrowings: %d (%d returned)\n", summary.Borrowings, summary.Returns)
	return nil
}
