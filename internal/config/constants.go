package config

const (
	// DefaultPort is used when PORT is not set
	DefaultPort = 8000

	// DefaultDatabasePath is the default path for the library database
	DefaultDatabasePath = "./library.db"

	// DefaultBcryptCost is the bcrypt work factor for stored password hashes
	DefaultBcryptCost = 10
)
