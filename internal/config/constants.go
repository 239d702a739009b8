package config

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	// DefaultDatabasePath is the default path for the inventory database file
	DefaultDatabasePath = "./BooksInventory.db"

	// DefaultEnvFile is loaded on startup when present
	DefaultEnvFile = ".env"
)
