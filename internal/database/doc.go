// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, driver selection, pool limits
//	└── books/           # Book inventory store: schema, seeding, validated CRUD
//
// # Usage
//
//	// Open the connection pool
//	db, err := database.Open(cfg.Database)
//
//	// Create the book store and make sure the table exists
//	store := books.NewRepository(db.DB)
//	err = store.Initialize(ctx)
//
// Every store operation runs through the shared *gorm.DB, which checks a
// connection out of the database/sql pool per statement and returns it when
// the statement finishes.
package database
