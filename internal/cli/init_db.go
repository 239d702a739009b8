package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/booksinventory/internal/config"
	"github.com/mrlokans/booksinventory/internal/database"
	"github.com/mrlokans/booksinventory/internal/database/books"
)

// InitDBCommand creates the books table and seeds it without starting the server.
type InitDBCommand struct {
	Driver       string
	DatabasePath string
	DSN          string
}

func NewInitDBCommand() *InitDBCommand {
	return &InitDBCommand{}
}

func (cmd *InitDBCommand) ParseFlags(args []string) error {
	defaults := config.NewConfig().Database

	fs := flag.NewFlagSet("init-db", flag.ContinueOnError)

	fs.StringVar(&cmd.Driver, "driver", defaults.Driver, "Database driver: sqlite or postgres")
	fs.StringVar(&cmd.DatabasePath, "db", defaults.Path, "Path to the SQLite database file")
	fs.StringVar(&cmd.DSN, "dsn", defaults.DSN, "PostgreSQL connection string (postgres driver only)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s init-db [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create the books table if it is missing and seed it when empty.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *InitDBCommand) Run() error {
	db, err := database.Open(config.Database{
		Driver:   cmd.Driver,
		Path:     cmd.DatabasePath,
		DSN:      cmd.DSN,
		LogLevel: "warn",
	})
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	store := books.NewRepository(db.DB)
	if err := store.Initialize(ctx); err != nil {
		return err
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Books table ready: %d record(s)\n", len(all))
	return nil
}
