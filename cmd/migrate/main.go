// Command migrate applies goose SQL migrations to a postgres
// deployment. sqlite setups rely on automigrate in the api binary.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/labcrm/crm-api/internal/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with migration files")
	command := flag.String("command", "up", "goose command (up, down, status, version)")
	flag.Parse()

	if err := run(*dir, *command); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(dir, command string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != "postgres" {
		return fmt.Errorf("migrations only apply to postgres, configured driver is %q", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresDSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "status":
		return goose.Status(db, dir)
	case "version":
		return goose.Version(db, dir)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
