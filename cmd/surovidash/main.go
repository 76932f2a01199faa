package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/estiak0001/SUROVI-DASH/internal/ingest"
	"github.com/estiak0001/SUROVI-DASH/internal/repository/postgres"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func openDB(c *cli.Context) (*sql.DB, error) {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "surovidash",
		Usage: "Administer the sales dashboard database",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create the star schema tables and indexes",
				Flags: []cli.Flag{
					newDBURLFlag(),
				},
				Action: runMigrate,
			},
			{
				Name:  "seed-time",
				Usage: "Pre-populate the time dimension with monthly periods",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.IntFlag{
						Name:  "from-year",
						Usage: "First year to seed",
						Value: 2023,
					},
					&cli.IntFlag{
						Name:  "to-year",
						Usage: "Last year to seed (inclusive)",
						Value: 2026,
					},
				},
				Action: runSeedTime,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runMigrate(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := postgres.Migrate(c.Context, db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Println("Migrations completed successfully!")
	return nil
}

func runSeedTime(c *cli.Context) error {
	fromYear := c.Int("from-year")
	toYear := c.Int("to-year")
	if fromYear > toYear {
		return fmt.Errorf("from-year %d is after to-year %d", fromYear, toYear)
	}

	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO dim_time (
			date, day, month, month_name, month_short, quarter, quarter_name,
			year, fiscal_year, is_current_month, is_current_year
		) VALUES ($1, 1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (month, year) DO NOTHING
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare time seed statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	seeded := 0
	for year := fromYear; year <= toYear; year++ {
		for month := 1; month <= 12; month++ {
			quarter := ingest.Quarter(month)
			isCurrentMonth := 0
			if month == int(now.Month()) && year == now.Year() {
				isCurrentMonth = 1
			}
			isCurrentYear := 0
			if year == now.Year() {
				isCurrentYear = 1
			}

			if _, err := stmt.ExecContext(ctx,
				time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
				month,
				ingest.MonthName(month),
				ingest.MonthShort(month),
				quarter,
				fmt.Sprintf("Q%d", quarter),
				year,
				ingest.FiscalYear(month, year),
				isCurrentMonth,
				isCurrentYear,
			); err != nil {
				return fmt.Errorf("failed to seed period %d/%d: %w", month, year, err)
			}
			seeded++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Seeded %d time periods (%d-%d)\n", seeded, fromYear, toYear)
	return nil
}
