package main

import (
	"context"
	"fmt"
	"os"

	"github.com/andresuchdata/autoorder/backend/internal/config"
	"github.com/andresuchdata/autoorder/backend/internal/repository/postgres"
	"github.com/andresuchdata/autoorder/backend/pkg/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/urfave/cli/v2"
)

type dbKey struct{}

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func initDB(c *cli.Context) error {
	db, err := postgres.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Store the database connection in the context
	c.Context = context.WithValue(c.Context, dbKey{}, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey{}).(*postgres.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func dbFrom(c *cli.Context) (*postgres.DB, error) {
	db, ok := c.Context.Value(dbKey{}).(*postgres.DB)
	if !ok || db == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}
	return db, nil
}

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.Server.LogLevel)

	app := &cli.App{
		Name:  "ordercli",
		Usage: "Maintain order data and run calculations from the terminal",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Create the database schema",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: runMigrate,
			},
			{
				Name:  "plan",
				Usage: "Print the multi-month order plan of a supplier",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.Int64Flag{
						Name:     "supplier-id",
						Usage:    "Supplier to plan",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "months",
						Usage: "Number of months to project",
						Value: cfg.Order.PlanMonths,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: func(c *cli.Context) error {
					return runPlan(c, cfg)
				},
			},
			{
				Name:  "recalc",
				Usage: "Recalculate a stored order and print its lines",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:     "order-id",
						Usage:    "Order UUID",
						Required: true,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: func(c *cli.Context) error {
					return runRecalc(c, cfg)
				},
			},
			{
				Name:  "safety",
				Usage: "Convert safety stock days to an end date or back",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "days",
						Usage: "Safety stock in days",
					},
					&cli.StringFlag{
						Name:  "end-date",
						Usage: "Safety stock end date (YYYY-MM-DD)",
					},
					&cli.StringFlag{
						Name:  "today",
						Usage: "Reference date (YYYY-MM-DD), defaults to the current date",
					},
				},
				Action: runSafety,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("ordercli failed")
	}
}
