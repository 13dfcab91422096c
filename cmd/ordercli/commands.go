package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/andresuchdata/autoorder/backend/internal/calculator"
	"github.com/andresuchdata/autoorder/backend/internal/config"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/andresuchdata/autoorder/backend/internal/repository/postgres"
	"github.com/andresuchdata/autoorder/backend/internal/service"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

const dateLayout = "2006-01-02"

func runMigrate(c *cli.Context) error {
	db, err := dbFrom(c)
	if err != nil {
		return err
	}
	if err := db.Migrate(c.Context); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintln(c.App.Writer, "schema is up to date")
	return nil
}

func runPlan(c *cli.Context, cfg *config.Config) error {
	db, err := dbFrom(c)
	if err != nil {
		return err
	}

	catalog := service.NewCatalogService(postgres.NewCatalogRepository(db), nil)
	planner := service.NewPlanningService(postgres.NewPlanRepository(db), catalog, cfg.Order.PlanMonths)

	plan, err := planner.PlanSupplier(c.Context, c.Int64("supplier-id"), c.Int("months"))
	if err != nil {
		return err
	}

	printPlan(c.App.Writer, plan)
	return nil
}

func runRecalc(c *cli.Context, cfg *config.Config) error {
	db, err := dbFrom(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.String("order-id"))
	if err != nil {
		return fmt.Errorf("invalid order id %q: %w", c.String("order-id"), err)
	}

	catalog := service.NewCatalogService(postgres.NewCatalogRepository(db), nil)
	orders := service.NewOrderService(postgres.NewOrderRepository(db), catalog, nil, cfg.Order.DefaultSettings())

	detail, err := orders.GetOrder(c.Context, id)
	if err != nil {
		return err
	}

	printOrder(c.App.Writer, detail)
	return nil
}

func runSafety(c *cli.Context) error {
	today := calculator.Midnight(time.Now().UTC())
	if raw := strings.TrimSpace(c.String("today")); raw != "" {
		t, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
		today = t
	}

	stock := calculator.NewSafetyStock(today)
	switch {
	case c.IsSet("end-date"):
		end, err := time.ParseInLocation(dateLayout, strings.TrimSpace(c.String("end-date")), time.UTC)
		if err != nil {
			return fmt.Errorf("invalid --end-date: %w", err)
		}
		stock.SetEndDate(end)
	case c.IsSet("days"):
		stock.SetDays(c.Int("days"))
	default:
		return fmt.Errorf("either --days or --end-date is required")
	}

	fmt.Fprintf(c.App.Writer, "today:    %s\n", calculator.FormatDate(&today))
	fmt.Fprintf(c.App.Writer, "days:     %d\n", stock.Days())
	fmt.Fprintf(c.App.Writer, "end date: %s\n", calculator.FormatDate(stock.EndDate()))
	return nil
}

func printPlan(w io.Writer, plan *domain.SupplierPlan) {
	fmt.Fprintf(w, "%s: %d months\n\n", plan.SupplierName, plan.Months)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"SKU", "Name", "Monthly"}
	for m := 0; m < plan.Months; m++ {
		header = append(header, fmt.Sprintf("M%d boxes", m+1))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, p := range plan.Products {
		row := []string{deref(p.SKU), p.Name, calculator.FormatQuantity(p.MonthlyConsumption, 2)}
		for _, month := range p.Plan {
			row = append(row, fmt.Sprintf("%d", month.OrderBoxes))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	totals := []string{"", "Total", ""}
	for _, boxes := range plan.Totals {
		totals = append(totals, fmt.Sprintf("%d", boxes))
	}
	fmt.Fprintln(tw, strings.Join(totals, "\t"))
	tw.Flush()
}

func printOrder(w io.Writer, detail *service.OrderDetail) {
	order := detail.Order
	fmt.Fprintf(w, "order %s (%s), delivery %s, unit %s\n\n",
		order.ID, order.Status.Label(), calculator.FormatDate(order.DeliveryDate), order.Unit)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tName\tCalculated\tFinal\tCovered until\tShortage")
	for _, line := range detail.Summary.Lines {
		shortage := ""
		if line.Shortage.HasShortage {
			shortage = fmt.Sprintf("%s (%d days)", calculator.FormatQuantity(line.Shortage.DeficitAmount, 2), line.Shortage.DeficitDays)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			deref(line.Item.SKU),
			line.Item.Name,
			calculator.FormatQuantity(line.Order.CalculatedOrder, 2),
			calculator.FormatQuantity(line.Item.FinalOrder, 2),
			calculator.FormatDate(line.Order.CoverageDate),
			shortage,
		)
	}
	tw.Flush()

	s := detail.Summary
	fmt.Fprintf(w, "\nboxes: %d, pallets: %d, shortages: %d, cost: %s\n",
		s.TotalBoxes, s.TotalPallets, s.ShortageCount, s.TotalCost.StringFixed(2))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
