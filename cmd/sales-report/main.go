package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/olekukonko/tablewriter"
	"ordertracker/internal/app"
	"ordertracker/internal/entities"
	"ordertracker/internal/pkg/config"
	"ordertracker/internal/pkg/dotenv"
	"ordertracker/internal/pkg/postgres"
	"ordertracker/internal/pkg/sales_summary"
	"ordertracker/pkg/logger"
	"ordertracker/pkg/logger/zap_adapter"
)

func main() {
	days := flag.Int("days", 0, "rolling window in days (default SALES_WINDOW_DAYS or 7)")

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.WithService("sales-report"), zap_adapter.WithLevel("warn"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	flag.Parse()

	if _, err := dotenv.Load(); err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		os.Exit(1)
	}

	cfg, err := config.LoadReporting()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	if err := run(context.Background(), appLogger, cfg, *days, os.Stdout); err != nil {
		mainLog.Error("sales report failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config, days int, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if days <= 0 {
		days = cfg.Sales.WindowDays
	}
	if days <= 0 {
		days = sales_summary.DefaultWindowDays
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	reportApp, err := app.InitializeReportApp(pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	orders, err := reportApp.Repository.List(ctx)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	summary := sales_summary.Aggregate(orders, days, reportApp.Clock())
	return render(out, summary)
}

func render(out io.Writer, summary entities.SalesSummary) error {
	headline := tablewriter.NewWriter(out)
	headline.Header("Metric", "Value")
	rows := [][]string{
		{"Total orders", strconv.Itoa(summary.TotalOrders)},
		{"Product revenue", summary.Revenue.Product.StringFixed(2)},
		{"Shipping revenue", summary.Revenue.Shipping.StringFixed(2)},
		{"Total revenue", summary.Revenue.Total.StringFixed(2)},
		{"Today (" + summary.Today.Date + ") orders", strconv.Itoa(summary.Today.Orders)},
		{"Today customers", strconv.Itoa(summary.Today.Customers)},
		{"Today revenue", summary.Today.Revenue.StringFixed(2)},
	}
	for _, status := range entities.OrderStatuses() {
		rows = append(rows, []string{"Status " + status.String(), strconv.Itoa(summary.StatusHistogram[status])})
	}
	if err := headline.Bulk(rows); err != nil {
		return fmt.Errorf("headline table: %w", err)
	}
	if err := headline.Render(); err != nil {
		return fmt.Errorf("headline table: %w", err)
	}

	fmt.Fprintf(out, "\nLast %d days\n", summary.WindowDays)

	daily := tablewriter.NewWriter(out)
	daily.Header("Date", "Orders", "Customers", "Product", "Shipping", "Total")
	for _, day := range summary.Daily {
		err := daily.Append(
			day.Date,
			strconv.Itoa(day.Orders),
			strconv.Itoa(day.Customers),
			day.Revenue.Product.StringFixed(2),
			day.Revenue.Shipping.StringFixed(2),
			day.Revenue.Total.StringFixed(2),
		)
		if err != nil {
			return fmt.Errorf("daily table: %w", err)
		}
	}
	if err := daily.Render(); err != nil {
		return fmt.Errorf("daily table: %w", err)
	}

	return nil
}
