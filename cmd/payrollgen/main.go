package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/kyuyo-labs/payroll-engine-go/internal/config"
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/kyuyo-labs/payroll-engine-go/internal/pkg/payslip"
	"github.com/kyuyo-labs/payroll-engine-go/internal/pkg/rates"
	"github.com/kyuyo-labs/payroll-engine-go/internal/pkg/storage"
	attendanceService "github.com/kyuyo-labs/payroll-engine-go/internal/service/attendance"
	payrollService "github.com/kyuyo-labs/payroll-engine-go/internal/service/payroll"
	reportService "github.com/kyuyo-labs/payroll-engine-go/internal/service/report"
)

const appVersion = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	})).With(
		slog.String("app", "payroll-engine"),
		slog.String("version", appVersion),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	table := rates.Default()
	if cfg.Rates.TablePath != "" {
		table, err = rates.Load(cfg.Rates.TablePath)
		if err != nil {
			slog.Error("Failed to load rate table", "path", cfg.Rates.TablePath, "error", err)
			os.Exit(1)
		}
	}

	store, err := storage.NewLocalStore(cfg.Output.Dir)
	if err != nil {
		slog.Error("Failed to initialize artifact store", "error", err)
		os.Exit(1)
	}

	aggregator := attendanceService.NewAggregatorService()
	engine := payrollService.NewEngine(table)
	batch := payrollService.NewBatchService(engine, aggregator, cfg.Batch.Workers)
	reports := reportService.NewReportService()

	inputPath := "payroll.json"
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		slog.Error("Failed to read run request", "path", inputPath, "error", err)
		os.Exit(1)
	}
	var req payroll.RunRequest
	if err := json.Unmarshal(data, &req); err != nil {
		slog.Error("Failed to parse run request", "path", inputPath, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run, err := batch.Run(ctx, req)
	if err != nil {
		slog.Error("Payroll run failed", "error", err)
		os.Exit(1)
	}

	for _, result := range run.Results {
		text := payslip.Render(result, run.PeriodMonth, run.PeriodYear, cfg.Output.Currency)
		textPath := fmt.Sprintf("payslips/%s/%s.txt", run.RunID, result.EmployeeID)
		if _, err := store.Write(ctx, textPath, []byte(text)); err != nil {
			slog.Error("Failed to store payslip", "employee_id", result.EmployeeID, "error", err)
			os.Exit(1)
		}

		pdfData, err := payslip.BuildPDF(result, run.PeriodMonth, run.PeriodYear, cfg.Output.Currency)
		if err != nil {
			slog.Error("Failed to render payslip pdf", "employee_id", result.EmployeeID, "error", err)
			os.Exit(1)
		}
		pdfPath := fmt.Sprintf("payslips/%s/%s.pdf", run.RunID, result.EmployeeID)
		if _, err := store.Write(ctx, pdfPath, pdfData); err != nil {
			slog.Error("Failed to store payslip pdf", "employee_id", result.EmployeeID, "error", err)
			os.Exit(1)
		}
	}

	register := reports.BuildRegister(run)
	workbook, err := reports.ExportXLSX(register)
	if err != nil {
		slog.Error("Failed to export register", "error", err)
		os.Exit(1)
	}
	if _, err := store.Write(ctx, fmt.Sprintf("register-%s.xlsx", run.RunID), workbook); err != nil {
		slog.Error("Failed to store register", "error", err)
		os.Exit(1)
	}

	rawRun, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		slog.Error("Failed to encode run result", "error", err)
		os.Exit(1)
	}
	if _, err := store.Write(ctx, fmt.Sprintf("run-%s.json", run.RunID), rawRun); err != nil {
		slog.Error("Failed to store run result", "error", err)
		os.Exit(1)
	}

	for _, warning := range run.Warnings {
		slog.Warn("Run warning", "employee_id", warning.EmployeeID, "message", warning.Message)
	}

	slog.Info("Artifacts written",
		"run_id", run.RunID,
		"output_dir", cfg.Output.Dir,
		"payslips", len(run.Results),
	)
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
