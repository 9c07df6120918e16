package satsboard

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/satsboard/satsboard/internal/board"
	"github.com/satsboard/satsboard/internal/config"
	"github.com/satsboard/satsboard/internal/report"
)

type Application struct {
	Config *config.Config
	Logger zerolog.Logger
	Client *board.Client
}

// New wires a client from the given configuration. It fails when the
// configuration carries no usable credentials.
func New(cfg *config.Config, logger zerolog.Logger) (*Application, error) {
	client, err := board.NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("service", cfg.BaseURL()).
		Bool("bearer", client.CallingContext().HasBearer()).
		Bool("usr", client.CallingContext().UserParam() != "").
		Msg("client initialized")

	return &Application{
		Config: cfg,
		Logger: logger,
		Client: client,
	}, nil
}

// SprintReport fetches a board and its tasks and aggregates them.
func (app *Application) SprintReport(ctx context.Context, boardID string) (report.SprintReport, error) {
	b, err := app.Client.GetBoard(ctx, boardID)
	if err != nil {
		return report.SprintReport{}, err
	}

	page, err := app.Client.ListTasks(ctx, boardID, 0, 0)
	if err != nil {
		return report.SprintReport{}, err
	}

	rep := report.Aggregate(*b, page)
	app.Logger.Info().
		Str("board", boardID).
		Int("tasks", rep.TotalTasks).
		Int64("sats_total", rep.Rewards.Total).
		Msg("sprint report aggregated")

	return rep, nil
}

// Export writes the report in each requested format (json, csv, xlsx) into
// outputDir. A failing format is logged and does not stop the others.
func (app *Application) Export(rep report.SprintReport, outputDir string, formats []string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, format := range formats {
		switch format {
		case "json":
			filename := fmt.Sprintf("sprint_%s.json", rep.Board.ID)
			exporter := report.NewExporter(outputDir)
			if err := exporter.ExportJSON(rep, filename); err != nil {
				app.Logger.Error().Err(err).Msg("failed to export JSON")
			} else {
				app.Logger.Info().Str("format", "json").Str("file", filename).Msg("report exported")
			}

		case "csv":
			exporter := report.NewCSVExporter(outputDir)
			if err := exporter.Export(rep); err != nil {
				app.Logger.Error().Err(err).Msg("failed to export CSV")
			} else {
				app.Logger.Info().Str("format", "csv").Msg("report exported")
			}

		case "xlsx":
			exporter := report.NewExcelExporter(outputDir)
			if err := exporter.Export(rep); err != nil {
				app.Logger.Error().Err(err).Msg("failed to export Excel")
			} else {
				app.Logger.Info().Str("format", "xlsx").Msg("report exported")
			}

		default:
			app.Logger.Warn().Str("format", format).Msg("unknown export format")
		}
	}

	return nil
}
