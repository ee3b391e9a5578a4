package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/openbudgetke/budget_analyzer/internal/domain"
)

// Reporter consumes completed runs and writes one PDF transparency report
// per upload into the output directory. Report generation is best effort,
// a failure never affects the persisted upload.
type Reporter struct {
	log             *slog.Logger
	outputDir       string
	results         <-chan *domain.Result
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	results <-chan *domain.Result,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		results:         results,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.results:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("upload_id", result.Upload.ID.String()),
				slog.String("file_name", result.Upload.FileName),
			)

			log.InfoContext(ctx, "received completed analysis, generating report")

			if err := r.processResult(result); err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processResult(result *domain.Result) error {
	path := filepath.Join(r.outputDir, result.Upload.ID.String()+".pdf")

	if err := r.reportGenerator.GenerateReport(path, result); err != nil {
		return fmt.Errorf("upload %s: %w", result.Upload.ID, err)
	}

	return nil
}
