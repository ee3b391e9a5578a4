package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/openbudgetke/budget_analyzer/internal/analysis"
	"github.com/openbudgetke/budget_analyzer/internal/config"
	v1 "github.com/openbudgetke/budget_analyzer/internal/controller/http/v1"
	"github.com/openbudgetke/budget_analyzer/internal/domain"
	"github.com/openbudgetke/budget_analyzer/internal/extract"
	"github.com/openbudgetke/budget_analyzer/internal/infrastructure/report_generator"
	"github.com/openbudgetke/budget_analyzer/internal/intake"
	"github.com/openbudgetke/budget_analyzer/internal/pipeline"
	"github.com/openbudgetke/budget_analyzer/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const reportsBuffer = 100

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("staging_dir", a.cfg.App.StagingDirectory),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.Duration("step_timeout", a.cfg.App.StepTimeout),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	uploadsRepository := postgresql.NewUploadsRepository(pool)
	analysesRepository := postgresql.NewAnalysesRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	// uploads left in processing by a previous run can never finish,
	// fail them before accepting traffic
	if err := uploadsRepository.ResetInterruptedUploads(ctx); err != nil {
		return fmt.Errorf("failed to reset interrupted uploads: %w", err)
	}

	return a.startPipeline(ctx, uploadsRepository, analysesRepository, txManager)
}

func (a *App) startPipeline(
	ctx context.Context,
	uploadsRepo *postgresql.UploadsRepository,
	analysesRepo *postgresql.AnalysesRepository,
	txManager *postgresql.TxManager,
) error {
	reports := make(chan *domain.Result, reportsBuffer)

	documentIntake := intake.New(a.log, a.cfg.StagingDirectory)
	extractor := extract.NewPDFTextExtractor(a.log, extract.NewExecRunner(), a.cfg.PdftotextBinary)
	analyzer := analysis.New(a.log)

	processor := pipeline.NewProcessor(
		a.log,
		a.cfg.StepTimeout,
		uploadsRepo,
		uploadsRepo,
		analysesRepo,
		extractor,
		analyzer,
		txManager,
		reports,
	)
	reporter := pipeline.NewReporter(a.log, a.cfg.ReportsDirectory, reports, report_generator.New())
	server := v1.NewServer(a.cfg.HTTP, documentIntake, processor, uploadsRepo, analysesRepo)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
