package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"go.uber.org/zap"

	biodatajob "github.com/DEV-SHUKLA-GITHUB/BioData-maker/adapters/job"
	biopdf "github.com/DEV-SHUKLA-GITHUB/BioData-maker/adapters/pdf"
	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/adapters/raster"
	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/adapters/render"
	storebun "github.com/DEV-SHUKLA-GITHUB/BioData-maker/adapters/store/bun"
	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/cmd/biodata-server/config"
	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/command"
)

// App holds the application dependencies.
type App struct {
	Config        config.Config
	Logger        *ZapLogger
	Service       *biodata.FormService
	Exporter      *biodata.Exporter
	Renderer      *render.Renderer
	Raster        *raster.ChromiumEngine
	Store         *storebun.Store
	Autosave      *biodatajob.Runner
	db            *bun.DB
	subscriptions []dispatcher.Subscription
}

// NewApp creates and initializes the application.
func NewApp(ctx context.Context, cfg config.Config, zl *zap.Logger) (*App, error) {
	logger := NewZapLogger(zl)

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.Store.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := storebun.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create form slot table: %w", err)
	}

	store := storebun.NewStore(db)
	if cfg.Store.Slot != "" {
		store.Slot = cfg.Store.Slot
	}

	renderer, err := render.New(render.Config{Logger: logger})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize template renderer: %w", err)
	}

	engine := &raster.ChromiumEngine{
		BrowserPath: cfg.Raster.ChromiumPath,
		Headless:    cfg.Raster.Headless,
		Timeout:     cfg.Raster.Timeout,
		Args:        cfg.Raster.Args,
		Defaults: biodata.RasterOptions{
			Scale: cfg.Raster.Scale,
		},
	}

	formats := biodata.NewFormatRegistry()
	registrations := []struct {
		format   biodata.Format
		renderer biodata.Renderer
	}{
		{biodata.FormatPDF, &biodata.PDFRenderer{HTML: renderer, Raster: engine, Pages: biopdf.PageWriter{}}},
		{biodata.FormatHTML, &biodata.HTMLDocRenderer{HTML: renderer}},
		{biodata.FormatXLSX, biodata.XLSXRenderer{}},
		{biodata.FormatJSON, biodata.JSONRenderer{}},
	}
	for _, reg := range registrations {
		if err := formats.Register(reg.format, reg.renderer); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to register %s renderer: %w", reg.format, err)
		}
	}

	exporter, err := biodata.NewExporter(biodata.ExporterConfig{Formats: formats, Logger: logger})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	service := biodata.NewFormService(biodata.FormServiceConfig{
		Repository: store,
		Logger:     logger,
	})
	service.Start(ctx)

	subscriptions, err := command.RegisterHandlers(nil, service, exporter)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to register command handlers: %w", err)
	}

	var autosave *biodatajob.Runner
	if cfg.Autosave.Interval > 0 {
		task := biodatajob.NewAutosaveTask(biodatajob.TaskConfig{
			Service:    service,
			Repository: store,
			Logger:     logger,
		})
		autosave = biodatajob.NewRunner(task, cfg.Autosave.Interval, logger)
		autosave.Start(ctx)
	}

	return &App{
		Config:        cfg,
		Logger:        logger,
		Service:       service,
		Exporter:      exporter,
		Renderer:      renderer,
		Raster:        engine,
		Store:         store,
		Autosave:      autosave,
		db:            db,
		subscriptions: subscriptions,
	}, nil
}

// Close releases app resources.
func (a *App) Close() error {
	if a.Autosave != nil {
		a.Autosave.Stop()
	}
	for _, sub := range a.subscriptions {
		sub.Unsubscribe()
	}
	if a.Raster != nil {
		a.Raster.Close()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// ZapLogger adapts zap to the biodata logging hooks.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps a zap logger.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{sugar: l.Sugar()}
}

func (l *ZapLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }

func (l *ZapLogger) Infof(format string, args ...any) { l.sugar.Infof(format, args...) }

func (l *ZapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }
