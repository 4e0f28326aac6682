// Package app wires configuration, logging, transport and the crawler into
// one Application and runs the crawl-and-write pipeline.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/law-makers/vacancies/internal/config"
	"github.com/law-makers/vacancies/internal/djinni"
	"github.com/law-makers/vacancies/internal/engine/static"
	"github.com/law-makers/vacancies/internal/ui"
	"github.com/law-makers/vacancies/internal/utils/output"
	"github.com/rs/zerolog"
)

// Application holds all dependencies of one crawl run.
//
// It is created once per run; Close releases the log file and idle
// connections.
type Application struct {
	Config     *config.Config
	Logger     *zerolog.Logger
	HTTPClient *http.Client
	Scraper    *static.Scraper
	Walker     *djinni.Walker
	Progress   *ui.Progress // nil unless enabled
	logFile    *os.File
	startTime  time.Time
}

// New creates and initializes a new Application.
//
// Log lines go to stdout and, appended, to cfg.LogFile. If any step fails an
// error is returned and nothing is left open.
func New(cfg *config.Config, stdout io.Writer) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, stdout, logFile)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	logger.Debug().
		Str("level", cfg.LogLevel).
		Str("log_file", cfg.LogFile).
		Msg("Logger initialized")

	// Zero timeout keeps the transport defaults
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	logger.Debug().
		Dur("timeout", cfg.HTTPTimeout).
		Msg("HTTP client initialized")

	scraper := static.New(httpClient, cfg.UserAgent, logger)

	var progress *ui.Progress
	opts := djinni.Options{
		ListingURL: cfg.SearchURL(),
		BaseURL:    cfg.BaseURL,
		Schema:     djinni.DefaultSchema(),
	}
	if cfg.Progress {
		progress = ui.NewProgress(os.Stderr)
		opts.Progress = progress
	}
	walker := djinni.NewWalker(scraper, opts, logger)

	return &Application{
		Config:     cfg,
		Logger:     &logger,
		HTTPClient: httpClient,
		Scraper:    scraper,
		Walker:     walker,
		Progress:   progress,
		logFile:    logFile,
		startTime:  time.Now(),
	}, nil
}

// newLogger builds a logger writing "[    INFO]: message" lines to every writer
func newLogger(level string, writers ...io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	outs := make([]io.Writer, 0, len(writers))
	for _, w := range writers {
		outs = append(outs, zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
			FormatLevel: func(i interface{}) string {
				return fmt.Sprintf("[%8s]:", strings.ToUpper(fmt.Sprint(i)))
			},
		})
	}

	return zerolog.New(zerolog.MultiLevelWriter(outs...)).Level(lvl), nil
}

// Run crawls every listing page, then writes the vacancies to the output
// file. The file is only touched after the whole crawl succeeded.
func (a *Application) Run(ctx context.Context) (int, error) {
	vacancies, err := a.Walker.Collect(ctx)
	if err == nil {
		err = output.SaveCSV(vacancies, a.Config.OutputPath)
	}
	if a.Progress != nil {
		a.Progress.Done(len(vacancies), a.Config.OutputPath, err)
	}
	if err != nil {
		return 0, err
	}

	a.Logger.Debug().
		Int("vacancies", len(vacancies)).
		Str("file", a.Config.OutputPath).
		Dur("elapsed", time.Since(a.startTime)).
		Msg("Output saved")
	return len(vacancies), nil
}

// Close releases the resources held by the application
func (a *Application) Close() error {
	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}
	if a.logFile != nil {
		err := a.logFile.Close()
		a.logFile = nil
		return err
	}
	return nil
}
