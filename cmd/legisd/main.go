package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"

	"mainelegis/lib/configutil"
	"mainelegis/lib/scrapers/mainehouse"
	"mainelegis/lib/serviceutil"
	"mainelegis/lib/sqliteutil"
	"mainelegis/services/roster"
	rosterdb "mainelegis/services/roster/db"

	"github.com/robfig/cron/v3"
)

type ScrapeConfig struct {
	BaseUrl       string  `json:"base_url"`
	ListPath      string  `json:"list_path"`
	Schedule      string  `json:"schedule"`
	Concurrency   int     `json:"concurrency"`
	RatePerSecond float64 `json:"rate_per_second"`
	RateBurst     int     `json:"rate_burst"`
}

type DatabaseConfig struct {
	File string `json:"file"`
}

type Config struct {
	Scrape   ScrapeConfig        `json:"scrape"`
	Database DatabaseConfig      `json:"database"`
	CsvPath  string              `json:"csv_path"`
	Port     int                 `json:"port"`
	Notify   roster.NotifyConfig `json:"notify"`
}

// refresh the roster daily at 14:00 UTC
const defaultSchedule = "0 14 * * *"

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	now := flag.Bool("now", false, "Run one scrape immediately on startup.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if os.IsNotExist(err) {
		slog.Info("no config.json5 found, using defaults")
	} else if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Database.File == "" {
		cfg.Database.File = "roster.db"
	}
	if cfg.CsvPath == "" {
		cfg.CsvPath = "district_data.csv"
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	if cfg.Scrape.Schedule == "" {
		cfg.Scrape.Schedule = defaultSchedule
	}

	database, err := sqliteutil.OpenDB(rosterdb.Schema, cfg.Database.File)
	if err != nil {
		serviceutil.Fatal("open db", err)
	}
	defer database.Close()
	service := roster.NewService(database)

	client, err := mainehouse.NewClient(mainehouse.ClientOptions{
		BaseUrl:       cfg.Scrape.BaseUrl,
		ListPath:      cfg.Scrape.ListPath,
		RatePerSecond: cfg.Scrape.RatePerSecond,
		RateBurst:     cfg.Scrape.RateBurst,
		Concurrency:   cfg.Scrape.Concurrency,
	})
	if err != nil {
		serviceutil.Fatal("init scraper client", err)
	}

	opts := roster.ScrapeOptions{
		CsvPath:  cfg.CsvPath,
		Notifier: roster.NewNotifier(cfg.Notify),
	}

	var inFlight atomic.Bool
	runScrape := func() {
		if !inFlight.CompareAndSwap(false, true) {
			slog.Warn("scrape already in flight, skipping trigger")
			return
		}
		defer inFlight.Store(false)

		runID, err := roster.Scrape(ctx, client, service, opts)
		if err != nil {
			slog.Error("scrape run failed", "err", err)
			return
		}
		slog.Info("scrape run finished", "run_id", runID)
	}

	cronner := cron.New(cron.WithLogger(slogCronLogger{}))
	_, err = cronner.AddFunc(cfg.Scrape.Schedule, runScrape)
	if err != nil {
		serviceutil.Fatal("register cron schedule", err)
	}
	cronner.Start()
	defer cronner.Stop()
	slog.Info("scrape scheduled", "schedule", cfg.Scrape.Schedule)

	if *now {
		go runScrape()
	}

	mux := http.NewServeMux()
	registerHandlers(mux, service, cfg.CsvPath)
	go serviceutil.StartHttpServer(cfg.Port, mux)

	<-ctx.Done()
}

type slogCronLogger struct{}

func (slogCronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	args := append([]any{"err", err}, keysAndValues...)
	slog.Error("cron: "+msg, args...)
}
