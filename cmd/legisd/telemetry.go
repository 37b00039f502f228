package main

import (
	"context"
	"log/slog"

	"mainelegis/lib/restyutil"
	"mainelegis/lib/scrapers/mainehouse"
	"mainelegis/lib/serviceutil"
	"mainelegis/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, "legisd")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		tel.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx)

	if !verbose {
		return
	}

	mainehouse.SetRestyInstrumentOutput(
		restyutil.NewFilesystemOutput(".dev/resty/mainehouse"),
	)
}
