package main

import (
	"context"

	"mainelegis/cmd/legis-cli/commands"
	"mainelegis/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "legis-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
