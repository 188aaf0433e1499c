// Package main provides the entry point for the docket CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/docket/internal/cli"
	"github.com/mrz1836/docket/internal/signal"
)

// Build-time variables set via ldflags.
var (
	version = "dev"     //nolint:gochecknoglobals // set via ldflags
	commit  = "none"    //nolint:gochecknoglobals // set via ldflags
	date    = "unknown" //nolint:gochecknoglobals // set via ldflags
)

func main() {
	h := signal.NewHandler(context.Background())
	defer h.Stop()

	err := cli.Execute(h.Context(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
