package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/uelog/uelog/internal/cli"
	"github.com/uelog/uelog/internal/config"
	"github.com/uelog/uelog/internal/logging"
)

const quickStart = `uelog - Unreal Engine log file indexing, reading and search

START HERE:
  uelog stats MyProject.log              Index a log and show aggregates
  uelog read MyProject.log --from 1200   Read a parsed line range
  uelog search MyProject.log "Error:"    Search by regex or literal

Other useful commands:
  uelog ui MyProject.log                 Interactive viewer
  uelog analyze out.ndjson               Summarize an exported stream
  uelog config                           Show resolved configuration
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Config defaults feed kong's flag defaults; explicit flags win
	vars := kong.Vars{
		"config_format": cfg.Format,
	}

	ctx := kong.Parse(&c,
		kong.Name("uelog"),
		kong.Description("Index, read and search Unreal Engine log files"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	log := logging.New(c.Verbose || cfg.Verbose)
	defer log.Sync()

	globals := cli.NewGlobals(&c, cfg, log)
	if err := ctx.Run(globals); err != nil {
		os.Exit(1)
	}
}
