package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/uelog/uelog/internal/config"
)

// CLI is the root command structure for uelog
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"ndjson,text" help:"Output format"`
	Quiet   bool   `short:"q" help:"Suppress non-essential output"`
	Verbose bool   `short:"v" help:"Show debug output (index timings, cache state)"`

	// Commands
	Stats   StatsCmd   `cmd:"" help:"Build the index for a log file and report aggregates"`
	Read    ReadCmd    `cmd:"" help:"Read a parsed line range from a log file"`
	Search  SearchCmd  `cmd:"" help:"Search a log file by regex or literal pattern"`
	Test    TestCmd    `cmd:"" help:"Test a regex pattern against a text snippet"`
	Analyze AnalyzeCmd `cmd:"" help:"Summarize a previously exported NDJSON stream"`
	UI      UICmd      `cmd:"" help:"Interactive log viewer"`
	Config  ConfigCmd  `cmd:"" help:"Show resolved configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Log     *zap.SugaredLogger
}

// NewGlobals creates a Globals instance with config fallbacks applied
func NewGlobals(cli *CLI, cfg *config.Config, log *zap.SugaredLogger) *Globals {
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Log:     log,
	}

	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
	}

	return g
}

// Debug logs a debug message when verbose mode is enabled
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.Verbose && g.Log != nil {
		g.Log.Debugf(format, args...)
	}
}

// colorEnabled reports whether styled text output should be used
func (g *Globals) colorEnabled() bool {
	f, ok := g.Stdout.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		io.WriteString(globals.Stdout, `{"type":"version","version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
	} else {
		io.WriteString(globals.Stdout, "uelog version "+Version+" ("+Commit+")\n")
	}
	return nil
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
