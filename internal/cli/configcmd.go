package cli

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/uelog/uelog/internal/config"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.Format == "ndjson" {
		out := map[string]interface{}{
			"type":     "config",
			"format":   cfg.Format,
			"quiet":    cfg.Quiet,
			"verbose":  cfg.Verbose,
			"defaults": cfg.Defaults,
		}
		data, err := sonic.Marshal(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(globals.Stdout, string(data))
		return err
	}

	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  format:  %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  quiet:   %v\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose: %v\n", cfg.Verbose)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Defaults:")
	fmt.Fprintf(globals.Stdout, "  preview_lines: %d\n", cfg.Defaults.PreviewLines)
	fmt.Fprintf(globals.Stdout, "  max_results:   %d\n", cfg.Defaults.MaxResults)
	fmt.Fprintf(globals.Stdout, "  page_size:     %d\n", cfg.Defaults.PageSize)

	if len(cfg.Defaults.Categories) > 0 {
		fmt.Fprintf(globals.Stdout, "  categories: %v\n", cfg.Defaults.Categories)
	}
	if len(cfg.Defaults.ExcludeCategories) > 0 {
		fmt.Fprintf(globals.Stdout, "  exclude_categories: %v\n", cfg.Defaults.ExcludeCategories)
	}

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "ndjson" {
		data, err := sonic.Marshal(map[string]interface{}{
			"type": "config_path",
			"path": path,
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(globals.Stdout, string(data))
		return err
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ~/.uelog.yaml")
		fmt.Fprintln(globals.Stdout, "  ./.uelog.yaml")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# uelog configuration file
# Place this file at ~/.uelog.yaml or ./.uelog.yaml

# Output format: "text" (default) or "ndjson"
format: text

# Suppress non-essential output
quiet: false

# Enable verbose/debug output
verbose: false

# Default values for commands
defaults:
  # Lines shown by read when --to is omitted
  preview_lines: 100

  # Maximum results returned by search
  max_results: 1000

  # Page size for search --paged
  page_size: 100

  # Categories to include (empty = all)
  # categories:
  #   - LogTemp
  #   - LogNet

  # Categories to exclude
  # exclude_categories:
  #   - LogSlate
`

	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
