package app

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/andyballingall/unity-markup/internal/config"
)

// formatValue implements pflag.Value to provide a custom type name in help text
// and validation for output formats.
type formatValue string

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(v string) error {
	if v != string(config.OutputJSON) && v != string(config.OutputText) {
		return errors.New("must be 'text' or 'json'")
	}
	*f = formatValue(v)
	return nil
}

func (f *formatValue) Type() string {
	return "<format>"
}

// pathValue implements pflag.Value to provide a custom type name in help text.
type pathValue string

func (p *pathValue) String() string {
	return string(*p)
}

func (p *pathValue) Set(v string) error {
	*p = pathValue(v)
	return nil
}

func (p *pathValue) Type() string {
	return "<path>"
}

// runFlags holds the report and runner flags shared by validate and test.
type runFlags struct {
	output      formatValue
	verbose     bool
	failFast    bool
	workers     int
	schemaCheck bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	f.output = formatValue(config.OutputText)
	cmd.Flags().VarP(&f.output, "output", "o", "Output format (text, json)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Show passing documents as well as failures")
	cmd.Flags().BoolVarP(&f.failFast, "fail-fast", "F", false, "Stop at the first failing document")
	cmd.Flags().IntVarP(&f.workers, "workers", "j", 0, "Documents validated concurrently (0 uses all CPUs)")
	cmd.Flags().BoolVar(&f.schemaCheck, "schema-check", false,
		"Also check each document against the Unity JSON Schema")
}

// options merges the flags with cfg. A flag given on the command line wins
// over the config value.
func (f *runFlags) options(cmd *cobra.Command, cfg *config.Config) RunOptions {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := RunOptions{
		Format:      cfg.Output,
		Verbose:     f.verbose,
		UseColour:   cfg.Colour,
		FailFast:    cfg.FailFast,
		Workers:     cfg.Workers,
		SchemaCheck: cfg.SchemaCheck,
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		opts.Format = config.OutputFormat(f.output)
	}
	if flags.Changed("fail-fast") {
		opts.FailFast = f.failFast
	}
	if flags.Changed("workers") {
		opts.Workers = f.workers
	}
	if flags.Changed("schema-check") {
		opts.SchemaCheck = f.schemaCheck
	}
	if noColour, _ := flags.GetBool("nocolour"); noColour {
		opts.UseColour = false
	}
	return opts
}
