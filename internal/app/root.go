package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andyballingall/unity-markup/internal/config"
	"github.com/andyballingall/unity-markup/internal/corpus"
	"github.com/andyballingall/unity-markup/internal/fs"
	"github.com/andyballingall/unity-markup/internal/validator"
)

// Version is the current version of unity, set at build time.
var Version = "dev"

const NameCmdName = "name"

// Banner with colour codes.
var Banner = "\033[32m" + `
   __  __      _ __
  / / / /___  (_) /___  __
 / / / / __ \/ / __/ / / /
/ /_/ / / / / / /_/ /_/ /
\____/_/ /_/_/\__/\__, /
                 /____/
` + "\033[0m"

var LongDescription = `
unity validates Unity markup: XML-like documents written as JSON arrays of the
form [name, {attributes}?, content...]. Every error in a document is reported
with its location, so a broken document can be fixed in one pass.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer, envProvider fs.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool
	var configPath pathValue

	rootCmd := &cobra.Command{
		Use:           "unity",
		Short:         "Validate Unity markup documents",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          Banner + "\n" + LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				ll.Set(slog.LevelDebug)
			}

			// Skip initialization for help, completion and name commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd.Name() == NameCmdName {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				return nil
			}

			// 1. Load configuration
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Discover(string(configPath), envProvider, workDir)
			if err != nil {
				return err
			}

			// 2. Setup Logging
			logPath := envProvider.Get(LogEnvVar)
			if logPath == "" {
				logPath = cfg.LogFile
			}
			logger, closer, err := setupLogger(stderr, ll, logPath)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}
			if closer != nil {
				lazy.AddCloser(closer)
			}
			logger.Debug("configuration loaded", "config", cfg.String())

			// 3. Build Dependencies
			cache, err := corpus.NewCache(cfg.CacheSize)
			if err != nil {
				return fmt.Errorf("failed to initialise result cache: %w", err)
			}

			// 4. Hydrate the Lazy Wrapper
			realMgr := NewCLIManager(logger, cfg, validator.NewSanthoshCompiler(), cache, cmd.OutOrStdout())
			lazy.SetInner(realMgr)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Var(&configPath, "config",
		fmt.Sprintf("path to config file (default $%s or ./%s)", config.ConfigEnvVar, config.DefaultFileName))
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	// Subcommands
	rootCmd.AddCommand(NewValidateCmd(lazy))
	rootCmd.AddCommand(NewTestCmd(lazy))
	rootCmd.AddCommand(NewSchemaCmd(lazy))
	rootCmd.AddCommand(NewNameCmd())

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
