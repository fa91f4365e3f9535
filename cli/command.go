package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/presstools/core/config"
	"github.com/presstools/core/logging"
)

// CommandOptions holds common options shared by all subcommands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard flag set
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	registerCommonFlags(cmd.PersistentFlags())
	return cmd
}

// registerCommonFlags installs the flags every subcommand inherits
func registerCommonFlags(flags *pflag.FlagSet) {
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.Bool("json", false, "Output in JSON format")
	flags.StringP("config", "c", "", "Path to press.yml config file")
}

// GetLogger creates a logger based on command flags
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	entry := logging.NewLogger("cli")

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		entry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return entry
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// loadConfig resolves the configuration for one invocation: the --config
// flag when given, otherwise the nearest press.yml above the working
// directory, otherwise defaults. Logging defaults follow the loaded file.
func loadConfig(opts CommandOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if opts.ConfigFile != "" {
		cfg, err = config.Load(opts.ConfigFile)
	} else {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, wdErr
		}
		cfg, err = config.LoadOrDefault(cwd)
	}
	if err != nil {
		return nil, err
	}

	logging.Configure(cfg.Logging)
	return cfg, nil
}
