package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/entolab/bugtally/internal/archive"
	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Build identity, overridden by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg holds the validated configuration the executors read from.
var cfg = &contract.Config{}

// input collects the raw values Viper resolves from file, env and flags
// before validation.
var input = &contract.ConfigRawInput{}

// profile holds profiling settings.
var profile = &contract.ProfileConfig{}

// archiveManager is the global run archive manager instance.
var archiveManager contract.ArchiveManager

// positionalBinder copies one command's positional arguments into the raw input.
// Viper only resolves flags, env vars and config files, so every command
// declares how its own positionals map onto input fields.
type positionalBinder func(input *contract.ConfigRawInput, args []string)

// startProfiling begins a CPU profile under the configured prefix. The heap
// profile is captured later by stopProfiling.
func startProfiling() error {
	if !profile.Enabled {
		return nil
	}

	cpuFile, err := os.Create(profile.Prefix + ".cpu.prof")
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		return fmt.Errorf("could not start CPU profiling: %w", err)
	}

	_, err = fmt.Fprintf(os.Stdout, "Profiling enabled. CPU profile: %s.cpu.prof, Memory profile: %s.mem.prof\n", profile.Prefix, profile.Prefix)
	return err
}

// stopProfiling ends the CPU profile and writes the heap snapshot.
func stopProfiling() error {
	if !profile.Enabled {
		return nil
	}

	pprof.StopCPUProfile()

	memFile, err := os.Create(profile.Prefix + ".mem.prof")
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	defer func() { _ = memFile.Close() }()

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		return fmt.Errorf("could not write memory profile: %w", err)
	}

	_, err = fmt.Fprintf(os.Stdout, "Profiling complete. Use 'go tool pprof %s.cpu.prof' to analyze.\n", profile.Prefix)
	return err
}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "bugtally",
	Short:              "Aggregate bug observation records into tables and weighted statistics.",
	Long:               `Bugtally merges per-bug observation files into region tables and reduces them to weighted counts and risk scores.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setConfigSource points Viper at the --config file when one was given, or
// at the .bugtally YAML search path (current directory, then $HOME).
func setConfigSource() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		return
	}
	viper.SetConfigName(".bugtally")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
}

// readConfigFile loads the config file if one exists. A missing file is
// fine; defaults, env vars and flags still apply.
func readConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// initConfig wires Viper's sources: config file location, the BUGTALLY_*
// environment namespace and the built-in defaults. Runs once via
// cobra.OnInitialize before any command body.
func initConfig() {
	setConfigSource()

	viper.SetEnvPrefix("BUGTALLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("delimiter", schema.DefaultDelimiter)
	viper.SetDefault("ext", schema.RecordFileExt)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", "")
	viper.SetDefault("archive-backend", string(schema.NoneBackend))
	viper.SetDefault("archive-db-connect", "")
	viper.SetDefault("color", "yes")
}

// sharedSetup resolves configuration and prepares the run: profiling first
// so slow validation is captured too, then config merge, positional
// binding, validation and archive startup.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string, bind positionalBinder) error {
	profilePrefix := viper.GetString("profile")
	if err := contract.ProcessProfilingConfig(profile, profilePrefix); err != nil {
		return fmt.Errorf("failed to process profiling config: %w", err)
	}
	if profile.Enabled {
		if err := startProfiling(); err != nil {
			return fmt.Errorf("failed to start profiling: %w", err)
		}
	}

	if err := readConfigFile(); err != nil {
		return err
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// Positionals are outside Viper's view, so bind them by hand.
	if bind != nil {
		bind(input, args)
	}

	// Validation populates the global cfg from input.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	return archive.InitArchive(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
}

// sharedSetupWith wraps sharedSetup as a PreRunE for one command's
// positional layout.
func sharedSetupWith(bind positionalBinder) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return sharedSetup(rootCtx, cmd, args, bind)
	}
}

// loadConfigFile resolves and reads the config file for commands that skip
// sharedSetup, such as the archive maintenance commands.
func loadConfigFile() error {
	setConfigSource()
	return readConfigFile()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetArchiveManager sets the global archive manager.
func SetArchiveManager(mgr contract.ArchiveManager) {
	archiveManager = mgr
}

// StopProfiling stops profiling if enabled.
func StopProfiling() error {
	return stopProfiling()
}
