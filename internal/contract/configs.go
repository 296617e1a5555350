package contract

import (
	"fmt"
	"strings"

	"github.com/entolab/bugtally/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 2
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// Config holds the runtime configuration for a single command run.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir       string // import: directory holding record files
	TableFile     string // alter/count/analyze: path to the CSV table
	RecordFile    string // alter: path to the record file
	FreqFile      string // count: path to the frequencies file
	CoeffFile     string // analyze: path to the count coefficients file
	CountriesFile string // analyze: path to the countries file

	Delimiter rune
	RecordExt string

	Output     schema.OutputMode // empty means the command family default
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	ArchiveBackend   schema.StoreBackend
	ArchiveDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tags
	DataDirStr    string
	TableFileStr  string
	RecordFileStr string
	FreqFileStr   string

	// --- Fields from rootCmd.PersistentFlags() ---
	Delimiter        string `mapstructure:"delimiter"`
	Ext              string `mapstructure:"ext"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	ArchiveBackend   string `mapstructure:"archive-backend"`
	ArchiveDBConnect string `mapstructure:"archive-db-connect"`

	// --- Fields from analyzeCmd.Flags() ---
	CoeffFile     string `mapstructure:"count-coefficients-file"`
	CountriesFile string `mapstructure:"countries-file"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDelimiter(cfg, input); err != nil {
		return err
	}
	if err := processRecordExt(cfg, input); err != nil {
		return err
	}
	return nil
}

// RevalidateTable checks that a table file path is present. It covers inputs
// that arrive outside the shared flag pipeline (MCP tool calls, direct API use).
func RevalidateTable(cfg *Config) error {
	if cfg.TableFile == "" {
		return fmt.Errorf("a table file path is required")
	}
	return nil
}

// RevalidateCount checks the count-specific inputs that arrive outside
// the shared flag pipeline.
func RevalidateCount(cfg *Config) error {
	if err := RevalidateTable(cfg); err != nil {
		return err
	}
	if cfg.FreqFile == "" {
		return fmt.Errorf("a frequencies file path is required")
	}
	return nil
}

// RevalidateAnalyze checks the analyze-specific inputs that arrive outside
// the shared flag pipeline.
func RevalidateAnalyze(cfg *Config) error {
	if err := RevalidateTable(cfg); err != nil {
		return err
	}
	if cfg.CoeffFile == "" {
		return fmt.Errorf("--count-coefficients-file is required")
	}
	if cfg.CountriesFile == "" {
		return fmt.Errorf("--countries-file is required")
	}
	return nil
}

// ValidateStoreConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateStoreConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("archive-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("archive-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the archive backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend := schema.StoreBackend(strings.ToLower(input.ArchiveBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid archive backend '%s'. must be sqlite, mysql, postgresql, none", input.ArchiveBackend)
	}
	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = input.ArchiveDBConnect
	return ValidateStoreConnectionString(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
}

// validateSimpleInputs processes and validates all non-delimiter fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.DataDir = input.DataDirStr
	cfg.TableFile = input.TableFileStr
	cfg.RecordFile = input.RecordFileStr
	cfg.FreqFile = input.FreqFileStr
	cfg.CoeffFile = strings.TrimSpace(input.CoeffFile)
	cfg.CountriesFile = strings.TrimSpace(input.CountriesFile)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output != "" {
		if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
			return fmt.Errorf("invalid output format '%s'. must be text, csv, json, table", cfg.Output)
		}
	}

	// --- 3. Backend Validation ---
	return validateBackendConfigs(cfg, input)
}

// processDelimiter validates the cell delimiter and converts it to a rune.
func processDelimiter(cfg *Config, input *ConfigRawInput) error {
	runes := []rune(input.Delimiter)
	if len(runes) != 1 {
		return fmt.Errorf("delimiter must be a single character (received %q)", input.Delimiter)
	}
	switch runes[0] {
	case '\r', '\n', '"':
		return fmt.Errorf("delimiter %q cannot be used in a CSV table", input.Delimiter)
	}
	cfg.Delimiter = runes[0]
	return nil
}

// processRecordExt validates the record file extension.
func processRecordExt(cfg *Config, input *ConfigRawInput) error {
	if len(input.Ext) < 2 || !strings.HasPrefix(input.Ext, ".") {
		return fmt.Errorf("record extension must start with '.' (received %q)", input.Ext)
	}
	cfg.RecordExt = input.Ext
	return nil
}
