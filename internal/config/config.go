package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// LibraryRoot is the directory whose subfolders hold the game dumps.
	LibraryRoot string
	// ConverterBinary is the external converter executable.
	ConverterBinary string
	// ConverterSubcommand is the conversion subcommand passed to the binary.
	ConverterSubcommand string
	// DataDir holds the taxonomy document and history database.
	DataDir string
	// TaxonomyPath is the learned-extension document.
	TaxonomyPath string
	// HistoryDBPath is the SQLite conversion-history database.
	HistoryDBPath string
	// LogDir receives the daily append-only journals.
	LogDir string
}

// SetDefaults registers every configuration key with its default value on
// the shared viper instance. Called once from the root command before any
// config file is read.
func SetDefaults() {
	viper.SetDefault("library.root", ".")
	viper.SetDefault("converter.binary", "chdman")
	viper.SetDefault("converter.subcommand", "createcd")
	viper.SetDefault("data.dir", "~/.local/share/chdflow")
	viper.SetDefault("data.taxonomy", "")
	viper.SetDefault("data.history", "")
	viper.SetDefault("logs.dir", "")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// Load resolves the configuration from viper, expanding paths and filling
// derived defaults (taxonomy, history, and logs live under the data dir
// unless set explicitly).
func Load() Config {
	dataDir := ExpandPath(viper.GetString("data.dir"))

	cfg := Config{
		LibraryRoot:         ExpandPath(viper.GetString("library.root")),
		ConverterBinary:     ExpandPath(viper.GetString("converter.binary")),
		ConverterSubcommand: viper.GetString("converter.subcommand"),
		DataDir:             dataDir,
		TaxonomyPath:        ExpandPath(viper.GetString("data.taxonomy")),
		HistoryDBPath:       ExpandPath(viper.GetString("data.history")),
		LogDir:              ExpandPath(viper.GetString("logs.dir")),
	}

	if cfg.TaxonomyPath == "" {
		cfg.TaxonomyPath = filepath.Join(dataDir, "taxonomy.yaml")
	}
	if cfg.HistoryDBPath == "" {
		cfg.HistoryDBPath = filepath.Join(dataDir, "history.db")
	}
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(dataDir, "logs")
	}

	return cfg
}
