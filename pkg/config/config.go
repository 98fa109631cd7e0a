package config

import (
	"github.com/arthur-debert/ezlink/pkg/types"
)

// Config is the complete ezlink configuration
type Config struct {
	Link    LinkConfig    `koanf:"link" toml:"link"`
	Merge   MergeConfig   `koanf:"merge" toml:"merge"`
	Logging LoggingConfig `koanf:"logging" toml:"logging"`
	Opener  OpenerConfig  `koanf:"opener" toml:"opener"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
}

// LinkConfig holds link creation settings
type LinkConfig struct {
	DefaultType types.SymlinkType `koanf:"default_type" toml:"default_type"`
}

// MergeConfig holds merge confirmation settings
type MergeConfig struct {
	AssumeYes bool `koanf:"assume_yes" toml:"assume_yes"`
}

// LoggingConfig holds log file settings
type LoggingConfig struct {
	File       bool `koanf:"file" toml:"file"`
	MaxSizeMB  int  `koanf:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int  `koanf:"max_backups" toml:"max_backups"`
}

// OpenerConfig holds the "open containing folder" settings
type OpenerConfig struct {
	Command string `koanf:"command" toml:"command"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}
