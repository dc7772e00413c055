// Package ignore filters tables out of the extraction by pattern.
package ignore

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the default name of the ignore file
const FileName = ".db2snowignore"

// Config lists shell-style patterns of qualified table names
// (SCHEMA.TABLE) to exclude from extraction.
type Config struct {
	Tables []string
}

// tomlConfig represents the TOML structure of the ignore file
type tomlConfig struct {
	Tables tableIgnoreConfig `toml:"tables,omitempty"`
}

type tableIgnoreConfig struct {
	Patterns []string `toml:"patterns,omitempty"`
}

// Load reads an ignore file from the specified path.
// Returns nil if the file doesn't exist (ignore functionality is optional).
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return nil config (no filtering)
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var tc tomlConfig
	if _, err := toml.DecodeFile(path, &tc); err != nil {
		return nil, err
	}
	return &Config{Tables: tc.Tables.Patterns}, nil
}

// Match reports whether schema.table matches any ignore pattern. A nil
// Config matches nothing.
func (c *Config) Match(schema, table string) bool {
	if c == nil {
		return false
	}
	name := schema + "." + table
	for _, pattern := range c.Tables {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
