package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	SaveDirectory string   `toml:"save_directory"`
	FontSize      float64  `toml:"font_size"`
	CellWidth     float64  `toml:"cell_width"`
	CellHeight    float64  `toml:"cell_height"`
	LabelX        *float64 `toml:"label_x"`
	LabelY        *float64 `toml:"label_y"`
	Animate       bool     `toml:"animate"`
}

func defaultConfig() *Config {
	return &Config{
		FontSize:   defaultFontSize,
		CellWidth:  defaultCellWidth,
		CellHeight: defaultCellHeight,
	}
}

// loadConfig reads ~/.plotboxrc. A missing file is not an error.
func loadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(filepath.Join(homeDir, ".plotboxrc"))
}

func loadConfigFrom(path string) (*Config, error) {
	config := defaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return defaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}

	if config.FontSize <= 0 {
		config.FontSize = defaultFontSize
	}
	if config.CellWidth <= 0 {
		config.CellWidth = defaultCellWidth
	}
	if config.CellHeight <= 0 {
		config.CellHeight = defaultCellHeight
	}
	if strings.HasPrefix(config.SaveDirectory, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			config.SaveDirectory = filepath.Join(homeDir, strings.TrimPrefix(config.SaveDirectory, "~"))
		}
	}
	if config.SaveDirectory != "" && !filepath.IsAbs(config.SaveDirectory) {
		if absPath, err := filepath.Abs(config.SaveDirectory); err == nil {
			config.SaveDirectory = absPath
		}
	}
	return config, nil
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
