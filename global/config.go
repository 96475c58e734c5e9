package global

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yatzbim/PokeQuery/pokeapi"
)

type GlobalConfig struct {
	// Base URL of the PokeAPI instance to query
	ApiBaseUrl string
	// Path of the SQLite response cache. Set to ":memory:" to not keep responses between runs
	CacheLocation string
	// How long cached responses stay valid. 0 keeps them forever
	CacheTTLHours int
	// Only count encounters from this game version (e.g. "red"). Empty counts every version
	GameVersion string
	// Optional YAML type chart used instead of PokeAPI's
	ChartLocation string
	// Fail on types that aren't in the type chart instead of treating them as neutral
	StrictTypes bool
	Debug       bool
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "pokequery")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// LoadConfig reads the config file at path, filling in defaults for anything left empty.
// A missing or empty file gets written with the default values.
func LoadConfig(path string) (GlobalConfig, error) {
	configContents, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return populateConfig(GlobalConfig{}), err
	}

	if len(configContents) > 0 {
		config := GlobalConfig{}
		if err := json.Unmarshal(configContents, &config); err != nil {
			return populateConfig(GlobalConfig{}), err
		}

		return populateConfig(config), nil
	}

	config := populateConfig(GlobalConfig{})
	return config, SaveConfig(path, config)
}

func SaveConfig(path string, config GlobalConfig) error {
	jsonString, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	return os.WriteFile(path, jsonString, 0644)
}

func populateConfig(config GlobalConfig) GlobalConfig {
	if config.ApiBaseUrl == "" {
		config.ApiBaseUrl = pokeapi.DefaultBaseUrl
	}
	if config.CacheLocation == "" {
		config.CacheLocation = filepath.Join(DefaultConfigDir(), "cache.db")
	}
	if config.CacheTTLHours < 0 {
		config.CacheTTLHours = 0
	}

	return config
}
