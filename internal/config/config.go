package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/bernardogv/treasure-hunter/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyBaseDir = "base_dir"
	KeyVerbose = "verbose"
)

var knownKeys = map[string]func(string) error{
	KeyBaseDir: func(string) error { return nil },
	KeyVerbose: func(v string) error {
		_, err := strconv.ParseBool(v)
		return err
	},
}

// Dir returns the path to the config directory (~/.th-setup/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.th-setup/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// BindFlag makes a command-line flag the highest-priority source for key.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for %q", key)
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("binding flag %s to %q: %w", flag.Name, key, err)
	}
	return nil
}

// Keys returns the configuration keys accepted by Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// BaseDir returns the directory a run scaffolds into: the configured
// base_dir, or the current working directory when unset.
func BaseDir() (string, error) {
	if v := viper.GetString(KeyBaseDir); v != "" {
		return v, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// Verbose reports whether skipped paths should be printed.
func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	check, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("unknown key %q (known keys: %v)", key, Keys())
	}
	if err := check(value); err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	// Write through a separate instance so only file-backed keys are saved
	// and flags or environment keep their precedence afterwards.
	configFile := FilePath()
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}
	v.Set(key, value)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	Load()
	return nil
}
