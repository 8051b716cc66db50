package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quizgen-labs/quizgen/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyHost        = "host"
	KeyMapName     = "map_name"
	KeyStartMarker = "start_marker"
	KeyEndMarker   = "end_marker"
	KeyTemplate    = "template"
	KeyOutputDir   = "output_dir"
	KeyVerbose     = "verbose"
)

// Settings is the resolved view of every key the commands consume.
type Settings struct {
	Host        string
	MapName     string
	StartMarker string
	EndMarker   string
	Template    string
	OutputDir   string
	Verbose     bool
}

// Dir returns the path to the config directory (~/.quizgen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.quizgen/config.yaml).
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

	viper.SetDefault(KeyMapName, branding.MapName())
	viper.SetDefault(KeyOutputDir, ".")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// BindFlags binds command-line flags to their config keys. Flag names use
// dashes; keys use underscores.
func BindFlags(flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		name := flagName(key)
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("no flag %q for config key %q", name, key)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %q: %w", name, err)
		}
	}
	return nil
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		Host:        viper.GetString(KeyHost),
		MapName:     viper.GetString(KeyMapName),
		StartMarker: viper.GetString(KeyStartMarker),
		EndMarker:   viper.GetString(KeyEndMarker),
		Template:    viper.GetString(KeyTemplate),
		OutputDir:   viper.GetString(KeyOutputDir),
		Verbose:     viper.GetBool(KeyVerbose),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
