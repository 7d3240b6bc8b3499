package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"deviceinfocompare/core/database"
	"deviceinfocompare/core/logger"
	"deviceinfocompare/core/server"
	"deviceinfocompare/core/storage"
	"deviceinfocompare/feature/inventory"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultBaseDirName is the directory created under the user's home when
// BASE_DIR is not set.
const DefaultBaseDirName = ".deviceinfocompare"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// BaseDir is where the sqlite database and other local files live.
	BaseDir string `mapstructure:"base_dir" default:""`
	// Server holds configuration for the HTTP API.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the dump archive bucket (S3, MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the dump database.
	Database database.Config `mapstructure:"database"`
	// Inventory holds configuration for live device enumeration.
	Inventory inventory.Config `mapstructure:"inventory"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DATABASE_DRIVER -> database.driver)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.resolveBaseDir(); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveBaseDir fills in the default base directory, creates it and points
// relative sqlite files at it.
func (c *Config) resolveBaseDir() error {
	if c.BaseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		c.BaseDir = filepath.Join(home, DefaultBaseDirName)
	}

	if err := os.MkdirAll(c.BaseDir, 0o755); err != nil {
		return fmt.Errorf("failed to create base directory %s: %w", c.BaseDir, err)
	}

	if c.Database.Dir == "" {
		c.Database.Dir = c.BaseDir
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
