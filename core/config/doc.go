// Package config provides configuration management for deviceinfocompare.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded with godotenv). Defaults come from the
// `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - BaseDir: local data directory (BASE_DIR, default ~/.deviceinfocompare)
//   - Server: HTTP API settings (port, API key)
//   - Database: dump store driver and connection details
//   - Storage: S3/MinIO credentials and archive bucket
//   - Inventory: shell and timeout used for live enumeration
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	db, err := database.Connect(cfg.Database)
package config
