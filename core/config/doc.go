// Package config provides configuration management for the CSV adapter.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Schema: path to the YAML schema file (reference header, rename map, delimiter)
//   - Adapt: batch adapter directories and sink selection
//   - Storage: S3/MinIO credentials and bucket settings (object sink only)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Adapt.InputDir)
package config
