// Package config provides configuration management for icon-data.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live in the `default` struct tags of each
// section and are registered by reflection, so every key can be overridden
// by an environment variable named SECTION_KEY.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Icons: input directory, catalog and alternatives filenames, output path,
//     the "new" threshold version and the canonical source prefix
//   - Storage: S3/MinIO credentials, bucket and object for publishing
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Icons.Dir)
package config
