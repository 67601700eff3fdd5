// Package config provides environment-based configuration for the website
// server.
//
// All settings are read from WEBSITE_* environment variables with sensible
// defaults, validated once at startup:
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//		log.Fatalf("invalid configuration: %v", err)
//	}
//
// See LoadConfig for the full list of variables.
package config
