// Package config loads the application configuration from environment
// variables and an optional .env file.
//
// Each core package owns its partial Config struct; this package aggregates
// them and binds defaults declared through 'default' struct tags. Nested keys
// map to environment variables by replacing dots with underscores, e.g.
// LOADER_MAX_ATTEMPTS sets loader.max_attempts and PRELOAD_CRITICAL sets
// preload.critical.
package config
