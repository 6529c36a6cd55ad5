// Package config holds the crawler's configuration: CLI-derived options,
// per-site overrides from the YAML config file, dotenv credential
// loading, and validation.
//
// Configuration flows one way: the CLI builds a Config, Validate runs
// once before any network activity, and the Config is passed down via
// dependency injection. Nothing in this package is global state.
package config
