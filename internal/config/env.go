package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names for credentials. Useful for keeping
// passwords out of shell history and CI logs.
const (
	EnvUsername = "WEBCRAWLER_USERNAME"
	EnvPassword = "WEBCRAWLER_PASSWORD"
)

// LoadCredentialsFromEnv returns credentials from the environment,
// loading a .env file from the working directory first when one exists.
// Missing values come back as empty strings; the caller falls back to
// positional arguments.
func LoadCredentialsFromEnv() (username, password string) {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load() //nolint:errcheck // Optional dotenv file

	return os.Getenv(EnvUsername), os.Getenv(EnvPassword)
}
