package config

import (
	"os"
	"path/filepath"

	"fjacquet/raiffeisen-csv/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file in the working directory or its
// parent, if one exists. Variables already set in the environment win.
// It returns the file that was loaded, or "" when none was found.
func LoadEnv(logger logging.Logger) string {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			if logger != nil {
				logger.WithError(err).Warn("Error loading .env file",
					logging.Field{Key: logging.FieldFile, Value: envFile})
			}
			return ""
		}
		if logger != nil {
			logger.Debug("Loaded environment variables",
				logging.Field{Key: logging.FieldFile, Value: envFile})
		}
		return envFile
	}
	return ""
}
