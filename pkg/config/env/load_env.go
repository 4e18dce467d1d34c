package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. ENV_PATH
// overrides the default path. A missing file is not an error outside
// local mode.
func LoadDotEnv(defaultPath string) error {
	envPath := defaultPath
	if os.Getenv("ENV_PATH") != "" {
		envPath = os.Getenv("ENV_PATH")
	}

	if err := godotenv.Load(envPath); err != nil {
		slog.Info("Skipping .env ...", "path", envPath, "error", err)
	}

	return nil
}
