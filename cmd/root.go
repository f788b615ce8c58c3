package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/misterclayt0n/liftquest/internal/config"
	"github.com/misterclayt0n/liftquest/internal/logging"
	"github.com/misterclayt0n/liftquest/internal/session"
	"github.com/misterclayt0n/liftquest/internal/storage"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "liftquest",
	Short:         "Gym companion: log live workouts, rest between sets, level up",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			path, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("Failed to resolve config path: %w", err)
			}
			configPath = path
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}
		cfg = loaded

		logging.Setup(logging.Params{
			File:     expandHome(cfg.Logging.File),
			ToStderr: cfg.Logging.ToStderr,
			Level:    cfg.Logging.Level,
			JSON:     cfg.Logging.JSON,
		})
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.config/liftquest/config.toml)")
}

func openStorage() (*storage.Storage, error) {
	st, err := storage.Open(cfg.DB.URL)
	if err != nil {
		return nil, fmt.Errorf("Failed to open storage: %w", err)
	}
	return st, nil
}

// The session snapshot lives next to the config file.
func snapshotFile() *session.SnapshotFile {
	return session.NewSnapshotFile(filepath.Dir(configPath))
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
