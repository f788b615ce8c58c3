package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/liftquest/internal/config"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			if err := writeConfig(configPath, cfg); err != nil {
				return fmt.Errorf("Failed to write config: %w", err)
			}
			fmt.Printf("✅ Config written to %s\n", configPath)
		}

		// Opening runs the schema migration.
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Printf("✅ Database initialized successfully at %s\n", cfg.DB.URL)
		return nil
	},
}

func writeConfig(path string, c *config.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
