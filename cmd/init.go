package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default gpifab.yaml configuration file",
		Long: `Create gpifab.yaml in the current working directory holding the scan,
apply, inspect and log settings currently in effect. An existing file is never
overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			slog.Info("configuration written", "path", targetPath, "version", currentConfigVersion)
			cmd.Printf("wrote %s (schema %d)\n", targetPath, currentConfigVersion)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
