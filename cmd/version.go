package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gpifab, config schema and Go versions",
		Long: `Print the gpifab build version, the gpifab.yaml schema version written by
"gpifab init" and the Go toolchain the binary was built with.`,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := unknownVersion, "unknown"

			if info, ok := debug.ReadBuildInfo(); ok {
				if info.Main.Version != "" {
					version = info.Main.Version
				}

				goVersion = info.GoVersion
			}

			cmd.Printf("gpifab %s\n", version)
			cmd.Printf("config schema %d\n", currentConfigVersion)
			cmd.Printf("built with %s\n", goVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
