package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gpifab.dev/pkg/gpifab/internal/domain"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

var inspectFormatFlag string
var inspectParallelFlag int

var reportForms = []m.ReportForm{m.ReportFull, m.ReportOverlay, m.ReportYAML}

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect CONFIG...",
		Short: "Print the state machine and decoded waveform descriptors",
		Long: `Print the states, descriptor table and decoded descriptor fields of one or
more GPIF II configuration headers.

The overlay format prints the alpha/beta table accepted by apply.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			form, err := parseReportForm(viper.GetString(inspectFormatKey))
			if err != nil {
				return err
			}

			return workflow.Inspect(context.Background(), domain.InspectArgs{
				Configs: parsePaths(args),
				Form:    form,
				Strict:  viper.GetBool(scanStrictKey),
				Threads: viper.GetInt(inspectParallelKey),
			})
		},
	}

	configureInspectFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func configureInspectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inspectFormatFlag, formatFlagName, "f", viper.GetString(inspectFormatKey), "report format: full, overlay or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), inspectFormatKey)

	cmd.Flags().IntVarP(&inspectParallelFlag, parallelFlagName, "p", viper.GetInt(inspectParallelKey), "number of files loaded in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), inspectParallelKey)
}

func parseReportForm(value string) (m.ReportForm, error) {
	for _, form := range reportForms {
		if string(form) == value {
			return form, nil
		}
	}

	return "", fmt.Errorf("unknown format %q (want full, overlay or yaml)", value)
}
