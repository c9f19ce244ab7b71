package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gpifab.dev/pkg/gpifab/internal/domain"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

const applyLongDescription = `Apply an alpha/beta overlay table to a GPIF II configuration header.

The overlay is read from --overlay or from standard input. Every row is
checked against the states, transitions and descriptor validity of the file;
any mismatch aborts without writing. On success a copy of the file is written
next to it (CONFIG` + domain.DefaultSuffix + ` unless --suffix or --output is given) with only the
descriptor literals changed and a modification note added to the header.

Overlays produced by "gpifab inspect --format overlay" can be edited and fed
back in. A state with no name in the file is listed there as <state N>; rows
naming such a state are always rejected, so the overlay must stop before the
first slot it is routed to.`

var applyOverlayFlag string
var applyOutputFlag string
var applySuffixFlag string
var applyDryRunFlag bool
var applyDiffFlag bool
var applyAllErrorsFlag bool

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply CONFIG",
		Short: "Apply an alpha/beta overlay to a configuration header",
		Long:  applyLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overlay, closeOverlay, err := openOverlay(cmd, applyOverlayFlag)
			if err != nil {
				return err
			}
			defer closeOverlay()

			return workflow.Apply(context.Background(), domain.ApplyArgs{
				Config:    m.Path(args[0]),
				Output:    m.Path(applyOutputFlag),
				Overlay:   overlay,
				Suffix:    viper.GetString(applySuffixKey),
				Strict:    viper.GetBool(scanStrictKey),
				Aggregate: viper.GetBool(applyAggregateKey),
				DryRun:    applyDryRunFlag,
				ShowDiff:  applyDiffFlag,
			})
		},
	}

	configureApplyFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func configureApplyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&applyOverlayFlag, overlayFlagName, "i", "", "overlay table to apply (default: standard input)")
	cmd.Flags().StringVarP(&applyOutputFlag, outputFlagName, "o", "", "write the edited file to this path instead of CONFIG plus suffix")

	cmd.Flags().StringVar(&applySuffixFlag, suffixFlagName, viper.GetString(applySuffixKey), "suffix appended to CONFIG to name the edited file")
	bindFlagToConfig(cmd.Flags().Lookup(suffixFlagName), applySuffixKey)

	cmd.Flags().BoolVar(&applyAllErrorsFlag, allErrorsFlagName, viper.GetBool(applyAggregateKey), "report every overlay mismatch instead of stopping at the first")
	bindFlagToConfig(cmd.Flags().Lookup(allErrorsFlagName), applyAggregateKey)

	cmd.Flags().BoolVarP(&applyDryRunFlag, dryRunFlagName, "n", false, "validate and rewrite without writing the output file")
	cmd.Flags().BoolVarP(&applyDiffFlag, diffFlagName, "d", false, "show a unified diff of the changes")
}

// openOverlay opens the overlay file, or standard input for "" and "-".
func openOverlay(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	// #nosec G304 - the path is the overlay chosen by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open overlay: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
