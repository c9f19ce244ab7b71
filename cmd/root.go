// Package cmd provides the root command and CLI setup for gpifab.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gpifab.dev/pkg/gpifab/internal/adapter"
	"gpifab.dev/pkg/gpifab/internal/controller"
	"gpifab.dev/pkg/gpifab/internal/domain"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

var gpifFileAdapter adapter.GPIFFileAdapter
var overlayAdapter adapter.OverlayAdapter
var fsAdapter adapter.SourceFSAdapter
var loader domain.Loader
var rewriter domain.Rewriter
var workflow domain.Workflow
var ui controller.UI

// strictFlag turns lines that look like section data but do not parse into
// errors.
var strictFlag bool

// logFileFlag overrides the log file path.
var logFileFlag string

// verboseFlag enables debug logging.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	gpifFileAdapter = adapter.NewLocalGPIFFileAdapter()
	overlayAdapter = adapter.NewLocalOverlayAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	loader = domain.NewLoader(gpifFileAdapter)
	rewriter = domain.NewRewriter(gpifFileAdapter, nil)
	workflow = domain.NewWorkflow(
		fsAdapter,
		overlayAdapter,
		ui,
		loader,
		rewriter,
	)
}

const rootLongDescription = `gpifab edits the alpha and beta outputs of the waveform descriptors in a
GPIF II designer generated configuration header (cyfxgpif2config.h).

The changes come from a tab separated overlay table that must agree with the
state machine already in the file. Print the table with

  gpifab inspect --format overlay cyfxgpif2config.h > overlay.tsv

edit the alpha and beta columns, then write a modified copy with

  gpifab apply cyfxgpif2config.h --overlay overlay.tsv`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gpifab",
		Short:        "GPIF II waveform alpha/beta editor",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&strictFlag, strictFlagName, viper.GetBool(scanStrictKey), "fail on lines that look like section data but do not parse")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(strictFlagName), scanStrictKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from log.filename)")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
