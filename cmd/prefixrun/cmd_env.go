package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/prefixrun/pkg/environ"
	"github.com/vertti/prefixrun/pkg/output"
)

var envFailsafe bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the environment used for launched processes",
	Args:  cobra.NoArgs,
	RunE:  runEnv,
}

func init() {
	envCmd.Flags().BoolVar(&envFailsafe, "failsafe", false, "skip the prefix PATH entry and LD_PRELOAD")
	rootCmd.AddCommand(envCmd)
}

// newEnvBuilder snapshots the current process environment.
func newEnvBuilder() *environ.Builder {
	return &environ.Builder{
		Layout: activeLayout,
		Getter: environ.SnapshotOf(os.Environ()),
	}
}

func runEnv(cmd *cobra.Command, _ []string) error {
	output.PrintLines(cmd.OutOrStdout(), newEnvBuilder().Build(envFailsafe))
	return nil
}
