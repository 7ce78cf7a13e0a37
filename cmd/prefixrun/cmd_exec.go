package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/prefixrun/pkg/exec"
)

var (
	execFailsafe bool
	executor     exec.Executor = &exec.RealExecutor{}
)

var execCmd = &cobra.Command{
	Use:   "exec [--failsafe] <executable> [args...]",
	Short: "Replace this process with an executable launched inside the prefix",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExec,
}

func init() {
	execCmd.Flags().BoolVar(&execFailsafe, "failsafe", false, "skip the prefix PATH entry and LD_PRELOAD")
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}

func runExec(_ *cobra.Command, args []string) error {
	res := newCmdlineBuilder().Build(args[0], args[1:])
	env := newEnvBuilder().Build(execFailsafe)

	logger.Debug("exec", "argv", res.Argv, "failsafe", execFailsafe)
	if err := executor.Exec(res.Argv, env); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}
