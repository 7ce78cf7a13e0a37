package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/prefixrun/pkg/exec"
)

var shellFailsafe bool

// runSession is replaced in tests.
var runSession = func(ctx context.Context, s *exec.Session) (int, error) {
	return s.Run(ctx)
}

var shellCmd = &cobra.Command{
	Use:          "shell [--failsafe] [executable] [args...]",
	Short:        "Run a shell or executable inside the prefix under a pseudo terminal",
	Long:         "Run a shell or executable inside the prefix under a pseudo terminal. Without arguments the prefix's sh is started.",
	SilenceUsage: true,
	RunE:         runShell,
}

func init() {
	shellCmd.Flags().BoolVar(&shellFailsafe, "failsafe", false, "skip the prefix PATH entry and LD_PRELOAD")
	shellCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	executable := activeLayout.Bin + "/sh"
	if len(args) > 0 {
		executable, args = args[0], args[1:]
	}

	res := newCmdlineBuilder().Build(executable, args)
	s := &exec.Session{
		Argv:   res.Argv,
		Env:    newEnvBuilder().Build(shellFailsafe),
		Dir:    activeLayout.Home,
		Stdout: cmd.OutOrStdout(),
	}

	logger.Debug("starting session", "argv", s.Argv, "failsafe", shellFailsafe)
	code, err := runSession(cmd.Context(), s)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	if code != 0 {
		cmd.SilenceErrors = true
		return &exitCodeError{code: code}
	}
	return nil
}
