package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/prefixrun/pkg/cmdline"
	"github.com/vertti/prefixrun/pkg/output"
)

var argvCmd = &cobra.Command{
	Use:   "argv <executable> [args...]",
	Short: "Print the argument vector used to launch an executable",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArgv,
}

var classifyCmd = &cobra.Command{
	Use:   "classify <executable>",
	Short: "Show how an executable's header is interpreted",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

func init() {
	argvCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(argvCmd)
	rootCmd.AddCommand(classifyCmd)
}

func newCmdlineBuilder() *cmdline.Builder {
	return &cmdline.Builder{
		BinDir: activeLayout.Bin,
		FS:     &cmdline.RealFileSystem{},
		Log:    logger,
	}
}

func runArgv(cmd *cobra.Command, args []string) error {
	res := newCmdlineBuilder().Build(args[0], args[1:])
	output.PrintLines(cmd.OutOrStdout(), res.Argv)
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	res := newCmdlineBuilder().Build(args[0], nil)
	output.PrintClassification(cmd.OutOrStdout(), args[0], res.Classification)
	return nil
}
