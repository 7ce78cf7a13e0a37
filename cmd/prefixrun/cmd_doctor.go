package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/prefixrun/pkg/doctor"
	"github.com/vertti/prefixrun/pkg/output"
)

// ErrCheckFailed is returned when a layout check fails.
var ErrCheckFailed = errors.New("check failed")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the prefix layout exists on disk",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	results, ok := doctor.RunAll(doctor.ForLayout(activeLayout, &doctor.RealFileSystem{}))
	for _, r := range results {
		output.PrintResult(cmd.OutOrStdout(), r)
		if !r.OK() {
			logger.Debug("check failed", "name", r.Name, "err", r.Err)
		}
	}

	if !ok {
		return ErrCheckFailed
	}
	return nil
}
