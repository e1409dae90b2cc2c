package ackrc

import (
	"github.com/spf13/cobra"

	"github.com/varalys/ackrc/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List rc files in the order their options are applied",
		Args:  cobra.NoArgs,
		RunE:  runFiles,
	}
	rootCmd.AddCommand(cmd)
}

func runFiles(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	refs, err := discover(s.log, s.settings)
	if err != nil {
		return err
	}
	return report.PrintFiles(cmd.OutOrStdout(), report.Describe(refs), s.print)
}
