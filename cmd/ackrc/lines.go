package ackrc

import (
	"iter"

	"github.com/spf13/cobra"

	"github.com/varalys/ackrc/internal/rcfile"
	"github.com/varalys/ackrc/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lines FILE",
		Short: "Print the option lines of one rc file (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runLines,
	}
	rootCmd.AddCommand(cmd)
}

func runLines(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	path := args[0]
	var seq iter.Seq2[string, error]
	if path == "-" {
		seq = rcfile.FromReader(cmd.InOrStdin())
	} else {
		seq = rcfile.Lines(path)
	}

	var lines []string
	for line, err := range seq {
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	return report.PrintLines(cmd.OutOrStdout(), lines, s.print)
}
