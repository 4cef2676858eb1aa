package cli

import (
	"fmt"

	"github.com/jlrickert/glue/pkg/glue"
	"github.com/spf13/cobra"
)

// NewTimeCmd returns the `time` command group.
//
// Usage examples:
//
//	glue time now
//	glue time format 1700000000
//	glue time convert --millis 1700000000.25
func NewTimeCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "epoch time helpers",
	}
	cmd.AddCommand(newTimeNowCmd(deps), newTimeFormatCmd(deps), newTimeConvertCmd(deps))
	return cmd
}

func newTimeNowCmd(deps *Deps) *cobra.Command {
	var opts glue.NowOptions

	cmd := &cobra.Command{
		Use:   "now",
		Short: "print the current epoch time in milliseconds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := deps.Glue.Now(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.Seconds, "seconds", "s", false, "print whole seconds")
	cmd.Flags().BoolVar(&opts.Human, "human", false, "print in ctime layout")
	return cmd
}

func newTimeFormatCmd(deps *Deps) *cobra.Command {
	var opts glue.FormatTimeOptions

	cmd := &cobra.Command{
		Use:   "format <timestamp>",
		Short: "render an epoch timestamp in ctime layout (UTC)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Value = args[0]
			output, err := deps.Glue.FormatTime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.Millis, "millis", "m", false, "timestamp is in milliseconds")
	return cmd
}

func newTimeConvertCmd(deps *Deps) *cobra.Command {
	var opts glue.ConvertTimeOptions

	cmd := &cobra.Command{
		Use:   "convert <seconds>",
		Short: "truncate fractional epoch seconds to seconds or milliseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Value = args[0]
			output, err := deps.Glue.ConvertTime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.Millis, "millis", "m", false, "convert to milliseconds")
	return cmd
}
